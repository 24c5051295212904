package mongodb

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// EnsureIndexes creates the composite indexes every query path relies on.
// CreateMany is idempotent, so this runs on every startup.
func EnsureIndexes(ctx context.Context) error {
	assetIndexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "user_id", Value: 1}, {Key: "type", Value: 1}}},
		{Keys: bson.D{{Key: "user_id", Value: 1}, {Key: "is_liquid", Value: 1}}},
	}
	if _, err := collection(AssetCollection).Indexes().CreateMany(ctx, assetIndexes); err != nil {
		return fmt.Errorf("error creating asset indexes: %v", err)
	}

	liabilityIndexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "user_id", Value: 1}, {Key: "type", Value: 1}}},
		{Keys: bson.D{{Key: "user_id", Value: 1}, {Key: "is_active", Value: 1}}},
	}
	if _, err := collection(LiabilityCollection).Indexes().CreateMany(ctx, liabilityIndexes); err != nil {
		return fmt.Errorf("error creating liability indexes: %v", err)
	}

	netWorthIndexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "user_id", Value: 1}, {Key: "date", Value: 1}}},
		{Keys: bson.D{{Key: "user_id", Value: 1}, {Key: "date", Value: -1}}},
	}
	if _, err := collection(NetWorthCollection).Indexes().CreateMany(ctx, netWorthIndexes); err != nil {
		return fmt.Errorf("error creating net worth indexes: %v", err)
	}

	// The one-settings-record-per-user invariant lives here, not in app code.
	notificationIndex := mongo.IndexModel{
		Keys:    bson.D{{Key: "user_id", Value: 1}},
		Options: options.Index().SetUnique(true),
	}
	if _, err := collection(NotificationCollection).Indexes().CreateOne(ctx, notificationIndex); err != nil {
		return fmt.Errorf("error creating notification settings index: %v", err)
	}

	return nil
}
