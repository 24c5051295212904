package mongodb

import (
	"context"
	"errors"
	"fmt"
	"time"

	"networth-tracker/api/models"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// CreateNetWorthSnapshot persists an aggregate written by the external
// aggregation job. Snapshots have no update path; once written they are
// only read or deleted.
func CreateNetWorthSnapshot(ctx context.Context, snapshot *models.NetWorthSnapshot) error {
	snapshot.ApplyDefaults()
	if err := snapshot.Validate(); err != nil {
		return err
	}

	now := time.Now().UTC()
	snapshot.ID = bson.NewObjectID()
	snapshot.CreatedAt = now
	snapshot.UpdatedAt = now

	if _, err := collection(NetWorthCollection).InsertOne(ctx, snapshot); err != nil {
		return fmt.Errorf("error creating net worth snapshot: %w", err)
	}
	return nil
}

func GetNetWorthSnapshotByID(ctx context.Context, userID string, id bson.ObjectID) (*models.NetWorthSnapshot, error) {
	filter := bson.M{"_id": id, "user_id": userID}

	var snapshot models.NetWorthSnapshot
	err := collection(NetWorthCollection).FindOne(ctx, filter).Decode(&snapshot)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("error fetching net worth snapshot: %w", err)
	}
	return &snapshot, nil
}

// ListNetWorthHistory returns a user's snapshot timeline ordered by date.
func ListNetWorthHistory(ctx context.Context, userID string, order models.SortOrder) ([]models.NetWorthSnapshot, error) {
	opts := options.Find().SetSort(bson.D{{Key: "date", Value: sortDirection(order)}})

	cursor, err := collection(NetWorthCollection).Find(ctx, bson.M{"user_id": userID}, opts)
	if err != nil {
		return nil, fmt.Errorf("error fetching net worth history: %w", err)
	}
	defer cursor.Close(ctx)

	snapshots := []models.NetWorthSnapshot{}
	for cursor.Next(ctx) {
		var snapshot models.NetWorthSnapshot
		if err := cursor.Decode(&snapshot); err != nil {
			return nil, fmt.Errorf("error decoding net worth snapshot: %w", err)
		}
		snapshots = append(snapshots, snapshot)
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("cursor error: %w", err)
	}
	return snapshots, nil
}

func DeleteNetWorthSnapshot(ctx context.Context, userID string, id bson.ObjectID) error {
	filter := bson.M{"_id": id, "user_id": userID}

	result, err := collection(NetWorthCollection).DeleteOne(ctx, filter)
	if err != nil {
		return fmt.Errorf("error deleting net worth snapshot: %w", err)
	}
	if result.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func sortDirection(order models.SortOrder) int {
	if order == models.SortDescending {
		return -1
	}
	return 1
}
