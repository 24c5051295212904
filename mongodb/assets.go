package mongodb

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"networth-tracker/api/models"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// CreateAsset validates the candidate record, assigns an identifier and
// timestamps, and persists it. The stored record is returned via the
// mutated argument.
func CreateAsset(ctx context.Context, asset *models.Asset) error {
	asset.ApplyDefaults()
	if err := asset.Validate(); err != nil {
		return err
	}

	now := time.Now().UTC()
	asset.ID = bson.NewObjectID()
	asset.CreatedAt = now
	asset.UpdatedAt = now

	if _, err := collection(AssetCollection).InsertOne(ctx, asset); err != nil {
		return fmt.Errorf("error creating asset: %w", err)
	}
	return nil
}

func GetAssetByID(ctx context.Context, userID string, id bson.ObjectID) (*models.Asset, error) {
	filter := bson.M{"_id": id, "user_id": userID}

	var asset models.Asset
	err := collection(AssetCollection).FindOne(ctx, filter).Decode(&asset)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("error fetching asset: %w", err)
	}
	return &asset, nil
}

func ListAssets(ctx context.Context, userID string, filter models.AssetFilter) ([]models.Asset, error) {
	cursor, err := collection(AssetCollection).Find(ctx, assetListFilter(userID, filter))
	if err != nil {
		return nil, fmt.Errorf("error fetching assets: %w", err)
	}
	defer cursor.Close(ctx)

	assets := []models.Asset{}
	for cursor.Next(ctx) {
		var asset models.Asset
		if err := cursor.Decode(&asset); err != nil {
			return nil, fmt.Errorf("error decoding asset: %w", err)
		}
		assets = append(assets, asset)
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("cursor error: %w", err)
	}
	return assets, nil
}

// UpdateAsset applies a partial change set, appending to the valuation
// history when the update carries an entry, and returns the updated
// document. History entries are only ever pushed, never removed.
func UpdateAsset(ctx context.Context, userID string, id bson.ObjectID, update *models.AssetUpdate) (*models.Asset, error) {
	if err := update.Validate(); err != nil {
		return nil, err
	}
	if update.Empty() {
		return GetAssetByID(ctx, userID, id)
	}

	filter := bson.M{"_id": id, "user_id": userID}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var asset models.Asset
	err := collection(AssetCollection).
		FindOneAndUpdate(ctx, filter, assetUpdateDocument(update, time.Now().UTC()), opts).
		Decode(&asset)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("error updating asset: %w", err)
	}
	return &asset, nil
}

// DeleteAsset removes the asset document. The embedded valuation history
// goes with it in the same write.
func DeleteAsset(ctx context.Context, userID string, id bson.ObjectID) error {
	filter := bson.M{"_id": id, "user_id": userID}

	result, err := collection(AssetCollection).DeleteOne(ctx, filter)
	if err != nil {
		return fmt.Errorf("error deleting asset: %w", err)
	}
	if result.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func assetListFilter(userID string, f models.AssetFilter) bson.M {
	filter := bson.M{"user_id": userID}
	if f.Type != nil {
		filter["type"] = *f.Type
	}
	if f.IsLiquid != nil {
		filter["is_liquid"] = *f.IsLiquid
	}
	return filter
}

func assetUpdateDocument(u *models.AssetUpdate, now time.Time) bson.M {
	set := bson.M{"updated_at": now}
	if u.Name != nil {
		set["name"] = strings.TrimSpace(*u.Name)
	}
	if u.Type != nil {
		set["type"] = *u.Type
	}
	if u.Value != nil {
		set["value"] = *u.Value
	}
	if u.Currency != nil {
		set["currency"] = *u.Currency
	}
	if u.Description != nil {
		set["description"] = *u.Description
	}
	if u.PurchaseDate != nil {
		set["purchase_date"] = *u.PurchaseDate
	}
	if u.PurchasePrice != nil {
		set["purchase_price"] = *u.PurchasePrice
	}
	if u.AppreciationRate != nil {
		set["appreciation_rate"] = *u.AppreciationRate
	}
	if u.IsLiquid != nil {
		set["is_liquid"] = *u.IsLiquid
	}

	update := bson.M{"$set": set}
	if u.AppendValuation != nil {
		update["$push"] = bson.M{"history": *u.AppendValuation}
	}
	return update
}
