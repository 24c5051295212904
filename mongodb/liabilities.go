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

func CreateLiability(ctx context.Context, liability *models.Liability) error {
	liability.ApplyDefaults()
	if err := liability.Validate(); err != nil {
		return err
	}

	now := time.Now().UTC()
	liability.ID = bson.NewObjectID()
	liability.CreatedAt = now
	liability.UpdatedAt = now

	if _, err := collection(LiabilityCollection).InsertOne(ctx, liability); err != nil {
		return fmt.Errorf("error creating liability: %w", err)
	}
	return nil
}

func GetLiabilityByID(ctx context.Context, userID string, id bson.ObjectID) (*models.Liability, error) {
	filter := bson.M{"_id": id, "user_id": userID}

	var liability models.Liability
	err := collection(LiabilityCollection).FindOne(ctx, filter).Decode(&liability)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("error fetching liability: %w", err)
	}
	return &liability, nil
}

func ListLiabilities(ctx context.Context, userID string, filter models.LiabilityFilter) ([]models.Liability, error) {
	cursor, err := collection(LiabilityCollection).Find(ctx, liabilityListFilter(userID, filter))
	if err != nil {
		return nil, fmt.Errorf("error fetching liabilities: %w", err)
	}
	defer cursor.Close(ctx)

	liabilities := []models.Liability{}
	for cursor.Next(ctx) {
		var liability models.Liability
		if err := cursor.Decode(&liability); err != nil {
			return nil, fmt.Errorf("error decoding liability: %w", err)
		}
		liabilities = append(liabilities, liability)
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("cursor error: %w", err)
	}
	return liabilities, nil
}

// UpdateLiability applies a partial change set. Settling a debt is an
// is_active flip through here, which keeps the payment history around.
func UpdateLiability(ctx context.Context, userID string, id bson.ObjectID, update *models.LiabilityUpdate) (*models.Liability, error) {
	if err := update.Validate(); err != nil {
		return nil, err
	}
	if update.Empty() {
		return GetLiabilityByID(ctx, userID, id)
	}

	filter := bson.M{"_id": id, "user_id": userID}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var liability models.Liability
	err := collection(LiabilityCollection).
		FindOneAndUpdate(ctx, filter, liabilityUpdateDocument(update, time.Now().UTC()), opts).
		Decode(&liability)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("error updating liability: %w", err)
	}
	return &liability, nil
}

func DeleteLiability(ctx context.Context, userID string, id bson.ObjectID) error {
	filter := bson.M{"_id": id, "user_id": userID}

	result, err := collection(LiabilityCollection).DeleteOne(ctx, filter)
	if err != nil {
		return fmt.Errorf("error deleting liability: %w", err)
	}
	if result.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func liabilityListFilter(userID string, f models.LiabilityFilter) bson.M {
	filter := bson.M{"user_id": userID}
	if f.Type != nil {
		filter["type"] = *f.Type
	}
	if f.IsActive != nil {
		filter["is_active"] = *f.IsActive
	}
	return filter
}

func liabilityUpdateDocument(u *models.LiabilityUpdate, now time.Time) bson.M {
	set := bson.M{"updated_at": now}
	if u.Name != nil {
		set["name"] = strings.TrimSpace(*u.Name)
	}
	if u.Type != nil {
		set["type"] = *u.Type
	}
	if u.Amount != nil {
		set["amount"] = *u.Amount
	}
	if u.Currency != nil {
		set["currency"] = *u.Currency
	}
	if u.InterestRate != nil {
		set["interest_rate"] = *u.InterestRate
	}
	if u.MinimumPayment != nil {
		set["minimum_payment"] = *u.MinimumPayment
	}
	if u.DueDate != nil {
		set["due_date"] = *u.DueDate
	}
	if u.EndDate != nil {
		set["end_date"] = *u.EndDate
	}
	if u.Description != nil {
		set["description"] = *u.Description
	}
	if u.IsActive != nil {
		set["is_active"] = *u.IsActive
	}

	update := bson.M{"$set": set}
	if u.AppendPayment != nil {
		update["$push"] = bson.M{"history": *u.AppendPayment}
	}
	return update
}
