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

// GetOrCreateNotificationSettings fetches a user's settings, materializing
// the default document if none exists yet. The upsert makes the read safe
// to race: concurrent callers converge on the same single document thanks
// to the unique index on user_id.
func GetOrCreateNotificationSettings(ctx context.Context, userID string) (*models.NotificationSettings, error) {
	filter := bson.M{"user_id": userID}
	update := bson.M{"$setOnInsert": models.DefaultNotificationSettings(userID)}
	opts := options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After)

	var settings models.NotificationSettings
	err := collection(NotificationCollection).FindOneAndUpdate(ctx, filter, update, opts).Decode(&settings)
	if err != nil {
		return nil, fmt.Errorf("error fetching notification settings: %w", err)
	}
	return &settings, nil
}

// CreateNotificationSettings inserts an explicit settings record. A second
// insert for the same user trips the unique index and surfaces ErrConflict;
// callers should fall back to GetOrCreateNotificationSettings.
func CreateNotificationSettings(ctx context.Context, settings *models.NotificationSettings) error {
	if settings.CustomAlerts == nil {
		settings.CustomAlerts = []models.CustomAlert{}
	}
	if err := settings.Validate(); err != nil {
		return err
	}

	now := time.Now().UTC()
	settings.ID = bson.NewObjectID()
	settings.CreatedAt = now
	settings.UpdatedAt = now

	if _, err := collection(NotificationCollection).InsertOne(ctx, settings); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return ErrConflict
		}
		return fmt.Errorf("error creating notification settings: %w", err)
	}
	return nil
}

// UpdateNotificationSettings flips toggles and/or appends a custom alert.
func UpdateNotificationSettings(ctx context.Context, userID string, update *models.NotificationSettingsUpdate) (*models.NotificationSettings, error) {
	if err := update.Validate(); err != nil {
		return nil, err
	}

	filter := bson.M{"user_id": userID}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var settings models.NotificationSettings
	err := collection(NotificationCollection).
		FindOneAndUpdate(ctx, filter, notificationUpdateDocument(update, time.Now().UTC()), opts).
		Decode(&settings)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("error updating notification settings: %w", err)
	}
	return &settings, nil
}

func DeleteNotificationSettings(ctx context.Context, userID string) error {
	result, err := collection(NotificationCollection).DeleteOne(ctx, bson.M{"user_id": userID})
	if err != nil {
		return fmt.Errorf("error deleting notification settings: %w", err)
	}
	if result.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func notificationUpdateDocument(u *models.NotificationSettingsUpdate, now time.Time) bson.M {
	set := bson.M{"updated_at": now}
	if u.Email != nil {
		set["email"] = *u.Email
	}
	if u.Push != nil {
		set["push"] = *u.Push
	}
	if u.SMS != nil {
		set["sms"] = *u.SMS
	}
	if u.BudgetAlerts != nil {
		set["budget_alerts"] = *u.BudgetAlerts
	}
	if u.BillReminders != nil {
		set["bill_reminders"] = *u.BillReminders
	}
	if u.GoalUpdates != nil {
		set["goal_updates"] = *u.GoalUpdates
	}
	if u.DebtReminders != nil {
		set["debt_reminders"] = *u.DebtReminders
	}
	if u.TaxDeadlines != nil {
		set["tax_deadlines"] = *u.TaxDeadlines
	}
	if u.InvestmentUpdates != nil {
		set["investment_updates"] = *u.InvestmentUpdates
	}

	update := bson.M{"$set": set}
	if u.AppendAlert != nil {
		update["$push"] = bson.M{"custom_alerts": *u.AppendAlert}
	}
	return update
}
