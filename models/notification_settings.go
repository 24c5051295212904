package models

import (
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// CustomAlert is a user-defined threshold rule beyond the fixed toggles.
type CustomAlert struct {
	Type      string   `json:"type" bson:"type"`
	Threshold *float64 `json:"threshold" bson:"threshold"`
	Enabled   bool     `json:"enabled" bson:"enabled"`
}

func (a *CustomAlert) Validate() error {
	if strings.TrimSpace(a.Type) == "" {
		return requiredField("custom_alerts.type")
	}
	if a.Threshold == nil {
		return requiredField("custom_alerts.threshold")
	}
	return nil
}

// NotificationSettings holds a user's alert configuration. Exactly one
// document exists per user, enforced by a unique index on user_id; absence
// means "use defaults" and reads materialize the default document.
type NotificationSettings struct {
	ID                bson.ObjectID `json:"id" bson:"_id,omitempty"`
	UserID            string        `json:"user_id" bson:"user_id"`
	Email             bool          `json:"email" bson:"email"`
	Push              bool          `json:"push" bson:"push"`
	SMS               bool          `json:"sms" bson:"sms"`
	BudgetAlerts      bool          `json:"budget_alerts" bson:"budget_alerts"`
	BillReminders     bool          `json:"bill_reminders" bson:"bill_reminders"`
	GoalUpdates       bool          `json:"goal_updates" bson:"goal_updates"`
	DebtReminders     bool          `json:"debt_reminders" bson:"debt_reminders"`
	TaxDeadlines      bool          `json:"tax_deadlines" bson:"tax_deadlines"`
	InvestmentUpdates bool          `json:"investment_updates" bson:"investment_updates"`
	CustomAlerts      []CustomAlert `json:"custom_alerts" bson:"custom_alerts"`
	CreatedAt         time.Time     `json:"created_at" bson:"created_at"`
	UpdatedAt         time.Time     `json:"updated_at" bson:"updated_at"`
}

// DefaultNotificationSettings returns the documented defaults for a user:
// email and push on, SMS off, every alert category on, no custom alerts.
func DefaultNotificationSettings(userID string) *NotificationSettings {
	now := time.Now().UTC()
	return &NotificationSettings{
		UserID:            userID,
		Email:             true,
		Push:              true,
		SMS:               false,
		BudgetAlerts:      true,
		BillReminders:     true,
		GoalUpdates:       true,
		DebtReminders:     true,
		TaxDeadlines:      true,
		InvestmentUpdates: true,
		CustomAlerts:      []CustomAlert{},
		CreatedAt:         now,
		UpdatedAt:         now,
	}
}

func (s *NotificationSettings) Validate() error {
	if s.UserID == "" {
		return requiredField("user_id")
	}
	for i := range s.CustomAlerts {
		if err := s.CustomAlerts[i].Validate(); err != nil {
			return err
		}
	}
	return nil
}

// NotificationSettingsUpdate flips toggles and/or appends custom alerts.
// Existing custom alerts are never removed or reordered through this path.
type NotificationSettingsUpdate struct {
	Email             *bool        `json:"email,omitempty"`
	Push              *bool        `json:"push,omitempty"`
	SMS               *bool        `json:"sms,omitempty"`
	BudgetAlerts      *bool        `json:"budget_alerts,omitempty"`
	BillReminders     *bool        `json:"bill_reminders,omitempty"`
	GoalUpdates       *bool        `json:"goal_updates,omitempty"`
	DebtReminders     *bool        `json:"debt_reminders,omitempty"`
	TaxDeadlines      *bool        `json:"tax_deadlines,omitempty"`
	InvestmentUpdates *bool        `json:"investment_updates,omitempty"`
	AppendAlert       *CustomAlert `json:"append_alert,omitempty"`
}

func (u *NotificationSettingsUpdate) Validate() error {
	if u.AppendAlert != nil {
		return u.AppendAlert.Validate()
	}
	return nil
}

func (u *NotificationSettingsUpdate) Empty() bool {
	return u.Email == nil && u.Push == nil && u.SMS == nil &&
		u.BudgetAlerts == nil && u.BillReminders == nil && u.GoalUpdates == nil &&
		u.DebtReminders == nil && u.TaxDeadlines == nil && u.InvestmentUpdates == nil &&
		u.AppendAlert == nil
}
