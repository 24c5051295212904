package models

import (
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

type AssetType string

const (
	AssetTypeCash       AssetType = "cash"
	AssetTypeInvestment AssetType = "investment"
	AssetTypeProperty   AssetType = "property"
	AssetTypeVehicle    AssetType = "vehicle"
	AssetTypeOther      AssetType = "other"
)

func (t AssetType) Valid() bool {
	switch t {
	case AssetTypeCash, AssetTypeInvestment, AssetTypeProperty, AssetTypeVehicle, AssetTypeOther:
		return true
	}
	return false
}

// AssetValuation is one entry in an asset's append-only valuation history.
// Entries are only ever pushed onto the end, never removed or reordered.
type AssetValuation struct {
	Date  time.Time `json:"date" bson:"date"`
	Value float64   `json:"value" bson:"value"`
	Notes string    `json:"notes,omitempty" bson:"notes,omitempty"`
}

func (v *AssetValuation) Validate() error {
	if v.Date.IsZero() {
		return requiredField("history.date")
	}
	return nil
}

// Asset is a single asset document. The valuation history lives inline so
// deleting the asset removes it in the same write.
type Asset struct {
	ID               bson.ObjectID    `json:"id" bson:"_id,omitempty"`
	UserID           string           `json:"user_id" bson:"user_id"`
	Name             string           `json:"name" bson:"name"`
	Type             AssetType        `json:"type" bson:"type"`
	Value            float64          `json:"value" bson:"value"`
	Currency         string           `json:"currency" bson:"currency"`
	Description      string           `json:"description,omitempty" bson:"description,omitempty"`
	PurchaseDate     *time.Time       `json:"purchase_date,omitempty" bson:"purchase_date,omitempty"`
	PurchasePrice    *float64         `json:"purchase_price,omitempty" bson:"purchase_price,omitempty"`
	AppreciationRate float64          `json:"appreciation_rate" bson:"appreciation_rate"`
	IsLiquid         bool             `json:"is_liquid" bson:"is_liquid"`
	History          []AssetValuation `json:"history" bson:"history"`
	CreatedAt        time.Time        `json:"created_at" bson:"created_at"`
	UpdatedAt        time.Time        `json:"updated_at" bson:"updated_at"`
}

// ApplyDefaults fills the documented defaults on a candidate record before
// validation. Name is trimmed here so "  " fails the required check.
func (a *Asset) ApplyDefaults() {
	a.Name = strings.TrimSpace(a.Name)
	if a.Currency == "" {
		a.Currency = "USD"
	}
	if a.History == nil {
		a.History = []AssetValuation{}
	}
}

func (a *Asset) Validate() error {
	if a.UserID == "" {
		return requiredField("user_id")
	}
	if a.Name == "" {
		return requiredField("name")
	}
	if !a.Type.Valid() {
		return invalidField("type", "must be one of cash, investment, property, vehicle, other")
	}
	if a.Value < 0 {
		return negativeField("value")
	}
	if a.PurchasePrice != nil && *a.PurchasePrice < 0 {
		return negativeField("purchase_price")
	}
	for i := range a.History {
		if err := a.History[i].Validate(); err != nil {
			return err
		}
	}
	return nil
}

// AssetUpdate is a partial change set. Nil fields are left untouched;
// AppendValuation, when set, is pushed onto the history.
type AssetUpdate struct {
	Name             *string         `json:"name,omitempty"`
	Type             *AssetType      `json:"type,omitempty"`
	Value            *float64        `json:"value,omitempty"`
	Currency         *string         `json:"currency,omitempty"`
	Description      *string         `json:"description,omitempty"`
	PurchaseDate     *time.Time      `json:"purchase_date,omitempty"`
	PurchasePrice    *float64        `json:"purchase_price,omitempty"`
	AppreciationRate *float64        `json:"appreciation_rate,omitempty"`
	IsLiquid         *bool           `json:"is_liquid,omitempty"`
	AppendValuation  *AssetValuation `json:"append_valuation,omitempty"`
}

func (u *AssetUpdate) Validate() error {
	if u.Name != nil && strings.TrimSpace(*u.Name) == "" {
		return requiredField("name")
	}
	if u.Type != nil && !u.Type.Valid() {
		return invalidField("type", "must be one of cash, investment, property, vehicle, other")
	}
	if u.Value != nil && *u.Value < 0 {
		return negativeField("value")
	}
	if u.PurchasePrice != nil && *u.PurchasePrice < 0 {
		return negativeField("purchase_price")
	}
	if u.AppendValuation != nil {
		if err := u.AppendValuation.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// Empty reports whether the update would change nothing.
func (u *AssetUpdate) Empty() bool {
	return u.Name == nil && u.Type == nil && u.Value == nil && u.Currency == nil &&
		u.Description == nil && u.PurchaseDate == nil && u.PurchasePrice == nil &&
		u.AppreciationRate == nil && u.IsLiquid == nil && u.AppendValuation == nil
}

// AssetFilter narrows a per-user listing. Nil fields match everything.
type AssetFilter struct {
	Type     *AssetType
	IsLiquid *bool
}
