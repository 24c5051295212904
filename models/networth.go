package models

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// CategoryAmount is one slice of a snapshot breakdown. The type string is
// validated against whichever enum the breakdown belongs to.
type CategoryAmount struct {
	Type   string  `json:"type" bson:"type"`
	Amount float64 `json:"amount" bson:"amount"`
}

// NetWorthSnapshot is an immutable point-in-time aggregate written by the
// external aggregation job. There is no update path; the store only ever
// inserts, reads, and deletes these.
type NetWorthSnapshot struct {
	ID                bson.ObjectID    `json:"id" bson:"_id,omitempty"`
	UserID            string           `json:"user_id" bson:"user_id"`
	Date              time.Time        `json:"date" bson:"date"`
	TotalAssets       float64          `json:"total_assets" bson:"total_assets"`
	TotalLiabilities  float64          `json:"total_liabilities" bson:"total_liabilities"`
	NetWorth          float64          `json:"net_worth" bson:"net_worth"`
	AssetsByType      []CategoryAmount `json:"assets_by_type" bson:"assets_by_type"`
	LiabilitiesByType []CategoryAmount `json:"liabilities_by_type" bson:"liabilities_by_type"`
	Currency          string           `json:"currency" bson:"currency"`
	Notes             string           `json:"notes,omitempty" bson:"notes,omitempty"`
	CreatedAt         time.Time        `json:"created_at" bson:"created_at"`
	UpdatedAt         time.Time        `json:"updated_at" bson:"updated_at"`
}

func (s *NetWorthSnapshot) ApplyDefaults() {
	if s.Date.IsZero() {
		s.Date = time.Now().UTC()
	}
	if s.Currency == "" {
		s.Currency = "USD"
	}
	if s.AssetsByType == nil {
		s.AssetsByType = []CategoryAmount{}
	}
	if s.LiabilitiesByType == nil {
		s.LiabilitiesByType = []CategoryAmount{}
	}
}

// Validate checks totals and breakdowns. It deliberately does not check
// that net_worth equals total_assets minus total_liabilities, nor that the
// breakdowns sum to the totals; that cross-check belongs to consumers.
func (s *NetWorthSnapshot) Validate() error {
	if s.UserID == "" {
		return requiredField("user_id")
	}
	if s.TotalAssets < 0 {
		return negativeField("total_assets")
	}
	if s.TotalLiabilities < 0 {
		return negativeField("total_liabilities")
	}
	for _, b := range s.AssetsByType {
		if !AssetType(b.Type).Valid() {
			return invalidField("assets_by_type.type", "must be one of cash, investment, property, vehicle, other")
		}
		if b.Amount < 0 {
			return negativeField("assets_by_type.amount")
		}
	}
	for _, b := range s.LiabilitiesByType {
		if !LiabilityType(b.Type).Valid() {
			return invalidField("liabilities_by_type.type", "must be one of loan, credit_card, mortgage, other")
		}
		if b.Amount < 0 {
			return negativeField("liabilities_by_type.amount")
		}
	}
	return nil
}

// SortOrder selects the date ordering for snapshot listings.
type SortOrder string

const (
	SortAscending  SortOrder = "asc"
	SortDescending SortOrder = "desc"
)
