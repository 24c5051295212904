package models

import (
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

type LiabilityType string

const (
	LiabilityTypeLoan       LiabilityType = "loan"
	LiabilityTypeCreditCard LiabilityType = "credit_card"
	LiabilityTypeMortgage   LiabilityType = "mortgage"
	LiabilityTypeOther      LiabilityType = "other"
)

func (t LiabilityType) Valid() bool {
	switch t {
	case LiabilityTypeLoan, LiabilityTypeCreditCard, LiabilityTypeMortgage, LiabilityTypeOther:
		return true
	}
	return false
}

// LiabilityPayment is one entry in a liability's append-only payment
// history: the amount paid and the balance left after it.
type LiabilityPayment struct {
	Date    time.Time `json:"date" bson:"date"`
	Amount  float64   `json:"amount" bson:"amount"`
	Payment float64   `json:"payment" bson:"payment"`
	Notes   string    `json:"notes,omitempty" bson:"notes,omitempty"`
}

func (p *LiabilityPayment) Validate() error {
	if p.Date.IsZero() {
		return requiredField("history.date")
	}
	return nil
}

// Liability is a single debt document. Settled debts keep their history and
// are flipped inactive instead of being deleted.
type Liability struct {
	ID             bson.ObjectID      `json:"id" bson:"_id,omitempty"`
	UserID         string             `json:"user_id" bson:"user_id"`
	Name           string             `json:"name" bson:"name"`
	Type           LiabilityType      `json:"type" bson:"type"`
	Amount         float64            `json:"amount" bson:"amount"`
	Currency       string             `json:"currency" bson:"currency"`
	InterestRate   *float64           `json:"interest_rate" bson:"interest_rate"`
	MinimumPayment *float64           `json:"minimum_payment" bson:"minimum_payment"`
	DueDate        *time.Time         `json:"due_date,omitempty" bson:"due_date,omitempty"`
	StartDate      time.Time          `json:"start_date" bson:"start_date"`
	EndDate        *time.Time         `json:"end_date,omitempty" bson:"end_date,omitempty"`
	Description    string             `json:"description,omitempty" bson:"description,omitempty"`
	IsActive       bool               `json:"is_active" bson:"is_active"`
	History        []LiabilityPayment `json:"history" bson:"history"`
	CreatedAt      time.Time          `json:"created_at" bson:"created_at"`
	UpdatedAt      time.Time          `json:"updated_at" bson:"updated_at"`
}

// NewLiabilityActive is the documented default for the active flag. The
// zero value of bool is false, so creation paths set it explicitly unless
// the request said otherwise.
const NewLiabilityActive = true

func (l *Liability) ApplyDefaults() {
	l.Name = strings.TrimSpace(l.Name)
	if l.Currency == "" {
		l.Currency = "USD"
	}
	if l.History == nil {
		l.History = []LiabilityPayment{}
	}
}

func (l *Liability) Validate() error {
	if l.UserID == "" {
		return requiredField("user_id")
	}
	if l.Name == "" {
		return requiredField("name")
	}
	if !l.Type.Valid() {
		return invalidField("type", "must be one of loan, credit_card, mortgage, other")
	}
	if l.Amount < 0 {
		return negativeField("amount")
	}
	if l.InterestRate == nil {
		return requiredField("interest_rate")
	}
	if *l.InterestRate < 0 {
		return negativeField("interest_rate")
	}
	if l.MinimumPayment == nil {
		return requiredField("minimum_payment")
	}
	if *l.MinimumPayment < 0 {
		return negativeField("minimum_payment")
	}
	if l.StartDate.IsZero() {
		return requiredField("start_date")
	}
	for i := range l.History {
		if err := l.History[i].Validate(); err != nil {
			return err
		}
	}
	return nil
}

// LiabilityUpdate is a partial change set, same contract as AssetUpdate.
type LiabilityUpdate struct {
	Name           *string           `json:"name,omitempty"`
	Type           *LiabilityType    `json:"type,omitempty"`
	Amount         *float64          `json:"amount,omitempty"`
	Currency       *string           `json:"currency,omitempty"`
	InterestRate   *float64          `json:"interest_rate,omitempty"`
	MinimumPayment *float64          `json:"minimum_payment,omitempty"`
	DueDate        *time.Time        `json:"due_date,omitempty"`
	EndDate        *time.Time        `json:"end_date,omitempty"`
	Description    *string           `json:"description,omitempty"`
	IsActive       *bool             `json:"is_active,omitempty"`
	AppendPayment  *LiabilityPayment `json:"append_payment,omitempty"`
}

func (u *LiabilityUpdate) Validate() error {
	if u.Name != nil && strings.TrimSpace(*u.Name) == "" {
		return requiredField("name")
	}
	if u.Type != nil && !u.Type.Valid() {
		return invalidField("type", "must be one of loan, credit_card, mortgage, other")
	}
	if u.Amount != nil && *u.Amount < 0 {
		return negativeField("amount")
	}
	if u.InterestRate != nil && *u.InterestRate < 0 {
		return negativeField("interest_rate")
	}
	if u.MinimumPayment != nil && *u.MinimumPayment < 0 {
		return negativeField("minimum_payment")
	}
	if u.AppendPayment != nil {
		if err := u.AppendPayment.Validate(); err != nil {
			return err
		}
	}
	return nil
}

func (u *LiabilityUpdate) Empty() bool {
	return u.Name == nil && u.Type == nil && u.Amount == nil && u.Currency == nil &&
		u.InterestRate == nil && u.MinimumPayment == nil && u.DueDate == nil &&
		u.EndDate == nil && u.Description == nil && u.IsActive == nil && u.AppendPayment == nil
}

type LiabilityFilter struct {
	Type     *LiabilityType
	IsActive *bool
}
