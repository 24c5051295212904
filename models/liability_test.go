package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validLiability() Liability {
	rate := 5.5
	minPayment := 150.0
	return Liability{
		UserID:         "u1",
		Name:           "Car loan",
		Type:           LiabilityTypeLoan,
		Amount:         12000,
		InterestRate:   &rate,
		MinimumPayment: &minPayment,
		StartDate:      time.Date(2023, 6, 1, 0, 0, 0, 0, time.UTC),
		IsActive:       true,
	}
}

func TestLiability_ApplyDefaults(t *testing.T) {
	liability := validLiability()
	liability.ApplyDefaults()

	assert.Equal(t, "USD", liability.Currency)
	assert.NotNil(t, liability.History)
	assert.Len(t, liability.History, 0)
}

func TestLiability_Validate(t *testing.T) {
	negative := -1.0
	tests := []struct {
		name      string
		mutate    func(*Liability)
		wantField string
	}{
		{
			name:   "valid liability passes",
			mutate: func(l *Liability) {},
		},
		{
			name:      "missing user fails",
			mutate:    func(l *Liability) { l.UserID = "" },
			wantField: "user_id",
		},
		{
			name:      "blank name fails",
			mutate:    func(l *Liability) { l.Name = "" },
			wantField: "name",
		},
		{
			name:      "unknown type fails",
			mutate:    func(l *Liability) { l.Type = "payday" },
			wantField: "type",
		},
		{
			name:      "negative amount fails",
			mutate:    func(l *Liability) { l.Amount = -100 },
			wantField: "amount",
		},
		{
			name:      "missing interest rate fails",
			mutate:    func(l *Liability) { l.InterestRate = nil },
			wantField: "interest_rate",
		},
		{
			name:      "negative interest rate fails",
			mutate:    func(l *Liability) { l.InterestRate = &negative },
			wantField: "interest_rate",
		},
		{
			name:      "missing minimum payment fails",
			mutate:    func(l *Liability) { l.MinimumPayment = nil },
			wantField: "minimum_payment",
		},
		{
			name:      "negative minimum payment fails",
			mutate:    func(l *Liability) { l.MinimumPayment = &negative },
			wantField: "minimum_payment",
		},
		{
			name:      "missing start date fails",
			mutate:    func(l *Liability) { l.StartDate = time.Time{} },
			wantField: "start_date",
		},
		{
			name: "history entry without date fails",
			mutate: func(l *Liability) {
				l.History = []LiabilityPayment{{Amount: 11800, Payment: 200}}
			},
			wantField: "history.date",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			liability := validLiability()
			liability.ApplyDefaults()
			tt.mutate(&liability)

			err := liability.Validate()
			if tt.wantField == "" {
				assert.NoError(t, err)
				return
			}

			require.Error(t, err)
			var vErr *ValidationError
			require.ErrorAs(t, err, &vErr)
			assert.Equal(t, tt.wantField, vErr.Field)
		})
	}
}

func TestLiabilityType_Valid(t *testing.T) {
	for _, valid := range []LiabilityType{LiabilityTypeLoan, LiabilityTypeCreditCard, LiabilityTypeMortgage, LiabilityTypeOther} {
		assert.True(t, valid.Valid(), string(valid))
	}
	assert.False(t, LiabilityType("iou").Valid())
}

func TestLiabilityUpdate_Validate(t *testing.T) {
	negative := -2.5
	badType := LiabilityType("payday")

	tests := []struct {
		name      string
		update    LiabilityUpdate
		wantField string
	}{
		{
			name:   "empty update passes",
			update: LiabilityUpdate{},
		},
		{
			name:      "unknown type fails",
			update:    LiabilityUpdate{Type: &badType},
			wantField: "type",
		},
		{
			name:      "negative amount fails",
			update:    LiabilityUpdate{Amount: &negative},
			wantField: "amount",
		},
		{
			name:      "negative interest rate fails",
			update:    LiabilityUpdate{InterestRate: &negative},
			wantField: "interest_rate",
		},
		{
			name:      "negative minimum payment fails",
			update:    LiabilityUpdate{MinimumPayment: &negative},
			wantField: "minimum_payment",
		},
		{
			name:      "payment without date fails",
			update:    LiabilityUpdate{AppendPayment: &LiabilityPayment{Amount: 11800, Payment: 200}},
			wantField: "history.date",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.update.Validate()
			if tt.wantField == "" {
				assert.NoError(t, err)
				return
			}

			var vErr *ValidationError
			require.ErrorAs(t, err, &vErr)
			assert.Equal(t, tt.wantField, vErr.Field)
		})
	}
}

func TestLiabilityUpdate_Empty(t *testing.T) {
	assert.True(t, (&LiabilityUpdate{}).Empty())

	active := false
	assert.False(t, (&LiabilityUpdate{IsActive: &active}).Empty())
}
