package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validAsset() Asset {
	return Asset{
		UserID: "u1",
		Name:   "Checking",
		Type:   AssetTypeCash,
		Value:  1000,
	}
}

func TestAsset_ApplyDefaults(t *testing.T) {
	asset := validAsset()
	asset.Name = "  Checking  "
	asset.ApplyDefaults()

	assert.Equal(t, "Checking", asset.Name)
	assert.Equal(t, "USD", asset.Currency)
	assert.NotNil(t, asset.History)
	assert.Len(t, asset.History, 0)
	assert.Equal(t, float64(0), asset.AppreciationRate)
	assert.False(t, asset.IsLiquid)
}

func TestAsset_ApplyDefaults_KeepsExplicitCurrency(t *testing.T) {
	asset := validAsset()
	asset.Currency = "EUR"
	asset.ApplyDefaults()

	assert.Equal(t, "EUR", asset.Currency)
}

func TestAsset_Validate(t *testing.T) {
	price := -10.0
	tests := []struct {
		name      string
		mutate    func(*Asset)
		wantField string
	}{
		{
			name:   "valid asset passes",
			mutate: func(a *Asset) {},
		},
		{
			name:      "missing user fails",
			mutate:    func(a *Asset) { a.UserID = "" },
			wantField: "user_id",
		},
		{
			name:      "blank name fails",
			mutate:    func(a *Asset) { a.Name = "" },
			wantField: "name",
		},
		{
			name:      "unknown type fails",
			mutate:    func(a *Asset) { a.Type = "crypto" },
			wantField: "type",
		},
		{
			name:      "empty type fails",
			mutate:    func(a *Asset) { a.Type = "" },
			wantField: "type",
		},
		{
			name:      "negative value fails",
			mutate:    func(a *Asset) { a.Value = -1 },
			wantField: "value",
		},
		{
			name:      "negative purchase price fails",
			mutate:    func(a *Asset) { a.PurchasePrice = &price },
			wantField: "purchase_price",
		},
		{
			name: "history entry without date fails",
			mutate: func(a *Asset) {
				a.History = []AssetValuation{{Value: 100}}
			},
			wantField: "history.date",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			asset := validAsset()
			asset.ApplyDefaults()
			tt.mutate(&asset)

			err := asset.Validate()
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

func TestAssetType_Valid(t *testing.T) {
	for _, valid := range []AssetType{AssetTypeCash, AssetTypeInvestment, AssetTypeProperty, AssetTypeVehicle, AssetTypeOther} {
		assert.True(t, valid.Valid(), string(valid))
	}
	assert.False(t, AssetType("stock").Valid())
	assert.False(t, AssetType("").Valid())
}

func TestAssetUpdate_Validate(t *testing.T) {
	blank := "   "
	badType := AssetType("boat")
	negative := -5.0

	tests := []struct {
		name      string
		update    AssetUpdate
		wantField string
	}{
		{
			name:   "empty update passes",
			update: AssetUpdate{},
		},
		{
			name:      "blank name fails",
			update:    AssetUpdate{Name: &blank},
			wantField: "name",
		},
		{
			name:      "unknown type fails",
			update:    AssetUpdate{Type: &badType},
			wantField: "type",
		},
		{
			name:      "negative value fails",
			update:    AssetUpdate{Value: &negative},
			wantField: "value",
		},
		{
			name:      "negative purchase price fails",
			update:    AssetUpdate{PurchasePrice: &negative},
			wantField: "purchase_price",
		},
		{
			name:      "valuation without date fails",
			update:    AssetUpdate{AppendValuation: &AssetValuation{Value: 1200}},
			wantField: "history.date",
		},
		{
			name: "valuation with date passes",
			update: AssetUpdate{
				AppendValuation: &AssetValuation{Date: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), Value: 1200},
			},
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

func TestAssetUpdate_Empty(t *testing.T) {
	assert.True(t, (&AssetUpdate{}).Empty())

	value := 15.0
	assert.False(t, (&AssetUpdate{Value: &value}).Empty())

	entry := AssetValuation{Date: time.Now()}
	assert.False(t, (&AssetUpdate{AppendValuation: &entry}).Empty())
}
