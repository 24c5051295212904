package mongodb

import (
	"testing"
	"time"

	"networth-tracker/api/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"
)

func TestAssetListFilter(t *testing.T) {
	liquid := true
	investment := models.AssetTypeInvestment

	tests := []struct {
		name   string
		filter models.AssetFilter
		want   bson.M
	}{
		{
			name:   "user only",
			filter: models.AssetFilter{},
			want:   bson.M{"user_id": "u1"},
		},
		{
			name:   "by type",
			filter: models.AssetFilter{Type: &investment},
			want:   bson.M{"user_id": "u1", "type": models.AssetTypeInvestment},
		},
		{
			name:   "by liquidity",
			filter: models.AssetFilter{IsLiquid: &liquid},
			want:   bson.M{"user_id": "u1", "is_liquid": true},
		},
		{
			name:   "by type and liquidity",
			filter: models.AssetFilter{Type: &investment, IsLiquid: &liquid},
			want:   bson.M{"user_id": "u1", "type": models.AssetTypeInvestment, "is_liquid": true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, assetListFilter("u1", tt.filter))
		})
	}
}

func TestAssetUpdateDocument_SetsOnlyProvidedFields(t *testing.T) {
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	name := "  Brokerage  "
	value := 2500.0

	doc := assetUpdateDocument(&models.AssetUpdate{Name: &name, Value: &value}, now)

	set, ok := doc["$set"].(bson.M)
	require.True(t, ok)
	assert.Equal(t, bson.M{
		"updated_at": now,
		"name":       "Brokerage",
		"value":      2500.0,
	}, set)
	assert.NotContains(t, doc, "$push")
}

func TestAssetUpdateDocument_AppendsValuation(t *testing.T) {
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	entry := models.AssetValuation{
		Date:  time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		Value: 1200,
	}

	doc := assetUpdateDocument(&models.AssetUpdate{AppendValuation: &entry}, now)

	// Top-level value stays untouched unless explicitly updated
	set, ok := doc["$set"].(bson.M)
	require.True(t, ok)
	assert.Equal(t, bson.M{"updated_at": now}, set)

	push, ok := doc["$push"].(bson.M)
	require.True(t, ok)
	assert.Equal(t, bson.M{"history": entry}, push)
}

func TestAssetUpdateDocument_AllFields(t *testing.T) {
	now := time.Now().UTC()
	name := "House"
	assetType := models.AssetTypeProperty
	value := 350000.0
	currency := "EUR"
	description := "Primary residence"
	purchaseDate := time.Date(2020, 7, 15, 0, 0, 0, 0, time.UTC)
	purchasePrice := 300000.0
	rate := 2.5
	liquid := false

	doc := assetUpdateDocument(&models.AssetUpdate{
		Name:             &name,
		Type:             &assetType,
		Value:            &value,
		Currency:         &currency,
		Description:      &description,
		PurchaseDate:     &purchaseDate,
		PurchasePrice:    &purchasePrice,
		AppreciationRate: &rate,
		IsLiquid:         &liquid,
	}, now)

	set, ok := doc["$set"].(bson.M)
	require.True(t, ok)
	assert.Equal(t, bson.M{
		"updated_at":        now,
		"name":              "House",
		"type":              models.AssetTypeProperty,
		"value":             350000.0,
		"currency":          "EUR",
		"description":       "Primary residence",
		"purchase_date":     purchaseDate,
		"purchase_price":    300000.0,
		"appreciation_rate": 2.5,
		"is_liquid":         false,
	}, set)
}
