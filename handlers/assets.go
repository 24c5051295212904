package handlers

import (
	"net/http"
	"strconv"
	"time"

	"networth-tracker/api/logger"
	"networth-tracker/api/models"
	"networth-tracker/api/mongodb"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type CreateAssetRequest struct {
	Name             string           `json:"name"`
	Type             models.AssetType `json:"type"`
	Value            float64          `json:"value"`
	Currency         string           `json:"currency"`
	Description      string           `json:"description"`
	PurchaseDate     *time.Time       `json:"purchase_date"`
	PurchasePrice    *float64         `json:"purchase_price"`
	AppreciationRate float64          `json:"appreciation_rate"`
	IsLiquid         bool             `json:"is_liquid"`
}

func CreateAsset(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req CreateAssetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Get().Error("error binding JSON", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	asset := &models.Asset{
		UserID:           userID,
		Name:             req.Name,
		Type:             req.Type,
		Value:            req.Value,
		Currency:         req.Currency,
		Description:      req.Description,
		PurchaseDate:     req.PurchaseDate,
		PurchasePrice:    req.PurchasePrice,
		AppreciationRate: req.AppreciationRate,
		IsLiquid:         req.IsLiquid,
	}

	if err := mongodb.CreateAsset(c, asset); err != nil {
		logger.Get().Error("error creating asset",
			zap.String("user_id", userID),
			zap.Error(err))
		c.JSON(statusForError(err), gin.H{"error": err.Error()})
		return
	}

	logger.Get().Info("asset created",
		zap.String("user_id", userID),
		zap.String("asset_id", asset.ID.Hex()))
	c.JSON(http.StatusCreated, asset)
}

func GetAsset(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	id, ok := recordID(c)
	if !ok {
		return
	}

	asset, err := mongodb.GetAssetByID(c, userID, id)
	if err != nil {
		logger.Get().Error("error fetching asset",
			zap.String("user_id", userID),
			zap.String("asset_id", id.Hex()),
			zap.Error(err))
		c.JSON(statusForError(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, asset)
}

func ListAssets(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var filter models.AssetFilter
	if v := c.Query("type"); v != "" {
		t := models.AssetType(v)
		if !t.Valid() {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid asset type filter"})
			return
		}
		filter.Type = &t
	}
	if v := c.Query("is_liquid"); v != "" {
		liquid, err := strconv.ParseBool(v)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid is_liquid filter"})
			return
		}
		filter.IsLiquid = &liquid
	}

	assets, err := mongodb.ListAssets(c, userID, filter)
	if err != nil {
		logger.Get().Error("error fetching assets",
			zap.String("user_id", userID),
			zap.Error(err))
		c.JSON(statusForError(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, assets)
}

func UpdateAsset(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	id, ok := recordID(c)
	if !ok {
		return
	}

	var update models.AssetUpdate
	if err := c.ShouldBindJSON(&update); err != nil {
		logger.Get().Error("error binding JSON", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	asset, err := mongodb.UpdateAsset(c, userID, id, &update)
	if err != nil {
		logger.Get().Error("error updating asset",
			zap.String("user_id", userID),
			zap.String("asset_id", id.Hex()),
			zap.Error(err))
		c.JSON(statusForError(err), gin.H{"error": err.Error()})
		return
	}

	logger.Get().Info("asset updated",
		zap.String("user_id", userID),
		zap.String("asset_id", id.Hex()))
	c.JSON(http.StatusOK, asset)
}

func DeleteAsset(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	id, ok := recordID(c)
	if !ok {
		return
	}

	if err := mongodb.DeleteAsset(c, userID, id); err != nil {
		logger.Get().Error("error deleting asset",
			zap.String("user_id", userID),
			zap.String("asset_id", id.Hex()),
			zap.Error(err))
		c.JSON(statusForError(err), gin.H{"error": err.Error()})
		return
	}

	logger.Get().Info("asset deleted",
		zap.String("user_id", userID),
		zap.String("asset_id", id.Hex()))
	c.JSON(http.StatusOK, gin.H{"message": "Asset deleted successfully"})
}
