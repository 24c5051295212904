package handlers

import (
	"net/http"
	"time"

	"networth-tracker/api/logger"
	"networth-tracker/api/models"
	"networth-tracker/api/mongodb"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type CreateSnapshotRequest struct {
	Date              time.Time               `json:"date"`
	TotalAssets       float64                 `json:"total_assets"`
	TotalLiabilities  float64                 `json:"total_liabilities"`
	NetWorth          float64                 `json:"net_worth"`
	AssetsByType      []models.CategoryAmount `json:"assets_by_type"`
	LiabilitiesByType []models.CategoryAmount `json:"liabilities_by_type"`
	Currency          string                  `json:"currency"`
	Notes             string                  `json:"notes"`
}

// CreateNetWorthSnapshot is the write path for the external aggregation
// job. Snapshots are immutable, so there is no matching update handler.
func CreateNetWorthSnapshot(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req CreateSnapshotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Get().Error("error binding JSON", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	snapshot := &models.NetWorthSnapshot{
		UserID:            userID,
		Date:              req.Date,
		TotalAssets:       req.TotalAssets,
		TotalLiabilities:  req.TotalLiabilities,
		NetWorth:          req.NetWorth,
		AssetsByType:      req.AssetsByType,
		LiabilitiesByType: req.LiabilitiesByType,
		Currency:          req.Currency,
		Notes:             req.Notes,
	}

	if err := mongodb.CreateNetWorthSnapshot(c, snapshot); err != nil {
		logger.Get().Error("error creating net worth snapshot",
			zap.String("user_id", userID),
			zap.Error(err))
		c.JSON(statusForError(err), gin.H{"error": err.Error()})
		return
	}

	logger.Get().Info("net worth snapshot created",
		zap.String("user_id", userID),
		zap.String("snapshot_id", snapshot.ID.Hex()))
	c.JSON(http.StatusCreated, snapshot)
}

func GetNetWorthSnapshot(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	id, ok := recordID(c)
	if !ok {
		return
	}

	snapshot, err := mongodb.GetNetWorthSnapshotByID(c, userID, id)
	if err != nil {
		logger.Get().Error("error fetching net worth snapshot",
			zap.String("user_id", userID),
			zap.String("snapshot_id", id.Hex()),
			zap.Error(err))
		c.JSON(statusForError(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, snapshot)
}

// ListNetWorthHistory returns the user's snapshot timeline, most recent
// first unless ?order=asc is given.
func ListNetWorthHistory(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	order := models.SortOrder(c.DefaultQuery("order", string(models.SortDescending)))
	if order != models.SortAscending && order != models.SortDescending {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid order, must be asc or desc"})
		return
	}

	snapshots, err := mongodb.ListNetWorthHistory(c, userID, order)
	if err != nil {
		logger.Get().Error("error fetching net worth history",
			zap.String("user_id", userID),
			zap.Error(err))
		c.JSON(statusForError(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, snapshots)
}

func DeleteNetWorthSnapshot(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	id, ok := recordID(c)
	if !ok {
		return
	}

	if err := mongodb.DeleteNetWorthSnapshot(c, userID, id); err != nil {
		logger.Get().Error("error deleting net worth snapshot",
			zap.String("user_id", userID),
			zap.String("snapshot_id", id.Hex()),
			zap.Error(err))
		c.JSON(statusForError(err), gin.H{"error": err.Error()})
		return
	}

	logger.Get().Info("net worth snapshot deleted",
		zap.String("user_id", userID),
		zap.String("snapshot_id", id.Hex()))
	c.JSON(http.StatusOK, gin.H{"message": "Snapshot deleted successfully"})
}
