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

type CreateLiabilityRequest struct {
	Name           string               `json:"name"`
	Type           models.LiabilityType `json:"type"`
	Amount         float64              `json:"amount"`
	Currency       string               `json:"currency"`
	InterestRate   *float64             `json:"interest_rate"`
	MinimumPayment *float64             `json:"minimum_payment"`
	DueDate        *time.Time           `json:"due_date"`
	StartDate      time.Time            `json:"start_date"`
	EndDate        *time.Time           `json:"end_date"`
	Description    string               `json:"description"`
	IsActive       *bool                `json:"is_active"`
}

func CreateLiability(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req CreateLiabilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Get().Error("error binding JSON", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// is_active defaults to true; the zero value of bool would silently
	// close a liability the caller never asked to close.
	isActive := models.NewLiabilityActive
	if req.IsActive != nil {
		isActive = *req.IsActive
	}

	liability := &models.Liability{
		UserID:         userID,
		Name:           req.Name,
		Type:           req.Type,
		Amount:         req.Amount,
		Currency:       req.Currency,
		InterestRate:   req.InterestRate,
		MinimumPayment: req.MinimumPayment,
		DueDate:        req.DueDate,
		StartDate:      req.StartDate,
		EndDate:        req.EndDate,
		Description:    req.Description,
		IsActive:       isActive,
	}

	if err := mongodb.CreateLiability(c, liability); err != nil {
		logger.Get().Error("error creating liability",
			zap.String("user_id", userID),
			zap.Error(err))
		c.JSON(statusForError(err), gin.H{"error": err.Error()})
		return
	}

	logger.Get().Info("liability created",
		zap.String("user_id", userID),
		zap.String("liability_id", liability.ID.Hex()))
	c.JSON(http.StatusCreated, liability)
}

func GetLiability(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	id, ok := recordID(c)
	if !ok {
		return
	}

	liability, err := mongodb.GetLiabilityByID(c, userID, id)
	if err != nil {
		logger.Get().Error("error fetching liability",
			zap.String("user_id", userID),
			zap.String("liability_id", id.Hex()),
			zap.Error(err))
		c.JSON(statusForError(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, liability)
}

func ListLiabilities(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var filter models.LiabilityFilter
	if v := c.Query("type"); v != "" {
		t := models.LiabilityType(v)
		if !t.Valid() {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid liability type filter"})
			return
		}
		filter.Type = &t
	}
	if v := c.Query("is_active"); v != "" {
		active, err := strconv.ParseBool(v)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid is_active filter"})
			return
		}
		filter.IsActive = &active
	}

	liabilities, err := mongodb.ListLiabilities(c, userID, filter)
	if err != nil {
		logger.Get().Error("error fetching liabilities",
			zap.String("user_id", userID),
			zap.Error(err))
		c.JSON(statusForError(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, liabilities)
}

func UpdateLiability(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	id, ok := recordID(c)
	if !ok {
		return
	}

	var update models.LiabilityUpdate
	if err := c.ShouldBindJSON(&update); err != nil {
		logger.Get().Error("error binding JSON", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	liability, err := mongodb.UpdateLiability(c, userID, id, &update)
	if err != nil {
		logger.Get().Error("error updating liability",
			zap.String("user_id", userID),
			zap.String("liability_id", id.Hex()),
			zap.Error(err))
		c.JSON(statusForError(err), gin.H{"error": err.Error()})
		return
	}

	logger.Get().Info("liability updated",
		zap.String("user_id", userID),
		zap.String("liability_id", id.Hex()))
	c.JSON(http.StatusOK, liability)
}

func DeleteLiability(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	id, ok := recordID(c)
	if !ok {
		return
	}

	if err := mongodb.DeleteLiability(c, userID, id); err != nil {
		logger.Get().Error("error deleting liability",
			zap.String("user_id", userID),
			zap.String("liability_id", id.Hex()),
			zap.Error(err))
		c.JSON(statusForError(err), gin.H{"error": err.Error()})
		return
	}

	logger.Get().Info("liability deleted",
		zap.String("user_id", userID),
		zap.String("liability_id", id.Hex()))
	c.JSON(http.StatusOK, gin.H{"message": "Liability deleted successfully"})
}
