package handlers

import (
	"net/http"

	"networth-tracker/api/logger"
	"networth-tracker/api/models"
	"networth-tracker/api/mongodb"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// GetNotificationSettings never 404s: a user with no settings record gets
// the default document materialized on first read.
func GetNotificationSettings(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	settings, err := mongodb.GetOrCreateNotificationSettings(c, userID)
	if err != nil {
		logger.Get().Error("error fetching notification settings",
			zap.String("user_id", userID),
			zap.Error(err))
		c.JSON(statusForError(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, settings)
}

type CreateNotificationSettingsRequest struct {
	Email             *bool                `json:"email"`
	Push              *bool                `json:"push"`
	SMS               *bool                `json:"sms"`
	BudgetAlerts      *bool                `json:"budget_alerts"`
	BillReminders     *bool                `json:"bill_reminders"`
	GoalUpdates       *bool                `json:"goal_updates"`
	DebtReminders     *bool                `json:"debt_reminders"`
	TaxDeadlines      *bool                `json:"tax_deadlines"`
	InvestmentUpdates *bool                `json:"investment_updates"`
	CustomAlerts      []models.CustomAlert `json:"custom_alerts"`
}

// CreateNotificationSettings explicitly creates the one settings record a
// user may have, starting from the defaults for any toggle not supplied.
// A second create for the same user is a 409.
func CreateNotificationSettings(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req CreateNotificationSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Get().Error("error binding JSON", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	settings := models.DefaultNotificationSettings(userID)
	applyToggle(&settings.Email, req.Email)
	applyToggle(&settings.Push, req.Push)
	applyToggle(&settings.SMS, req.SMS)
	applyToggle(&settings.BudgetAlerts, req.BudgetAlerts)
	applyToggle(&settings.BillReminders, req.BillReminders)
	applyToggle(&settings.GoalUpdates, req.GoalUpdates)
	applyToggle(&settings.DebtReminders, req.DebtReminders)
	applyToggle(&settings.TaxDeadlines, req.TaxDeadlines)
	applyToggle(&settings.InvestmentUpdates, req.InvestmentUpdates)
	if req.CustomAlerts != nil {
		settings.CustomAlerts = req.CustomAlerts
	}

	if err := mongodb.CreateNotificationSettings(c, settings); err != nil {
		logger.Get().Error("error creating notification settings",
			zap.String("user_id", userID),
			zap.Error(err))
		c.JSON(statusForError(err), gin.H{"error": err.Error()})
		return
	}

	logger.Get().Info("notification settings created",
		zap.String("user_id", userID))
	c.JSON(http.StatusCreated, settings)
}

func UpdateNotificationSettings(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var update models.NotificationSettingsUpdate
	if err := c.ShouldBindJSON(&update); err != nil {
		logger.Get().Error("error binding JSON", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	settings, err := mongodb.UpdateNotificationSettings(c, userID, &update)
	if err != nil {
		logger.Get().Error("error updating notification settings",
			zap.String("user_id", userID),
			zap.Error(err))
		c.JSON(statusForError(err), gin.H{"error": err.Error()})
		return
	}

	logger.Get().Info("notification settings updated",
		zap.String("user_id", userID))
	c.JSON(http.StatusOK, settings)
}

// DeleteNotificationSettings drops the record entirely; the next fetch
// falls back to materializing the defaults again.
func DeleteNotificationSettings(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	if err := mongodb.DeleteNotificationSettings(c, userID); err != nil {
		logger.Get().Error("error deleting notification settings",
			zap.String("user_id", userID),
			zap.Error(err))
		c.JSON(statusForError(err), gin.H{"error": err.Error()})
		return
	}

	logger.Get().Info("notification settings deleted",
		zap.String("user_id", userID))
	c.JSON(http.StatusOK, gin.H{"message": "Notification settings deleted successfully"})
}

func applyToggle(dst *bool, src *bool) {
	if src != nil {
		*dst = *src
	}
}
