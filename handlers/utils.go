package handlers

import (
	"errors"
	"net/http"

	"networth-tracker/api/logger"
	"networth-tracker/api/models"
	"networth-tracker/api/mongodb"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/v2/bson"
)

// currentUserID pulls the verified user identifier off the request context.
// It writes the 401 response itself so call sites just bail on false.
func currentUserID(c *gin.Context) (string, bool) {
	user, exists := c.Get("user")
	if !exists {
		logger.Get().Error("user not authenticated")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return "", false
	}

	claims, ok := user.(*models.UserClaims)
	if !ok {
		logger.Get().Error("invalid user claims")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid user claims"})
		return "", false
	}

	return claims.Sub, true
}

// recordID parses the :id path parameter. Malformed identifiers are a 400,
// not a 404: they could never resolve to a record.
func recordID(c *gin.Context) (bson.ObjectID, bool) {
	id, err := bson.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid record id"})
		return bson.ObjectID{}, false
	}
	return id, true
}

// statusForError maps store errors onto HTTP statuses: validation failures
// are 400, unresolved identifiers 404, uniqueness violations 409, anything
// else a 500.
func statusForError(err error) int {
	var validationErr *models.ValidationError
	switch {
	case errors.As(err, &validationErr):
		return http.StatusBadRequest
	case errors.Is(err, mongodb.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, mongodb.ErrConflict):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
