package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"networth-tracker/api/models"
	"networth-tracker/api/mongodb"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusForError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{
			name: "validation error maps to 400",
			err:  &models.ValidationError{Field: "value", Message: "must not be negative"},
			want: http.StatusBadRequest,
		},
		{
			name: "wrapped validation error maps to 400",
			err:  fmt.Errorf("create failed: %w", &models.ValidationError{Field: "type", Message: "bad"}),
			want: http.StatusBadRequest,
		},
		{
			name: "not found maps to 404",
			err:  mongodb.ErrNotFound,
			want: http.StatusNotFound,
		},
		{
			name: "wrapped not found maps to 404",
			err:  fmt.Errorf("fetch failed: %w", mongodb.ErrNotFound),
			want: http.StatusNotFound,
		},
		{
			name: "conflict maps to 409",
			err:  mongodb.ErrConflict,
			want: http.StatusConflict,
		},
		{
			name: "anything else maps to 500",
			err:  errors.New("connection reset"),
			want: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, statusForError(tt.err))
		})
	}
}

func TestCurrentUserID(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("missing user yields 401", func(t *testing.T) {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		_, ok := currentUserID(c)
		assert.False(t, ok)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("wrong claims type yields 401", func(t *testing.T) {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Set("user", "not-claims")

		_, ok := currentUserID(c)
		assert.False(t, ok)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("valid claims yield the subject", func(t *testing.T) {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Set("user", &models.UserClaims{Sub: "u1"})

		userID, ok := currentUserID(c)
		require.True(t, ok)
		assert.Equal(t, "u1", userID)
	})
}

func TestRecordID(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("malformed id yields 400", func(t *testing.T) {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Params = gin.Params{{Key: "id", Value: "not-an-object-id"}}

		_, ok := recordID(c)
		assert.False(t, ok)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("valid hex id parses", func(t *testing.T) {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Params = gin.Params{{Key: "id", Value: "507f1f77bcf86cd799439011"}}

		id, ok := recordID(c)
		require.True(t, ok)
		assert.Equal(t, "507f1f77bcf86cd799439011", id.Hex())
	})
}
