package mongodb

import (
	"testing"

	"networth-tracker/api/models"

	"github.com/stretchr/testify/assert"
)

func TestSortDirection(t *testing.T) {
	assert.Equal(t, 1, sortDirection(models.SortAscending))
	assert.Equal(t, -1, sortDirection(models.SortDescending))
	// Anything unrecognized falls back to ascending
	assert.Equal(t, 1, sortDirection(models.SortOrder("")))
}
