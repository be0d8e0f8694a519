package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultMealTitle(t *testing.T) {
	tests := []struct {
		mealType string
		title    string
		want     string
	}{
		{"breakfast", "", "Breakfast"},
		{"snack", "   ", "Snack"},
		{"other", "", "Other"},
		{"", "", "Other"},
		{"lunch", "Chicken salad", "Chicken salad"},
		{"dinner", "  Pasta  ", "Pasta"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, defaultMealTitle(tt.mealType, tt.title))
	}
}

func TestRangeFilter(t *testing.T) {
	from := time.Date(2025, 2, 10, 15, 0, 0, 0, time.UTC)
	to := time.Date(2025, 2, 12, 3, 0, 0, 0, time.UTC)

	f := rangeFilter(from, to)
	require.NotNil(t, f)

	// bounds widen to the full UTC days
	gte := f["$gte"].(time.Time)
	lte := f["$lte"].(time.Time)
	assert.Equal(t, time.Date(2025, 2, 10, 0, 0, 0, 0, time.UTC), gte)
	assert.True(t, lte.After(time.Date(2025, 2, 12, 23, 59, 58, 0, time.UTC)))
	assert.True(t, lte.Before(time.Date(2025, 2, 13, 0, 0, 0, 0, time.UTC)))
}

func TestRangeFilter_OpenBounds(t *testing.T) {
	assert.Nil(t, rangeFilter(time.Time{}, time.Time{}))

	onlyFrom := rangeFilter(time.Date(2025, 2, 10, 0, 0, 0, 0, time.UTC), time.Time{})
	require.NotNil(t, onlyFrom)
	_, hasLTE := onlyFrom["$lte"]
	assert.False(t, hasLTE)

	onlyTo := rangeFilter(time.Time{}, time.Date(2025, 2, 10, 0, 0, 0, 0, time.UTC))
	require.NotNil(t, onlyTo)
	_, hasGTE := onlyTo["$gte"]
	assert.False(t, hasGTE)
}
