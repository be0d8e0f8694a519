package utils_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shamshad-ansari/fitpro-backend/utils"
)

func TestDayBounds_SameDayTimestampsShareStart(t *testing.T) {
	t1 := time.Date(2025, 11, 28, 0, 0, 0, 1, time.UTC)
	t2 := time.Date(2025, 11, 28, 23, 59, 59, 0, time.UTC)
	t3 := time.Date(2025, 11, 28, 12, 30, 0, 0, time.UTC)

	s1, _ := utils.DayBounds(t1)
	s2, _ := utils.DayBounds(t2)
	s3, _ := utils.DayBounds(t3)

	assert.Equal(t, s1, s2)
	assert.Equal(t, s1, s3)
	assert.Equal(t, time.Date(2025, 11, 28, 0, 0, 0, 0, time.UTC), s1)
}

func TestDayBounds_EndIsLastInstantOfDay(t *testing.T) {
	start, end := utils.DayBounds(time.Date(2025, 3, 1, 9, 15, 0, 0, time.UTC))

	assert.Equal(t, time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC), start)
	assert.True(t, end.Before(time.Date(2025, 3, 2, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, 23, end.Hour())
	assert.Equal(t, 59, end.Minute())
	assert.Equal(t, 59, end.Second())
}

func TestDayBounds_OffsetInputsBucketByUTC(t *testing.T) {
	// 23:30 at UTC-5 is 04:30 UTC the next day; bucketing follows UTC.
	est := time.FixedZone("EST", -5*3600)
	local := time.Date(2025, 6, 10, 23, 30, 0, 0, est)

	start, _ := utils.DayBounds(local)
	require.Equal(t, time.Date(2025, 6, 11, 0, 0, 0, 0, time.UTC), start)
}

func TestAtMidnightUTC(t *testing.T) {
	in := time.Date(2024, 2, 29, 18, 45, 12, 345, time.UTC)
	assert.Equal(t, time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC), utils.AtMidnightUTC(in))
}

func TestDayKey(t *testing.T) {
	assert.Equal(t, "2025-01-05", utils.DayKey(time.Date(2025, 1, 5, 23, 0, 0, 0, time.UTC)))

	cet := time.FixedZone("CET", 3600)
	assert.Equal(t, "2025-01-04", utils.DayKey(time.Date(2025, 1, 5, 0, 30, 0, 0, cet)))
}
