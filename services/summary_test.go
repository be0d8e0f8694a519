package services_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shamshad-ansari/fitpro-backend/models"
	"github.com/shamshad-ansari/fitpro-backend/services"
	"github.com/shamshad-ansari/fitpro-backend/utils"
)

func intPtr(v int) *int             { return &v }
func floatPtr(v float64) *float64   { return &v }

func TestBucketExerciseLogs_Empty(t *testing.T) {
	buckets := services.BucketExerciseLogs(nil)
	require.NotNil(t, buckets)
	assert.Empty(t, buckets)
}

func TestBucketExerciseLogs_SumsPerDay(t *testing.T) {
	monday := time.Date(2025, 4, 7, 8, 0, 0, 0, time.UTC)
	wednesday := time.Date(2025, 4, 9, 19, 30, 0, 0, time.UTC)

	logs := []models.ExerciseLog{
		{PerformedAt: monday, Sets: intPtr(3), Reps: intPtr(30), DurationMin: floatPtr(20), Calories: floatPtr(150)},
		{PerformedAt: monday.Add(10 * time.Hour), Sets: intPtr(4), Reps: intPtr(40), DurationMin: floatPtr(25), Calories: floatPtr(200)},
		{PerformedAt: wednesday, DurationMin: floatPtr(45)},
	}

	buckets := services.BucketExerciseLogs(logs)
	require.Len(t, buckets, 2)

	// ascending date order, tuesday absent (sparse, not zero-filled)
	assert.Equal(t, "2025-04-07", buckets[0].Date)
	assert.Equal(t, "2025-04-09", buckets[1].Date)

	assert.Equal(t, 2, buckets[0].Entries)
	assert.Equal(t, 7, buckets[0].Sets)
	assert.Equal(t, 70, buckets[0].Reps)
	assert.Equal(t, 45.0, buckets[0].Minutes)
	assert.Equal(t, 350.0, buckets[0].Calories)

	// missing numeric fields contribute zero, never poison the sum
	assert.Equal(t, 1, buckets[1].Entries)
	assert.Equal(t, 0, buckets[1].Sets)
	assert.Equal(t, 45.0, buckets[1].Minutes)
	assert.Equal(t, 0.0, buckets[1].Calories)
}

func TestBucketExerciseLogs_SameUTCDayAcrossTimes(t *testing.T) {
	early := time.Date(2025, 4, 7, 0, 0, 1, 0, time.UTC)
	late := time.Date(2025, 4, 7, 23, 59, 59, 0, time.UTC)

	buckets := services.BucketExerciseLogs([]models.ExerciseLog{
		{PerformedAt: early, Calories: floatPtr(100)},
		{PerformedAt: late, Calories: floatPtr(50)},
	})

	require.Len(t, buckets, 1)
	assert.Equal(t, 150.0, buckets[0].Calories)
}

func TestSumMeals(t *testing.T) {
	meals := []models.Meal{
		{Calories: 450, ProteinG: 30, CarbsG: 55, FatsG: 12},
		{Calories: 700, ProteinG: 42, CarbsG: 80, FatsG: 25},
	}

	totals := services.SumMeals(meals)
	assert.Equal(t, 1150.0, totals.Calories)
	assert.Equal(t, 72.0, totals.ProteinG)
	assert.Equal(t, 135.0, totals.CarbsG)
	assert.Equal(t, 37.0, totals.FatsG)
}

func TestSumMeals_Empty(t *testing.T) {
	totals := services.SumMeals(nil)
	assert.Zero(t, totals.Calories)
	assert.Zero(t, totals.ProteinG)
}

func TestResolveTargets_Defaults(t *testing.T) {
	targets := services.ResolveTargets(&models.User{})
	assert.Equal(t, 2000.0, targets.Calories)
	assert.Equal(t, 150.0, targets.ProteinG)
	assert.Equal(t, 250.0, targets.CarbsG)
	assert.Equal(t, 65.0, targets.FatsG)
}

func TestResolveTargets_Configured(t *testing.T) {
	calories := 2400.0
	user := &models.User{
		DailyCalorieTarget: &calories,
		MacroTargets:       &models.MacroTargets{ProteinG: 180, CarbsG: 300, FatsG: 80},
	}

	targets := services.ResolveTargets(user)
	assert.Equal(t, 2400.0, targets.Calories)
	assert.Equal(t, 180.0, targets.ProteinG)
	assert.Equal(t, 300.0, targets.CarbsG)
	assert.Equal(t, 80.0, targets.FatsG)
}

func dayKeySet(asOf time.Time, offsets ...int) map[string]struct{} {
	set := make(map[string]struct{})
	for _, off := range offsets {
		set[utils.DayKey(asOf.AddDate(0, 0, -off))] = struct{}{}
	}
	return set
}

func TestStreakDays_ConsecutiveRun(t *testing.T) {
	asOf := time.Date(2025, 7, 15, 14, 0, 0, 0, time.UTC)

	// entries today, yesterday, two days ago; gap at three days ago
	set := dayKeySet(asOf, 0, 1, 2, 4, 5)
	assert.Equal(t, 3, services.StreakDays(set, asOf, 60))
}

func TestStreakDays_NoEntryTodayIsZero(t *testing.T) {
	asOf := time.Date(2025, 7, 15, 14, 0, 0, 0, time.UTC)

	set := dayKeySet(asOf, 1, 2, 3)
	assert.Equal(t, 0, services.StreakDays(set, asOf, 60))
}

func TestStreakDays_EmptySet(t *testing.T) {
	assert.Equal(t, 0, services.StreakDays(map[string]struct{}{}, time.Now(), 60))
}

func TestStreakDays_BoundedByWindow(t *testing.T) {
	asOf := time.Date(2025, 7, 15, 0, 0, 0, 0, time.UTC)

	// 90 consecutive days of entries, but only 60 fall inside the window
	set := make(map[string]struct{})
	for i := 0; i < 90; i++ {
		set[utils.DayKey(asOf.AddDate(0, 0, -i))] = struct{}{}
	}
	assert.Equal(t, 60, services.StreakDays(set, asOf, 60))
}
