package services

import (
	"sort"
	"time"

	"github.com/shamshad-ansari/fitpro-backend/models"
	"github.com/shamshad-ansari/fitpro-backend/utils"
)

// ExerciseDayBucket is one day's worth of exercise activity: all logs whose
// performedAt falls on the same UTC calendar date, reduced by summation.
type ExerciseDayBucket struct {
	Date     string  `json:"date"` // YYYY-MM-DD
	Entries  int     `json:"entries"`
	Sets     int     `json:"sets"`
	Reps     int     `json:"reps"`
	Minutes  float64 `json:"minutes"`
	Calories float64 `json:"calories"`
}

// BucketExerciseLogs groups logs by UTC calendar day and sums their stats.
// Absent numeric fields contribute 0. The result is sparse (days without
// logs produce no bucket) and sorted by date ascending.
func BucketExerciseLogs(logs []models.ExerciseLog) []ExerciseDayBucket {
	byDay := make(map[string]*ExerciseDayBucket)
	for _, l := range logs {
		key := utils.DayKey(l.PerformedAt)
		b, ok := byDay[key]
		if !ok {
			b = &ExerciseDayBucket{Date: key}
			byDay[key] = b
		}
		b.Entries++
		if l.Sets != nil {
			b.Sets += *l.Sets
		}
		if l.Reps != nil {
			b.Reps += *l.Reps
		}
		if l.DurationMin != nil {
			b.Minutes += utils.ParseNum(*l.DurationMin)
		}
		if l.Calories != nil {
			b.Calories += utils.ParseNum(*l.Calories)
		}
	}

	buckets := make([]ExerciseDayBucket, 0, len(byDay))
	for _, b := range byDay {
		buckets = append(buckets, *b)
	}
	sort.Slice(buckets, func(i, j int) bool { return buckets[i].Date < buckets[j].Date })
	return buckets
}

// MealTotals are the summed macros of a set of meals.
type MealTotals struct {
	Calories float64
	ProteinG float64
	CarbsG   float64
	FatsG    float64
}

// SumMeals reduces meals into macro totals. Stored values were already
// coerced through ParseNum on write, but the guard is repeated here so a
// rogue document can never propagate NaN into a sum.
func SumMeals(meals []models.Meal) MealTotals {
	var t MealTotals
	for _, m := range meals {
		t.Calories += utils.ParseNum(m.Calories)
		t.ProteinG += utils.ParseNum(m.ProteinG)
		t.CarbsG += utils.ParseNum(m.CarbsG)
		t.FatsG += utils.ParseNum(m.FatsG)
	}
	return t
}

// NutritionTargets is the resolved daily goal set used by the summary.
type NutritionTargets struct {
	Calories float64
	ProteinG float64
	CarbsG   float64
	FatsG    float64
}

// ResolveTargets returns the user's configured targets, falling back to the
// defaults for anything unset.
func ResolveTargets(user *models.User) NutritionTargets {
	t := NutritionTargets{
		Calories: models.DefaultCalorieTarget,
		ProteinG: models.DefaultProteinTarget,
		CarbsG:   models.DefaultCarbsTarget,
		FatsG:    models.DefaultFatsTarget,
	}
	if user == nil {
		return t
	}
	if user.DailyCalorieTarget != nil {
		t.Calories = *user.DailyCalorieTarget
	}
	if user.MacroTargets != nil {
		if user.MacroTargets.ProteinG > 0 {
			t.ProteinG = user.MacroTargets.ProteinG
		}
		if user.MacroTargets.CarbsG > 0 {
			t.CarbsG = user.MacroTargets.CarbsG
		}
		if user.MacroTargets.FatsG > 0 {
			t.FatsG = user.MacroTargets.FatsG
		}
	}
	return t
}

// StreakDays walks backward day-by-day from asOf's UTC calendar day,
// counting consecutive days present in the day-key set and stopping at the
// first gap. Today counts: no entry for today means a streak of 0, even if
// yesterday has one. The walk is bounded by windowDays.
func StreakDays(days map[string]struct{}, asOf time.Time, windowDays int) int {
	today := utils.AtMidnightUTC(asOf)
	streak := 0
	for i := 0; i < windowDays; i++ {
		d := today.AddDate(0, 0, -i)
		if _, ok := days[utils.DayKey(d)]; !ok {
			break
		}
		streak++
	}
	return streak
}
