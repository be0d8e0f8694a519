package services_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/shamshad-ansari/fitpro-backend/services"
)

func TestNormalizeSessionExercises_LegacySingleSet(t *testing.T) {
	inputs := []services.SessionExerciseInput{{
		Name:        "Bench Press",
		BodyPart:    "chest",
		WeightKg:    floatPtr(50),
		Reps:        intPtr(10),
		DurationMin: floatPtr(2),
	}}

	normalized := services.NormalizeSessionExercises(inputs)
	require.Len(t, normalized, 1)
	require.Len(t, normalized[0].Sets, 1)

	set := normalized[0].Sets[0]
	assert.Equal(t, 1, set.Index)
	require.NotNil(t, set.WeightKg)
	assert.Equal(t, 50.0, *set.WeightKg)
	require.NotNil(t, set.Reps)
	assert.Equal(t, 10, *set.Reps)
	require.NotNil(t, set.DurationSec)
	assert.Equal(t, 120, *set.DurationSec)
	assert.Nil(t, set.Calories, "missing calories stays unknown, not 0")
	assert.Nil(t, set.Notes)
}

func TestNormalizeSessionExercises_LegacyFractionalMinutesRound(t *testing.T) {
	inputs := []services.SessionExerciseInput{{
		Name:        "Plank",
		DurationMin: floatPtr(1.505),
	}}

	normalized := services.NormalizeSessionExercises(inputs)
	require.NotNil(t, normalized[0].Sets[0].DurationSec)
	assert.Equal(t, 90, *normalized[0].Sets[0].DurationSec)
}

func TestNormalizeSessionExercises_ExplicitSets(t *testing.T) {
	notes := "slow eccentric"
	sets := []services.WorkoutSetInput{
		{WeightKg: floatPtr(60), Reps: intPtr(8)},
		{WeightKg: floatPtr(65), Reps: intPtr(6), Notes: &notes},
		{Reps: intPtr(12)},
	}
	inputs := []services.SessionExerciseInput{{
		Name: "Squat",
		Sets: &sets,
	}}

	normalized := services.NormalizeSessionExercises(inputs)
	require.Len(t, normalized, 1)
	require.Len(t, normalized[0].Sets, 3)

	for i, s := range normalized[0].Sets {
		assert.Equal(t, i+1, s.Index, "set indexes are 1-based and ordered")
	}
	assert.Equal(t, 65.0, *normalized[0].Sets[1].WeightKg)
	assert.Equal(t, "slow eccentric", *normalized[0].Sets[1].Notes)
	assert.Nil(t, normalized[0].Sets[2].WeightKg)
}

func TestNormalizeSessionExercises_EmptySetsArrayIsCurrentShape(t *testing.T) {
	// "sets": [] is the current shape with zero sets, not the legacy shape
	empty := []services.WorkoutSetInput{}
	inputs := []services.SessionExerciseInput{{
		Name:     "Row",
		Sets:     &empty,
		WeightKg: floatPtr(40), // legacy fields ignored once sets is present
	}}

	normalized := services.NormalizeSessionExercises(inputs)
	require.Len(t, normalized, 1)
	assert.Empty(t, normalized[0].Sets)
}

func TestFlattenSessionLogs(t *testing.T) {
	userID := primitive.NewObjectID()
	routineID := primitive.NewObjectID()
	sessionID := primitive.NewObjectID()
	finished := time.Date(2025, 5, 20, 18, 45, 0, 0, time.UTC)

	sets := []services.WorkoutSetInput{
		{WeightKg: floatPtr(60), Reps: intPtr(8), DurationSec: intPtr(90), Calories: floatPtr(30)},
		{WeightKg: floatPtr(65), Reps: intPtr(6)},
	}
	exercises := services.NormalizeSessionExercises([]services.SessionExerciseInput{
		{Name: "Deadlift", BodyPart: "back", Sets: &sets},
		{Name: "Running", DurationMin: floatPtr(30), Calories: floatPtr(250)},
	})

	logs := services.FlattenSessionLogs(userID, routineID, sessionID, finished, exercises)
	require.Len(t, logs, 3, "one log per set")

	for _, l := range logs {
		assert.Equal(t, userID, l.User)
		require.NotNil(t, l.WorkoutRoutine)
		assert.Equal(t, routineID, *l.WorkoutRoutine)
		require.NotNil(t, l.WorkoutSession)
		assert.Equal(t, sessionID, *l.WorkoutSession)
		assert.Equal(t, finished, l.PerformedAt, "stamped with the session finish time")
		require.NotNil(t, l.Sets)
		assert.Equal(t, 1, *l.Sets)
	}

	assert.Equal(t, "back", logs[0].Category)
	require.NotNil(t, logs[0].DurationMin)
	assert.Equal(t, 1.5, *logs[0].DurationMin)

	// legacy entry without body part defaults to strength
	assert.Equal(t, "strength", logs[2].Category)
	require.NotNil(t, logs[2].DurationMin)
	assert.Equal(t, 30.0, *logs[2].DurationMin)
	require.NotNil(t, logs[2].Calories)
	assert.Equal(t, 250.0, *logs[2].Calories)
}
