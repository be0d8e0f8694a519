package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Exercise categories.
const (
	CategoryStrength = "strength"
	CategoryCardio   = "cardio"
	CategoryMobility = "mobility"
	CategoryOther    = "other"
)

// ExerciseLog is one performed exercise instance. It is either logged
// directly or derived from a workout session at session-creation time
// (one log per set, see services.FlattenSessionLogs). Logs are immutable
// once created, apart from deletion together with their session.
type ExerciseLog struct {
	ID             primitive.ObjectID  `bson:"_id,omitempty" json:"id"`
	User           primitive.ObjectID  `bson:"user" json:"user"`
	WorkoutRoutine *primitive.ObjectID `bson:"workoutRoutine,omitempty" json:"workoutRoutine,omitempty"`
	WorkoutSession *primitive.ObjectID `bson:"workoutSession,omitempty" json:"workoutSession,omitempty"`

	Name     string `bson:"name" json:"name"`
	Category string `bson:"category" json:"category"`

	// Aggregate stats for this instance. Pointers keep "not recorded"
	// distinct from zero.
	Sets        *int     `bson:"sets,omitempty" json:"sets,omitempty"`
	Reps        *int     `bson:"reps,omitempty" json:"reps,omitempty"`
	WeightKg    *float64 `bson:"weightKg,omitempty" json:"weightKg,omitempty"`
	DurationMin *float64 `bson:"durationMin,omitempty" json:"durationMin,omitempty"`
	Calories    *float64 `bson:"calories,omitempty" json:"calories,omitempty"`

	Notes string `bson:"notes,omitempty" json:"notes,omitempty"`

	PerformedAt time.Time `bson:"performedAt" json:"performedAt"`
	CreatedAt   time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time `bson:"updatedAt" json:"updatedAt"`
}
