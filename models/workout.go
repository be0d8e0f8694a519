package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// RoutineExercise is an exercise template inside a routine.
type RoutineExercise struct {
	Name        string `bson:"name" json:"name"`
	Description string `bson:"description,omitempty" json:"description,omitempty"`
	BodyPart    string `bson:"bodyPart,omitempty" json:"bodyPart,omitempty"`

	DefaultSets     int     `bson:"defaultSets" json:"defaultSets"`
	DefaultReps     int     `bson:"defaultReps" json:"defaultReps"`
	DefaultWeightKg float64 `bson:"defaultWeightKg,omitempty" json:"defaultWeightKg,omitempty"`

	Order int `bson:"order" json:"order"`
}

// WorkoutRoutine is a reusable workout template. Deletion is logical:
// routines are archived, never removed.
type WorkoutRoutine struct {
	ID   primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	User primitive.ObjectID `bson:"user" json:"user"`

	Name  string `bson:"name" json:"name"`
	Notes string `bson:"notes,omitempty" json:"notes,omitempty"`

	Exercises []RoutineExercise `bson:"exercises" json:"exercises"`

	IsArchived bool `bson:"isArchived" json:"isArchived"`

	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}

// WorkoutSet is one set within a session exercise. Numeric fields are
// pointers serialized without omitempty: an unknown value persists as an
// explicit null, distinct from zero.
type WorkoutSet struct {
	Index       int      `bson:"index" json:"index"`
	WeightKg    *float64 `bson:"weightKg" json:"weightKg"`
	Reps        *int     `bson:"reps" json:"reps"`
	DurationSec *int     `bson:"durationSec" json:"durationSec"`
	Calories    *float64 `bson:"calories" json:"calories"`
	Notes       *string  `bson:"notes" json:"notes"`
}

// SessionExercise is one exercise performed within a session, in the
// canonical normalized shape (always an ordered set array).
type SessionExercise struct {
	Name        string `bson:"name" json:"name"`
	Description string `bson:"description,omitempty" json:"description,omitempty"`
	BodyPart    string `bson:"bodyPart,omitempty" json:"bodyPart,omitempty"`
	Notes       string `bson:"notes,omitempty" json:"notes,omitempty"`

	Sets []WorkoutSet `bson:"sets" json:"sets"`
}

// WorkoutSession is one concrete, timestamped performance of a routine.
type WorkoutSession struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	User           primitive.ObjectID `bson:"user" json:"user"`
	WorkoutRoutine primitive.ObjectID `bson:"workoutRoutine" json:"workoutRoutine"`

	StartedAt  time.Time `bson:"startedAt" json:"startedAt"`
	FinishedAt time.Time `bson:"finishedAt" json:"finishedAt"`
	// Derived: finishedAt - startedAt in seconds, floored at 0.
	DurationSec int `bson:"durationSec" json:"durationSec"`

	Exercises []SessionExercise `bson:"exercises" json:"exercises"`

	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}
