package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Default nutrition targets applied when the user has not configured any.
const (
	DefaultCalorieTarget = 2000.0
	DefaultProteinTarget = 150.0
	DefaultCarbsTarget   = 250.0
	DefaultFatsTarget    = 65.0
)

// Goal is the user's embedded fitness goal.
type Goal struct {
	GoalType       string  `bson:"goalType" json:"goalType"` // weight_loss|muscle_gain|maintenance
	TargetWeightKg float64 `bson:"targetWeightKg,omitempty" json:"targetWeightKg,omitempty"`
	WeeklyWorkouts int     `bson:"weeklyWorkouts,omitempty" json:"weeklyWorkouts,omitempty"`
}

// MacroTargets holds the daily macro intake targets in grams.
type MacroTargets struct {
	ProteinG float64 `bson:"proteinG" json:"proteinG"`
	CarbsG   float64 `bson:"carbsG" json:"carbsG"`
	FatsG    float64 `bson:"fatsG" json:"fatsG"`
}

type User struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Email        string             `bson:"email" json:"email"`
	Name         string             `bson:"name" json:"name"`
	PasswordHash string             `bson:"passwordHash" json:"-"`

	Age          int     `bson:"age,omitempty" json:"age,omitempty"`
	Gender       string  `bson:"gender,omitempty" json:"gender,omitempty"`
	HeightCm     float64 `bson:"heightCm,omitempty" json:"heightCm,omitempty"`
	WeightKg     float64 `bson:"weightKg,omitempty" json:"weightKg,omitempty"`
	FitnessLevel string  `bson:"fitnessLevel" json:"fitnessLevel"` // beginner|intermediate|advanced
	AvatarURL    string  `bson:"avatarUrl,omitempty" json:"avatarUrl,omitempty"`

	Goals *Goal `bson:"goals,omitempty" json:"goals,omitempty"`

	DailyCalorieTarget *float64      `bson:"dailyCalorieTarget,omitempty" json:"dailyCalorieTarget,omitempty"`
	MacroTargets       *MacroTargets `bson:"macroTargets,omitempty" json:"macroTargets,omitempty"`

	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}
