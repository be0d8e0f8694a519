package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ProgressMetrics are the optional per-day body metrics.
type ProgressMetrics struct {
	WeightKg       *float64 `bson:"weightKg,omitempty" json:"weightKg,omitempty"`
	BodyFatPct     *float64 `bson:"bodyFatPct,omitempty" json:"bodyFatPct,omitempty"`
	Steps          *int     `bson:"steps,omitempty" json:"steps,omitempty"`
	CaloriesBurned *float64 `bson:"caloriesBurned,omitempty" json:"caloriesBurned,omitempty"`
}

// Progress holds one entry per user per UTC calendar day. Date is always
// stored at midnight UTC; a unique index on (user, date) enforces the
// one-per-day invariant. Badges accumulate via $addToSet, never duplicated.
type Progress struct {
	ID   primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	User primitive.ObjectID `bson:"user" json:"user"`
	Date time.Time          `bson:"date" json:"date"`

	Metrics ProgressMetrics `bson:"metrics" json:"metrics"`
	Badges  []string        `bson:"badges,omitempty" json:"badges,omitempty"`

	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}
