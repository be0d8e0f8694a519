package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Meal types.
const (
	MealBreakfast = "breakfast"
	MealLunch     = "lunch"
	MealDinner    = "dinner"
	MealSnack     = "snack"
	MealOther     = "other"
)

// Meal is one logged meal with its aggregated macros. Date carries the
// calendar day used by range queries and the daily summary; Time is the
// optional precise clock time shown in the UI.
type Meal struct {
	ID   primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	User primitive.ObjectID `bson:"user" json:"user"`

	Date  time.Time  `bson:"date" json:"date"`
	Type  string     `bson:"type" json:"type"`
	Title string     `bson:"title" json:"title"`
	Time  *time.Time `bson:"time,omitempty" json:"time,omitempty"`

	Description string `bson:"description,omitempty" json:"description,omitempty"`

	Calories float64 `bson:"calories" json:"calories"`
	ProteinG float64 `bson:"proteinG" json:"proteinG"`
	CarbsG   float64 `bson:"carbsG" json:"carbsG"`
	FatsG    float64 `bson:"fatsG" json:"fatsG"`

	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}
