package services

import (
	"math"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/shamshad-ansari/fitpro-backend/models"
)

// WorkoutSetInput is one explicit set in the current session payload shape.
type WorkoutSetInput struct {
	WeightKg    *float64 `json:"weightKg"`
	Reps        *int     `json:"reps"`
	DurationSec *int     `json:"durationSec"`
	Calories    *float64 `json:"calories"`
	Notes       *string  `json:"notes"`
}

// SessionExerciseInput accepts both historical payload shapes for a
// performed exercise. The current shape carries an explicit Sets array; the
// legacy shape describes a single implicit set through the top-level
// weight/reps/duration-in-minutes/calories fields. A pointer-to-slice keeps
// "sets present (possibly empty)" distinct from "sets absent", which is the
// shape discriminator.
type SessionExerciseInput struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	BodyPart    string `json:"bodyPart"`
	Notes       string `json:"notes"`

	Sets *[]WorkoutSetInput `json:"sets"`

	// Legacy single-set fields.
	WeightKg    *float64 `json:"weightKg"`
	Reps        *int     `json:"reps"`
	DurationMin *float64 `json:"durationMin"`
	Calories    *float64 `json:"calories"`
}

// NormalizeSessionExercises converts both input shapes into the canonical
// nested structure: every exercise carries an ordered set array with
// 1-based indexes. Legacy entries become a one-element array with the
// duration converted from minutes to seconds, rounded to the nearest
// second. Missing numeric fields stay nil ("unknown"), never 0.
func NormalizeSessionExercises(inputs []SessionExerciseInput) []models.SessionExercise {
	normalized := make([]models.SessionExercise, 0, len(inputs))
	for _, in := range inputs {
		ex := models.SessionExercise{
			Name:        in.Name,
			Description: in.Description,
			BodyPart:    in.BodyPart,
			Notes:       in.Notes,
		}

		if in.Sets != nil {
			ex.Sets = make([]models.WorkoutSet, 0, len(*in.Sets))
			for i, s := range *in.Sets {
				ex.Sets = append(ex.Sets, models.WorkoutSet{
					Index:       i + 1,
					WeightKg:    s.WeightKg,
					Reps:        s.Reps,
					DurationSec: s.DurationSec,
					Calories:    s.Calories,
					Notes:       s.Notes,
				})
			}
		} else {
			var durationSec *int
			if in.DurationMin != nil {
				sec := int(math.Round(*in.DurationMin * 60))
				durationSec = &sec
			}
			var notes *string
			if in.Notes != "" {
				n := in.Notes
				notes = &n
			}
			ex.Sets = []models.WorkoutSet{{
				Index:       1,
				WeightKg:    in.WeightKg,
				Reps:        in.Reps,
				DurationSec: durationSec,
				Calories:    in.Calories,
				Notes:       notes,
			}}
		}

		normalized = append(normalized, ex)
	}
	return normalized
}

// FlattenSessionLogs explodes each normalized set into a standalone
// exercise log stamped with the session's finish time, so the daily
// summaries can consume session work alongside directly-logged exercises.
// This denormalization happens once at session creation; sessions have no
// update endpoint.
func FlattenSessionLogs(
	userID, routineID, sessionID primitive.ObjectID,
	finishedAt time.Time,
	exercises []models.SessionExercise,
) []models.ExerciseLog {
	now := time.Now().UTC()
	var logs []models.ExerciseLog
	for _, ex := range exercises {
		category := models.CategoryStrength
		if ex.BodyPart != "" {
			category = ex.BodyPart
		}
		for _, set := range ex.Sets {
			one := 1
			var durationMin *float64
			if set.DurationSec != nil {
				min := float64(*set.DurationSec) / 60
				durationMin = &min
			}
			var notes string
			if set.Notes != nil {
				notes = *set.Notes
			}
			logs = append(logs, models.ExerciseLog{
				User:           userID,
				WorkoutRoutine: &routineID,
				WorkoutSession: &sessionID,
				Name:           ex.Name,
				Category:       category,
				Sets:           &one,
				Reps:           set.Reps,
				WeightKg:       set.WeightKg,
				DurationMin:    durationMin,
				Calories:       set.Calories,
				Notes:          notes,
				PerformedAt:    finishedAt,
				CreatedAt:      now,
				UpdatedAt:      now,
			})
		}
	}
	return logs
}
