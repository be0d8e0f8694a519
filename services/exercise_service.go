package services

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/shamshad-ansari/fitpro-backend/config"
	"github.com/shamshad-ansari/fitpro-backend/models"
	"github.com/shamshad-ansari/fitpro-backend/utils"
)

type ExerciseService struct {
	exercises *mongo.Collection
}

func NewExerciseService(db *mongo.Database) *ExerciseService {
	return &ExerciseService{exercises: db.Collection(config.ExercisesCollection)}
}

type ExerciseInput struct {
	Name        string   `json:"name" binding:"required"`
	Category    string   `json:"category" binding:"omitempty,oneof=strength cardio mobility other"`
	Sets        *int     `json:"sets" binding:"omitempty,min=0"`
	Reps        *int     `json:"reps" binding:"omitempty,min=0"`
	WeightKg    *float64 `json:"weightKg" binding:"omitempty,min=0"`
	DurationMin *float64 `json:"durationMin" binding:"omitempty,min=0"`
	Calories    *float64 `json:"calories" binding:"omitempty,min=0"`
	Notes       string   `json:"notes"`
	PerformedAt *time.Time `json:"performedAt"`
}

// Log records one performed exercise. performedAt defaults to now.
func (s *ExerciseService) Log(ctx context.Context, userID primitive.ObjectID, in ExerciseInput) (*models.ExerciseLog, error) {
	category := in.Category
	if category == "" {
		category = models.CategoryStrength
	}
	performedAt := time.Now().UTC()
	if in.PerformedAt != nil {
		performedAt = in.PerformedAt.UTC()
	}

	now := time.Now().UTC()
	log := &models.ExerciseLog{
		User:        userID,
		Name:        in.Name,
		Category:    category,
		Sets:        in.Sets,
		Reps:        in.Reps,
		WeightKg:    in.WeightKg,
		DurationMin: in.DurationMin,
		Calories:    in.Calories,
		Notes:       in.Notes,
		PerformedAt: performedAt,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	res, err := s.exercises.InsertOne(ctx, log)
	if err != nil {
		return nil, err
	}
	log.ID = res.InsertedID.(primitive.ObjectID)
	return log, nil
}

// List returns the user's logs, newest first, optionally bounded by the
// UTC day range [from, to]. Either bound may be zero for unbounded.
func (s *ExerciseService) List(ctx context.Context, userID primitive.ObjectID, from, to time.Time) ([]models.ExerciseLog, error) {
	filter := bson.M{"user": userID}
	if dateFilter := rangeFilter(from, to); dateFilter != nil {
		filter["performedAt"] = dateFilter
	}

	opts := options.Find().SetSort(bson.D{{Key: "performedAt", Value: -1}})
	cur, err := s.exercises.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	logs := []models.ExerciseLog{}
	if err := cur.All(ctx, &logs); err != nil {
		return nil, err
	}
	return logs, nil
}

// Last returns the most recent log, or a 404 when the user has none.
func (s *ExerciseService) Last(ctx context.Context, userID primitive.ObjectID) (*models.ExerciseLog, error) {
	opts := options.FindOne().SetSort(bson.D{{Key: "performedAt", Value: -1}})

	var log models.ExerciseLog
	err := s.exercises.FindOne(ctx, bson.M{"user": userID}, opts).Decode(&log)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, utils.NewNotFoundError("No exercises logged yet")
		}
		return nil, err
	}
	return &log, nil
}

// DailySummary fetches the user's logs in the range and reduces them into
// sparse per-day buckets, ascending by date.
func (s *ExerciseService) DailySummary(ctx context.Context, userID primitive.ObjectID, from, to time.Time) ([]ExerciseDayBucket, error) {
	logs, err := s.List(ctx, userID, from, to)
	if err != nil {
		return nil, err
	}
	return BucketExerciseLogs(logs), nil
}

// rangeFilter builds the Mongo day-range filter shared by the list queries.
// Bounds are widened to full UTC days so any time-of-day on the boundary
// dates is included.
func rangeFilter(from, to time.Time) bson.M {
	if from.IsZero() && to.IsZero() {
		return nil
	}
	f := bson.M{}
	if !from.IsZero() {
		start, _ := utils.DayBounds(from)
		f["$gte"] = start
	}
	if !to.IsZero() {
		_, end := utils.DayBounds(to)
		f["$lte"] = end
	}
	return f
}
