package services

import (
	"context"
	"errors"
	"time"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/shamshad-ansari/fitpro-backend/config"
	"github.com/shamshad-ansari/fitpro-backend/models"
	"github.com/shamshad-ansari/fitpro-backend/utils"
)

type WorkoutService struct {
	routines  *mongo.Collection
	sessions  *mongo.Collection
	exercises *mongo.Collection
}

func NewWorkoutService(db *mongo.Database) *WorkoutService {
	return &WorkoutService{
		routines:  db.Collection(config.WorkoutRoutinesCollection),
		sessions:  db.Collection(config.WorkoutSessionsCollection),
		exercises: db.Collection(config.ExercisesCollection),
	}
}

// ---------- Routines ----------

type RoutineExerciseInput struct {
	Name            string  `json:"name" binding:"required"`
	Description     string  `json:"description"`
	BodyPart        string  `json:"bodyPart"`
	DefaultSets     int     `json:"defaultSets" binding:"omitempty,min=1"`
	DefaultReps     int     `json:"defaultReps" binding:"omitempty,min=1"`
	DefaultWeightKg float64 `json:"defaultWeightKg" binding:"omitempty,min=0"`
	Order           int     `json:"order" binding:"omitempty,min=0"`
}

type RoutineInput struct {
	Name      string                 `json:"name" binding:"required"`
	Notes     string                 `json:"notes"`
	Exercises []RoutineExerciseInput `json:"exercises" binding:"dive"`
}

func (s *WorkoutService) CreateRoutine(ctx context.Context, userID primitive.ObjectID, in RoutineInput) (*models.WorkoutRoutine, error) {
	now := time.Now().UTC()
	routine := &models.WorkoutRoutine{
		User:      userID,
		Name:      in.Name,
		Notes:     in.Notes,
		Exercises: buildRoutineExercises(in.Exercises),
		CreatedAt: now,
		UpdatedAt: now,
	}

	res, err := s.routines.InsertOne(ctx, routine)
	if err != nil {
		return nil, err
	}
	routine.ID = res.InsertedID.(primitive.ObjectID)
	return routine, nil
}

func buildRoutineExercises(inputs []RoutineExerciseInput) []models.RoutineExercise {
	exercises := make([]models.RoutineExercise, 0, len(inputs))
	for i, in := range inputs {
		sets, reps := in.DefaultSets, in.DefaultReps
		if sets == 0 {
			sets = 3
		}
		if reps == 0 {
			reps = 10
		}
		order := in.Order
		if order == 0 {
			order = i
		}
		exercises = append(exercises, models.RoutineExercise{
			Name:            in.Name,
			Description:     in.Description,
			BodyPart:        in.BodyPart,
			DefaultSets:     sets,
			DefaultReps:     reps,
			DefaultWeightKg: in.DefaultWeightKg,
			Order:           order,
		})
	}
	return exercises
}

// ListRoutines returns the user's active routines; archived ones are
// excluded unless asked for.
func (s *WorkoutService) ListRoutines(ctx context.Context, userID primitive.ObjectID, includeArchived bool) ([]models.WorkoutRoutine, error) {
	filter := bson.M{"user": userID}
	if !includeArchived {
		filter["isArchived"] = false
	}

	opts := options.Find().SetSort(bson.D{{Key: "updatedAt", Value: -1}})
	cur, err := s.routines.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	routines := []models.WorkoutRoutine{}
	if err := cur.All(ctx, &routines); err != nil {
		return nil, err
	}
	return routines, nil
}

func (s *WorkoutService) GetRoutine(ctx context.Context, userID, routineID primitive.ObjectID) (*models.WorkoutRoutine, error) {
	var routine models.WorkoutRoutine
	err := s.routines.FindOne(ctx, bson.M{"_id": routineID, "user": userID}).Decode(&routine)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, utils.NewNotFoundError("Routine not found")
		}
		return nil, err
	}
	return &routine, nil
}

type RoutineUpdateInput struct {
	Name      *string                 `json:"name" binding:"omitempty,min=1"`
	Notes     *string                 `json:"notes"`
	Exercises *[]RoutineExerciseInput `json:"exercises" binding:"omitempty,dive"`
}

func (s *WorkoutService) UpdateRoutine(ctx context.Context, userID, routineID primitive.ObjectID, in RoutineUpdateInput) (*models.WorkoutRoutine, error) {
	set := bson.M{"updatedAt": time.Now().UTC()}
	if in.Name != nil {
		set["name"] = *in.Name
	}
	if in.Notes != nil {
		set["notes"] = *in.Notes
	}
	if in.Exercises != nil {
		set["exercises"] = buildRoutineExercises(*in.Exercises)
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var routine models.WorkoutRoutine
	err := s.routines.FindOneAndUpdate(ctx,
		bson.M{"_id": routineID, "user": userID},
		bson.M{"$set": set},
		opts,
	).Decode(&routine)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, utils.NewNotFoundError("Routine not found")
		}
		return nil, err
	}
	return &routine, nil
}

// ArchiveRoutine is the delete operation for routines: logical, never
// physical.
func (s *WorkoutService) ArchiveRoutine(ctx context.Context, userID, routineID primitive.ObjectID) error {
	res, err := s.routines.UpdateOne(ctx,
		bson.M{"_id": routineID, "user": userID},
		bson.M{"$set": bson.M{"isArchived": true, "updatedAt": time.Now().UTC()}},
	)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return utils.NewNotFoundError("Routine not found")
	}
	return nil
}

// ---------- Sessions ----------

type SessionInput struct {
	RoutineID  string                 `json:"routineId" binding:"required"`
	StartedAt  *time.Time             `json:"startedAt" binding:"required"`
	FinishedAt *time.Time             `json:"finishedAt" binding:"required"`
	Exercises  []SessionExerciseInput `json:"exercises" binding:"dive"`
}

// CreateSession stores the normalized session and then the flattened
// per-set exercise logs. The two writes are separate operations; when the
// derived insert fails the session document is removed best-effort so the
// caller can safely retry the whole request.
func (s *WorkoutService) CreateSession(ctx context.Context, userID primitive.ObjectID, in SessionInput) (*models.WorkoutSession, error) {
	routineID, err := primitive.ObjectIDFromHex(in.RoutineID)
	if err != nil {
		return nil, utils.NewValidationError("Invalid routineId", nil)
	}

	started := in.StartedAt.UTC()
	finished := in.FinishedAt.UTC()
	durationSec := int(finished.Sub(started).Round(time.Second).Seconds())
	if durationSec < 0 {
		durationSec = 0
	}

	now := time.Now().UTC()
	session := &models.WorkoutSession{
		User:           userID,
		WorkoutRoutine: routineID,
		StartedAt:      started,
		FinishedAt:     finished,
		DurationSec:    durationSec,
		Exercises:      NormalizeSessionExercises(in.Exercises),
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	res, err := s.sessions.InsertOne(ctx, session)
	if err != nil {
		return nil, err
	}
	session.ID = res.InsertedID.(primitive.ObjectID)

	logs := FlattenSessionLogs(userID, routineID, session.ID, finished, session.Exercises)
	if len(logs) > 0 {
		docs := make([]interface{}, len(logs))
		for i := range logs {
			docs[i] = logs[i]
		}
		if _, err := s.exercises.InsertMany(ctx, docs); err != nil {
			// compensate: drop the session so the two collections stay
			// consistent and the request can be retried
			if _, delErr := s.sessions.DeleteOne(ctx, bson.M{"_id": session.ID}); delErr != nil {
				logrus.WithError(delErr).
					WithField("session", session.ID.Hex()).
					Error("failed to roll back session after log insert failure")
			}
			return nil, err
		}
	}

	return session, nil
}

func (s *WorkoutService) ListSessions(ctx context.Context, userID primitive.ObjectID, from, to time.Time) ([]models.WorkoutSession, error) {
	filter := bson.M{"user": userID}
	if dateFilter := rangeFilter(from, to); dateFilter != nil {
		filter["startedAt"] = dateFilter
	}

	opts := options.Find().SetSort(bson.D{{Key: "startedAt", Value: -1}})
	cur, err := s.sessions.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	sessions := []models.WorkoutSession{}
	if err := cur.All(ctx, &sessions); err != nil {
		return nil, err
	}
	return sessions, nil
}

func (s *WorkoutService) GetSession(ctx context.Context, userID, sessionID primitive.ObjectID) (*models.WorkoutSession, error) {
	var session models.WorkoutSession
	err := s.sessions.FindOne(ctx, bson.M{"_id": sessionID, "user": userID}).Decode(&session)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, utils.NewNotFoundError("Session not found")
		}
		return nil, err
	}
	return &session, nil
}

// DeleteSession removes the session and the exercise logs that were
// flattened out of it at creation time.
func (s *WorkoutService) DeleteSession(ctx context.Context, userID, sessionID primitive.ObjectID) error {
	res, err := s.sessions.DeleteOne(ctx, bson.M{"_id": sessionID, "user": userID})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return utils.NewNotFoundError("Session not found")
	}

	if _, err := s.exercises.DeleteMany(ctx, bson.M{"workoutSession": sessionID, "user": userID}); err != nil {
		logrus.WithError(err).
			WithField("session", sessionID.Hex()).
			Error("failed to delete flattened logs for session")
	}
	return nil
}
