package services

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/shamshad-ansari/fitpro-backend/config"
	"github.com/shamshad-ansari/fitpro-backend/models"
	"github.com/shamshad-ansari/fitpro-backend/utils"
)

type ProgressService struct {
	progress *mongo.Collection
	// Trailing lookback bound for streak computation, in days.
	streakWindowDays int
}

func NewProgressService(db *mongo.Database, streakWindowDays int) *ProgressService {
	return &ProgressService{
		progress:         db.Collection(config.ProgressCollection),
		streakWindowDays: streakWindowDays,
	}
}

type ProgressInput struct {
	Date    *time.Time              `json:"date"`
	Metrics *models.ProgressMetrics `json:"metrics"`
	Badges  []string                `json:"badges"`
}

// Upsert writes the day's entry keyed on (user, UTC midnight of date).
// Metrics are $set, badges merge via $addToSet. Two concurrent upserts for
// the same user and day can both take the insert path; the loser surfaces
// a duplicate-key error from the unique index and is retried once, at
// which point it matches the winner's document and merges into it.
func (s *ProgressService) Upsert(ctx context.Context, userID primitive.ObjectID, in ProgressInput) (*models.Progress, error) {
	day := time.Now().UTC()
	if in.Date != nil {
		day = *in.Date
	}
	date := utils.AtMidnightUTC(day)

	now := time.Now().UTC()
	set := bson.M{"updatedAt": now}
	if in.Metrics != nil {
		set["metrics"] = *in.Metrics
	}
	update := bson.M{
		"$set":         set,
		"$setOnInsert": bson.M{"user": userID, "date": date, "createdAt": now},
	}
	if len(in.Badges) > 0 {
		update["$addToSet"] = bson.M{"badges": bson.M{"$each": in.Badges}}
	}

	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After)

	filter := bson.M{"user": userID, "date": date}

	var doc models.Progress
	err := s.progress.FindOneAndUpdate(ctx, filter, update, opts).Decode(&doc)
	if mongo.IsDuplicateKeyError(err) {
		err = s.progress.FindOneAndUpdate(ctx, filter, update, opts).Decode(&doc)
	}
	if err != nil {
		return nil, err
	}
	return &doc, nil
}

func (s *ProgressService) List(ctx context.Context, userID primitive.ObjectID, from, to time.Time) ([]models.Progress, error) {
	filter := bson.M{"user": userID}
	if !from.IsZero() || !to.IsZero() {
		dateFilter := bson.M{}
		if !from.IsZero() {
			dateFilter["$gte"] = utils.AtMidnightUTC(from)
		}
		if !to.IsZero() {
			dateFilter["$lte"] = utils.AtMidnightUTC(to)
		}
		filter["date"] = dateFilter
	}

	opts := options.Find().SetSort(bson.D{{Key: "date", Value: 1}})
	cur, err := s.progress.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	items := []models.Progress{}
	if err := cur.All(ctx, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// CurrentStreak counts the consecutive days ending at asOf that have a
// progress entry, bounded by the configured lookback window.
func (s *ProgressService) CurrentStreak(ctx context.Context, userID primitive.ObjectID, asOf time.Time) (int, error) {
	today := utils.AtMidnightUTC(asOf)
	start := today.AddDate(0, 0, -s.streakWindowDays)

	opts := options.Find().SetProjection(bson.M{"date": 1})
	cur, err := s.progress.Find(ctx, bson.M{
		"user": userID,
		"date": bson.M{"$gte": start, "$lte": today},
	}, opts)
	if err != nil {
		return 0, err
	}
	rows := []models.Progress{}
	if err := cur.All(ctx, &rows); err != nil {
		return 0, err
	}

	days := make(map[string]struct{}, len(rows))
	for _, r := range rows {
		days[utils.DayKey(r.Date)] = struct{}{}
	}
	return StreakDays(days, asOf, s.streakWindowDays), nil
}
