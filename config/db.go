package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Collection names.
const (
	UsersCollection           = "users"
	ExercisesCollection       = "exercises"
	MealsCollection           = "meals"
	ProgressCollection        = "progress"
	WorkoutRoutinesCollection = "workout_routines"
	WorkoutSessionsCollection = "workout_sessions"
)

// ConnectMongo opens and pings a MongoDB connection.
func ConnectMongo(ctx context.Context, uri string) (*mongo.Client, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mongodb: %w", err)
	}

	if err := client.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("failed to ping mongodb: %w", err)
	}

	logrus.Info("connected to MongoDB")
	return client, nil
}

// EnsureIndexes creates the indexes the application invariants depend on:
// unique user emails, the unique (user, date) pair on progress, and the
// owner/time lookups used by range queries.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	ctx, cancel := context.WithTimeout(ctx, 15*time.Second)
	defer cancel()

	unique := options.Index().SetUnique(true)

	indexes := map[string][]mongo.IndexModel{
		UsersCollection: {
			{Keys: bson.D{{Key: "email", Value: 1}}, Options: unique},
		},
		ProgressCollection: {
			// one progress document per user per UTC day
			{Keys: bson.D{{Key: "user", Value: 1}, {Key: "date", Value: 1}}, Options: unique},
		},
		ExercisesCollection: {
			{Keys: bson.D{{Key: "user", Value: 1}, {Key: "performedAt", Value: -1}}},
			{Keys: bson.D{{Key: "workoutSession", Value: 1}}},
		},
		MealsCollection: {
			{Keys: bson.D{{Key: "user", Value: 1}, {Key: "date", Value: -1}}},
		},
		WorkoutRoutinesCollection: {
			{Keys: bson.D{{Key: "user", Value: 1}, {Key: "isArchived", Value: 1}}},
		},
		WorkoutSessionsCollection: {
			{Keys: bson.D{{Key: "user", Value: 1}, {Key: "startedAt", Value: -1}}},
		},
	}

	for coll, models := range indexes {
		if _, err := db.Collection(coll).Indexes().CreateMany(ctx, models); err != nil {
			return fmt.Errorf("create indexes on %s: %w", coll, err)
		}
	}
	return nil
}
