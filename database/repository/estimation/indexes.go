package estimationRepo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// EnsureIndexes creates the necessary indexes on the estimations collection.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "estimation_id", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("unique_estimation_id"),
		},
		// Dashboard listing: a user's estimations, newest first.
		{
			Keys:    bson.D{{Key: "user_id", Value: 1}, {Key: "created_at", Value: -1}},
			Options: options.Index().SetName("user_created_idx"),
		},
	}

	if _, err := db.Collection("estimations").Indexes().CreateMany(ctx, indexModels); err != nil {
		return fmt.Errorf("failed to create estimation indexes: %w", err)
	}
	return nil
}
