package catalogRepo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// EnsureIndexes creates the indexes of the services and card_templates collections.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	serviceIndexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "service_id", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("unique_service_id"),
		},
		{
			Keys:    bson.D{{Key: "category", Value: 1}, {Key: "rating", Value: -1}},
			Options: options.Index().SetName("category_rating_idx"),
		},
		{
			Keys:    bson.D{{Key: "discount_percent", Value: -1}},
			Options: options.Index().SetName("discount_idx"),
		},
	}
	if _, err := db.Collection("services").Indexes().CreateMany(ctx, serviceIndexes); err != nil {
		return fmt.Errorf("failed to create service indexes: %w", err)
	}

	cardIndexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "card_id", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("unique_card_id"),
		},
	}
	if _, err := db.Collection("card_templates").Indexes().CreateMany(ctx, cardIndexes); err != nil {
		return fmt.Errorf("failed to create card template indexes: %w", err)
	}
	return nil
}
