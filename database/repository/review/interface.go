package reviewRepo

import (
	"context"

	"eazywed/models"

	"go.mongodb.org/mongo-driver/mongo"
)

type ReviewRepository interface {
	Create(ctx context.Context, review *models.Review) error
	GetByBookingIDs(ctx context.Context, userID string, bookingIDs []string) (map[string]models.Review, error)
	RatingSummary(ctx context.Context, userID string) (count int64, avg float64, err error)
}

type mongoReviewRepo struct {
	coll *mongo.Collection
}

// NewMongoReviewRepo constructs a MongoDB ReviewRepository.
func NewMongoReviewRepo(db *mongo.Database) ReviewRepository {
	return &mongoReviewRepo{
		coll: db.Collection("reviews"),
	}
}
