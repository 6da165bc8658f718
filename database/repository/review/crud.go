package reviewRepo

import (
	"context"
	"fmt"
	"time"

	"eazywed/database"
	"eazywed/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// Create inserts a review. A second review for the same booking yields database.ErrDuplicate.
func (r *mongoReviewRepo) Create(ctx context.Context, review *models.Review) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if review.ID == "" {
		review.ID = uuid.New().String()
	}
	review.CreatedAt = time.Now()

	if _, err := r.coll.InsertOne(ctx, review); err != nil {
		return fmt.Errorf("error creating review: %w", database.Translate(err))
	}
	return nil
}

// GetByBookingIDs returns the user's reviews keyed by booking id.
func (r *mongoReviewRepo) GetByBookingIDs(ctx context.Context, userID string, bookingIDs []string) (map[string]models.Review, error) {
	out := make(map[string]models.Review, len(bookingIDs))
	if len(bookingIDs) == 0 {
		return out, nil
	}
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"user_id": userID, "booking_id": bson.M{"$in": bookingIDs}}
	cursor, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("error fetching reviews: %w", err)
	}
	defer cursor.Close(ctx)

	var reviews []models.Review
	if err := cursor.All(ctx, &reviews); err != nil {
		return nil, fmt.Errorf("error decoding reviews: %w", err)
	}
	for _, rv := range reviews {
		out[rv.BookingID] = rv
	}
	return out, nil
}

// RatingSummary counts the user's reviews and averages their ratings.
func (r *mongoReviewRepo) RatingSummary(ctx context.Context, userID string) (int64, float64, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"user_id": userID}}},
		{{Key: "$group", Value: bson.M{
			"_id":   nil,
			"count": bson.M{"$sum": 1},
			"avg":   bson.M{"$avg": "$rating"},
		}}},
	}
	cursor, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return 0, 0, fmt.Errorf("error aggregating reviews: %w", err)
	}
	defer cursor.Close(ctx)

	var rows []struct {
		Count int64   `bson:"count"`
		Avg   float64 `bson:"avg"`
	}
	if err := cursor.All(ctx, &rows); err != nil {
		return 0, 0, fmt.Errorf("error decoding review summary: %w", err)
	}
	if len(rows) == 0 {
		return 0, 0, nil
	}
	return rows[0].Count, rows[0].Avg, nil
}
