package bookingRepo

import (
	"context"
	"fmt"
	"time"

	"eazywed/database"
	"eazywed/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// ListByUser returns one page of the user's bookings and the total count.
func (r *mongoBookingRepo) ListByUser(ctx context.Context, userID string, q models.PageQuery) ([]models.Booking, int64, error) {
	return r.list(ctx, bson.M{"user_id": userID}, q)
}

// ListByUserAndStatus returns one page of the user's bookings in a status.
func (r *mongoBookingRepo) ListByUserAndStatus(ctx context.Context, userID, status string, q models.PageQuery) ([]models.Booking, int64, error) {
	return r.list(ctx, bson.M{"user_id": userID, "status": status}, q)
}

func (r *mongoBookingRepo) list(ctx context.Context, filter bson.M, q models.PageQuery) ([]models.Booking, int64, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	total, err := r.coll.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("error counting bookings: %w", err)
	}

	cursor, err := r.coll.Find(ctx, filter, database.PageFindOptions(q))
	if err != nil {
		return nil, 0, fmt.Errorf("error listing bookings: %w", err)
	}
	defer cursor.Close(ctx)

	bookings := []models.Booking{}
	if err := cursor.All(ctx, &bookings); err != nil {
		return nil, 0, fmt.Errorf("error decoding bookings: %w", err)
	}
	return bookings, total, nil
}

// CountByStatus groups the user's bookings by status.
func (r *mongoBookingRepo) CountByStatus(ctx context.Context, userID string) (map[string]int64, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"user_id": userID}}},
		{{Key: "$group", Value: bson.M{"_id": "$status", "count": bson.M{"$sum": 1}}}},
	}
	cursor, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("error aggregating bookings: %w", err)
	}
	defer cursor.Close(ctx)

	counts := make(map[string]int64)
	for cursor.Next(ctx) {
		var row struct {
			Status string `bson:"_id"`
			Count  int64  `bson:"count"`
		}
		if err := cursor.Decode(&row); err != nil {
			return nil, fmt.Errorf("error decoding booking counts: %w", err)
		}
		counts[row.Status] = row.Count
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("error iterating booking counts: %w", err)
	}
	return counts, nil
}
