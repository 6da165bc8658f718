package estimationRepo

import (
	"context"
	"fmt"
	"time"

	"eazywed/database"
	"eazywed/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// ListByUser returns one page of the user's estimations and the total count.
func (r *mongoEstimationRepo) ListByUser(ctx context.Context, userID string, q models.PageQuery) ([]models.Estimation, int64, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"user_id": userID}
	total, err := r.coll.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("error counting estimations: %w", err)
	}

	cursor, err := r.coll.Find(ctx, filter, database.PageFindOptions(q))
	if err != nil {
		return nil, 0, fmt.Errorf("error listing estimations: %w", err)
	}
	defer cursor.Close(ctx)

	estimations := []models.Estimation{}
	if err := cursor.All(ctx, &estimations); err != nil {
		return nil, 0, fmt.Errorf("error decoding estimations: %w", err)
	}
	return estimations, total, nil
}

// Summary counts the user's estimations and sums their totals.
func (r *mongoEstimationRepo) Summary(ctx context.Context, userID string) (int64, float64, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"user_id": userID}}},
		{{Key: "$group", Value: bson.M{
			"_id":   nil,
			"count": bson.M{"$sum": 1},
			"total": bson.M{"$sum": "$total_cost"},
		}}},
	}
	cursor, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return 0, 0, fmt.Errorf("error aggregating estimations: %w", err)
	}
	defer cursor.Close(ctx)

	var rows []struct {
		Count int64   `bson:"count"`
		Total float64 `bson:"total"`
	}
	if err := cursor.All(ctx, &rows); err != nil {
		return 0, 0, fmt.Errorf("error decoding estimation summary: %w", err)
	}
	if len(rows) == 0 {
		return 0, 0, nil
	}
	return rows[0].Count, rows[0].Total, nil
}
