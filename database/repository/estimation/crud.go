package estimationRepo

import (
	"context"
	"fmt"
	"time"

	"eazywed/database"
	"eazywed/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
)

// Create inserts a new estimation, assigning an ID when missing.
func (r *mongoEstimationRepo) Create(ctx context.Context, est *models.Estimation) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if est.ID == "" {
		est.ID = uuid.New().String()
	}
	now := time.Now()
	est.CreatedAt = now
	est.UpdatedAt = now
	est.RecalculateTotal()

	if _, err := r.coll.InsertOne(ctx, est); err != nil {
		return fmt.Errorf("error creating estimation: %w", database.Translate(err))
	}
	return nil
}

// GetByID retrieves one of the user's estimations.
func (r *mongoEstimationRepo) GetByID(ctx context.Context, userID, estimationID string) (*models.Estimation, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var est models.Estimation
	filter := bson.M{"estimation_id": estimationID, "user_id": userID}
	if err := r.coll.FindOne(ctx, filter).Decode(&est); err != nil {
		return nil, fmt.Errorf("estimation %s: %w", estimationID, database.Translate(err))
	}
	return &est, nil
}

// Replace overwrites the stored lines and total of an estimation.
func (r *mongoEstimationRepo) Replace(ctx context.Context, est *models.Estimation) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	est.RecalculateTotal()
	est.UpdatedAt = time.Now()

	filter := bson.M{"estimation_id": est.ID, "user_id": est.UserID}
	update := bson.M{"$set": bson.M{
		"services":   est.Services,
		"cards":      est.Cards,
		"total_cost": est.TotalCost,
		"updated_at": est.UpdatedAt,
	}}
	res, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("error updating estimation %s: %w", est.ID, err)
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("estimation %s: %w", est.ID, database.ErrNotFound)
	}
	return nil
}

// Delete removes one of the user's estimations.
func (r *mongoEstimationRepo) Delete(ctx context.Context, userID, estimationID string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"estimation_id": estimationID, "user_id": userID})
	if err != nil {
		return fmt.Errorf("error deleting estimation %s: %w", estimationID, err)
	}
	if res.DeletedCount == 0 {
		return fmt.Errorf("estimation %s: %w", estimationID, database.ErrNotFound)
	}
	return nil
}
