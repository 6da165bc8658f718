package estimationRepo

import (
	"context"

	"eazywed/models"

	"go.mongodb.org/mongo-driver/mongo"
)

type EstimationRepository interface {
	Create(ctx context.Context, est *models.Estimation) error
	GetByID(ctx context.Context, userID, estimationID string) (*models.Estimation, error)
	ListByUser(ctx context.Context, userID string, q models.PageQuery) ([]models.Estimation, int64, error)
	Replace(ctx context.Context, est *models.Estimation) error
	Delete(ctx context.Context, userID, estimationID string) error
	Summary(ctx context.Context, userID string) (count int64, totalCost float64, err error)
}

type mongoEstimationRepo struct {
	coll *mongo.Collection
}

// NewMongoEstimationRepo constructs a MongoDB EstimationRepository.
func NewMongoEstimationRepo(db *mongo.Database) EstimationRepository {
	return &mongoEstimationRepo{
		coll: db.Collection("estimations"),
	}
}
