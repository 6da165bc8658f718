package catalogRepo

import (
	"context"

	"eazywed/models"

	"go.mongodb.org/mongo-driver/mongo"
)

type CatalogRepository interface {
	GetService(ctx context.Context, serviceID string) (*models.VendorService, error)
	GetCard(ctx context.Context, cardID string) (*models.CardTemplate, error)
	ListByCategory(ctx context.Context, category string, limit int) ([]models.VendorService, error)
	Search(ctx context.Context, query, category string, limit int) ([]models.VendorService, error)
	ListDiscounted(ctx context.Context, limit int) ([]models.VendorService, error)
	ListTopRated(ctx context.Context, limit int) ([]models.VendorService, error)
	ListCards(ctx context.Context, limit int) ([]models.CardTemplate, error)
	UpsertService(ctx context.Context, svc *models.VendorService) error
	UpsertCard(ctx context.Context, card *models.CardTemplate) error
}

type mongoCatalogRepo struct {
	serviceColl *mongo.Collection
	cardColl    *mongo.Collection
}

// NewMongoCatalogRepo constructs a MongoDB CatalogRepository.
func NewMongoCatalogRepo(db *mongo.Database) CatalogRepository {
	return &mongoCatalogRepo{
		serviceColl: db.Collection("services"),
		cardColl:    db.Collection("card_templates"),
	}
}
