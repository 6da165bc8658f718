package catalogRepo

import (
	"context"
	"fmt"
	"regexp"
	"time"

	"eazywed/database"
	"eazywed/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// GetService retrieves a vendor service by ID.
func (r *mongoCatalogRepo) GetService(ctx context.Context, serviceID string) (*models.VendorService, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var svc models.VendorService
	if err := r.serviceColl.FindOne(ctx, bson.M{"service_id": serviceID}).Decode(&svc); err != nil {
		return nil, fmt.Errorf("service %s: %w", serviceID, database.Translate(err))
	}
	return &svc, nil
}

// GetCard retrieves a card template by ID.
func (r *mongoCatalogRepo) GetCard(ctx context.Context, cardID string) (*models.CardTemplate, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var card models.CardTemplate
	if err := r.cardColl.FindOne(ctx, bson.M{"card_id": cardID}).Decode(&card); err != nil {
		return nil, fmt.Errorf("card template %s: %w", cardID, database.Translate(err))
	}
	return &card, nil
}

// ListByCategory returns the best rated services of a category.
func (r *mongoCatalogRepo) ListByCategory(ctx context.Context, category string, limit int) ([]models.VendorService, error) {
	opts := options.Find().SetSort(bson.D{{Key: "rating", Value: -1}}).SetLimit(int64(limit))
	return r.findServices(ctx, bson.M{"category": category}, opts)
}

// Search matches the query against service names, case-insensitively.
func (r *mongoCatalogRepo) Search(ctx context.Context, query, category string, limit int) ([]models.VendorService, error) {
	filter := bson.M{"name": primitive.Regex{Pattern: regexp.QuoteMeta(query), Options: "i"}}
	if category != "" {
		filter["category"] = category
	}
	opts := options.Find().SetSort(bson.D{{Key: "rating", Value: -1}}).SetLimit(int64(limit))
	return r.findServices(ctx, filter, opts)
}

// ListDiscounted returns discounted services, largest discount first.
func (r *mongoCatalogRepo) ListDiscounted(ctx context.Context, limit int) ([]models.VendorService, error) {
	opts := options.Find().SetSort(bson.D{{Key: "discount_percent", Value: -1}}).SetLimit(int64(limit))
	return r.findServices(ctx, bson.M{"discount_percent": bson.M{"$gt": 0}}, opts)
}

// ListTopRated returns the best rated services across categories.
func (r *mongoCatalogRepo) ListTopRated(ctx context.Context, limit int) ([]models.VendorService, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "rating", Value: -1}, {Key: "review_count", Value: -1}}).
		SetLimit(int64(limit))
	return r.findServices(ctx, bson.M{}, opts)
}

// ListCards returns invitation card templates, newest first.
func (r *mongoCatalogRepo) ListCards(ctx context.Context, limit int) ([]models.CardTemplate, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}).SetLimit(int64(limit))
	cursor, err := r.cardColl.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("error listing card templates: %w", err)
	}
	defer cursor.Close(ctx)

	cards := []models.CardTemplate{}
	if err := cursor.All(ctx, &cards); err != nil {
		return nil, fmt.Errorf("error decoding card templates: %w", err)
	}
	return cards, nil
}

func (r *mongoCatalogRepo) findServices(ctx context.Context, filter bson.M, opts *options.FindOptions) ([]models.VendorService, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cursor, err := r.serviceColl.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("error listing services: %w", err)
	}
	defer cursor.Close(ctx)

	services := []models.VendorService{}
	if err := cursor.All(ctx, &services); err != nil {
		return nil, fmt.Errorf("error decoding services: %w", err)
	}
	return services, nil
}
