package catalogRepo

import (
	"context"
	"fmt"
	"time"

	"eazywed/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// UpsertService inserts or replaces a vendor service keyed by its ID.
func (r *mongoCatalogRepo) UpsertService(ctx context.Context, svc *models.VendorService) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if svc.ID == "" {
		svc.ID = uuid.New().String()
	}
	if svc.CreatedAt.IsZero() {
		svc.CreatedAt = time.Now()
	}
	opts := options.Replace().SetUpsert(true)
	if _, err := r.serviceColl.ReplaceOne(ctx, bson.M{"service_id": svc.ID}, svc, opts); err != nil {
		return fmt.Errorf("error upserting service %s: %w", svc.ID, err)
	}
	return nil
}

// UpsertCard inserts or replaces a card template keyed by its ID.
func (r *mongoCatalogRepo) UpsertCard(ctx context.Context, card *models.CardTemplate) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if card.ID == "" {
		card.ID = uuid.New().String()
	}
	if card.CreatedAt.IsZero() {
		card.CreatedAt = time.Now()
	}
	opts := options.Replace().SetUpsert(true)
	if _, err := r.cardColl.ReplaceOne(ctx, bson.M{"card_id": card.ID}, card, opts); err != nil {
		return fmt.Errorf("error upserting card template %s: %w", card.ID, err)
	}
	return nil
}
