package memory

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"eazywed/database"
	catalogRepo "eazywed/database/repository/catalog"
	"eazywed/models"

	"github.com/google/uuid"
)

type CatalogRepo struct {
	mu       sync.Mutex
	services map[string]models.VendorService
	cards    map[string]models.CardTemplate
}

var _ catalogRepo.CatalogRepository = (*CatalogRepo)(nil)

func NewCatalogRepo() *CatalogRepo {
	return &CatalogRepo{
		services: make(map[string]models.VendorService),
		cards:    make(map[string]models.CardTemplate),
	}
}

func (r *CatalogRepo) GetService(ctx context.Context, serviceID string) (*models.VendorService, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	svc, ok := r.services[serviceID]
	if !ok {
		return nil, fmt.Errorf("service %s: %w", serviceID, database.ErrNotFound)
	}
	return &svc, nil
}

func (r *CatalogRepo) GetCard(ctx context.Context, cardID string) (*models.CardTemplate, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	card, ok := r.cards[cardID]
	if !ok {
		return nil, fmt.Errorf("card template %s: %w", cardID, database.ErrNotFound)
	}
	return &card, nil
}

func (r *CatalogRepo) ListByCategory(ctx context.Context, category string, limit int) ([]models.VendorService, error) {
	return r.filter(func(s models.VendorService) bool { return s.Category == category }, byRating, limit), nil
}

func (r *CatalogRepo) Search(ctx context.Context, query, category string, limit int) ([]models.VendorService, error) {
	q := strings.ToLower(query)
	return r.filter(func(s models.VendorService) bool {
		if category != "" && s.Category != category {
			return false
		}
		return strings.Contains(strings.ToLower(s.Name), q)
	}, byRating, limit), nil
}

func (r *CatalogRepo) ListDiscounted(ctx context.Context, limit int) ([]models.VendorService, error) {
	return r.filter(func(s models.VendorService) bool { return s.DiscountPercent > 0 }, func(a, b models.VendorService) bool {
		return a.DiscountPercent > b.DiscountPercent
	}, limit), nil
}

func (r *CatalogRepo) ListTopRated(ctx context.Context, limit int) ([]models.VendorService, error) {
	return r.filter(func(models.VendorService) bool { return true }, func(a, b models.VendorService) bool {
		if a.Rating != b.Rating {
			return a.Rating > b.Rating
		}
		return a.ReviewCount > b.ReviewCount
	}, limit), nil
}

func (r *CatalogRepo) ListCards(ctx context.Context, limit int) ([]models.CardTemplate, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	cards := make([]models.CardTemplate, 0, len(r.cards))
	for _, c := range r.cards {
		cards = append(cards, c)
	}
	sort.Slice(cards, func(i, j int) bool {
		if !cards[i].CreatedAt.Equal(cards[j].CreatedAt) {
			return cards[i].CreatedAt.After(cards[j].CreatedAt)
		}
		return cards[i].ID < cards[j].ID
	})
	if limit > 0 && len(cards) > limit {
		cards = cards[:limit]
	}
	return cards, nil
}

func (r *CatalogRepo) UpsertService(ctx context.Context, svc *models.VendorService) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if svc.ID == "" {
		svc.ID = uuid.New().String()
	}
	if svc.CreatedAt.IsZero() {
		svc.CreatedAt = time.Now()
	}
	r.services[svc.ID] = *svc
	return nil
}

func (r *CatalogRepo) UpsertCard(ctx context.Context, card *models.CardTemplate) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if card.ID == "" {
		card.ID = uuid.New().String()
	}
	if card.CreatedAt.IsZero() {
		card.CreatedAt = time.Now()
	}
	r.cards[card.ID] = *card
	return nil
}

func byRating(a, b models.VendorService) bool {
	return a.Rating > b.Rating
}

func (r *CatalogRepo) filter(match func(models.VendorService) bool, less func(a, b models.VendorService) bool, limit int) []models.VendorService {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := []models.VendorService{}
	for _, s := range r.services {
		if match(s) {
			out = append(out, s)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		if less(out[i], out[j]) {
			return true
		}
		if less(out[j], out[i]) {
			return false
		}
		return out[i].ID < out[j].ID
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}
