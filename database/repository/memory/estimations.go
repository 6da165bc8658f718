package memory

import (
	"context"
	"fmt"
	"sync"
	"time"

	"eazywed/database"
	estimationRepo "eazywed/database/repository/estimation"
	"eazywed/models"

	"github.com/google/uuid"
)

type EstimationRepo struct {
	mu    sync.Mutex
	seq   int64
	items map[string]entry[models.Estimation]
}

var _ estimationRepo.EstimationRepository = (*EstimationRepo)(nil)

func NewEstimationRepo() *EstimationRepo {
	return &EstimationRepo{items: make(map[string]entry[models.Estimation])}
}

func cloneEstimation(e models.Estimation) models.Estimation {
	e.Services = append([]models.EstimationService{}, e.Services...)
	e.Cards = append([]models.EstimationCard{}, e.Cards...)
	return e
}

func (r *EstimationRepo) Create(ctx context.Context, est *models.Estimation) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if est.ID == "" {
		est.ID = uuid.New().String()
	}
	if _, exists := r.items[est.ID]; exists {
		return fmt.Errorf("estimation %s: %w", est.ID, database.ErrDuplicate)
	}
	now := time.Now()
	est.CreatedAt = now
	est.UpdatedAt = now
	est.RecalculateTotal()
	r.seq++
	r.items[est.ID] = entry[models.Estimation]{seq: r.seq, value: cloneEstimation(*est)}
	return nil
}

func (r *EstimationRepo) GetByID(ctx context.Context, userID, estimationID string) (*models.Estimation, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	e, ok := r.items[estimationID]
	if !ok || e.value.UserID != userID {
		return nil, fmt.Errorf("estimation %s: %w", estimationID, database.ErrNotFound)
	}
	est := cloneEstimation(e.value)
	return &est, nil
}

func (r *EstimationRepo) ListByUser(ctx context.Context, userID string, q models.PageQuery) ([]models.Estimation, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var matched []entry[models.Estimation]
	for _, e := range r.items {
		if e.value.UserID == userID {
			matched = append(matched, entry[models.Estimation]{seq: e.seq, value: cloneEstimation(e.value)})
		}
	}
	sorted := newestFirst(matched, func(e models.Estimation) time.Time { return e.CreatedAt })
	return page(sorted, q), int64(len(sorted)), nil
}

func (r *EstimationRepo) Replace(ctx context.Context, est *models.Estimation) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	e, ok := r.items[est.ID]
	if !ok || e.value.UserID != est.UserID {
		return fmt.Errorf("estimation %s: %w", est.ID, database.ErrNotFound)
	}
	est.RecalculateTotal()
	est.UpdatedAt = time.Now()
	updated := cloneEstimation(e.value)
	updated.Services = append([]models.EstimationService{}, est.Services...)
	updated.Cards = append([]models.EstimationCard{}, est.Cards...)
	updated.TotalCost = est.TotalCost
	updated.UpdatedAt = est.UpdatedAt
	r.items[est.ID] = entry[models.Estimation]{seq: e.seq, value: updated}
	return nil
}

func (r *EstimationRepo) Delete(ctx context.Context, userID, estimationID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	e, ok := r.items[estimationID]
	if !ok || e.value.UserID != userID {
		return fmt.Errorf("estimation %s: %w", estimationID, database.ErrNotFound)
	}
	delete(r.items, estimationID)
	return nil
}

func (r *EstimationRepo) Summary(ctx context.Context, userID string) (int64, float64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var count int64
	var total float64
	for _, e := range r.items {
		if e.value.UserID == userID {
			count++
			total += e.value.TotalCost
		}
	}
	return count, total, nil
}
