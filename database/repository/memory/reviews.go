package memory

import (
	"context"
	"fmt"
	"sync"
	"time"

	"eazywed/database"
	reviewRepo "eazywed/database/repository/review"
	"eazywed/models"

	"github.com/google/uuid"
)

type ReviewRepo struct {
	mu        sync.Mutex
	byBooking map[string]models.Review
}

var _ reviewRepo.ReviewRepository = (*ReviewRepo)(nil)

func NewReviewRepo() *ReviewRepo {
	return &ReviewRepo{byBooking: make(map[string]models.Review)}
}

func (r *ReviewRepo) Create(ctx context.Context, review *models.Review) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byBooking[review.BookingID]; exists {
		return fmt.Errorf("review for booking %s: %w", review.BookingID, database.ErrDuplicate)
	}
	if review.ID == "" {
		review.ID = uuid.New().String()
	}
	review.CreatedAt = time.Now()
	r.byBooking[review.BookingID] = *review
	return nil
}

func (r *ReviewRepo) GetByBookingIDs(ctx context.Context, userID string, bookingIDs []string) (map[string]models.Review, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make(map[string]models.Review, len(bookingIDs))
	for _, id := range bookingIDs {
		if rv, ok := r.byBooking[id]; ok && rv.UserID == userID {
			out[id] = rv
		}
	}
	return out, nil
}

func (r *ReviewRepo) RatingSummary(ctx context.Context, userID string) (int64, float64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var count int64
	var sum int
	for _, rv := range r.byBooking {
		if rv.UserID == userID {
			count++
			sum += rv.Rating
		}
	}
	if count == 0 {
		return 0, 0, nil
	}
	return count, float64(sum) / float64(count), nil
}
