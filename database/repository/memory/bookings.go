package memory

import (
	"context"
	"fmt"
	"sync"
	"time"

	"eazywed/database"
	bookingRepo "eazywed/database/repository/booking"
	"eazywed/models"

	"github.com/google/uuid"
)

type BookingRepo struct {
	mu    sync.Mutex
	seq   int64
	items map[string]entry[models.Booking]
}

var _ bookingRepo.BookingRepository = (*BookingRepo)(nil)

func NewBookingRepo() *BookingRepo {
	return &BookingRepo{items: make(map[string]entry[models.Booking])}
}

// insert assumes r.mu is held.
func (r *BookingRepo) insert(b *models.Booking, now time.Time) error {
	if b.ID == "" {
		b.ID = uuid.New().String()
	}
	if _, exists := r.items[b.ID]; exists {
		return fmt.Errorf("booking %s: %w", b.ID, database.ErrDuplicate)
	}
	if b.Status == "" {
		b.Status = models.BookingStatusPending
	}
	if b.CreatedAt.IsZero() {
		b.CreatedAt = now
	}
	b.UpdatedAt = now
	r.seq++
	r.items[b.ID] = entry[models.Booking]{seq: r.seq, value: *b}
	return nil
}

func (r *BookingRepo) Create(ctx context.Context, booking *models.Booking) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.insert(booking, time.Now())
}

func (r *BookingRepo) CreateMany(ctx context.Context, bookings []models.Booking) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now()
	for i := range bookings {
		if err := r.insert(&bookings[i], now); err != nil {
			return err
		}
	}
	return nil
}

func (r *BookingRepo) GetByID(ctx context.Context, userID, bookingID string) (*models.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	e, ok := r.items[bookingID]
	if !ok || e.value.UserID != userID {
		return nil, fmt.Errorf("booking %s: %w", bookingID, database.ErrNotFound)
	}
	b := e.value
	return &b, nil
}

func (r *BookingRepo) ListByUser(ctx context.Context, userID string, q models.PageQuery) ([]models.Booking, int64, error) {
	return r.list(func(b models.Booking) bool { return b.UserID == userID }, q)
}

func (r *BookingRepo) ListByUserAndStatus(ctx context.Context, userID, status string, q models.PageQuery) ([]models.Booking, int64, error) {
	return r.list(func(b models.Booking) bool { return b.UserID == userID && b.Status == status }, q)
}

func (r *BookingRepo) list(match func(models.Booking) bool, q models.PageQuery) ([]models.Booking, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var matched []entry[models.Booking]
	for _, e := range r.items {
		if match(e.value) {
			matched = append(matched, e)
		}
	}
	sorted := newestFirst(matched, func(b models.Booking) time.Time { return b.CreatedAt })
	return page(sorted, q), int64(len(sorted)), nil
}

func (r *BookingRepo) TransitionStatus(ctx context.Context, userID, bookingID, from, to string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	e, ok := r.items[bookingID]
	if !ok || e.value.UserID != userID || e.value.Status != from {
		return fmt.Errorf("booking %s in status %s: %w", bookingID, from, database.ErrNotFound)
	}
	e.value.Status = to
	e.value.UpdatedAt = time.Now()
	r.items[bookingID] = e
	return nil
}

// SetStatus forces a booking status. Vendors confirm bookings outside this
// service; local tooling and tests use this to stand in for them.
func (r *BookingRepo) SetStatus(bookingID, status string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	e, ok := r.items[bookingID]
	if !ok {
		return false
	}
	e.value.Status = status
	r.items[bookingID] = e
	return true
}

func (r *BookingRepo) CountByStatus(ctx context.Context, userID string) (map[string]int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	counts := make(map[string]int64)
	for _, e := range r.items {
		if e.value.UserID == userID {
			counts[e.value.Status]++
		}
	}
	return counts, nil
}

func (r *BookingRepo) CompleteDue(ctx context.Context, before time.Time) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var n int64
	for id, e := range r.items {
		if e.value.Status == models.BookingStatusConfirmed && e.value.Date.Before(before) {
			e.value.Status = models.BookingStatusCompleted
			e.value.UpdatedAt = time.Now()
			r.items[id] = e
			n++
		}
	}
	return n, nil
}
