package bookingRepo

import (
	"context"
	"fmt"
	"time"

	"eazywed/database"
	"eazywed/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
)

func prepare(b *models.Booking, now time.Time) {
	if b.ID == "" {
		b.ID = uuid.New().String()
	}
	if b.Status == "" {
		b.Status = models.BookingStatusPending
	}
	b.CreatedAt = now
	b.UpdatedAt = now
}

// Create inserts a new booking document.
func (r *mongoBookingRepo) Create(ctx context.Context, booking *models.Booking) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	prepare(booking, time.Now())
	if _, err := r.coll.InsertOne(ctx, booking); err != nil {
		return fmt.Errorf("error creating booking: %w", database.Translate(err))
	}
	return nil
}

// CreateMany inserts several bookings in one round trip.
func (r *mongoBookingRepo) CreateMany(ctx context.Context, bookings []models.Booking) error {
	if len(bookings) == 0 {
		return nil
	}
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	now := time.Now()
	docs := make([]interface{}, 0, len(bookings))
	for i := range bookings {
		prepare(&bookings[i], now)
		docs = append(docs, bookings[i])
	}
	if _, err := r.coll.InsertMany(ctx, docs); err != nil {
		return fmt.Errorf("error creating bookings: %w", database.Translate(err))
	}
	return nil
}

// GetByID retrieves one of the user's bookings.
func (r *mongoBookingRepo) GetByID(ctx context.Context, userID, bookingID string) (*models.Booking, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var booking models.Booking
	filter := bson.M{"booking_id": bookingID, "user_id": userID}
	if err := r.coll.FindOne(ctx, filter).Decode(&booking); err != nil {
		return nil, fmt.Errorf("booking %s: %w", bookingID, database.Translate(err))
	}
	return &booking, nil
}

// TransitionStatus moves a booking from one status to another. It matches
// only while the booking is still in the expected status.
func (r *mongoBookingRepo) TransitionStatus(ctx context.Context, userID, bookingID, from, to string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"booking_id": bookingID, "user_id": userID, "status": from}
	update := bson.M{"$set": bson.M{"status": to, "updated_at": time.Now()}}
	res, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("error updating booking %s: %w", bookingID, err)
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("booking %s in status %s: %w", bookingID, from, database.ErrNotFound)
	}
	return nil
}

// CompleteDue marks confirmed bookings whose event date is before the cutoff as completed.
func (r *mongoBookingRepo) CompleteDue(ctx context.Context, before time.Time) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	filter := bson.M{
		"status": models.BookingStatusConfirmed,
		"date":   bson.M{"$lt": before},
	}
	update := bson.M{"$set": bson.M{"status": models.BookingStatusCompleted, "updated_at": time.Now()}}
	res, err := r.coll.UpdateMany(ctx, filter, update)
	if err != nil {
		return 0, fmt.Errorf("error completing due bookings: %w", err)
	}
	return res.ModifiedCount, nil
}
