package bookingRepo

import (
	"context"
	"time"

	"eazywed/models"

	"go.mongodb.org/mongo-driver/mongo"
)

type BookingRepository interface {
	Create(ctx context.Context, booking *models.Booking) error
	CreateMany(ctx context.Context, bookings []models.Booking) error
	GetByID(ctx context.Context, userID, bookingID string) (*models.Booking, error)
	ListByUser(ctx context.Context, userID string, q models.PageQuery) ([]models.Booking, int64, error)
	ListByUserAndStatus(ctx context.Context, userID, status string, q models.PageQuery) ([]models.Booking, int64, error)
	TransitionStatus(ctx context.Context, userID, bookingID, from, to string) error
	CountByStatus(ctx context.Context, userID string) (map[string]int64, error)
	CompleteDue(ctx context.Context, before time.Time) (int64, error)
}

type mongoBookingRepo struct {
	coll *mongo.Collection
}

// NewMongoBookingRepo constructs a MongoDB BookingRepository.
func NewMongoBookingRepo(db *mongo.Database) BookingRepository {
	return &mongoBookingRepo{
		coll: db.Collection("bookings"),
	}
}
