package dashboard

import (
	"context"
	"time"

	"eazywed/database/repository"
	"eazywed/models"

	"go.uber.org/zap"
)

// DashboardService implements the user dashboard: estimations, bookings, reviews and stats.
type DashboardService interface {
	GetStats(ctx context.Context, userID string) (*models.DashboardStats, error)

	ListEstimations(ctx context.Context, userID string, q models.PageQuery) (*models.ListResponse[models.Estimation], error)
	AddEstimationItem(ctx context.Context, userID string, req models.EstimationItemRequest) (*models.Estimation, error)
	RemoveEstimation(ctx context.Context, userID, estimationID string) error
	RemoveEstimationService(ctx context.Context, userID, estimationID, serviceID string) (*models.Estimation, error)
	RemoveEstimationCard(ctx context.Context, userID, estimationID, cardID string) (*models.Estimation, error)
	ConvertEstimation(ctx context.Context, userID, estimationID string, req models.ConvertEstimationRequest) ([]models.Booking, error)

	ListBookings(ctx context.Context, userID string, q models.PageQuery) (*models.ListResponse[models.Booking], error)
	CreateBooking(ctx context.Context, userID string, req models.BookingRequest) (*models.Booking, error)
	CancelBooking(ctx context.Context, userID, bookingID string) (*models.Booking, error)
	CompleteDueBookings(ctx context.Context, now time.Time) (int64, error)

	ListReviews(ctx context.Context, userID string, q models.PageQuery) (*models.ListResponse[models.ReviewItem], error)
	SubmitReview(ctx context.Context, userID string, req models.ReviewRequest) (*models.Review, error)
}

// DefaultDashboardService is the MongoDB/Redis backed DashboardService.
type DefaultDashboardService struct {
	Estimations repository.EstimationRepository
	Bookings    repository.BookingRepository
	Reviews     repository.ReviewRepository
	Catalog     repository.CatalogRepository
	Stats       StatsCache
	Logger      *zap.Logger

	DefaultLimit int
	MaxLimit     int

	// Clock returns the current time; nil means time.Now.
	Clock func() time.Time
}

func (s *DefaultDashboardService) now() time.Time {
	if s.Clock != nil {
		return s.Clock()
	}
	return time.Now()
}

func (s *DefaultDashboardService) logger() *zap.Logger {
	if s.Logger == nil {
		return zap.NewNop()
	}
	return s.Logger
}

func (s *DefaultDashboardService) normalize(q models.PageQuery) models.PageQuery {
	def := s.DefaultLimit
	if def <= 0 {
		def = 5
	}
	return q.Normalize(def, s.MaxLimit)
}
