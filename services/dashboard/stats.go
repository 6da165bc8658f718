package dashboard

import (
	"context"
	"fmt"
	"math"

	"eazywed/models"

	"go.uber.org/zap"
)

// GetStats returns the user's dashboard aggregates, served from cache when possible.
func (s *DefaultDashboardService) GetStats(ctx context.Context, userID string) (*models.DashboardStats, error) {
	if s.Stats != nil {
		cached, err := s.Stats.Get(ctx, userID)
		if err != nil {
			// Treat cache failures as a miss.
			s.logger().Warn("stats cache read failed", zap.String("userID", userID), zap.Error(err))
		} else if cached != nil {
			return cached, nil
		}
	}

	estCount, estTotal, err := s.Estimations.Summary(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to summarise estimations: %w", err)
	}
	byStatus, err := s.Bookings.CountByStatus(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to count bookings: %w", err)
	}
	reviewCount, avgRating, err := s.Reviews.RatingSummary(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to summarise reviews: %w", err)
	}

	stats := &models.DashboardStats{
		Estimations:         estCount,
		Reviews:             reviewCount,
		PendingBookings:     byStatus[models.BookingStatusPending],
		ConfirmedBookings:   byStatus[models.BookingStatusConfirmed],
		CompletedBookings:   byStatus[models.BookingStatusCompleted],
		CancelledBookings:   byStatus[models.BookingStatusCancelled],
		TotalEstimationCost: estTotal,
		AvgRating:           math.Round(avgRating*100) / 100,
	}
	for _, n := range byStatus {
		stats.Bookings += n
	}

	if s.Stats != nil {
		if err := s.Stats.Set(ctx, userID, stats); err != nil {
			s.logger().Warn("stats cache write failed", zap.String("userID", userID), zap.Error(err))
		}
	}
	return stats, nil
}

// invalidateStats drops the cached aggregates after a mutation.
func (s *DefaultDashboardService) invalidateStats(ctx context.Context, userID string) {
	if s.Stats == nil {
		return
	}
	if err := s.Stats.Invalidate(ctx, userID); err != nil {
		s.logger().Warn("stats cache invalidation failed", zap.String("userID", userID), zap.Error(err))
	}
}
