package dashboard

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"eazywed/database"
	"eazywed/models"
)

// ListReviews pages through the user's completed bookings alongside their reviews.
func (s *DefaultDashboardService) ListReviews(ctx context.Context, userID string, q models.PageQuery) (*models.ListResponse[models.ReviewItem], error) {
	q = s.normalize(q)
	bookings, total, err := s.Bookings.ListByUserAndStatus(ctx, userID, models.BookingStatusCompleted, q)
	if err != nil {
		return nil, fmt.Errorf("failed to list completed bookings: %w", err)
	}

	ids := make([]string, 0, len(bookings))
	for _, b := range bookings {
		ids = append(ids, b.ID)
	}
	reviews, err := s.Reviews.GetByBookingIDs(ctx, userID, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to load reviews: %w", err)
	}

	items := make([]models.ReviewItem, 0, len(bookings))
	for _, b := range bookings {
		item := models.ReviewItem{
			BookingID:      b.ID,
			ServiceID:      b.ServiceID,
			CardTemplateID: b.CardTemplateID,
			Name:           b.Name,
			Date:           b.Date,
		}
		if rv, ok := reviews[b.ID]; ok {
			rv := rv
			item.Review = &rv
		}
		items = append(items, item)
	}
	return &models.ListResponse[models.ReviewItem]{
		Data:       items,
		Pagination: models.NewPagination(q.Page, q.Limit, total),
	}, nil
}

// SubmitReview records the single review of a completed booking.
func (s *DefaultDashboardService) SubmitReview(ctx context.Context, userID string, req models.ReviewRequest) (*models.Review, error) {
	if strings.TrimSpace(req.BookingID) == "" {
		return nil, invalid("Booking is required")
	}
	if req.Rating < models.MinRating || req.Rating > models.MaxRating {
		return nil, invalid("Rating must be between 1 and 5")
	}

	booking, err := s.getBooking(ctx, userID, req.BookingID)
	if err != nil {
		return nil, err
	}
	if !booking.Reviewable() {
		return nil, conflict("Only completed bookings can be reviewed", nil)
	}

	review := &models.Review{
		BookingID:      booking.ID,
		UserID:         userID,
		ServiceID:      booking.ServiceID,
		CardTemplateID: booking.CardTemplateID,
		Rating:         req.Rating,
		Comment:        strings.TrimSpace(req.Comment),
	}
	if err := s.Reviews.Create(ctx, review); err != nil {
		if errors.Is(err, database.ErrDuplicate) {
			return nil, conflict("You have already reviewed this booking", err)
		}
		return nil, fmt.Errorf("failed to save review: %w", err)
	}
	s.invalidateStats(ctx, userID)
	return review, nil
}
