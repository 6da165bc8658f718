package dashboard

import (
	"context"
	"errors"
	"fmt"
	"time"

	"eazywed/database"
	"eazywed/models"

	"go.uber.org/zap"
)

// ListBookings returns one page of the user's bookings.
func (s *DefaultDashboardService) ListBookings(ctx context.Context, userID string, q models.PageQuery) (*models.ListResponse[models.Booking], error) {
	q = s.normalize(q)
	items, total, err := s.Bookings.ListByUser(ctx, userID, q)
	if err != nil {
		return nil, fmt.Errorf("failed to list bookings: %w", err)
	}
	return &models.ListResponse[models.Booking]{
		Data:       items,
		Pagination: models.NewPagination(q.Page, q.Limit, total),
	}, nil
}

// CreateBooking books a single service package or card. When the request
// names an estimation, the booked line is removed from it.
func (s *DefaultDashboardService) CreateBooking(ctx context.Context, userID string, req models.BookingRequest) (*models.Booking, error) {
	if (req.ServiceID == "") == (req.CardTemplateID == "") {
		return nil, invalid("Either service_id or card_template_id is required")
	}
	if req.Quantity < 0 {
		return nil, invalid("Quantity must be positive")
	}
	date, err := s.parseEventDate(req.DateTime)
	if err != nil {
		return nil, err
	}
	quantity := quantityOrOne(req.Quantity)

	booking := &models.Booking{
		UserID:       userID,
		EstimationID: req.EstimationID,
		Date:         date,
		Quantity:     quantity,
	}

	if req.ServiceID != "" {
		svc, err := s.Catalog.GetService(ctx, req.ServiceID)
		if err != nil {
			return nil, s.catalogError(err, "Service not found")
		}
		if svc.VendorID == userID {
			return nil, forbidden(MsgOwnListing)
		}
		pkg, err := resolvePackage(svc, req.PackageID)
		if err != nil {
			return nil, err
		}
		booking.ServiceID = svc.ID
		booking.PackageID = pkg.ID
		booking.Name = svc.Name
		booking.Price = pkg.Price * float64(quantity)
		booking.VendorID = svc.VendorID
		booking.VendorPhone = svc.VendorPhone
	} else {
		card, err := s.Catalog.GetCard(ctx, req.CardTemplateID)
		if err != nil {
			return nil, s.catalogError(err, "Card not found")
		}
		if card.VendorID == userID {
			return nil, forbidden(MsgOwnListing)
		}
		booking.CardTemplateID = card.ID
		booking.Name = card.Name
		booking.Price = card.PricePerCard * float64(quantity)
		booking.VendorID = card.VendorID
		booking.VendorPhone = card.VendorPhone
	}

	if err := s.Bookings.Create(ctx, booking); err != nil {
		return nil, fmt.Errorf("failed to create booking: %w", err)
	}
	if req.EstimationID != "" {
		s.dropBookedLine(ctx, userID, req)
	}
	s.invalidateStats(ctx, userID)
	return booking, nil
}

// dropBookedLine removes the booked item from its estimation. The booking
// already exists at this point, so failures are only logged.
func (s *DefaultDashboardService) dropBookedLine(ctx context.Context, userID string, req models.BookingRequest) {
	est, err := s.Estimations.GetByID(ctx, userID, req.EstimationID)
	if err != nil {
		s.logger().Warn("estimation of booked item not found",
			zap.String("estimationID", req.EstimationID), zap.Error(err))
		return
	}
	var removed bool
	if req.ServiceID != "" {
		removed = est.RemoveService(req.ServiceID)
	} else {
		removed = est.RemoveCard(req.CardTemplateID)
	}
	if !removed {
		return
	}
	if _, err := s.saveOrDrop(ctx, est); err != nil {
		s.logger().Warn("failed to remove booked item from estimation",
			zap.String("estimationID", req.EstimationID), zap.Error(err))
	}
}

// CancelBooking cancels a pending booking.
func (s *DefaultDashboardService) CancelBooking(ctx context.Context, userID, bookingID string) (*models.Booking, error) {
	booking, err := s.getBooking(ctx, userID, bookingID)
	if err != nil {
		return nil, err
	}
	if !booking.Cancellable() {
		return nil, conflict("Only pending bookings can be cancelled", nil)
	}

	err = s.Bookings.TransitionStatus(ctx, userID, bookingID, models.BookingStatusPending, models.BookingStatusCancelled)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			// Status changed between the read and the update.
			return nil, conflict("Only pending bookings can be cancelled", err)
		}
		return nil, fmt.Errorf("failed to cancel booking: %w", err)
	}
	booking.Status = models.BookingStatusCancelled
	s.invalidateStats(ctx, userID)
	return booking, nil
}

// CompleteDueBookings marks confirmed bookings dated before today as completed.
func (s *DefaultDashboardService) CompleteDueBookings(ctx context.Context, now time.Time) (int64, error) {
	n, err := s.Bookings.CompleteDue(ctx, startOfDay(now))
	if err != nil {
		return 0, fmt.Errorf("failed to complete due bookings: %w", err)
	}
	if n > 0 {
		s.logger().Info("completed due bookings", zap.Int64("count", n))
	}
	return n, nil
}

func (s *DefaultDashboardService) getBooking(ctx context.Context, userID, bookingID string) (*models.Booking, error) {
	booking, err := s.Bookings.GetByID(ctx, userID, bookingID)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil, notFound("Booking not found", err)
		}
		return nil, fmt.Errorf("failed to load booking: %w", err)
	}
	return booking, nil
}
