package dashboard

import (
	"context"
	"errors"
	"fmt"

	"eazywed/database"
	"eazywed/models"

	"go.uber.org/zap"
)

// ListEstimations returns one page of the user's estimations.
func (s *DefaultDashboardService) ListEstimations(ctx context.Context, userID string, q models.PageQuery) (*models.ListResponse[models.Estimation], error) {
	q = s.normalize(q)
	items, total, err := s.Estimations.ListByUser(ctx, userID, q)
	if err != nil {
		return nil, fmt.Errorf("failed to list estimations: %w", err)
	}
	return &models.ListResponse[models.Estimation]{
		Data:       items,
		Pagination: models.NewPagination(q.Page, q.Limit, total),
	}, nil
}

// AddEstimationItem adds a service package or a card to an estimation,
// creating the estimation when no id is given.
func (s *DefaultDashboardService) AddEstimationItem(ctx context.Context, userID string, req models.EstimationItemRequest) (*models.Estimation, error) {
	if (req.ServiceID == "") == (req.CardTemplateID == "") {
		return nil, invalid("Either service_id or card_template_id is required")
	}
	if req.Quantity < 0 {
		return nil, invalid("Quantity must be positive")
	}
	if req.Quantity == 0 {
		req.Quantity = 1
	}

	est := &models.Estimation{UserID: userID, Services: []models.EstimationService{}, Cards: []models.EstimationCard{}}
	if req.EstimationID != "" {
		existing, err := s.getEstimation(ctx, userID, req.EstimationID)
		if err != nil {
			return nil, err
		}
		est = existing
	}

	if req.ServiceID != "" {
		if err := s.addService(ctx, userID, est, req); err != nil {
			return nil, err
		}
	} else if err := s.addCard(ctx, userID, est, req); err != nil {
		return nil, err
	}

	var err error
	if req.EstimationID == "" {
		err = s.Estimations.Create(ctx, est)
	} else {
		err = s.Estimations.Replace(ctx, est)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to save estimation: %w", err)
	}
	s.invalidateStats(ctx, userID)
	return est, nil
}

func (s *DefaultDashboardService) addService(ctx context.Context, userID string, est *models.Estimation, req models.EstimationItemRequest) error {
	svc, err := s.Catalog.GetService(ctx, req.ServiceID)
	if err != nil {
		return s.catalogError(err, "Service not found")
	}
	if svc.VendorID == userID {
		return forbidden(MsgOwnListing)
	}
	pkg, err := resolvePackage(svc, req.PackageID)
	if err != nil {
		return err
	}

	if line, ok := est.FindService(svc.ID); ok {
		if line.PackageID == pkg.ID {
			line.Quantity += req.Quantity
		} else {
			line.PackageID = pkg.ID
			line.PackagePrice = pkg.Price
			line.Quantity = req.Quantity
		}
		return nil
	}
	est.Services = append(est.Services, models.EstimationService{
		ServiceID:    svc.ID,
		Name:         svc.Name,
		PackageID:    pkg.ID,
		PackagePrice: pkg.Price,
		Quantity:     req.Quantity,
		VendorID:     svc.VendorID,
	})
	return nil
}

func (s *DefaultDashboardService) addCard(ctx context.Context, userID string, est *models.Estimation, req models.EstimationItemRequest) error {
	card, err := s.Catalog.GetCard(ctx, req.CardTemplateID)
	if err != nil {
		return s.catalogError(err, "Card not found")
	}
	if card.VendorID == userID {
		return forbidden(MsgOwnListing)
	}

	if line, ok := est.FindCard(card.ID); ok {
		line.Quantity += req.Quantity
		return checkMinQuantity(card, line.Quantity)
	}
	if err := checkMinQuantity(card, req.Quantity); err != nil {
		return err
	}
	est.Cards = append(est.Cards, models.EstimationCard{
		CardID:       card.ID,
		Name:         card.Name,
		PricePerCard: card.PricePerCard,
		Quantity:     req.Quantity,
		VendorID:     card.VendorID,
	})
	return nil
}

func checkMinQuantity(card *models.CardTemplate, quantity int) error {
	if card.MinQuantity > 0 && quantity < card.MinQuantity {
		return invalid(fmt.Sprintf("Minimum order for %s is %d cards", card.Name, card.MinQuantity))
	}
	return nil
}

// resolvePackage picks the requested package, or the first one when none is named.
func resolvePackage(svc *models.VendorService, packageID string) (*models.ServicePackage, error) {
	if packageID == "" {
		if len(svc.Packages) == 0 {
			return nil, invalid("Service has no bookable packages")
		}
		return &svc.Packages[0], nil
	}
	pkg, ok := svc.FindPackage(packageID)
	if !ok {
		return nil, invalid("Package not found")
	}
	return pkg, nil
}

// RemoveEstimation deletes a whole estimation.
func (s *DefaultDashboardService) RemoveEstimation(ctx context.Context, userID, estimationID string) error {
	if err := s.Estimations.Delete(ctx, userID, estimationID); err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return notFound("Estimation not found", err)
		}
		return fmt.Errorf("failed to delete estimation: %w", err)
	}
	s.invalidateStats(ctx, userID)
	return nil
}

// RemoveEstimationService removes one service line. The estimation is deleted
// when no lines remain, in which case nil is returned.
func (s *DefaultDashboardService) RemoveEstimationService(ctx context.Context, userID, estimationID, serviceID string) (*models.Estimation, error) {
	est, err := s.getEstimation(ctx, userID, estimationID)
	if err != nil {
		return nil, err
	}
	if !est.RemoveService(serviceID) {
		return nil, notFound("Service not found in estimation", nil)
	}
	return s.saveOrDrop(ctx, est)
}

// RemoveEstimationCard removes one card line, deleting an emptied estimation.
func (s *DefaultDashboardService) RemoveEstimationCard(ctx context.Context, userID, estimationID, cardID string) (*models.Estimation, error) {
	est, err := s.getEstimation(ctx, userID, estimationID)
	if err != nil {
		return nil, err
	}
	if !est.RemoveCard(cardID) {
		return nil, notFound("Card not found in estimation", nil)
	}
	return s.saveOrDrop(ctx, est)
}

func (s *DefaultDashboardService) saveOrDrop(ctx context.Context, est *models.Estimation) (*models.Estimation, error) {
	defer s.invalidateStats(ctx, est.UserID)
	if est.IsEmpty() {
		if err := s.Estimations.Delete(ctx, est.UserID, est.ID); err != nil {
			return nil, fmt.Errorf("failed to delete empty estimation: %w", err)
		}
		return nil, nil
	}
	if err := s.Estimations.Replace(ctx, est); err != nil {
		return nil, fmt.Errorf("failed to update estimation: %w", err)
	}
	return est, nil
}

// ConvertEstimation books every line of an estimation for one event date and
// removes the estimation.
func (s *DefaultDashboardService) ConvertEstimation(ctx context.Context, userID, estimationID string, req models.ConvertEstimationRequest) ([]models.Booking, error) {
	date, err := s.parseEventDate(req.DateTime)
	if err != nil {
		return nil, err
	}
	est, err := s.getEstimation(ctx, userID, estimationID)
	if err != nil {
		return nil, err
	}
	if est.IsEmpty() {
		return nil, invalid("Estimation has no items to book")
	}

	bookings := make([]models.Booking, 0, len(est.Services)+len(est.Cards))
	for _, line := range est.Services {
		svc, err := s.Catalog.GetService(ctx, line.ServiceID)
		if err != nil {
			return nil, s.catalogError(err, fmt.Sprintf("Service %s is no longer available", line.Name))
		}
		if svc.VendorID == userID {
			return nil, forbidden(MsgOwnListing)
		}
		bookings = append(bookings, models.Booking{
			UserID:       userID,
			ServiceID:    line.ServiceID,
			PackageID:    line.PackageID,
			EstimationID: est.ID,
			Name:         line.Name,
			Date:         date,
			Quantity:     quantityOrOne(line.Quantity),
			Price:        line.PackagePrice * float64(quantityOrOne(line.Quantity)),
			VendorID:     svc.VendorID,
			VendorPhone:  svc.VendorPhone,
		})
	}
	for _, line := range est.Cards {
		card, err := s.Catalog.GetCard(ctx, line.CardID)
		if err != nil {
			return nil, s.catalogError(err, fmt.Sprintf("Card %s is no longer available", line.Name))
		}
		if card.VendorID == userID {
			return nil, forbidden(MsgOwnListing)
		}
		bookings = append(bookings, models.Booking{
			UserID:         userID,
			CardTemplateID: line.CardID,
			EstimationID:   est.ID,
			Name:           line.Name,
			Date:           date,
			Quantity:       quantityOrOne(line.Quantity),
			Price:          line.PricePerCard * float64(quantityOrOne(line.Quantity)),
			VendorID:       card.VendorID,
			VendorPhone:    card.VendorPhone,
		})
	}

	if err := s.Bookings.CreateMany(ctx, bookings); err != nil {
		return nil, fmt.Errorf("failed to create bookings: %w", err)
	}
	if err := s.Estimations.Delete(ctx, userID, est.ID); err != nil {
		s.logger().Warn("converted estimation was not removed",
			zap.String("estimationID", est.ID), zap.Error(err))
	}
	s.invalidateStats(ctx, userID)
	return bookings, nil
}

func (s *DefaultDashboardService) getEstimation(ctx context.Context, userID, estimationID string) (*models.Estimation, error) {
	est, err := s.Estimations.GetByID(ctx, userID, estimationID)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil, notFound("Estimation not found", err)
		}
		return nil, fmt.Errorf("failed to load estimation: %w", err)
	}
	return est, nil
}

func (s *DefaultDashboardService) catalogError(err error, msg string) error {
	if errors.Is(err, database.ErrNotFound) {
		return notFound(msg, err)
	}
	return fmt.Errorf("failed to load catalog item: %w", err)
}

func quantityOrOne(q int) int {
	if q <= 0 {
		return 1
	}
	return q
}
