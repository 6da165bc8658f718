package handlers

import (
	"github.com/gin-gonic/gin"
)

// HandlerBundle groups the endpoint handlers registered by the router.
type HandlerBundle struct {
	// Dashboard endpoints
	GetStats                gin.HandlerFunc
	ListEstimations         gin.HandlerFunc
	AddEstimationItem       gin.HandlerFunc
	DeleteEstimation        gin.HandlerFunc
	DeleteEstimationService gin.HandlerFunc
	DeleteEstimationCard    gin.HandlerFunc
	ConvertEstimation       gin.HandlerFunc
	ListBookings            gin.HandlerFunc
	CreateBooking           gin.HandlerFunc
	CancelBooking           gin.HandlerFunc
	ListReviews             gin.HandlerFunc
	SubmitReview            gin.HandlerFunc

	// Catalog endpoints
	ListServices        gin.HandlerFunc
	ListDiscounted      gin.HandlerFunc
	ListRecommendations gin.HandlerFunc
	ListCards           gin.HandlerFunc
	TrendingSearches    gin.HandlerFunc
}

// NewHandlerBundle wires the dashboard and catalog handlers into a bundle.
func NewHandlerBundle(dh *DashboardHandler, ch *CatalogHandler) *HandlerBundle {
	return &HandlerBundle{
		GetStats:                dh.GetStatsHandler,
		ListEstimations:         dh.ListEstimationsHandler,
		AddEstimationItem:       dh.AddEstimationItemHandler,
		DeleteEstimation:        dh.DeleteEstimationHandler,
		DeleteEstimationService: dh.DeleteEstimationServiceHandler,
		DeleteEstimationCard:    dh.DeleteEstimationCardHandler,
		ConvertEstimation:       dh.ConvertEstimationHandler,
		ListBookings:            dh.ListBookingsHandler,
		CreateBooking:           dh.CreateBookingHandler,
		CancelBooking:           dh.CancelBookingHandler,
		ListReviews:             dh.ListReviewsHandler,
		SubmitReview:            dh.SubmitReviewHandler,

		ListServices:        ch.ListServicesHandler,
		ListDiscounted:      ch.ListDiscountedHandler,
		ListRecommendations: ch.ListRecommendationsHandler,
		ListCards:           ch.ListCardsHandler,
		TrendingSearches:    ch.TrendingSearchesHandler,
	}
}
