package handlers

import (
	"net/http"

	"eazywed/models"
	"eazywed/services/dashboard"
	"eazywed/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// DashboardHandler serves the /dashboard/user endpoints.
type DashboardHandler struct {
	Service dashboard.DashboardService
}

func NewDashboardHandler(svc dashboard.DashboardService) *DashboardHandler {
	return &DashboardHandler{Service: svc}
}

func bindPage(c *gin.Context) (models.PageQuery, bool) {
	var q models.PageQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid pagination parameters", err.Error())
		return q, false
	}
	return q, true
}

// GetStatsHandler handles GET /dashboard/user/stats.
func (h *DashboardHandler) GetStatsHandler(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	stats, err := h.Service.GetStats(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err, "Failed to load dashboard stats")
		return
	}
	c.JSON(http.StatusOK, stats)
}

// ListEstimationsHandler handles GET /dashboard/user/estimations.
func (h *DashboardHandler) ListEstimationsHandler(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	q, ok := bindPage(c)
	if !ok {
		return
	}
	list, err := h.Service.ListEstimations(c.Request.Context(), userID, q)
	if err != nil {
		respondError(c, err, "Failed to load estimations")
		return
	}
	c.JSON(http.StatusOK, list)
}

// AddEstimationItemHandler handles POST /dashboard/user/estimations/items.
func (h *DashboardHandler) AddEstimationItemHandler(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	var req models.EstimationItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}
	est, err := h.Service.AddEstimationItem(c.Request.Context(), userID, req)
	if err != nil {
		respondError(c, err, "Failed to add item to estimation")
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"message":    "Item added to estimation successfully",
		"estimation": est,
	})
}

// DeleteEstimationHandler handles DELETE /dashboard/user/estimations/:id.
func (h *DashboardHandler) DeleteEstimationHandler(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	if err := h.Service.RemoveEstimation(c.Request.Context(), userID, c.Param("id")); err != nil {
		respondError(c, err, "Failed to delete estimation")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Estimation removed successfully"})
}

// DeleteEstimationServiceHandler handles DELETE /dashboard/user/estimations/:id/services/:serviceId.
func (h *DashboardHandler) DeleteEstimationServiceHandler(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	est, err := h.Service.RemoveEstimationService(c.Request.Context(), userID, c.Param("id"), c.Param("serviceId"))
	if err != nil {
		respondError(c, err, "Failed to remove service from estimation")
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message":    "Service removed from estimation successfully",
		"estimation": est,
	})
}

// DeleteEstimationCardHandler handles DELETE /dashboard/user/estimations/:id/cards/:cardId.
func (h *DashboardHandler) DeleteEstimationCardHandler(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	est, err := h.Service.RemoveEstimationCard(c.Request.Context(), userID, c.Param("id"), c.Param("cardId"))
	if err != nil {
		respondError(c, err, "Failed to remove card from estimation")
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message":    "Card removed from estimation successfully",
		"estimation": est,
	})
}

// ConvertEstimationHandler handles POST /dashboard/user/estimations/:id/convert.
func (h *DashboardHandler) ConvertEstimationHandler(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	var req models.ConvertEstimationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}
	estimationID := c.Param("id")
	if req.EstimationID != "" && req.EstimationID != estimationID {
		utils.JSONError(c, http.StatusBadRequest, "Estimation id does not match the request path", "")
		return
	}
	bookings, err := h.Service.ConvertEstimation(c.Request.Context(), userID, estimationID, req)
	if err != nil {
		respondError(c, err, "Failed to book item")
		return
	}
	getLogger(c).Info("estimation converted",
		zap.String("estimationID", estimationID), zap.Int("bookings", len(bookings)))
	c.JSON(http.StatusCreated, gin.H{
		"message":  "Estimation converted to bookings successfully!",
		"bookings": bookings,
	})
}

// ListBookingsHandler handles GET /dashboard/user/bookings.
func (h *DashboardHandler) ListBookingsHandler(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	q, ok := bindPage(c)
	if !ok {
		return
	}
	list, err := h.Service.ListBookings(c.Request.Context(), userID, q)
	if err != nil {
		respondError(c, err, "Failed to load bookings")
		return
	}
	c.JSON(http.StatusOK, list)
}

// CreateBookingHandler handles POST /dashboard/user/bookings.
func (h *DashboardHandler) CreateBookingHandler(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	var req models.BookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}
	booking, err := h.Service.CreateBooking(c.Request.Context(), userID, req)
	if err != nil {
		respondError(c, err, "Failed to book item")
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"message": "Booking created successfully!",
		"booking": booking,
	})
}

// CancelBookingHandler handles PATCH /dashboard/user/bookings/:id/cancel.
func (h *DashboardHandler) CancelBookingHandler(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	booking, err := h.Service.CancelBooking(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		respondError(c, err, "Failed to cancel booking")
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": "Booking canceled successfully",
		"booking": booking,
	})
}

// ListReviewsHandler handles GET /dashboard/user/reviews.
func (h *DashboardHandler) ListReviewsHandler(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	q, ok := bindPage(c)
	if !ok {
		return
	}
	list, err := h.Service.ListReviews(c.Request.Context(), userID, q)
	if err != nil {
		respondError(c, err, "Failed to load reviews")
		return
	}
	c.JSON(http.StatusOK, list)
}

// SubmitReviewHandler handles POST /dashboard/user/reviews.
func (h *DashboardHandler) SubmitReviewHandler(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	var req models.ReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}
	review, err := h.Service.SubmitReview(c.Request.Context(), userID, req)
	if err != nil {
		respondError(c, err, "Failed to submit review")
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"message": "Review submitted successfully",
		"review":  review,
	})
}
