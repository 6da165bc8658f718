package routes

import (
	"net/http"
	"time"

	"eazywed/handlers"
	"eazywed/middleware"
	"eazywed/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// RegisterDashboardRoutes registers the authenticated user dashboard endpoints.
func RegisterDashboardRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/dashboard/user")
	{
		api.Use(middleware.JWTAuthUserMiddleware())
		api.GET("/stats", hb.GetStats)

		api.GET("/estimations", hb.ListEstimations)
		api.POST("/estimations/items", hb.AddEstimationItem)
		api.DELETE("/estimations/:id", hb.DeleteEstimation)
		api.DELETE("/estimations/:id/services/:serviceId", hb.DeleteEstimationService)
		api.DELETE("/estimations/:id/cards/:cardId", hb.DeleteEstimationCard)
		api.POST("/estimations/:id/convert", hb.ConvertEstimation)

		api.GET("/bookings", hb.ListBookings)
		api.POST("/bookings", hb.CreateBooking)
		api.PATCH("/bookings/:id/cancel", hb.CancelBooking)

		api.GET("/reviews", hb.ListReviews)
		api.POST("/reviews", hb.SubmitReview)
	}
}

// RegisterCatalogRoutes registers the public home page listings.
func RegisterCatalogRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.GET("/services", hb.ListServices)
	r.GET("/services/discounted", hb.ListDiscounted)
	r.GET("/services/recommendations", hb.ListRecommendations)
	r.GET("/cards", hb.ListCards)
	r.GET("/search/trending", hb.TrendingSearches)
}

// RegisterHealthRoute registers a health-check endpoint backed by the health monitor.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		status := utils.GetHealthStatus()
		if !status.CheckedAt.IsZero() && !status.Healthy {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "degraded", "services": status.Services})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok", "services": status.Services, "message": "Hi, I'm EazyWed"})
	})
}

// RegisterMetricsRoute exposes Prometheus metrics.
func RegisterMetricsRoute(r *gin.Engine) {
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle, allowedOrigins []string) {
	// The web client sends its session cookie, so origins must be explicit.
	r.Use(cors.New(cors.Config{
		AllowOrigins:     allowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type", middleware.RequestIDHeader},
		ExposeHeaders:    []string{"Content-Length", middleware.RequestIDHeader},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterDashboardRoutes(r, hb)
	RegisterCatalogRoutes(r, hb)
	RegisterHealthRoute(r)
	RegisterMetricsRoute(r)
}
