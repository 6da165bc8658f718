package routes

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"eazywed/database/repository/memory"
	"eazywed/handlers"
	"eazywed/services/catalog"
	"eazywed/services/dashboard"
	"eazywed/utils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func init() {
	gin.SetMode(gin.TestMode)
	utils.Logger = zap.NewNop()
}

func newRouter() *gin.Engine {
	svc := &dashboard.DefaultDashboardService{
		Estimations: memory.NewEstimationRepo(),
		Bookings:    memory.NewBookingRepo(),
		Reviews:     memory.NewReviewRepo(),
		Catalog:     memory.NewCatalogRepo(),
	}
	hb := handlers.NewHandlerBundle(
		handlers.NewDashboardHandler(svc),
		handlers.NewCatalogHandler(&catalog.DefaultCatalogService{Repo: memory.NewCatalogRepo()}),
	)
	r := gin.New()
	RegisterRoutes(r, hb, []string{"http://localhost:5173"})
	return r
}

func TestDashboardRoutesRequireAuth(t *testing.T) {
	r := newRouter()
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/dashboard/user/stats", nil))
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestCORSPreflightAllowsPatch(t *testing.T) {
	r := newRouter()
	req := httptest.NewRequest(http.MethodOptions, "/dashboard/user/bookings/b-1/cancel", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	req.Header.Set("Access-Control-Request-Method", http.MethodPatch)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "http://localhost:5173", w.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "true", w.Header().Get("Access-Control-Allow-Credentials"))
	assert.Contains(t, w.Header().Get("Access-Control-Allow-Methods"), http.MethodPatch)
}

func TestHealthRoute(t *testing.T) {
	r := newRouter()

	utils.CheckHealth(context.Background(), map[string]utils.HealthCheck{
		"mongo": func(context.Context) error { return nil },
	})
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, w.Code)

	utils.CheckHealth(context.Background(), map[string]utils.HealthCheck{
		"redis": func(context.Context) error { return errors.New("down") },
	})
	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func TestMetricsRoute(t *testing.T) {
	r := newRouter()
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusOK, w.Code)
}
