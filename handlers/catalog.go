package handlers

import (
	"net/http"
	"strings"

	"eazywed/services/catalog"
	"eazywed/utils"

	"github.com/gin-gonic/gin"
)

// CatalogHandler serves the public home page listings.
type CatalogHandler struct {
	Service catalog.CatalogService
}

func NewCatalogHandler(svc catalog.CatalogService) *CatalogHandler {
	return &CatalogHandler{Service: svc}
}

type catalogQuery struct {
	Category string `form:"category"`
	Query    string `form:"q"`
	Limit    int    `form:"limit"`
}

func bindCatalogQuery(c *gin.Context) (catalogQuery, bool) {
	var q catalogQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid query parameters", err.Error())
		return q, false
	}
	return q, true
}

// ListServicesHandler handles GET /services?category=&q=&limit=.
func (h *CatalogHandler) ListServicesHandler(c *gin.Context) {
	q, ok := bindCatalogQuery(c)
	if !ok {
		return
	}
	ctx := c.Request.Context()
	var (
		data interface{}
		err  error
	)
	switch {
	case strings.TrimSpace(q.Query) != "":
		data, err = h.Service.Search(ctx, q.Query, q.Category, q.Limit)
	case q.Category != "":
		data, err = h.Service.ByCategory(ctx, q.Category, q.Limit)
	default:
		data, err = h.Service.Recommendations(ctx, q.Limit)
	}
	if err != nil {
		respondError(c, err, "Failed to load services")
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": data})
}

// ListDiscountedHandler handles GET /services/discounted.
func (h *CatalogHandler) ListDiscountedHandler(c *gin.Context) {
	q, ok := bindCatalogQuery(c)
	if !ok {
		return
	}
	services, err := h.Service.Discounted(c.Request.Context(), q.Limit)
	if err != nil {
		respondError(c, err, "Failed to load discounted services")
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": services})
}

// ListRecommendationsHandler handles GET /services/recommendations.
func (h *CatalogHandler) ListRecommendationsHandler(c *gin.Context) {
	q, ok := bindCatalogQuery(c)
	if !ok {
		return
	}
	services, err := h.Service.Recommendations(c.Request.Context(), q.Limit)
	if err != nil {
		respondError(c, err, "Failed to load recommendations")
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": services})
}

// ListCardsHandler handles GET /cards.
func (h *CatalogHandler) ListCardsHandler(c *gin.Context) {
	q, ok := bindCatalogQuery(c)
	if !ok {
		return
	}
	cards, err := h.Service.Cards(c.Request.Context(), q.Limit)
	if err != nil {
		respondError(c, err, "Failed to load cards")
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": cards})
}

// TrendingSearchesHandler handles GET /search/trending.
func (h *CatalogHandler) TrendingSearchesHandler(c *gin.Context) {
	q, ok := bindCatalogQuery(c)
	if !ok {
		return
	}
	trending, err := h.Service.Trending(c.Request.Context(), q.Limit)
	if err != nil {
		respondError(c, err, "Failed to load trending searches")
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": trending})
}
