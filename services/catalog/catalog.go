package catalog

import (
	"context"
	"fmt"
	"strings"

	"eazywed/database/repository"
	"eazywed/models"
	"eazywed/utils"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

const (
	DefaultLimit = 10
	MaxLimit     = 50
)

// CatalogService serves the public listings shown on the home page.
type CatalogService interface {
	ByCategory(ctx context.Context, category string, limit int) ([]models.VendorService, error)
	Search(ctx context.Context, query, category string, limit int) ([]models.VendorService, error)
	Discounted(ctx context.Context, limit int) ([]models.VendorService, error)
	Recommendations(ctx context.Context, limit int) ([]models.VendorService, error)
	Cards(ctx context.Context, limit int) ([]models.CardTemplate, error)
	Trending(ctx context.Context, limit int) ([]models.TrendingSearch, error)
}

// DefaultCatalogService reads listings from the catalog repository and keeps
// search frequencies in a Redis sorted set.
type DefaultCatalogService struct {
	Repo   repository.CatalogRepository
	Redis  *redis.Client
	Logger *zap.Logger
}

func (s *DefaultCatalogService) logger() *zap.Logger {
	if s.Logger == nil {
		return zap.NewNop()
	}
	return s.Logger
}

func clampLimit(limit int) int {
	if limit <= 0 {
		return DefaultLimit
	}
	if limit > MaxLimit {
		return MaxLimit
	}
	return limit
}

// ByCategory returns a home page slider. The two synthetic categories map to
// the discount and recommendation listings.
func (s *DefaultCatalogService) ByCategory(ctx context.Context, category string, limit int) ([]models.VendorService, error) {
	switch category {
	case models.CategoryDiscounts:
		return s.Discounted(ctx, limit)
	case models.CategoryRecommendations:
		return s.Recommendations(ctx, limit)
	}
	services, err := s.Repo.ListByCategory(ctx, category, clampLimit(limit))
	if err != nil {
		return nil, fmt.Errorf("failed to list %s: %w", category, err)
	}
	return services, nil
}

// Search matches service names and records the query as a trending search.
func (s *DefaultCatalogService) Search(ctx context.Context, query, category string, limit int) ([]models.VendorService, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return s.ByCategory(ctx, category, limit)
	}
	services, err := s.Repo.Search(ctx, query, category, clampLimit(limit))
	if err != nil {
		return nil, fmt.Errorf("failed to search services: %w", err)
	}
	s.recordSearch(ctx, query)
	return services, nil
}

func (s *DefaultCatalogService) recordSearch(ctx context.Context, query string) {
	if s.Redis == nil {
		return
	}
	member := strings.ToLower(query)
	if err := s.Redis.ZIncrBy(ctx, utils.TrendingSearchesKey, 1, member).Err(); err != nil {
		s.logger().Warn("failed to record trending search", zap.String("query", member), zap.Error(err))
	}
}

func (s *DefaultCatalogService) Discounted(ctx context.Context, limit int) ([]models.VendorService, error) {
	services, err := s.Repo.ListDiscounted(ctx, clampLimit(limit))
	if err != nil {
		return nil, fmt.Errorf("failed to list discounted services: %w", err)
	}
	return services, nil
}

func (s *DefaultCatalogService) Recommendations(ctx context.Context, limit int) ([]models.VendorService, error) {
	services, err := s.Repo.ListTopRated(ctx, clampLimit(limit))
	if err != nil {
		return nil, fmt.Errorf("failed to list recommendations: %w", err)
	}
	return services, nil
}

func (s *DefaultCatalogService) Cards(ctx context.Context, limit int) ([]models.CardTemplate, error) {
	cards, err := s.Repo.ListCards(ctx, clampLimit(limit))
	if err != nil {
		return nil, fmt.Errorf("failed to list cards: %w", err)
	}
	return cards, nil
}

// Trending returns the most frequent search queries, most frequent first.
func (s *DefaultCatalogService) Trending(ctx context.Context, limit int) ([]models.TrendingSearch, error) {
	if s.Redis == nil {
		return []models.TrendingSearch{}, nil
	}
	limit = clampLimit(limit)
	entries, err := s.Redis.ZRevRangeWithScores(ctx, utils.TrendingSearchesKey, 0, int64(limit-1)).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to read trending searches: %w", err)
	}
	out := make([]models.TrendingSearch, 0, len(entries))
	for _, z := range entries {
		query, ok := z.Member.(string)
		if !ok {
			continue
		}
		out = append(out, models.TrendingSearch{Query: query, Count: int64(z.Score)})
	}
	return out, nil
}
