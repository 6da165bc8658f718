package client

import (
	"context"
	"errors"
	"sync"

	"eazywed/models"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// ErrHomeLoad is reported when any home page slider fails to load.
var ErrHomeLoad = errors.New("Failed to load slider data. Please try again later.")

// Home is the data of the landing page.
type Home struct {
	Sliders  map[string][]models.VendorService
	Cards    []models.CardTemplate
	Trending []models.TrendingSearch
}

// LoadHome loads every category slider concurrently, waits for all of them,
// then loads the trending searches.
func LoadHome(ctx context.Context, api *Client, notifier Notifier, limit int) (*Home, error) {
	home := &Home{Sliders: make(map[string][]models.VendorService, len(models.HomeCategories))}
	var mu sync.Mutex

	g, gctx := errgroup.WithContext(ctx)
	for _, category := range models.HomeCategories {
		category := category
		g.Go(func() error {
			if category == models.CategoryWeddingCards {
				cards, err := api.Cards(gctx, limit)
				if err != nil {
					return err
				}
				mu.Lock()
				home.Cards = cards
				mu.Unlock()
				return nil
			}

			var (
				services []models.VendorService
				err      error
			)
			switch category {
			case models.CategoryRecommendations:
				services, err = api.Recommendations(gctx, limit)
			case models.CategoryDiscounts:
				services, err = api.Discounted(gctx, limit)
			default:
				services, err = api.Services(gctx, category, limit)
			}
			if err != nil {
				return err
			}
			mu.Lock()
			home.Sliders[category] = services
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, homeFailure(notifier, err)
	}

	trending, err := api.TrendingSearches(ctx, limit)
	if err != nil {
		return nil, homeFailure(notifier, err)
	}
	home.Trending = trending
	return home, nil
}

func homeFailure(notifier Notifier, err error) error {
	zap.L().Warn("home load failed", zap.Error(err))
	if notifier != nil {
		notifier.Error(ErrHomeLoad.Error())
	}
	return errors.Join(ErrHomeLoad, err)
}
