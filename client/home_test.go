package client

import (
	"context"
	"net/http"
	"testing"

	"eazywed/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func catalogAPI(t *testing.T) *fakeAPI {
	t.Helper()
	f := newFakeAPI(t)
	f.handle("GET /services", func(w http.ResponseWriter, r *http.Request) {
		category := r.URL.Query().Get("category")
		jsonResponse(http.StatusOK, map[string]interface{}{
			"data": []models.VendorService{{ID: category + "-1", Name: category, Category: category}},
		})(w, r)
	})
	f.handle("GET /services/recommendations", jsonResponse(http.StatusOK, map[string]interface{}{
		"data": []models.VendorService{{ID: "rec-1"}},
	}))
	f.handle("GET /services/discounted", jsonResponse(http.StatusOK, map[string]interface{}{
		"data": []models.VendorService{{ID: "disc-1", DiscountPercent: 20}},
	}))
	f.handle("GET /cards", jsonResponse(http.StatusOK, map[string]interface{}{
		"data": []models.CardTemplate{{ID: "card-1", PricePerCard: 500}},
	}))
	f.handle("GET /search/trending", jsonResponse(http.StatusOK, map[string]interface{}{
		"data": []models.TrendingSearch{{Query: "mehndi", Count: 7}},
	}))
	return f
}

func TestLoadHome(t *testing.T) {
	f := catalogAPI(t)
	api, err := New(f.server.URL)
	require.NoError(t, err)
	n := &recordingNotifier{}

	home, err := LoadHome(context.Background(), api, n, 8)
	require.NoError(t, err)

	assert.Len(t, home.Sliders, len(models.HomeCategories)-1)
	assert.Equal(t, "rec-1", home.Sliders[models.CategoryRecommendations][0].ID)
	assert.Equal(t, "disc-1", home.Sliders[models.CategoryDiscounts][0].ID)
	assert.Equal(t, "Photographers-1", home.Sliders["Photographers"][0].ID)
	require.Len(t, home.Cards, 1)
	assert.Equal(t, []models.TrendingSearch{{Query: "mehndi", Count: 7}}, home.Trending)
	assert.Empty(t, n.lastError())

	cards := f.recorded(http.MethodGet, "/cards")
	require.Len(t, cards, 1)
	assert.Equal(t, "limit=8", cards[0].Query)
}

func TestLoadHome_AnySliderFailureFailsTheLoad(t *testing.T) {
	f := catalogAPI(t)
	f.handle("GET /services/discounted", jsonResponse(http.StatusInternalServerError, map[string]string{"message": "down"}))
	api, err := New(f.server.URL)
	require.NoError(t, err)
	n := &recordingNotifier{}

	home, err := LoadHome(context.Background(), api, n, 8)
	assert.Nil(t, home)
	assert.ErrorIs(t, err, ErrHomeLoad)
	assert.Equal(t, "Failed to load slider data. Please try again later.", n.lastError())
	assert.Empty(t, f.recorded(http.MethodGet, "/search/trending"))
}
