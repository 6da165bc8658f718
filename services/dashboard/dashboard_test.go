package dashboard

import (
	"context"
	"sync"
	"testing"
	"time"

	"eazywed/database/repository/memory"
	"eazywed/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

var testNow = time.Date(2026, time.June, 1, 10, 0, 0, 0, time.UTC)

type countingCache struct {
	mu          sync.Mutex
	entries     map[string]models.DashboardStats
	hits        int
	invalidated int
}

func newCountingCache() *countingCache {
	return &countingCache{entries: make(map[string]models.DashboardStats)}
}

func (c *countingCache) Get(ctx context.Context, userID string) (*models.DashboardStats, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	s, ok := c.entries[userID]
	if !ok {
		return nil, nil
	}
	c.hits++
	return &s, nil
}

func (c *countingCache) Set(ctx context.Context, userID string, stats *models.DashboardStats) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[userID] = *stats
	return nil
}

func (c *countingCache) Invalidate(ctx context.Context, userID string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, userID)
	c.invalidated++
	return nil
}

type fixture struct {
	svc      *DefaultDashboardService
	bookings *memory.BookingRepo
	cache    *countingCache
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctx := context.Background()

	catalog := memory.NewCatalogRepo()
	require.NoError(t, catalog.UpsertService(ctx, &models.VendorService{
		ID:          "venue-1",
		VendorID:    "vendor-1",
		VendorPhone: "03001234567",
		Name:        "Royal Marquee",
		Category:    "Wedding Venues",
		Packages: []models.ServicePackage{
			{ID: "basic", Name: "Basic", Price: 20000},
			{ID: "gold", Name: "Gold", Price: 35000},
		},
	}))
	require.NoError(t, catalog.UpsertCard(ctx, &models.CardTemplate{
		ID:           "card-1",
		VendorID:     "vendor-2",
		Name:         "Floral Invite",
		PricePerCard: 20,
		MinQuantity:  50,
	}))

	f := &fixture{bookings: memory.NewBookingRepo(), cache: newCountingCache()}
	f.svc = &DefaultDashboardService{
		Estimations:  memory.NewEstimationRepo(),
		Bookings:     f.bookings,
		Reviews:      memory.NewReviewRepo(),
		Catalog:      catalog,
		Stats:        f.cache,
		Logger:       zap.NewNop(),
		DefaultLimit: 5,
		MaxLimit:     50,
		Clock:        func() time.Time { return testNow },
	}
	return f
}

// newEstimation builds the venue plus 100 cards estimation worth 22000.
func (f *fixture) newEstimation(t *testing.T, userID string) *models.Estimation {
	t.Helper()
	ctx := context.Background()
	est, err := f.svc.AddEstimationItem(ctx, userID, models.EstimationItemRequest{ServiceID: "venue-1"})
	require.NoError(t, err)
	est, err = f.svc.AddEstimationItem(ctx, userID, models.EstimationItemRequest{
		EstimationID:   est.ID,
		CardTemplateID: "card-1",
		Quantity:       100,
	})
	require.NoError(t, err)
	return est
}

func TestAddEstimationItem_ComputesTotal(t *testing.T) {
	f := newFixture(t)
	est := f.newEstimation(t, "user-1")

	assert.Equal(t, 22000.0, est.TotalCost)
	require.Len(t, est.Services, 1)
	assert.Equal(t, "basic", est.Services[0].PackageID)
	require.Len(t, est.Cards, 1)
	assert.Equal(t, 100, est.Cards[0].Quantity)
}

func TestAddEstimationItem_Validation(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.svc.AddEstimationItem(ctx, "user-1", models.EstimationItemRequest{})
	assert.True(t, IsCode(err, CodeInvalid))

	_, err = f.svc.AddEstimationItem(ctx, "user-1", models.EstimationItemRequest{CardTemplateID: "card-1", Quantity: 10})
	assert.True(t, IsCode(err, CodeInvalid), "below minimum card quantity")

	_, err = f.svc.AddEstimationItem(ctx, "user-1", models.EstimationItemRequest{ServiceID: "venue-1", PackageID: "platinum"})
	assert.True(t, IsCode(err, CodeInvalid))

	_, err = f.svc.AddEstimationItem(ctx, "user-1", models.EstimationItemRequest{ServiceID: "missing"})
	assert.True(t, IsCode(err, CodeNotFound))

	_, err = f.svc.AddEstimationItem(ctx, "vendor-1", models.EstimationItemRequest{ServiceID: "venue-1"})
	require.Error(t, err)
	de, ok := AsError(err)
	require.True(t, ok)
	assert.Equal(t, CodeForbidden, de.Code)
	assert.Equal(t, MsgOwnListing, de.Message)
}

func TestRemoveEstimationLines_DeletesEmptyEstimation(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	est := f.newEstimation(t, "user-1")

	updated, err := f.svc.RemoveEstimationService(ctx, "user-1", est.ID, "venue-1")
	require.NoError(t, err)
	require.NotNil(t, updated)
	assert.Equal(t, 2000.0, updated.TotalCost)

	_, err = f.svc.RemoveEstimationService(ctx, "user-1", est.ID, "venue-1")
	assert.True(t, IsCode(err, CodeNotFound))

	updated, err = f.svc.RemoveEstimationCard(ctx, "user-1", est.ID, "card-1")
	require.NoError(t, err)
	assert.Nil(t, updated)

	list, err := f.svc.ListEstimations(ctx, "user-1", models.PageQuery{})
	require.NoError(t, err)
	assert.Empty(t, list.Data)
	assert.Equal(t, 5, list.Pagination.Limit)
}

func TestRemoveEstimation(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	est := f.newEstimation(t, "user-1")

	assert.True(t, IsCode(f.svc.RemoveEstimation(ctx, "user-2", est.ID), CodeNotFound))
	require.NoError(t, f.svc.RemoveEstimation(ctx, "user-1", est.ID))
	assert.True(t, IsCode(f.svc.RemoveEstimation(ctx, "user-1", est.ID), CodeNotFound))
}

func TestConvertEstimation_BooksEveryLine(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	est := f.newEstimation(t, "user-1")

	bookings, err := f.svc.ConvertEstimation(ctx, "user-1", est.ID, models.ConvertEstimationRequest{DateTime: "2026-06-20"})
	require.NoError(t, err)
	require.Len(t, bookings, 2)

	var total float64
	for _, b := range bookings {
		assert.Equal(t, models.BookingStatusPending, b.Status)
		assert.Equal(t, est.ID, b.EstimationID)
		assert.Equal(t, time.Date(2026, time.June, 20, 0, 0, 0, 0, time.UTC), b.Date)
		assert.NotEmpty(t, b.ID)
		total += b.Price
	}
	assert.Equal(t, 22000.0, total)
	assert.Equal(t, "03001234567", bookings[0].VendorPhone)

	_, err = f.svc.ConvertEstimation(ctx, "user-1", est.ID, models.ConvertEstimationRequest{DateTime: "2026-06-20"})
	assert.True(t, IsCode(err, CodeNotFound), "converted estimation is removed")

	list, err := f.svc.ListBookings(ctx, "user-1", models.PageQuery{Page: 1})
	require.NoError(t, err)
	assert.Equal(t, int64(2), list.Pagination.Total)
}

func TestConvertEstimation_RejectsBadDates(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	est := f.newEstimation(t, "user-1")

	for _, raw := range []string{"", "20/06/2026", "2026-05-31"} {
		_, err := f.svc.ConvertEstimation(ctx, "user-1", est.ID, models.ConvertEstimationRequest{DateTime: raw})
		assert.True(t, IsCode(err, CodeInvalid), raw)
	}

	_, err := f.svc.ConvertEstimation(ctx, "user-1", est.ID, models.ConvertEstimationRequest{DateTime: "2026-06-01T18:00:00+05:00"})
	assert.NoError(t, err, "today is a valid event date")
}

func TestCreateBooking_DropsLineFromEstimation(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	est := f.newEstimation(t, "user-1")

	booking, err := f.svc.CreateBooking(ctx, "user-1", models.BookingRequest{
		CardTemplateID: "card-1",
		EstimationID:   est.ID,
		DateTime:       "2026-07-01",
		Quantity:       100,
	})
	require.NoError(t, err)
	assert.Equal(t, 2000.0, booking.Price)
	assert.True(t, booking.IsCard())

	list, err := f.svc.ListEstimations(ctx, "user-1", models.PageQuery{})
	require.NoError(t, err)
	require.Len(t, list.Data, 1)
	assert.Empty(t, list.Data[0].Cards)
	assert.Equal(t, 20000.0, list.Data[0].TotalCost)

	_, err = f.svc.CreateBooking(ctx, "vendor-1", models.BookingRequest{ServiceID: "venue-1", DateTime: "2026-07-01"})
	assert.True(t, IsCode(err, CodeForbidden))
}

func TestCancelBooking_PendingOnly(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	booking, err := f.svc.CreateBooking(ctx, "user-1", models.BookingRequest{ServiceID: "venue-1", PackageID: "gold", DateTime: "2026-07-01"})
	require.NoError(t, err)
	assert.Equal(t, 35000.0, booking.Price)

	_, err = f.svc.CancelBooking(ctx, "user-2", booking.ID)
	assert.True(t, IsCode(err, CodeNotFound))

	cancelled, err := f.svc.CancelBooking(ctx, "user-1", booking.ID)
	require.NoError(t, err)
	assert.Equal(t, models.BookingStatusCancelled, cancelled.Status)

	_, err = f.svc.CancelBooking(ctx, "user-1", booking.ID)
	assert.True(t, IsCode(err, CodeConflict))
}

func TestSubmitReview_Rules(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	booking, err := f.svc.CreateBooking(ctx, "user-1", models.BookingRequest{ServiceID: "venue-1", DateTime: "2026-06-10"})
	require.NoError(t, err)

	_, err = f.svc.SubmitReview(ctx, "user-1", models.ReviewRequest{BookingID: booking.ID, Rating: 6})
	assert.True(t, IsCode(err, CodeInvalid))
	_, err = f.svc.SubmitReview(ctx, "user-1", models.ReviewRequest{Rating: 4})
	assert.True(t, IsCode(err, CodeInvalid))
	_, err = f.svc.SubmitReview(ctx, "user-1", models.ReviewRequest{BookingID: booking.ID, Rating: 4})
	assert.True(t, IsCode(err, CodeConflict), "pending bookings cannot be reviewed")

	require.True(t, f.bookings.SetStatus(booking.ID, models.BookingStatusConfirmed))
	n, err := f.svc.CompleteDueBookings(ctx, testNow.AddDate(0, 0, 10))
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	review, err := f.svc.SubmitReview(ctx, "user-1", models.ReviewRequest{BookingID: booking.ID, Rating: 4, Comment: "  Lovely venue "})
	require.NoError(t, err)
	assert.Equal(t, "Lovely venue", review.Comment)
	assert.Equal(t, "venue-1", review.ServiceID)

	_, err = f.svc.SubmitReview(ctx, "user-1", models.ReviewRequest{BookingID: booking.ID, Rating: 5})
	assert.True(t, IsCode(err, CodeConflict))

	items, err := f.svc.ListReviews(ctx, "user-1", models.PageQuery{})
	require.NoError(t, err)
	require.Len(t, items.Data, 1)
	require.NotNil(t, items.Data[0].Review)
	assert.Equal(t, 4, items.Data[0].Review.Rating)
}

func TestGetStats_CachedAndInvalidated(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.newEstimation(t, "user-1")

	stats, err := f.svc.GetStats(ctx, "user-1")
	require.NoError(t, err)
	assert.Equal(t, int64(1), stats.Estimations)
	assert.Equal(t, 22000.0, stats.TotalEstimationCost)
	assert.Equal(t, int64(0), stats.Bookings)

	_, err = f.svc.GetStats(ctx, "user-1")
	require.NoError(t, err)
	assert.Equal(t, 1, f.cache.hits)

	_, err = f.svc.CreateBooking(ctx, "user-1", models.BookingRequest{ServiceID: "venue-1", DateTime: "2026-07-01"})
	require.NoError(t, err)

	stats, err = f.svc.GetStats(ctx, "user-1")
	require.NoError(t, err)
	assert.Equal(t, 1, f.cache.hits, "mutation must invalidate the cached stats")
	assert.Equal(t, int64(1), stats.Bookings)
	assert.Equal(t, int64(1), stats.PendingBookings)
}

func TestGetStats_AverageRounded(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	for _, rating := range []int{5, 4, 4} {
		booking, err := f.svc.CreateBooking(ctx, "user-1", models.BookingRequest{ServiceID: "venue-1", DateTime: "2026-06-02"})
		require.NoError(t, err)
		require.True(t, f.bookings.SetStatus(booking.ID, models.BookingStatusCompleted))
		_, err = f.svc.SubmitReview(ctx, "user-1", models.ReviewRequest{BookingID: booking.ID, Rating: rating})
		require.NoError(t, err)
	}

	stats, err := f.svc.GetStats(ctx, "user-1")
	require.NoError(t, err)
	assert.Equal(t, int64(3), stats.Reviews)
	assert.Equal(t, 4.33, stats.AvgRating)
	assert.Equal(t, int64(3), stats.CompletedBookings)
}
