package cron

import (
	"context"
	"errors"
	"testing"
	"time"

	"eazywed/database/repository/memory"
	"eazywed/models"
	"eazywed/services/dashboard"
	"eazywed/services/tasks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type failingCompleter struct{}

func (failingCompleter) CompleteDueBookings(context.Context, time.Time) (int64, error) {
	return 0, errors.New("mongo unavailable")
}

func TestHandleCompleteBookings(t *testing.T) {
	ctx := context.Background()
	bookings := memory.NewBookingRepo()
	svc := &dashboard.DefaultDashboardService{Bookings: bookings}

	now := time.Date(2026, time.May, 10, 9, 0, 0, 0, time.UTC)
	due := []models.Booking{
		{UserID: "u1", Date: time.Date(2026, time.May, 9, 0, 0, 0, 0, time.UTC)},
		{UserID: "u1", Date: time.Date(2026, time.May, 10, 0, 0, 0, 0, time.UTC)},
	}
	require.NoError(t, bookings.CreateMany(ctx, due))
	for _, b := range due {
		require.True(t, bookings.SetStatus(b.ID, models.BookingStatusConfirmed))
	}

	task, _ := tasks.NewCompleteBookingsTask()
	handler := HandleCompleteBookings(svc, func() time.Time { return now }, zap.NewNop())
	require.NoError(t, handler.ProcessTask(ctx, task))

	counts, err := bookings.CountByStatus(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, int64(1), counts[models.BookingStatusCompleted], "only bookings before today complete")
	assert.Equal(t, int64(1), counts[models.BookingStatusConfirmed])
}

func TestHandleCompleteBookings_PropagatesErrors(t *testing.T) {
	task, opts := tasks.NewCompleteBookingsTask()
	assert.Equal(t, tasks.TypeCompleteBookings, task.Type())
	assert.Len(t, opts, 2)

	handler := HandleCompleteBookings(failingCompleter{}, time.Now, zap.NewNop())
	assert.Error(t, handler.ProcessTask(context.Background(), task))
}
