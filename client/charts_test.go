package client

import (
	"testing"
	"time"

	"eazywed/models"

	"github.com/stretchr/testify/assert"
)

func TestFormatPKR(t *testing.T) {
	assert.Equal(t, "PKR 22,000", FormatPKR(22000))
	assert.Equal(t, "PKR 0", FormatPKR(0))
	assert.Equal(t, "PKR 1,250,000", FormatPKR(1250000))
	assert.Equal(t, "PKR 999.50", FormatPKR(999.5))
}

func TestCharts(t *testing.T) {
	stats := models.DashboardStats{
		Estimations: 3, Bookings: 4, Reviews: 2,
		PendingBookings: 1, ConfirmedBookings: 1, CompletedBookings: 2,
		TotalEstimationCost: 22000, AvgRating: 4.33,
	}

	assert.Equal(t, []ChartPoint{
		{Name: "Estimations", Value: 3},
		{Name: "Bookings", Value: 4},
		{Name: "Reviews", Value: 2},
	}, ActivityChart(stats))
	assert.Equal(t, []ChartPoint{
		{Name: "Pending", Value: 1},
		{Name: "Confirmed", Value: 1},
		{Name: "Completed", Value: 2},
	}, BookingStatusChart(stats))
	assert.Equal(t, int64(9), TotalActivities(stats))

	trend := EstimationTrend(stats, time.Date(2026, time.June, 3, 0, 0, 0, 0, time.UTC))
	assert.Equal(t, []TrendPoint{{Month: "Jun", Estimations: 3, Cost: 22000}}, trend)

	r := Rating(stats)
	assert.Equal(t, 4.3, r.Average)
	assert.Equal(t, int64(2), r.Count)
	assert.Equal(t, [models.MaxRating]bool{true, true, true, true, false}, r.Stars)

	assert.Equal(t, [models.MaxRating]bool{}, Rating(models.DashboardStats{}).Stars)
}

func TestActionsFor(t *testing.T) {
	pending := ActionsFor(models.Booking{Status: models.BookingStatusPending, VendorPhone: "0300-1234567"})
	assert.Equal(t, BookingActions{Cancel: true, Chat: true}, pending)

	completed := ActionsFor(models.Booking{Status: models.BookingStatusCompleted})
	assert.Equal(t, BookingActions{Review: true}, completed)

	confirmed := ActionsFor(models.Booking{Status: models.BookingStatusConfirmed})
	assert.Equal(t, BookingActions{}, confirmed)
}

func TestWhatsAppLink(t *testing.T) {
	assert.Equal(t, "https://wa.me/923001234567?text=Inquiry+about+Royal+Marquee",
		ChatLink("0300-1234567", "Royal Marquee"))
	assert.Equal(t, "https://wa.me/923001234567", WhatsAppLink("+92 300 1234567", ""))
	assert.Empty(t, WhatsAppLink("n/a", "hi"))
}
