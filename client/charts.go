package client

import (
	"math"
	"time"

	"eazywed/models"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// ChartPoint is one bar, slice or point of a chart.
type ChartPoint struct {
	Name  string
	Value float64
}

// TrendPoint is one month of the estimation trend.
type TrendPoint struct {
	Month       string
	Estimations int64
	Cost        float64
}

// RatingSummary is the star widget of the overview tab.
type RatingSummary struct {
	Average float64
	Stars   [models.MaxRating]bool
	Count   int64
}

// ActivityChart is the estimations, bookings and reviews bar chart.
func ActivityChart(s models.DashboardStats) []ChartPoint {
	return []ChartPoint{
		{Name: "Estimations", Value: float64(s.Estimations)},
		{Name: "Bookings", Value: float64(s.Bookings)},
		{Name: "Reviews", Value: float64(s.Reviews)},
	}
}

// BookingStatusChart is the booking status donut.
func BookingStatusChart(s models.DashboardStats) []ChartPoint {
	return []ChartPoint{
		{Name: "Pending", Value: float64(s.PendingBookings)},
		{Name: "Confirmed", Value: float64(s.ConfirmedBookings)},
		{Name: "Completed", Value: float64(s.CompletedBookings)},
	}
}

// EstimationTrend has a single point for the current month. No history is
// stored, so earlier months are not shown.
func EstimationTrend(s models.DashboardStats, now time.Time) []TrendPoint {
	return []TrendPoint{{
		Month:       now.Format("Jan"),
		Estimations: s.Estimations,
		Cost:        s.TotalEstimationCost,
	}}
}

// Rating summarizes the average rating to one decimal. Star i is lit when
// i is at most the average.
func Rating(s models.DashboardStats) RatingSummary {
	r := RatingSummary{
		Average: math.Round(s.AvgRating*10) / 10,
		Count:   s.Reviews,
	}
	for i := range r.Stars {
		r.Stars[i] = float64(i+1) <= s.AvgRating
	}
	return r
}

// TotalActivities is the headline count of the overview tab.
func TotalActivities(s models.DashboardStats) int64 {
	return s.Estimations + s.Bookings + s.Reviews
}

var pkrPrinter = message.NewPrinter(language.English)

// FormatPKR renders an amount as "PKR 22,000". Fractions are kept to two
// places only when present.
func FormatPKR(amount float64) string {
	if amount == math.Trunc(amount) {
		return pkrPrinter.Sprintf("PKR %d", int64(amount))
	}
	return pkrPrinter.Sprintf("PKR %.2f", amount)
}
