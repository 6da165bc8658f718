package models

// DashboardStats aggregates a user's activity for the dashboard overview.
type DashboardStats struct {
	Estimations         int64   `json:"estimations"`
	Bookings            int64   `json:"bookings"`
	Reviews             int64   `json:"reviews"`
	PendingBookings     int64   `json:"pendingBookings"`
	ConfirmedBookings   int64   `json:"confirmedBookings"`
	CompletedBookings   int64   `json:"completedBookings"`
	CancelledBookings   int64   `json:"cancelledBookings"`
	TotalEstimationCost float64 `json:"totalEstimationCost"`
	AvgRating           float64 `json:"avgRating"`
}
