package models

// BookingRequest books one estimation line: either a service package or a card template.
type BookingRequest struct {
	ServiceID      string `json:"service_id,omitempty"`
	CardTemplateID string `json:"card_template_id,omitempty"`
	PackageID      string `json:"package_id,omitempty"`
	EstimationID   string `json:"estimation_id,omitempty"`
	DateTime       string `json:"date_time"` // Event date (YYYY-MM-DD)
	Quantity       int    `json:"quantity"`
}

// ConvertEstimationRequest turns a whole estimation into bookings.
type ConvertEstimationRequest struct {
	EstimationID string `json:"estimationId"`
	DateTime     string `json:"date_time"`
}

// ReviewRequest rates a completed booking.
type ReviewRequest struct {
	BookingID string `json:"bookingId"`
	Rating    int    `json:"rating"`
	Comment   string `json:"comment"`
}

// EstimationItemRequest adds a service package or a card to an estimation.
// An empty EstimationID starts a new estimation.
type EstimationItemRequest struct {
	EstimationID   string `json:"estimation_id,omitempty"`
	ServiceID      string `json:"service_id,omitempty"`
	PackageID      string `json:"package_id,omitempty"`
	CardTemplateID string `json:"card_template_id,omitempty"`
	Quantity       int    `json:"quantity"`
}

// PageQuery carries the page and limit query parameters.
type PageQuery struct {
	Page  int `form:"page"`
	Limit int `form:"limit"`
}

// Normalize clamps page and limit into usable values.
func (q PageQuery) Normalize(defaultLimit, maxLimit int) PageQuery {
	if q.Page < 1 {
		q.Page = 1
	}
	if q.Limit < 1 {
		q.Limit = defaultLimit
	}
	if maxLimit > 0 && q.Limit > maxLimit {
		q.Limit = maxLimit
	}
	return q
}
