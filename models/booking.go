package models

import "time"

// Booking statuses.
const (
	BookingStatusPending   = "pending"
	BookingStatusConfirmed = "confirmed"
	BookingStatusCompleted = "completed"
	BookingStatusCancelled = "cancelled"
)

// Booking is a reservation of a single vendor service or card template.
type Booking struct {
	ID             string    `bson:"booking_id" json:"booking_id"`                                   // Unique booking identifier (UUID)
	UserID         string    `bson:"user_id" json:"user_id"`                                         // User who made the booking
	ServiceID      string    `bson:"service_id,omitempty" json:"service_id,omitempty"`               // Set for service bookings
	CardTemplateID string    `bson:"card_template_id,omitempty" json:"card_template_id,omitempty"`   // Set for card bookings
	PackageID      string    `bson:"package_id,omitempty" json:"package_id,omitempty"`               // Service package
	EstimationID   string    `bson:"estimation_id,omitempty" json:"estimation_id,omitempty"`         // Estimation the booking came from
	Name           string    `bson:"name" json:"name"`                                               // Service or card name at booking time
	Status         string    `bson:"status" json:"status"`                                           // pending, confirmed, completed, cancelled
	Date           time.Time `bson:"date" json:"date"`                                               // Event date
	Quantity       int       `bson:"quantity" json:"quantity"`                                       // Units booked
	Price          float64   `bson:"price" json:"price"`                                             // Unit price times quantity
	VendorID       string    `bson:"vendor_id" json:"vendor_id"`                                     // Listing owner
	VendorPhone    string    `bson:"vendor_phone,omitempty" json:"vendor_phone,omitempty"`           // Contact number for chat links
	CreatedAt      time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt      time.Time `bson:"updated_at" json:"updated_at"`
}

// Cancellable reports whether the user may still cancel the booking.
func (b *Booking) Cancellable() bool {
	return b.Status == BookingStatusPending
}

// Reviewable reports whether the booking may receive a review.
func (b *Booking) Reviewable() bool {
	return b.Status == BookingStatusCompleted
}

// IsCard reports whether the booking references a card template.
func (b *Booking) IsCard() bool {
	return b.CardTemplateID != ""
}

// ValidBookingStatus reports whether s is a known booking status.
func ValidBookingStatus(s string) bool {
	switch s {
	case BookingStatusPending, BookingStatusConfirmed, BookingStatusCompleted, BookingStatusCancelled:
		return true
	}
	return false
}
