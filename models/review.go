package models

import "time"

// Review is a user's rating of a completed booking. One per booking.
type Review struct {
	ID             string    `bson:"review_id" json:"review_id"`
	BookingID      string    `bson:"booking_id" json:"booking_id"`
	UserID         string    `bson:"user_id" json:"user_id"`
	ServiceID      string    `bson:"service_id,omitempty" json:"service_id,omitempty"`
	CardTemplateID string    `bson:"card_template_id,omitempty" json:"card_template_id,omitempty"`
	Rating         int       `bson:"rating" json:"rating"`   // 1 to 5
	Comment        string    `bson:"comment" json:"comment"` // Optional feedback
	CreatedAt      time.Time `bson:"created_at" json:"created_at"`
}

// ReviewItem is a row of the reviews tab: a completed booking and its review, if any.
type ReviewItem struct {
	BookingID      string    `json:"booking_id"`
	ServiceID      string    `json:"service_id,omitempty"`
	CardTemplateID string    `json:"card_template_id,omitempty"`
	Name           string    `json:"name"`
	Date           time.Time `json:"date"`
	Review         *Review   `json:"review,omitempty"`
}

const (
	MinRating = 1
	MaxRating = 5
)
