package client

import (
	"errors"
	"strings"
)

// Errors raised before any request is sent.
var (
	ErrEstimationNotFound     = errors.New("Estimation not found")
	ErrServiceNotInEstimation = errors.New("Service not found in estimation")
	ErrCardNotInEstimation    = errors.New("Card not found in estimation")
	ErrBookingNotFound        = errors.New("Booking not found")
	ErrNotCancellable         = errors.New("Only pending bookings can be cancelled")
	ErrMissingInformation     = errors.New("Please provide all required information")
	ErrNoOpenForm             = errors.New("no form is open")
	ErrNothingToConfirm       = errors.New("no deletion awaiting confirmation")
	ErrDeletionInProgress     = errors.New("a deletion is already in progress")
)

// ownListingMessage is the server's refusal to book a user's own listing.
const ownListingMessage = "You cannot book your own service or card"

// messageFor picks the message shown for a failed action: the server's
// message when it sent one, else fallback.
func messageFor(err error, fallback string) string {
	var apiErr *APIError
	if errors.As(err, &apiErr) && strings.TrimSpace(apiErr.Message) != "" {
		return apiErr.Message
	}
	return fallback
}

// successMessage prefers the server's confirmation text.
func successMessage(resp *MessageResponse, fallback string) string {
	if resp != nil && resp.Message != "" {
		return resp.Message
	}
	return fallback
}
