package client

import "eazywed/models"

// BookingActions are the buttons shown on a booking row.
type BookingActions struct {
	Cancel bool
	Review bool
	Chat   bool
}

// ActionsFor derives the row buttons from the booking status and vendor contact.
func ActionsFor(b models.Booking) BookingActions {
	return BookingActions{
		Cancel: b.Cancellable(),
		Review: b.Reviewable(),
		Chat:   b.VendorPhone != "",
	}
}

// Pagination returns the pagination control state of a list tab.
func (s DashboardState) Pagination(tab Tab) PageState {
	p, ok := s.Pages[tab]
	if !ok {
		return PageState{Page: 1}
	}
	return p
}
