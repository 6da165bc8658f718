package client

import (
	"eazywed/models"
)

// Tab is a dashboard panel.
type Tab string

const (
	TabOverview    Tab = "overview"
	TabEstimations Tab = "estimations"
	TabBookings    Tab = "bookings"
	TabReviews     Tab = "reviews"
)

// IsList reports whether the tab shows a paginated list.
func (t Tab) IsList() bool {
	return t == TabEstimations || t == TabBookings || t == TabReviews
}

// PageState is the pagination of one list tab.
type PageState struct {
	Page  int
	Limit int
	Total int64
	Pages int
}

func pageStateFrom(p models.Pagination) PageState {
	return PageState{Page: p.Page, Limit: p.Limit, Total: p.Total, Pages: p.Pages}
}

// CanPrev reports whether the previous page button is enabled.
func (p PageState) CanPrev() bool {
	return p.Page > 1
}

// CanNext reports whether the next page button is enabled.
func (p PageState) CanNext() bool {
	return p.Page < p.Pages
}

// DashboardState is everything the dashboard renders.
type DashboardState struct {
	ActiveTab   Tab
	Stats       models.DashboardStats
	Estimations []models.Estimation
	Bookings    []models.Booking
	Reviews     []models.ReviewItem
	Pages       map[Tab]PageState
}

func (s DashboardState) clone() DashboardState {
	out := s
	out.Estimations = make([]models.Estimation, len(s.Estimations))
	for i, e := range s.Estimations {
		e.Services = append([]models.EstimationService(nil), e.Services...)
		e.Cards = append([]models.EstimationCard(nil), e.Cards...)
		out.Estimations[i] = e
	}
	out.Bookings = append([]models.Booking(nil), s.Bookings...)
	out.Reviews = append([]models.ReviewItem(nil), s.Reviews...)
	out.Pages = make(map[Tab]PageState, len(s.Pages))
	for k, v := range s.Pages {
		out.Pages[k] = v
	}
	return out
}

func (s *DashboardState) findEstimation(id string) (*models.Estimation, bool) {
	for i := range s.Estimations {
		if s.Estimations[i].ID == id {
			return &s.Estimations[i], true
		}
	}
	return nil, false
}

func (s *DashboardState) findBooking(id string) (*models.Booking, bool) {
	for i := range s.Bookings {
		if s.Bookings[i].ID == id {
			return &s.Bookings[i], true
		}
	}
	return nil, false
}
