package client

import (
	"context"
	"fmt"
	"sync"
	"time"

	"eazywed/models"

	"go.uber.org/zap"
)

// DefaultPageLimit is the page size of every list tab.
const DefaultPageLimit = 5

// Dashboard holds the dashboard state and runs its workflows. It is safe for
// concurrent use; requests are made without holding the lock.
type Dashboard struct {
	api      *Client
	notifier Notifier
	logger   *zap.Logger
	limit    int
	now      func() time.Time

	mu           sync.Mutex
	state        DashboardState
	seq          map[Tab]uint64
	statsSeq     uint64
	statsApplied uint64
	bookingForm  BookingForm
	reviewForm   ReviewForm
	deletion     DeletionState
}

type DashboardOption func(*Dashboard)

func WithPageLimit(limit int) DashboardOption {
	return func(d *Dashboard) {
		if limit > 0 {
			d.limit = limit
		}
	}
}

func WithLogger(logger *zap.Logger) DashboardOption {
	return func(d *Dashboard) { d.logger = logger }
}

// WithClock overrides the clock used for default event dates.
func WithClock(now func() time.Time) DashboardOption {
	return func(d *Dashboard) { d.now = now }
}

func NewDashboard(api *Client, notifier Notifier, opts ...DashboardOption) *Dashboard {
	d := &Dashboard{
		api:      api,
		notifier: notifier,
		logger:   zap.NewNop(),
		limit:    DefaultPageLimit,
		now:      time.Now,
		seq:      make(map[Tab]uint64),
		state: DashboardState{
			ActiveTab: TabOverview,
			Pages:     make(map[Tab]PageState),
		},
	}
	for _, opt := range opts {
		opt(d)
	}
	if d.notifier == nil {
		d.notifier = LogNotifier{Logger: d.logger}
	}
	return d
}

// State returns a snapshot of the dashboard state.
func (d *Dashboard) State() DashboardState {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.state.clone()
}

// SwitchTab activates tab and loads its first page.
func (d *Dashboard) SwitchTab(ctx context.Context, tab Tab) error {
	d.mu.Lock()
	d.state.ActiveTab = tab
	d.mu.Unlock()
	return d.FetchTab(ctx, tab, 1)
}

// ChangePage loads another page of the active tab.
func (d *Dashboard) ChangePage(ctx context.Context, page int) error {
	d.mu.Lock()
	tab := d.state.ActiveTab
	d.mu.Unlock()
	if !tab.IsList() {
		return nil
	}
	if page < 1 {
		page = 1
	}
	return d.FetchTab(ctx, tab, page)
}

// Refresh reloads tab at its current page.
func (d *Dashboard) Refresh(ctx context.Context, tab Tab) error {
	d.mu.Lock()
	page := d.state.Pages[tab].Page
	d.mu.Unlock()
	if page < 1 {
		page = 1
	}
	return d.FetchTab(ctx, tab, page)
}

// reload fetches the first page of tab after a mutation, which may have
// removed the rows of the current page.
func (d *Dashboard) reload(ctx context.Context, tab Tab) error {
	return d.FetchTab(ctx, tab, 1)
}

type tabResult struct {
	estimations []models.Estimation
	bookings    []models.Booking
	reviews     []models.ReviewItem
	pagination  models.Pagination
}

// FetchTab loads the stats and, for list tabs, one page of the tab's list.
// A failure leaves the state untouched. Responses superseded by a newer
// fetch of the same tab are discarded.
func (d *Dashboard) FetchTab(ctx context.Context, tab Tab, page int) error {
	d.mu.Lock()
	d.seq[tab]++
	tabSeq := d.seq[tab]
	d.statsSeq++
	statsSeq := d.statsSeq
	d.mu.Unlock()

	stats, result, err := d.load(ctx, tab, page)
	if err != nil {
		d.logger.Warn("dashboard fetch failed", zap.String("tab", string(tab)), zap.Error(err))
		d.notifier.Error(fmt.Sprintf("Failed to load %s data", tab))
		return err
	}

	d.mu.Lock()
	defer d.mu.Unlock()
	if statsSeq > d.statsApplied {
		d.state.Stats = *stats
		d.statsApplied = statsSeq
	}
	if !tab.IsList() {
		return nil
	}
	if d.seq[tab] != tabSeq {
		d.logger.Debug("discarding stale tab response", zap.String("tab", string(tab)), zap.Int("page", page))
		return nil
	}
	switch tab {
	case TabEstimations:
		d.state.Estimations = result.estimations
	case TabBookings:
		d.state.Bookings = result.bookings
	case TabReviews:
		d.state.Reviews = result.reviews
	}
	d.state.Pages[tab] = pageStateFrom(result.pagination)
	return nil
}

func (d *Dashboard) load(ctx context.Context, tab Tab, page int) (*models.DashboardStats, *tabResult, error) {
	stats, err := d.api.Stats(ctx)
	if err != nil {
		return nil, nil, err
	}
	result := &tabResult{}
	switch tab {
	case TabEstimations:
		list, err := d.api.Estimations(ctx, page, d.limit)
		if err != nil {
			return nil, nil, err
		}
		result.estimations, result.pagination = list.Data, list.Pagination
	case TabBookings:
		list, err := d.api.Bookings(ctx, page, d.limit)
		if err != nil {
			return nil, nil, err
		}
		result.bookings, result.pagination = list.Data, list.Pagination
	case TabReviews:
		list, err := d.api.Reviews(ctx, page, d.limit)
		if err != nil {
			return nil, nil, err
		}
		result.reviews, result.pagination = list.Data, list.Pagination
	}
	return stats, result, nil
}
