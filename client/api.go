// Package client drives the EazyWed user dashboard against the HTTP API:
// paginated tab loading, booking from estimations, reviews, deletions and
// the data behind the dashboard charts.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strconv"
	"strings"
	"time"

	"eazywed/models"
)

// APIError is a non-2xx response. Message carries the server's message when
// the body had one.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error %d: %s", e.Status, e.Message)
}

// MessageResponse is the body of every mutating endpoint.
type MessageResponse struct {
	Message string `json:"message"`
}

// Client wraps the HTTP calls of the dashboard API. Credentials travel as a
// cookie (through the jar) and, when set, as a bearer token.
type Client struct {
	baseURL *url.URL
	http    *http.Client
	token   string
}

type Option func(*Client)

// WithToken sends the token as a bearer Authorization header.
func WithToken(token string) Option {
	return func(c *Client) { c.token = token }
}

// WithHTTPClient replaces the default HTTP client. Its jar is kept if set.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.http = hc }
}

// New returns a client for the API rooted at baseURL.
func New(baseURL string, opts ...Option) (*Client, error) {
	u, err := url.Parse(strings.TrimRight(baseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("invalid base url: %w", err)
	}
	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create cookie jar: %w", err)
	}
	c := &Client{
		baseURL: u,
		http:    &http.Client{Timeout: 15 * time.Second, Jar: jar},
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.http.Jar == nil {
		c.http.Jar = jar
	}
	return c, nil
}

// SetSessionCookie stores the session token cookie for the API host.
func (c *Client) SetSessionCookie(token string) {
	c.http.Jar.SetCookies(c.baseURL, []*http.Cookie{{Name: "token", Value: token, Path: "/"}})
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out interface{}) error {
	u := *c.baseURL
	u.Path = c.baseURL.Path + path
	if query != nil {
		u.RawQuery = query.Encode()
	}

	var reader io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request: %w", err)
		}
		reader = bytes.NewReader(buf)
	}
	req, err := http.NewRequestWithContext(ctx, method, u.String(), reader)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		apiErr := &APIError{Status: resp.StatusCode}
		var msg MessageResponse
		if json.Unmarshal(raw, &msg) == nil {
			apiErr.Message = msg.Message
		}
		return apiErr
	}
	if out == nil || len(raw) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("failed to decode %s %s: %w", method, path, err)
	}
	return nil
}

func pageQuery(page, limit int) url.Values {
	q := url.Values{}
	q.Set("page", strconv.Itoa(page))
	q.Set("limit", strconv.Itoa(limit))
	return q
}

func (c *Client) Stats(ctx context.Context) (*models.DashboardStats, error) {
	var stats models.DashboardStats
	if err := c.do(ctx, http.MethodGet, "/dashboard/user/stats", nil, nil, &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}

func (c *Client) Estimations(ctx context.Context, page, limit int) (*models.ListResponse[models.Estimation], error) {
	var list models.ListResponse[models.Estimation]
	if err := c.do(ctx, http.MethodGet, "/dashboard/user/estimations", pageQuery(page, limit), nil, &list); err != nil {
		return nil, err
	}
	return &list, nil
}

func (c *Client) Bookings(ctx context.Context, page, limit int) (*models.ListResponse[models.Booking], error) {
	var list models.ListResponse[models.Booking]
	if err := c.do(ctx, http.MethodGet, "/dashboard/user/bookings", pageQuery(page, limit), nil, &list); err != nil {
		return nil, err
	}
	return &list, nil
}

func (c *Client) Reviews(ctx context.Context, page, limit int) (*models.ListResponse[models.ReviewItem], error) {
	var list models.ListResponse[models.ReviewItem]
	if err := c.do(ctx, http.MethodGet, "/dashboard/user/reviews", pageQuery(page, limit), nil, &list); err != nil {
		return nil, err
	}
	return &list, nil
}

// AddEstimationItem adds a service package or card, starting a new
// estimation when req.EstimationID is empty.
func (c *Client) AddEstimationItem(ctx context.Context, req models.EstimationItemRequest) (*models.Estimation, error) {
	var resp struct {
		Estimation models.Estimation `json:"estimation"`
	}
	if err := c.do(ctx, http.MethodPost, "/dashboard/user/estimations/items", nil, req, &resp); err != nil {
		return nil, err
	}
	return &resp.Estimation, nil
}

func (c *Client) DeleteEstimation(ctx context.Context, estimationID string) (*MessageResponse, error) {
	return c.message(ctx, http.MethodDelete, "/dashboard/user/estimations/"+url.PathEscape(estimationID), nil)
}

func (c *Client) DeleteEstimationService(ctx context.Context, estimationID, serviceID string) (*MessageResponse, error) {
	path := "/dashboard/user/estimations/" + url.PathEscape(estimationID) + "/services/" + url.PathEscape(serviceID)
	return c.message(ctx, http.MethodDelete, path, nil)
}

func (c *Client) DeleteEstimationCard(ctx context.Context, estimationID, cardID string) (*MessageResponse, error) {
	path := "/dashboard/user/estimations/" + url.PathEscape(estimationID) + "/cards/" + url.PathEscape(cardID)
	return c.message(ctx, http.MethodDelete, path, nil)
}

// ConvertEstimation books every line of the estimation in one request.
func (c *Client) ConvertEstimation(ctx context.Context, req models.ConvertEstimationRequest) (*MessageResponse, error) {
	path := "/dashboard/user/estimations/" + url.PathEscape(req.EstimationID) + "/convert"
	return c.message(ctx, http.MethodPost, path, req)
}

func (c *Client) CreateBooking(ctx context.Context, req models.BookingRequest) (*MessageResponse, error) {
	return c.message(ctx, http.MethodPost, "/dashboard/user/bookings", req)
}

func (c *Client) CancelBooking(ctx context.Context, bookingID string) (*MessageResponse, error) {
	return c.message(ctx, http.MethodPatch, "/dashboard/user/bookings/"+url.PathEscape(bookingID)+"/cancel", nil)
}

func (c *Client) SubmitReview(ctx context.Context, req models.ReviewRequest) (*MessageResponse, error) {
	return c.message(ctx, http.MethodPost, "/dashboard/user/reviews", req)
}

func (c *Client) message(ctx context.Context, method, path string, body interface{}) (*MessageResponse, error) {
	var msg MessageResponse
	if err := c.do(ctx, method, path, nil, body, &msg); err != nil {
		return nil, err
	}
	return &msg, nil
}

type dataEnvelope[T any] struct {
	Data []T `json:"data"`
}

func getData[T any](ctx context.Context, c *Client, path string, query url.Values) ([]T, error) {
	var env dataEnvelope[T]
	if err := c.do(ctx, http.MethodGet, path, query, nil, &env); err != nil {
		return nil, err
	}
	return env.Data, nil
}

func limitQuery(limit int) url.Values {
	q := url.Values{}
	if limit > 0 {
		q.Set("limit", strconv.Itoa(limit))
	}
	return q
}

// Services lists a category slider.
func (c *Client) Services(ctx context.Context, category string, limit int) ([]models.VendorService, error) {
	q := limitQuery(limit)
	q.Set("category", category)
	return getData[models.VendorService](ctx, c, "/services", q)
}

// SearchServices runs a name search, optionally inside a category.
func (c *Client) SearchServices(ctx context.Context, query, category string, limit int) ([]models.VendorService, error) {
	q := limitQuery(limit)
	q.Set("q", query)
	if category != "" {
		q.Set("category", category)
	}
	return getData[models.VendorService](ctx, c, "/services", q)
}

func (c *Client) Discounted(ctx context.Context, limit int) ([]models.VendorService, error) {
	return getData[models.VendorService](ctx, c, "/services/discounted", limitQuery(limit))
}

func (c *Client) Recommendations(ctx context.Context, limit int) ([]models.VendorService, error) {
	return getData[models.VendorService](ctx, c, "/services/recommendations", limitQuery(limit))
}

func (c *Client) Cards(ctx context.Context, limit int) ([]models.CardTemplate, error) {
	return getData[models.CardTemplate](ctx, c, "/cards", limitQuery(limit))
}

func (c *Client) TrendingSearches(ctx context.Context, limit int) ([]models.TrendingSearch, error) {
	return getData[models.TrendingSearch](ctx, c, "/search/trending", limitQuery(limit))
}
