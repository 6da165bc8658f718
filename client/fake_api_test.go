package client

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"eazywed/models"
)

type recordedRequest struct {
	Method string
	Path   string
	Query  string
	Body   map[string]interface{}
}

// fakeAPI is a scripted dashboard API that records every request.
type fakeAPI struct {
	mu       sync.Mutex
	requests []recordedRequest
	handlers map[string]http.HandlerFunc
	server   *httptest.Server
}

func newFakeAPI(t *testing.T) *fakeAPI {
	t.Helper()
	f := &fakeAPI{handlers: make(map[string]http.HandlerFunc)}
	f.server = httptest.NewServer(http.HandlerFunc(f.serve))
	t.Cleanup(f.server.Close)

	f.handle("GET /dashboard/user/stats", jsonResponse(http.StatusOK, models.DashboardStats{Estimations: 1}))
	f.handle("GET /dashboard/user/estimations", jsonResponse(http.StatusOK, models.ListResponse[models.Estimation]{
		Data:       []models.Estimation{},
		Pagination: models.NewPagination(1, DefaultPageLimit, 0),
	}))
	f.handle("GET /dashboard/user/bookings", jsonResponse(http.StatusOK, models.ListResponse[models.Booking]{
		Data:       []models.Booking{},
		Pagination: models.NewPagination(1, DefaultPageLimit, 0),
	}))
	f.handle("GET /dashboard/user/reviews", jsonResponse(http.StatusOK, models.ListResponse[models.ReviewItem]{
		Data:       []models.ReviewItem{},
		Pagination: models.NewPagination(1, DefaultPageLimit, 0),
	}))
	return f
}

func (f *fakeAPI) handle(route string, h http.HandlerFunc) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.handlers[route] = h
}

func (f *fakeAPI) serve(w http.ResponseWriter, r *http.Request) {
	rec := recordedRequest{Method: r.Method, Path: r.URL.Path, Query: r.URL.RawQuery}
	if raw, _ := io.ReadAll(r.Body); len(raw) > 0 {
		_ = json.Unmarshal(raw, &rec.Body)
	}

	f.mu.Lock()
	f.requests = append(f.requests, rec)
	h, ok := f.handlers[r.Method+" "+r.URL.Path]
	f.mu.Unlock()

	if !ok {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"message":"not found"}`))
		return
	}
	h(w, r)
}

func (f *fakeAPI) recorded(method, path string) []recordedRequest {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []recordedRequest
	for _, r := range f.requests {
		if r.Method == method && r.Path == path {
			out = append(out, r)
		}
	}
	return out
}

func (f *fakeAPI) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.requests)
}

func jsonResponse(status int, body interface{}) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_ = json.NewEncoder(w).Encode(body)
	}
}

type recordingNotifier struct {
	mu        sync.Mutex
	successes []string
	errors    []string
}

func (n *recordingNotifier) Success(msg string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.successes = append(n.successes, msg)
}

func (n *recordingNotifier) Error(msg string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.errors = append(n.errors, msg)
}

func (n *recordingNotifier) lastError() string {
	n.mu.Lock()
	defer n.mu.Unlock()
	if len(n.errors) == 0 {
		return ""
	}
	return n.errors[len(n.errors)-1]
}

func (n *recordingNotifier) lastSuccess() string {
	n.mu.Lock()
	defer n.mu.Unlock()
	if len(n.successes) == 0 {
		return ""
	}
	return n.successes[len(n.successes)-1]
}

func newTestDashboard(t *testing.T, f *fakeAPI) (*Dashboard, *recordingNotifier) {
	t.Helper()
	api, err := New(f.server.URL, WithToken("test-token"))
	if err != nil {
		t.Fatal(err)
	}
	n := &recordingNotifier{}
	return NewDashboard(api, n), n
}

// sampleEstimation has two service lines and one card line.
func sampleEstimation() models.Estimation {
	est := models.Estimation{
		ID:     "5f1c2a9e-77aa-4b1b-9d0e-1234567890ab",
		UserID: "user-1",
		Services: []models.EstimationService{
			{ServiceID: "svc-1", Name: "Lens Studio", PackageID: "pkg-1", PackagePrice: 10000, Quantity: 2},
			{ServiceID: "svc-2", Name: "Royal Marquee", PackageID: "pkg-2", PackagePrice: 50000, Quantity: 1},
		},
		Cards: []models.EstimationCard{
			{CardID: "card-1", Name: "Gold Foil", PricePerCard: 500, Quantity: 4},
		},
	}
	est.RecalculateTotal()
	return est
}
