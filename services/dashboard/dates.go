package dashboard

import (
	"strings"
	"time"
)

const dateLayout = "2006-01-02"

// parseEventDate accepts a calendar date or an RFC 3339 timestamp. The date
// must not lie before today.
func (s *DefaultDashboardService) parseEventDate(raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, invalid("An event date is required")
	}

	date, err := time.Parse(dateLayout, raw)
	if err != nil {
		ts, tsErr := time.Parse(time.RFC3339, raw)
		if tsErr != nil {
			return time.Time{}, invalid("Event date must be in YYYY-MM-DD format")
		}
		date = time.Date(ts.Year(), ts.Month(), ts.Day(), 0, 0, 0, 0, time.UTC)
	}

	if date.Before(startOfDay(s.now())) {
		return time.Time{}, invalid("Event date cannot be in the past")
	}
	return date, nil
}

func startOfDay(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
