// Package memory holds in-process implementations of the repository
// interfaces. They back local development without MongoDB and the tests of
// the service and handler layers.
package memory

import (
	"sort"
	"time"

	"eazywed/models"
)

// page slices an already sorted result set.
func page[T any](items []T, q models.PageQuery) []T {
	p := models.Pagination{Page: q.Page, Limit: q.Limit}
	start := int(p.Skip())
	if start >= len(items) {
		return []T{}
	}
	end := len(items)
	if q.Limit > 0 && start+q.Limit < end {
		end = start + q.Limit
	}
	out := make([]T, end-start)
	copy(out, items[start:end])
	return out
}

type entry[T any] struct {
	seq   int64
	value T
}

// newestFirst orders entries by creation time, then by insertion order.
func newestFirst[T any](entries []entry[T], created func(T) time.Time) []T {
	sort.SliceStable(entries, func(i, j int) bool {
		ci, cj := created(entries[i].value), created(entries[j].value)
		if !ci.Equal(cj) {
			return ci.After(cj)
		}
		return entries[i].seq > entries[j].seq
	})
	out := make([]T, 0, len(entries))
	for _, e := range entries {
		out = append(out, e.value)
	}
	return out
}
