package models

// Pagination describes one page of a list response.
type Pagination struct {
	Page  int   `json:"page"`
	Limit int   `json:"limit"`
	Total int64 `json:"total"`
	Pages int   `json:"pages"`
}

// NewPagination computes the page count for total items at the given limit.
func NewPagination(page, limit int, total int64) Pagination {
	pages := 0
	if limit > 0 {
		pages = int((total + int64(limit) - 1) / int64(limit))
	}
	return Pagination{Page: page, Limit: limit, Total: total, Pages: pages}
}

// Skip is the number of documents before the page.
func (p Pagination) Skip() int64 {
	if p.Page <= 1 {
		return 0
	}
	return int64(p.Page-1) * int64(p.Limit)
}

// ListResponse is the envelope of every paginated dashboard endpoint.
type ListResponse[T any] struct {
	Data       []T        `json:"data"`
	Pagination Pagination `json:"pagination"`
}
