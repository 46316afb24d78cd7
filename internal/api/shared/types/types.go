package types

import "github.com/propsetu/estate-backend/internal/api/shared/constants"

// Pagination is the 1-based page selector shared by REST and GraphQL.
// Zero values fall back to the given defaults
type Pagination struct {
	Page  int
	Limit int
}

// NewPagination builds a Pagination from optional request values
func NewPagination(page, limit *int) Pagination {
	p := Pagination{}
	if page != nil {
		p.Page = *page
	}
	if limit != nil {
		p.Limit = *limit
	}
	return p
}

// Normalize clamps the pagination to valid bounds and returns limit and
// offset for the store
func (p Pagination) Normalize(defaultLimit int) (page, limit, offset int) {
	page = p.Page
	if page < 1 {
		page = constants.DEFAULT_PAGE
	}

	limit = p.Limit
	if limit < 1 {
		limit = defaultLimit
	}
	if limit > constants.MAX_PAGE_SIZE {
		limit = constants.MAX_PAGE_SIZE
	}

	return page, limit, (page - 1) * limit
}

// TotalPages computes the page count for a total row count and page size
func TotalPages(total int64, limit int) int {
	if limit <= 0 {
		return 0
	}
	return int((total + int64(limit) - 1) / int64(limit))
}
