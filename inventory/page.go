package inventory

import "context"

// Page is one page of an entity listing as returned by the command layer.
type Page[T any] struct {
	Items      []T  `json:"items"`
	PageNumber int  `json:"page_number"`
	TotalCount int  `json:"total_count"`
	HasNext    bool `json:"has_next"`
}

// NewPage assembles a page from a query result, deriving HasNext from the
// position of the page within the total row count. Zero items is a valid
// page, not an error.
func NewPage[T any](items []T, pageNumber, pageSize, totalCount int) Page[T] {
	return Page[T]{
		Items:      items,
		PageNumber: pageNumber,
		TotalCount: totalCount,
		HasNext:    pageNumber*pageSize < totalCount,
	}
}

// PageFetcher is the entity command interface consumed by the cache layers:
// an asynchronous call returning one page of results for a 1-based page
// number, page size, and substring filter. An empty filter means unfiltered.
// Implementations may fail with a transport or backend error.
type PageFetcher[T any] func(ctx context.Context, pageNumber, pageSize int, filter string) (Page[T], error)
