package pagequery

import (
	"context"
	"sync"

	"github.com/goliatone/go-query-cache/inventory"
	"github.com/goliatone/go-query-cache/querycache"
)

// ListQuery models one entity listing as an expandable sequence of pages
// under the logical (entity, filter) key. Pages live in the query cache, one
// entry per page number; the query itself only tracks how far the sequence
// has been extended.
//
// Page fetches for one listing are serialized by the query's mutex, so pages
// are appended strictly in increasing page-number order no matter how
// callers interleave.
type ListQuery[T any] struct {
	entity   string
	filter   string
	pageSize int
	fetch    inventory.PageFetcher[T]
	cache    *querycache.Cache

	mu       sync.Mutex
	lastPage int
	hasNext  bool
}

// State is the read contract exposed to view collaborators: the pages
// fetched so far plus the flags a list view needs to render without knowing
// fetch mechanics.
type State[T any] struct {
	Pages     []inventory.Page[T]
	IsStale   bool
	IsLoading bool
	Err       error
}

// NewListQuery builds a list query bound to a cache and a page fetcher.
// A pageSize of 0 falls back to the cache's configured default.
func NewListQuery[T any](cache *querycache.Cache, entity, filter string, pageSize int, fetch inventory.PageFetcher[T]) *ListQuery[T] {
	if pageSize <= 0 {
		pageSize = cache.Config().DefaultPageSize
	}
	return &ListQuery[T]{
		entity:   entity,
		filter:   filter,
		pageSize: pageSize,
		fetch:    fetch,
		cache:    cache,
	}
}

// Entity returns the entity type this query lists.
func (q *ListQuery[T]) Entity() string { return q.entity }

// Filter returns the filter string this query lists under.
func (q *ListQuery[T]) Filter() string { return q.filter }

// FetchFirstPage fetches page 1 through the entity command interface and
// stores it in the cache under (entity, filter, page=1). A fresh cached page
// is served without a remote call; a stale one is served while refreshing in
// the background.
func (q *ListQuery[T]) FetchFirstPage(ctx context.Context) (inventory.Page[T], error) {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.fetchPageLocked(ctx, 1)
}

// FetchNextPage extends the sequence by one page. It is valid only while the
// most recently stored page reports HasNext; otherwise, and before any first
// page was fetched, it is a no-op that returns the existing state unchanged
// and issues no remote call.
func (q *ListQuery[T]) FetchNextPage(ctx context.Context) (inventory.Page[T], error) {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.lastPage == 0 || !q.hasNext {
		return q.lastPageLocked(), nil
	}
	return q.fetchPageLocked(ctx, q.lastPage+1)
}

// Warm is the prefetch entry point: fetch the first page, caring only about
// the outcome.
func (q *ListQuery[T]) Warm(ctx context.Context) error {
	_, err := q.FetchFirstPage(ctx)
	return err
}

// Read assembles the current state of the listing from the cache without
// triggering any fetch. Pages evicted by retention simply drop out of the
// sequence; page 1 is re-established by the next FetchFirstPage.
func (q *ListQuery[T]) Read() State[T] {
	q.mu.Lock()
	defer q.mu.Unlock()

	var state State[T]
	for page := 1; page <= q.lastPage; page++ {
		entry, ok := q.cache.Get(querycache.NewPageKey(q.entity, q.filter, page))
		if !ok {
			continue
		}

		switch entry.Status {
		case querycache.StatusStale:
			state.IsStale = true
		case querycache.StatusFetching:
			state.IsLoading = true
		case querycache.StatusError:
			if state.Err == nil {
				state.Err = entry.Err
			}
		}

		if data, isPage := entry.Data.(inventory.Page[T]); isPage {
			state.Pages = append(state.Pages, data)
		}
	}

	// A fetch that failed before its page ever held data does not extend the
	// sequence, so its error entry sits one past it: page 1 after a failed
	// first load, page N+1 after a failed extension. Surface it to readers.
	if state.Err == nil {
		entry, ok := q.cache.Get(querycache.NewPageKey(q.entity, q.filter, q.lastPage+1))
		if ok && entry.Status == querycache.StatusError {
			state.Err = entry.Err
		}
	}
	return state
}

func (q *ListQuery[T]) fetchPageLocked(ctx context.Context, page int) (inventory.Page[T], error) {
	key := querycache.NewPageKey(q.entity, q.filter, page)

	result, entry, err := querycache.GetOrFetch(ctx, q.cache, key, func(ctx context.Context) (inventory.Page[T], error) {
		return q.fetch(ctx, page, q.pageSize, q.filter)
	})
	if err != nil {
		return inventory.Page[T]{}, err
	}

	if entry.HasData() {
		if page > q.lastPage {
			q.lastPage = page
		}
		if page == q.lastPage {
			q.hasNext = result.HasNext
		}
	}
	return result, nil
}

// lastPageLocked returns the most recently stored page for no-op reads.
func (q *ListQuery[T]) lastPageLocked() inventory.Page[T] {
	if q.lastPage == 0 {
		return inventory.Page[T]{}
	}

	entry, ok := q.cache.Get(querycache.NewPageKey(q.entity, q.filter, q.lastPage))
	if !ok {
		return inventory.Page[T]{}
	}
	if data, isPage := entry.Data.(inventory.Page[T]); isPage {
		return data
	}
	return inventory.Page[T]{}
}
