package pagequery

import (
	"github.com/puzpuzpuz/xsync/v3"

	"github.com/goliatone/go-query-cache/inventory"
	"github.com/goliatone/go-query-cache/querycache"
)

// Registry hands out one ListQuery per (entity, filter) pair so that view
// collaborators and the prefetch warm-up share page sequences instead of
// racing each other. Changing the filter is a distinct key: it neither
// invalidates nor merges with other filters' cached pages.
type Registry struct {
	cache   *querycache.Cache
	queries *xsync.MapOf[string, any]
}

// NewRegistry builds a registry over the session cache.
func NewRegistry(cache *querycache.Cache) *Registry {
	return &Registry{
		cache:   cache,
		queries: xsync.NewMapOf[string, any](),
	}
}

// Cache returns the underlying query cache.
func (r *Registry) Cache() *querycache.Cache {
	return r.cache
}

// For returns the shared list query for (entity, filter), creating it on
// first use with the cache's default page size.
//
// Since Go methods cannot have type parameters, this is provided as a
// package-level function. One element type per listing key is assumed; a
// mismatch yields a standalone query that still shares the cache, so key
// coalescing holds either way.
func For[T any](r *Registry, entity, filter string, fetch inventory.PageFetcher[T]) *ListQuery[T] {
	storeKey := entity + querycache.KeySeparator + filter

	held, _ := r.queries.LoadOrCompute(storeKey, func() any {
		return NewListQuery(r.cache, entity, filter, 0, fetch)
	})

	if q, ok := held.(*ListQuery[T]); ok {
		return q
	}
	return NewListQuery(r.cache, entity, filter, 0, fetch)
}

// Read returns the current state of the (entity, filter) listing without
// fetching. Unknown listings read as the empty state.
func Read[T any](r *Registry, entity, filter string) State[T] {
	held, ok := r.queries.Load(entity + querycache.KeySeparator + filter)
	if !ok {
		return State[T]{}
	}

	q, isQuery := held.(*ListQuery[T])
	if !isQuery {
		return State[T]{}
	}
	return q.Read()
}
