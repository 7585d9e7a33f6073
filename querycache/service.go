package querycache

import "context"

// GetOrFetch is a type-safe wrapper around Cache.GetOrFetch. The cache
// stores payloads as any; this recovers the concrete type for callers such
// as the paginated query layer.
//
// When the entry is served stale-while-error it may carry no payload yet; in
// that case the zero value is returned together with the entry so the caller
// can inspect Entry.Err.
func GetOrFetch[T any](ctx context.Context, c *Cache, key Key, fn func(ctx context.Context) (T, error)) (T, Entry, error) {
	var zero T

	entry, err := c.GetOrFetch(ctx, key, func(ctx context.Context) (any, error) {
		return fn(ctx)
	})
	if err != nil {
		return zero, entry, err
	}

	if !entry.HasData() {
		return zero, entry, nil
	}

	data, ok := entry.Data.(T)
	if !ok {
		return zero, entry, ErrInvalidEntryType
	}
	return data, entry, nil
}
