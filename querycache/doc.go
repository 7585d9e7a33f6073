// Package querycache provides the in-memory query cache and its freshness,
// retention, and coalescing policy.
//
// # Overview
//
// The cache maps a Key (entity type, filter, page) to the last known result
// of that query plus freshness metadata. Policy, in short:
//
//   - An entry is Fresh for StalenessWindow after its fetch. Fresh reads are
//     served without touching the source.
//   - Past the window the entry is Stale: still served, but the read kicks
//     off one background refetch (stale-while-revalidate).
//   - An entry unread for RetentionWindow is swept by the backing store.
//     Reads re-arm the window, and the window is validated to exceed the
//     staleness window, so a Fresh entry is never evicted.
//   - Concurrent fetches for one key coalesce into a single remote call.
//   - A failed fetch is retried once (configurable), then recorded on the
//     entry while the previous data keeps being served (stale-while-error).
//
// # Basic Usage
//
//	c, err := querycache.New(querycache.DefaultConfig())
//	if err != nil {
//		return err
//	}
//
//	key := querycache.NewPageKey("products", "", 1)
//	page, entry, err := querycache.GetOrFetch(ctx, c, key, func(ctx context.Context) (inventory.Page[inventory.Product], error) {
//		return store.FetchProductPage(ctx, 1, 50, "")
//	})
//
// The untyped Cache.GetOrFetch is available when the payload type is not
// known at the call site.
//
// # Storage
//
// The default backing store is a sturdyc client (internal/cacheinfra) sized
// from the Config. Cache owns every read-modify-write against it; the store
// contributes sharding, capacity eviction, and the retention sweep.
//
// # See Also
//
// Package pagequery models entity listings as page sequences on top of this
// cache. Package prefetch warms it at application startup.
package querycache
