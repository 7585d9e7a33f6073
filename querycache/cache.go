package querycache

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/singleflight"

	"github.com/goliatone/go-query-cache/internal/cacheinfra"
)

// FetchFn is the function signature the cache expects when fetching from the
// source of truth. Implementations are the entity command calls.
type FetchFn func(ctx context.Context) (any, error)

// Cache stores query results and enforces the freshness and retention
// policy. It is the only shared mutable resource between the UI read path
// and the prefetch warm-up: construct one per application session and pass
// it to whichever component needs it.
//
// Concurrency contract: a fetch for a key that is already in flight is
// coalesced. Cold misses share one call through a singleflight group; stale
// entries are refreshed by at most one background goroutine, guarded by the
// StatusFetching transition.
type Cache struct {
	store  EntryStore
	cfg    Config
	logger zerolog.Logger
	group  singleflight.Group

	// mu serializes read-modify-write sequences against the store; the
	// store itself is only per-operation safe.
	mu sync.Mutex

	// nowFn is swapped in tests to drive the staleness clock.
	nowFn func() time.Time
}

// Option configures optional Cache collaborators.
type Option func(*Cache)

// WithLogger sets the logger used for background refresh outcomes.
// The default is a no-op logger.
func WithLogger(logger zerolog.Logger) Option {
	return func(c *Cache) { c.logger = logger }
}

// WithStore replaces the default sturdyc-backed entry store. Intended for
// tests and for embedding the cache behind an alternate backend.
func WithStore(store EntryStore) Option {
	return func(c *Cache) { c.store = store }
}

// New constructs a Cache with the provided configuration. Unless WithStore
// overrides it, the backing store is the sturdyc adapter sized from the
// config, with the retention window as its TTL.
func New(cfg Config, opts ...Option) (*Cache, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	c := &Cache{
		cfg:    cfg,
		logger: zerolog.Nop(),
		nowFn:  time.Now,
	}

	for _, opt := range opts {
		opt(c)
	}

	if c.store == nil {
		store, err := cacheinfra.NewSturdycStore(cacheinfra.Config{
			Capacity:           cfg.Capacity,
			NumShards:          cfg.NumShards,
			RetentionTTL:       cfg.RetentionWindow,
			EvictionPercentage: cfg.EvictionPercentage,
			EvictionInterval:   cfg.EvictionInterval,
		})
		if err != nil {
			return nil, err
		}
		c.store = store
	}

	return c, nil
}

// Config returns a copy of the configuration the cache was built with.
func (c *Cache) Config() Config {
	return c.cfg
}

// Get returns the entry for key if present, regardless of staleness. The
// returned entry's Status reflects freshness at call time. Reading an entry
// re-arms its retention window.
func (c *Cache) Get(key Key) (Entry, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lookupLocked(key.String())
}

// Set records a successful fetch for key: data replaces the previous
// payload, FetchedAt moves to now, and the status returns to Fresh.
func (c *Cache) Set(key Key, data any) Entry {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.setLocked(key, data)
}

// GetOrFetch is the read-through operation backing every listing read.
//
//   - Fresh hit: the entry is returned as is, no remote call.
//   - Stale or Error hit: the entry is returned immediately and a single
//     background refetch is started (stale-while-revalidate).
//   - Refresh already in flight: the current entry is returned untouched.
//   - Miss: fn is invoked synchronously; concurrent callers for the same key
//     share the one call and its result.
//
// The returned error is non-nil only when a cold miss could not be served at
// all. Refresh failures surface on the entry's Err field instead.
func (c *Cache) GetOrFetch(ctx context.Context, key Key, fn FetchFn) (Entry, error) {
	k := key.String()

	c.mu.Lock()
	entry, ok := c.lookupLocked(k)
	c.mu.Unlock()

	if ok {
		switch entry.Status {
		case StatusFresh, StatusFetching:
			return entry, nil
		default:
			c.refreshAsync(ctx, key, fn)
			return entry, nil
		}
	}

	result, err, _ := c.group.Do(k, func() (any, error) {
		// Re-check under the flight: a caller that lost the race between
		// its lookup and joining the group must not trigger a second fetch
		// when the shared one already landed.
		c.mu.Lock()
		if cached, hit := c.lookupLocked(k); hit && cached.Status == StatusFresh {
			c.mu.Unlock()
			return cached, nil
		}
		c.mu.Unlock()

		data, ferr := c.fetchWithRetry(ctx, key, fn)

		c.mu.Lock()
		defer c.mu.Unlock()
		if ferr != nil {
			return c.recordErrorLocked(key, ferr), ferr
		}
		return c.setLocked(key, data), nil
	})
	c.group.Forget(k)

	if err != nil {
		if failed, isEntry := result.(Entry); isEntry {
			return failed, err
		}
		return Entry{Key: key, Status: StatusError, Err: err}, err
	}
	return result.(Entry), nil
}

// Delete removes a single entry. Subsequent reads for the key fetch fresh
// data from the source.
func (c *Cache) Delete(key Key) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.store.Delete(key.String())
}

// DeleteList removes every cached page of one (entity, filter) listing.
func (c *Cache) DeleteList(entity, filter string) {
	c.deleteByPrefix(ListPrefix(entity, filter))
}

// DeleteEntity removes every cached page of an entity type across all
// filters. Command layers call this after writes that change the listing.
func (c *Cache) DeleteEntity(entity string) {
	c.deleteByPrefix(EntityPrefix(entity))
}

func (c *Cache) deleteByPrefix(prefix string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, k := range c.store.ScanKeys() {
		if strings.HasPrefix(k, prefix) {
			c.store.Delete(k)
		}
	}
}

// lookupLocked reads the stored entry, derives its staleness from the clock,
// and touches the store so the retention window restarts. Callers hold c.mu.
func (c *Cache) lookupLocked(k string) (Entry, bool) {
	raw, ok := c.store.Get(k)
	if !ok {
		return Entry{}, false
	}

	entry := raw.(Entry)
	c.store.Set(k, entry)

	if entry.Status == StatusFresh && c.nowFn().Sub(entry.FetchedAt) >= c.cfg.StalenessWindow {
		entry.Status = StatusStale
	}
	return entry, true
}

// setLocked stores a successful result. FetchedAt is monotonically
// non-decreasing per key: a slow fetch resolving after a newer one landed
// cannot move the timestamp backwards.
func (c *Cache) setLocked(key Key, data any) Entry {
	now := c.nowFn()
	if prev, ok := c.store.Get(key.String()); ok {
		if p := prev.(Entry); p.FetchedAt.After(now) {
			now = p.FetchedAt
		}
	}

	entry := Entry{
		Key:       key,
		Data:      data,
		FetchedAt: now,
		Status:    StatusFresh,
	}
	c.store.Set(key.String(), entry)
	return entry
}

// recordErrorLocked flags a failed fetch on the entry. A previous payload is
// preserved so readers keep seeing the last good pages while the error is
// reported (stale-while-error).
func (c *Cache) recordErrorLocked(key Key, err error) Entry {
	entry := Entry{Key: key, Status: StatusError, Err: err}
	if prev, ok := c.store.Get(key.String()); ok {
		p := prev.(Entry)
		entry.Data = p.Data
		entry.FetchedAt = p.FetchedAt
	}
	c.store.Set(key.String(), entry)
	return entry
}

// refreshAsync starts the background refetch for a stale or errored entry.
// The StatusFetching transition happens under the lock, so concurrent stale
// readers start at most one refresh between them.
func (c *Cache) refreshAsync(ctx context.Context, key Key, fn FetchFn) {
	k := key.String()

	c.mu.Lock()
	raw, ok := c.store.Get(k)
	if !ok {
		c.mu.Unlock()
		return
	}
	entry := raw.(Entry)
	if entry.Status == StatusFetching {
		c.mu.Unlock()
		return
	}
	entry.Status = StatusFetching
	c.store.Set(k, entry)
	c.mu.Unlock()

	// The refresh outlives the triggering read; the view that asked may be
	// gone by the time it lands, and that is fine, the result serves the
	// next read.
	bg := context.WithoutCancel(ctx)

	go func() {
		data, err := c.fetchWithRetry(bg, key, fn)

		c.mu.Lock()
		defer c.mu.Unlock()
		if err != nil {
			c.recordErrorLocked(key, err)
			c.logger.Warn().
				Str("entity", key.Entity).
				Str("filter", key.Filter).
				Int("page", key.Page).
				Err(err).
				Msg("background refresh failed, serving previous data")
			return
		}
		c.setLocked(key, data)
	}()
}

// fetchWithRetry invokes fn, retrying RetryCount times with a fixed backoff.
// The final failure is wrapped as a TransportError carrying the key.
func (c *Cache) fetchWithRetry(ctx context.Context, key Key, fn FetchFn) (any, error) {
	var lastErr error

	for attempt := 0; attempt <= c.cfg.RetryCount; attempt++ {
		if attempt > 0 && c.cfg.RetryBackoff > 0 {
			select {
			case <-time.After(c.cfg.RetryBackoff):
			case <-ctx.Done():
				return nil, &TransportError{Entity: key.Entity, Page: key.Page, Err: ctx.Err()}
			}
		}

		data, err := fn(ctx)
		if err == nil {
			return data, nil
		}
		lastErr = err
	}

	return nil, &TransportError{Entity: key.Entity, Page: key.Page, Err: lastErr}
}
