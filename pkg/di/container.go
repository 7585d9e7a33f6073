package di

import (
	"github.com/rs/zerolog"

	"github.com/goliatone/go-query-cache/inventory"
	"github.com/goliatone/go-query-cache/pagequery"
	"github.com/goliatone/go-query-cache/prefetch"
	"github.com/goliatone/go-query-cache/querycache"
)

// Container provides dependency injection for the caching components. It
// owns the per-session query cache and the list query registry, and provides
// factory methods for list queries and the startup warm-up. Construct one at
// application startup and drop it with the session; the cache is not
// persisted across restarts.
type Container struct {
	config   querycache.Config
	cache    *querycache.Cache
	registry *pagequery.Registry
	logger   zerolog.Logger
}

// Option configures optional container collaborators.
type Option func(*Container)

// WithLogger sets the logger shared by the cache and the orchestrator.
// The default is a no-op logger.
func WithLogger(logger zerolog.Logger) Option {
	return func(c *Container) { c.logger = logger }
}

// NewContainer creates a new DI container with the provided cache
// configuration. It initializes the query cache over its default sturdyc
// store and the list query registry on top.
func NewContainer(config querycache.Config, opts ...Option) (*Container, error) {
	c := &Container{
		config: config,
		logger: zerolog.Nop(),
	}

	for _, opt := range opts {
		opt(c)
	}

	cache, err := querycache.New(config, querycache.WithLogger(c.logger))
	if err != nil {
		return nil, err
	}

	c.cache = cache
	c.registry = pagequery.NewRegistry(cache)
	return c, nil
}

// NewContainerWithDefaults creates a new DI container using default
// configuration. This is a convenience constructor for typical use cases
// where custom configuration is not required.
func NewContainerWithDefaults(opts ...Option) (*Container, error) {
	return NewContainer(querycache.DefaultConfig(), opts...)
}

// Cache returns the session-wide query cache instance.
func (c *Container) Cache() *querycache.Cache {
	return c.cache
}

// Registry returns the list query registry.
func (c *Container) Registry() *pagequery.Registry {
	return c.registry
}

// Config returns a copy of the cache configuration used by this container.
func (c *Container) Config() querycache.Config {
	return c.config
}

// NewOrchestrator builds the startup warm-up over the given targets, sharing
// the container's logger.
func (c *Container) NewOrchestrator(targets ...prefetch.Target) *prefetch.Orchestrator {
	return prefetch.New(c.logger, targets...)
}

// NewListQuery returns the shared list query for (entity, filter), wired to
// the container's cache and default page size.
//
// Since Go methods cannot have type parameters, this is provided as a
// package-level function. Example: NewListQuery[inventory.Product](container,
// inventory.EntityProducts, "", store.FetchProductPage).
func NewListQuery[T any](container *Container, entity, filter string, fetch inventory.PageFetcher[T]) *pagequery.ListQuery[T] {
	return pagequery.For(container.registry, entity, filter, fetch)
}

// WarmTarget adapts a list query into a prefetch target: the unfiltered
// first page at the default page size.
func WarmTarget[T any](q *pagequery.ListQuery[T]) prefetch.Target {
	return prefetch.Target{Entity: q.Entity(), Fetch: q.Warm}
}
