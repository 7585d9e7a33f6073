package cacheinfra

import (
	"time"

	"github.com/viccon/sturdyc"
)

// Config holds the configuration for the sturdyc entry store.
// The policy layer above decides freshness; this store only provides
// sharded storage, capacity eviction, and the retention sweep.
type Config struct {
	// Capacity defines the maximum number of entries that the store can hold.
	// Must be greater than 0.
	Capacity int

	// NumShards determines the number of store shards for concurrent access.
	// Higher values improve concurrency but increase memory overhead.
	// Must be greater than 0.
	NumShards int

	// RetentionTTL is how long an entry survives after its last write.
	// The policy layer re-writes entries on read, which turns this into an
	// expire-after-last-read window. Must be greater than 0.
	RetentionTTL time.Duration

	// EvictionPercentage specifies what percentage of entries to evict
	// when the store reaches its capacity. Must be between 1-100.
	EvictionPercentage int

	// EvictionInterval sets how often the store sweeps for expired entries.
	// Zero value uses the sturdyc default interval.
	EvictionInterval time.Duration
}

// Validate checks if the configuration values are valid.
// Returns an error if any configuration parameter is invalid.
func (c Config) Validate() error {
	if c.Capacity <= 0 {
		return &ConfigError{Field: "Capacity", Message: "must be greater than 0"}
	}

	if c.NumShards <= 0 {
		return &ConfigError{Field: "NumShards", Message: "must be greater than 0"}
	}

	if c.RetentionTTL <= 0 {
		return &ConfigError{Field: "RetentionTTL", Message: "must be greater than 0"}
	}

	if c.EvictionPercentage < 1 || c.EvictionPercentage > 100 {
		return &ConfigError{Field: "EvictionPercentage", Message: "must be between 1 and 100"}
	}

	return nil
}

// ConfigError represents a configuration validation error.
type ConfigError struct {
	Field   string
	Message string
}

// Error implements the error interface.
func (e *ConfigError) Error() string {
	return "config error in field " + e.Field + ": " + e.Message
}

// sturdycStore wraps a sturdyc client providing entry storage.
type sturdycStore struct {
	client *sturdyc.Client[any]
}

// NewSturdycStore creates a new sturdyc-backed entry store.
// It validates the configuration and initializes a sturdyc client with the
// provided settings. The returned store satisfies querycache.EntryStore.
//
// Version compatibility note: this implementation assumes sturdyc v1.x API.
// Monitor sturdyc version upgrades for potential option mapping changes.
func NewSturdycStore(cfg Config) (*sturdycStore, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	var options []sturdyc.Option
	if cfg.EvictionInterval > 0 {
		options = append(options, sturdyc.WithEvictionInterval(cfg.EvictionInterval))
	}

	client := sturdyc.New[any](
		cfg.Capacity,
		cfg.NumShards,
		cfg.RetentionTTL,
		cfg.EvictionPercentage,
		options...,
	)

	return &sturdycStore{client: client}, nil
}

// Get retrieves the value for key if present and not yet swept.
func (s *sturdycStore) Get(key string) (any, bool) {
	return s.client.Get(key)
}

// Set stores the value, re-arming its retention TTL.
func (s *sturdycStore) Set(key string, value any) {
	s.client.Set(key, value)
}

// Delete removes a single entry from the store.
func (s *sturdycStore) Delete(key string) {
	s.client.Delete(key)
}

// ScanKeys returns every key currently held by the store.
func (s *sturdycStore) ScanKeys() []string {
	return s.client.ScanKeys()
}
