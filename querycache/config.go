package querycache

import "time"

// Config holds the cache policy and sizing parameters.
type Config struct {
	// StalenessWindow is how long after a successful fetch an entry is
	// considered Fresh. Past it the entry is Stale: still servable, but a
	// read triggers a background refetch. Must be greater than 0.
	StalenessWindow time.Duration

	// RetentionWindow is how long an entry survives without being read.
	// Each read re-arms it. Must be greater than StalenessWindow, so that
	// eviction can never remove a Fresh entry.
	RetentionWindow time.Duration

	// DefaultPageSize is the page size used by listings and the prefetch
	// warm-up when the caller does not specify one. Must be greater than 0.
	DefaultPageSize int

	// RetryCount is how many times a failed fetch is retried before the
	// error is recorded on the entry. Must be non-negative.
	RetryCount int

	// RetryBackoff is the fixed delay between a failed fetch attempt and
	// its retry. Must be non-negative.
	RetryBackoff time.Duration

	// Capacity defines the maximum number of entries the backing store
	// holds before capacity eviction kicks in. Must be greater than 0.
	Capacity int

	// NumShards determines the number of store shards for concurrent
	// access. Must be greater than 0.
	NumShards int

	// EvictionPercentage specifies what percentage of entries to evict
	// when the store reaches capacity. Must be between 1-100.
	EvictionPercentage int

	// EvictionInterval sets how often the store sweeps for entries whose
	// retention window elapsed. Zero value uses the store default.
	EvictionInterval time.Duration
}

// DefaultConfig returns a Config populated with the application defaults:
// 30s staleness, 5m retention, 50-row pages, one retry with a fixed 250ms
// backoff.
func DefaultConfig() Config {
	return Config{
		StalenessWindow:    30 * time.Second,
		RetentionWindow:    5 * time.Minute,
		DefaultPageSize:    50,
		RetryCount:         1,
		RetryBackoff:       250 * time.Millisecond,
		Capacity:           10000,
		NumShards:          256,
		EvictionPercentage: 10,
		EvictionInterval:   0,
	}
}

// Validate checks whether the configuration values are valid.
// Returns an error if any configuration parameter is invalid.
func (c Config) Validate() error {
	if c.StalenessWindow <= 0 {
		return &ConfigError{Field: "StalenessWindow", Message: "must be greater than 0"}
	}

	if c.RetentionWindow <= c.StalenessWindow {
		return &ConfigError{Field: "RetentionWindow", Message: "must be greater than StalenessWindow"}
	}

	if c.DefaultPageSize <= 0 {
		return &ConfigError{Field: "DefaultPageSize", Message: "must be greater than 0"}
	}

	if c.RetryCount < 0 {
		return &ConfigError{Field: "RetryCount", Message: "must be non-negative"}
	}

	if c.RetryBackoff < 0 {
		return &ConfigError{Field: "RetryBackoff", Message: "must be non-negative"}
	}

	if c.Capacity <= 0 {
		return &ConfigError{Field: "Capacity", Message: "must be greater than 0"}
	}

	if c.NumShards <= 0 {
		return &ConfigError{Field: "NumShards", Message: "must be greater than 0"}
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
