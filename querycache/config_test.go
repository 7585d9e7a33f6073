package querycache

import (
	"errors"
	"strings"
	"testing"
	"time"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.StalenessWindow != 30*time.Second {
		t.Errorf("expected StalenessWindow to be 30 seconds, got %v", cfg.StalenessWindow)
	}

	if cfg.RetentionWindow != 5*time.Minute {
		t.Errorf("expected RetentionWindow to be 5 minutes, got %v", cfg.RetentionWindow)
	}

	if cfg.DefaultPageSize != 50 {
		t.Errorf("expected DefaultPageSize to be 50, got %d", cfg.DefaultPageSize)
	}

	if cfg.RetryCount != 1 {
		t.Errorf("expected RetryCount to be 1, got %d", cfg.RetryCount)
	}

	if cfg.RetryBackoff != 250*time.Millisecond {
		t.Errorf("expected RetryBackoff to be 250ms, got %v", cfg.RetryBackoff)
	}

	if cfg.Capacity != 10000 {
		t.Errorf("expected Capacity to be 10000, got %d", cfg.Capacity)
	}

	if cfg.NumShards != 256 {
		t.Errorf("expected NumShards to be 256, got %d", cfg.NumShards)
	}

	if cfg.EvictionPercentage != 10 {
		t.Errorf("expected EvictionPercentage to be 10, got %d", cfg.EvictionPercentage)
	}

	if err := cfg.Validate(); err != nil {
		t.Errorf("expected default config to validate, got: %v", err)
	}
}

func TestConfig_Validate(t *testing.T) {
	valid := DefaultConfig()

	tests := []struct {
		name      string
		mutate    func(*Config)
		wantField string
	}{
		{
			name:   "valid default config",
			mutate: func(c *Config) {},
		},
		{
			name:      "zero staleness window",
			mutate:    func(c *Config) { c.StalenessWindow = 0 },
			wantField: "StalenessWindow",
		},
		{
			name:      "retention not exceeding staleness",
			mutate:    func(c *Config) { c.RetentionWindow = c.StalenessWindow },
			wantField: "RetentionWindow",
		},
		{
			name:      "zero page size",
			mutate:    func(c *Config) { c.DefaultPageSize = 0 },
			wantField: "DefaultPageSize",
		},
		{
			name:      "negative retry count",
			mutate:    func(c *Config) { c.RetryCount = -1 },
			wantField: "RetryCount",
		},
		{
			name:      "negative retry backoff",
			mutate:    func(c *Config) { c.RetryBackoff = -time.Second },
			wantField: "RetryBackoff",
		},
		{
			name:      "zero capacity",
			mutate:    func(c *Config) { c.Capacity = 0 },
			wantField: "Capacity",
		},
		{
			name:      "zero shards",
			mutate:    func(c *Config) { c.NumShards = 0 },
			wantField: "NumShards",
		},
		{
			name:      "eviction percentage over 100",
			mutate:    func(c *Config) { c.EvictionPercentage = 101 },
			wantField: "EvictionPercentage",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid
			tt.mutate(&cfg)

			err := cfg.Validate()
			if tt.wantField == "" {
				if err != nil {
					t.Errorf("expected no error, got: %v", err)
				}
				return
			}

			var cfgErr *ConfigError
			if !errors.As(err, &cfgErr) {
				t.Fatalf("expected ConfigError, got %T: %v", err, err)
			}
			if cfgErr.Field != tt.wantField {
				t.Errorf("expected error on field %s, got %s", tt.wantField, cfgErr.Field)
			}
			if !strings.Contains(cfgErr.Error(), tt.wantField) {
				t.Errorf("expected error message to name the field, got %q", cfgErr.Error())
			}
		})
	}
}
