package cacheinfra

import (
	"errors"
	"testing"
	"time"
)

func validConfig() Config {
	return Config{
		Capacity:           1000,
		NumShards:          8,
		RetentionTTL:       5 * time.Minute,
		EvictionPercentage: 10,
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(*Config)
		wantField string
	}{
		{
			name:   "valid config",
			mutate: func(c *Config) {},
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
			name:      "zero retention",
			mutate:    func(c *Config) { c.RetentionTTL = 0 },
			wantField: "RetentionTTL",
		},
		{
			name:      "eviction percentage zero",
			mutate:    func(c *Config) { c.EvictionPercentage = 0 },
			wantField: "EvictionPercentage",
		},
		{
			name:      "eviction percentage over 100",
			mutate:    func(c *Config) { c.EvictionPercentage = 101 },
			wantField: "EvictionPercentage",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
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
		})
	}
}

func TestNewSturdycStore_RejectsInvalidConfig(t *testing.T) {
	cfg := validConfig()
	cfg.Capacity = 0

	if _, err := NewSturdycStore(cfg); err == nil {
		t.Error("expected invalid config to be rejected")
	}
}

func TestSturdycStore_Roundtrip(t *testing.T) {
	store, err := NewSturdycStore(validConfig())
	if err != nil {
		t.Fatalf("failed to build store: %v", err)
	}

	if _, ok := store.Get("missing"); ok {
		t.Error("expected miss for unknown key")
	}

	store.Set("products::::1", "page-1")
	store.Set("products::::2", "page-2")
	store.Set("customers::::1", "c-page-1")

	value, ok := store.Get("products::::1")
	if !ok || value != "page-1" {
		t.Errorf("unexpected get result: %v %v", value, ok)
	}

	keys := store.ScanKeys()
	if len(keys) != 3 {
		t.Errorf("expected 3 keys, got %d: %v", len(keys), keys)
	}

	store.Delete("products::::1")
	if _, ok := store.Get("products::::1"); ok {
		t.Error("expected deleted key to miss")
	}

	// Overwrites replace the value in place.
	store.Set("products::::2", "page-2-reloaded")
	value, _ = store.Get("products::::2")
	if value != "page-2-reloaded" {
		t.Errorf("expected overwrite, got %v", value)
	}
}
