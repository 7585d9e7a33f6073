package prefetch

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/rs/zerolog"
)

func TestOrchestrator_CollectsPerEntityOutcomes(t *testing.T) {
	supplierErr := errors.New("suppliers backend down")

	var products, customers atomic.Int32
	o := New(zerolog.Nop(),
		Target{Entity: "products", Fetch: func(ctx context.Context) error {
			products.Add(1)
			return nil
		}},
		Target{Entity: "suppliers", Fetch: func(ctx context.Context) error {
			return supplierErr
		}},
		Target{Entity: "customers", Fetch: func(ctx context.Context) error {
			customers.Add(1)
			return nil
		}},
	)

	results := o.Warm(context.Background())
	if len(results) != 3 {
		t.Fatalf("expected 3 results, got %d", len(results))
	}

	byEntity := make(map[string]error, len(results))
	for _, r := range results {
		byEntity[r.Entity] = r.Err
	}

	// One entity failing never aborts its siblings.
	if byEntity["products"] != nil || byEntity["customers"] != nil {
		t.Errorf("expected healthy entities to succeed: %v", byEntity)
	}
	if !errors.Is(byEntity["suppliers"], supplierErr) {
		t.Errorf("expected suppliers failure recorded, got: %v", byEntity["suppliers"])
	}
	if products.Load() != 1 || customers.Load() != 1 {
		t.Errorf("expected each healthy target fetched once, got %d and %d", products.Load(), customers.Load())
	}
}

func TestOrchestrator_WarmRunsOnce(t *testing.T) {
	var calls atomic.Int32
	o := New(zerolog.Nop(), Target{Entity: "products", Fetch: func(ctx context.Context) error {
		calls.Add(1)
		return nil
	}})

	first := o.Warm(context.Background())
	second := o.Warm(context.Background())

	if got := calls.Load(); got != 1 {
		t.Errorf("expected a single warm-up run, got %d fetches", got)
	}
	if len(first) != 1 || len(second) != 1 {
		t.Errorf("expected both invocations to report the run's results")
	}
}

func TestOrchestrator_TargetsRunConcurrently(t *testing.T) {
	release := make(chan struct{})
	var waiting atomic.Int32

	block := func(ctx context.Context) error {
		waiting.Add(1)
		<-release
		return nil
	}

	o := New(zerolog.Nop(),
		Target{Entity: "products", Fetch: block},
		Target{Entity: "customers", Fetch: block},
		Target{Entity: "suppliers", Fetch: block},
	)

	o.WarmAsync(context.Background())

	// All three fetches are in flight at once; none waits for a sibling.
	deadline := time.After(2 * time.Second)
	for waiting.Load() != 3 {
		select {
		case <-deadline:
			t.Fatalf("expected 3 concurrent fetches, saw %d", waiting.Load())
		default:
			time.Sleep(time.Millisecond)
		}
	}

	select {
	case <-o.Done():
		t.Fatal("warm-up resolved while targets were still blocked")
	default:
	}

	close(release)

	select {
	case <-o.Done():
	case <-time.After(2 * time.Second):
		t.Fatal("warm-up did not resolve")
	}

	if results := o.Results(); len(results) != 3 {
		t.Errorf("expected 3 results, got %d", len(results))
	}
}

func TestOrchestrator_WarmAsyncDoesNotBlock(t *testing.T) {
	release := make(chan struct{})
	o := New(zerolog.Nop(), Target{Entity: "products", Fetch: func(ctx context.Context) error {
		<-release
		return nil
	}})

	start := time.Now()
	o.WarmAsync(context.Background())
	if elapsed := time.Since(start); elapsed > 500*time.Millisecond {
		t.Errorf("WarmAsync blocked for %v", elapsed)
	}

	close(release)
	<-o.Done()
}
