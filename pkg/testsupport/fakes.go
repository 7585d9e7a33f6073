package testsupport

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/goliatone/go-query-cache/inventory"
)

// FakeBackend simulates one entity command family: it serves pages out of a
// fixed item slice and records how it was called, so tests can assert on
// coalescing and no-op guarantees.
type FakeBackend[T any] struct {
	mu         sync.Mutex
	items      []T
	delay      time.Duration
	failures   int
	err        error
	calls      int
	lastFilter string
}

// NewFakeBackend builds a backend over the given items.
func NewFakeBackend[T any](items []T) *FakeBackend[T] {
	return &FakeBackend[T]{items: items}
}

// WithDelay makes every fetch sleep for d before answering, simulating
// command latency.
func (b *FakeBackend[T]) WithDelay(d time.Duration) *FakeBackend[T] {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.delay = d
	return b
}

// FailWith makes every fetch fail with err until cleared by FailTimes(0, nil).
func (b *FakeBackend[T]) FailWith(err error) *FakeBackend[T] {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.failures = -1
	b.err = err
	return b
}

// FailTimes makes the next n fetches fail with err, then succeed.
func (b *FakeBackend[T]) FailTimes(n int, err error) *FakeBackend[T] {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.failures = n
	b.err = err
	return b
}

// SetItems replaces the backing items, simulating data changing under the
// cache between fetches.
func (b *FakeBackend[T]) SetItems(items []T) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.items = items
}

// Calls reports how many fetches reached the backend.
func (b *FakeBackend[T]) Calls() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.calls
}

// LastFilter reports the filter of the most recent fetch.
func (b *FakeBackend[T]) LastFilter() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.lastFilter
}

// FetchPage satisfies inventory.PageFetcher.
func (b *FakeBackend[T]) FetchPage(ctx context.Context, pageNumber, pageSize int, filter string) (inventory.Page[T], error) {
	b.mu.Lock()
	b.calls++
	b.lastFilter = filter
	delay := b.delay
	failing := b.failures != 0
	err := b.err
	if b.failures > 0 {
		b.failures--
	}
	items := b.items
	b.mu.Unlock()

	if delay > 0 {
		select {
		case <-time.After(delay):
		case <-ctx.Done():
			return inventory.Page[T]{}, ctx.Err()
		}
	}

	if failing {
		return inventory.Page[T]{}, err
	}

	start := (pageNumber - 1) * pageSize
	if start > len(items) {
		start = len(items)
	}
	end := start + pageSize
	if end > len(items) {
		end = len(items)
	}

	return inventory.NewPage(items[start:end], pageNumber, pageSize, len(items)), nil
}

// Products generates n distinct products for paging tests.
func Products(n int) []inventory.Product {
	products := make([]inventory.Product, n)
	for i := range products {
		products[i] = inventory.Product{
			ID:    int64(i + 1),
			Name:  fmt.Sprintf("Product %04d", i+1),
			SKU:   fmt.Sprintf("SKU-%04d", i+1),
			Price: float64(i+1) * 1.5,
		}
	}
	return products
}
