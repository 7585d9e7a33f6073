// Package prefetch warms the query cache at application startup so the first
// view a user opens is served from memory instead of waiting on the command
// layer.
package prefetch

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Target is one entity listing to warm: typically the first page of an
// unfiltered ListQuery at the default page size.
type Target struct {
	Entity string
	Fetch  func(ctx context.Context) error
}

// Result is the per-entity outcome of a warm-up run. Failures stay local to
// their target; one entity's transport error never aborts its siblings.
type Result struct {
	Entity string
	Err    error
}

// Orchestrator runs the startup warm-up exactly once per session. All
// targets are fetched concurrently, outcomes are collected independently,
// and nothing is all-or-nothing: the run "succeeds" when every target has
// resolved, errors included.
type Orchestrator struct {
	targets []Target
	logger  zerolog.Logger
	session string

	once    sync.Once
	done    chan struct{}
	mu      sync.Mutex
	results []Result
}

// New builds an orchestrator over the given targets. The session ID ties the
// warm-up's log lines together.
func New(logger zerolog.Logger, targets ...Target) *Orchestrator {
	return &Orchestrator{
		targets: targets,
		logger:  logger,
		session: uuid.NewString(),
		done:    make(chan struct{}),
	}
}

// Warm runs the warm-up and blocks until every target has resolved,
// returning the per-entity outcomes. Invoking it again does not re-fetch:
// the first run's results are returned once available. Re-warming beyond
// that is already harmless because the cache coalesces in-flight keys, but
// the guard keeps remounts from even reaching the cache.
func (o *Orchestrator) Warm(ctx context.Context) []Result {
	o.once.Do(func() { o.run(ctx) })
	<-o.done
	return o.Results()
}

// WarmAsync starts the warm-up without waiting for it, so rendering can
// proceed immediately. Outcomes are logged and retrievable via Results once
// Done is closed.
func (o *Orchestrator) WarmAsync(ctx context.Context) {
	go o.Warm(context.WithoutCancel(ctx))
}

// Done is closed when the warm-up run has fully resolved.
func (o *Orchestrator) Done() <-chan struct{} {
	return o.done
}

// Results returns the recorded outcomes, one per target. It reports an empty
// slice until the run has resolved, which is indistinguishable from a run
// over zero targets; callers wanting outcomes gate on Done first, or use
// Warm, which blocks until they are available.
func (o *Orchestrator) Results() []Result {
	o.mu.Lock()
	defer o.mu.Unlock()
	out := make([]Result, len(o.results))
	copy(out, o.results)
	return out
}

func (o *Orchestrator) run(ctx context.Context) {
	o.logger.Info().
		Str("session", o.session).
		Int("targets", len(o.targets)).
		Msg("starting cache warm-up")

	results := make([]Result, len(o.targets))
	var wg sync.WaitGroup

	for i, target := range o.targets {
		wg.Add(1)
		go func(i int, t Target) {
			defer wg.Done()
			err := t.Fetch(ctx)
			results[i] = Result{Entity: t.Entity, Err: err}

			if err != nil {
				o.logger.Warn().
					Str("session", o.session).
					Str("entity", t.Entity).
					Err(err).
					Msg("warm-up fetch failed")
				return
			}
			o.logger.Debug().
				Str("session", o.session).
				Str("entity", t.Entity).
				Msg("warm-up fetch done")
		}(i, target)
	}

	go func() {
		wg.Wait()
		o.mu.Lock()
		o.results = results
		o.mu.Unlock()

		o.logger.Info().
			Str("session", o.session).
			Msg("cache warm-up resolved")
		close(o.done)
	}()
}
