// Package health provides the readiness registry. The board store and, when
// enabled, the snapshot webhook register a checker at startup; the readiness
// endpoint runs them all on each probe.
package health

import (
	"context"
	"slices"
	"sync"
	"time"

	"github.com/jsamuelsen11/project-board/internal/ports"
)

// Compile-time interface checks.
var (
	_ ports.HealthRegistry = (*Registry)(nil)
	_ ports.HealthChecker  = Func{}
)

// Option configures a Registry.
type Option func(*Registry)

// WithCheckTimeout bounds each individual check. Zero means no bound beyond
// the caller's context.
func WithCheckTimeout(d time.Duration) Option {
	return func(r *Registry) {
		r.timeout = d
	}
}

// Registry is a thread-safe implementation of [ports.HealthRegistry].
type Registry struct {
	mu       sync.RWMutex
	checkers []ports.HealthChecker
	timeout  time.Duration
}

// New creates an empty health check registry.
func New(opts ...Option) *Registry {
	r := &Registry{}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Register adds a health checker to the registry. Safe for concurrent use.
func (r *Registry) Register(checker ports.HealthChecker) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.checkers = append(r.checkers, checker)
}

// CheckAll runs every registered check concurrently and returns the results
// keyed by checker name. Nil values indicate healthy components. When two
// checkers share a name, the one registered last wins.
func (r *Registry) CheckAll(ctx context.Context) map[string]error {
	r.mu.RLock()
	checkers := slices.Clone(r.checkers)
	r.mu.RUnlock()

	errs := make([]error, len(checkers))
	var wg sync.WaitGroup
	for i, c := range checkers {
		wg.Go(func() { errs[i] = r.check(ctx, c) })
	}
	wg.Wait()

	results := make(map[string]error, len(checkers))
	for i, c := range checkers {
		results[c.Name()] = errs[i]
	}
	return results
}

func (r *Registry) check(ctx context.Context, c ports.HealthChecker) error {
	if r.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.timeout)
		defer cancel()
	}
	return c.HealthCheck(ctx)
}

// Func adapts a plain function into a [ports.HealthChecker].
type Func struct {
	name string
	fn   func(context.Context) error
}

// NewFunc returns a checker called name that runs fn.
func NewFunc(name string, fn func(context.Context) error) Func {
	return Func{name: name, fn: fn}
}

// Name implements [ports.HealthChecker].
func (f Func) Name() string { return f.name }

// HealthCheck implements [ports.HealthChecker].
func (f Func) HealthCheck(ctx context.Context) error { return f.fn(ctx) }
