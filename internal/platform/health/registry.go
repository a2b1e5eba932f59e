// Package health keeps the readiness checkers for downstream dependencies.
// In this service that is the TeamForge client, whose check reports circuit
// breaker state.
package health

import (
	"context"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/jsamuelsen11/teamforge-tracker/internal/ports"
)

var _ ports.HealthRegistry = (*Registry)(nil)

// Registry holds checkers by name. Safe for concurrent use.
type Registry struct {
	mu           sync.RWMutex
	checkers     map[string]ports.HealthChecker
	checkTimeout time.Duration
}

// Option configures a Registry.
type Option func(*Registry)

// WithCheckTimeout bounds each individual check. Zero leaves only the
// caller's context in charge.
func WithCheckTimeout(d time.Duration) Option {
	return func(r *Registry) {
		r.checkTimeout = d
	}
}

// New creates an empty Registry.
func New(opts ...Option) *Registry {
	r := &Registry{checkers: make(map[string]ports.HealthChecker)}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Register adds checker under checker.Name(), replacing any checker already
// registered with that name.
func (r *Registry) Register(checker ports.HealthChecker) {
	name := checker.Name()
	r.mu.Lock()
	defer r.mu.Unlock()
	r.checkers[name] = checker
}

// CheckAll runs every check concurrently and returns the outcome by name; a
// nil value means healthy. The lock is released before any check runs.
func (r *Registry) CheckAll(ctx context.Context) map[string]error {
	r.mu.RLock()
	checkers := make(map[string]ports.HealthChecker, len(r.checkers))
	for name, c := range r.checkers {
		checkers[name] = c
	}
	r.mu.RUnlock()

	var (
		g       errgroup.Group
		mu      sync.Mutex
		results = make(map[string]error, len(checkers))
	)
	for name, c := range checkers {
		g.Go(func() error {
			err := r.check(ctx, c)
			mu.Lock()
			results[name] = err
			mu.Unlock()
			return nil
		})
	}
	_ = g.Wait()
	return results
}

func (r *Registry) check(ctx context.Context, c ports.HealthChecker) error {
	if r.checkTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.checkTimeout)
		defer cancel()
	}
	return c.HealthCheck(ctx)
}
