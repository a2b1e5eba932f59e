package ports

import "context"

// HealthChecker reports whether a dependency can currently serve requests.
// The TeamForge client implements it from its circuit breaker state.
type HealthChecker interface {
	// Name labels the check in readiness output, e.g. "teamforge".
	Name() string
	// HealthCheck returns nil when the dependency is usable.
	HealthCheck(ctx context.Context) error
}

// HealthRegistry fans a readiness probe out to every registered checker.
type HealthRegistry interface {
	// Register adds checker, replacing any earlier one with the same name.
	Register(checker HealthChecker)
	// CheckAll maps each checker's name to its result; nil means healthy.
	CheckAll(ctx context.Context) map[string]error
}
