package ports

import "context"

// HealthChecker reports whether one component can serve traffic. The board
// store and the snapshot webhook both implement it.
type HealthChecker interface {
	// Name identifies the component in readiness output, e.g. "board-store".
	Name() string

	// HealthCheck returns nil when the component is healthy. It must give
	// up when ctx is done.
	HealthCheck(ctx context.Context) error
}

// HealthRegistry collects checkers for the readiness endpoint.
type HealthRegistry interface {
	Register(checker HealthChecker)

	// CheckAll runs every registered check and returns the results by
	// checker name; a nil error means healthy.
	CheckAll(ctx context.Context) map[string]error
}
