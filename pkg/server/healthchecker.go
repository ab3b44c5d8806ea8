package server

import "context"

// HealthChecker reports whether the process can serve traffic.
type HealthChecker interface {
	Healthy(ctx context.Context) bool
}
