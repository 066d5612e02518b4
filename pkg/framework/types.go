// Package framework provides the application lifecycle primitives:
// background runners, error aggregation and the application manager.
package framework

import "context"

// Named is an abstraction for things with a name.
type Named interface {
	Name() string
}

// Runnable defines a generic interface for background runners.
type Runnable interface {
	Run(context.Context) error
}

// RunFunc is the func form of Runnable.
type RunFunc func(context.Context) error

// Run implements Runnable.
func (f RunFunc) Run(ctx context.Context) error {
	return f(ctx)
}

// Application is a long-lived module registered with the Manager to
// be polled for monitoring.
type Application interface {
	Named
	// OnMonitor is invoked periodically by the Manager. Implementations
	// may use it for health checks or keep it a no-op.
	OnMonitor()
}
