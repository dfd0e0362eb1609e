// Package logger provides the structured logging setup shared by every
// Ignite subsystem. It wraps go.uber.org/zap behind a single constructor so
// the engine, storage, and index layers all log through the same
// sugared interface without each owning zap configuration details.
package logger

import (
	"go.uber.org/zap"
)

// New builds a production-configured *zap.SugaredLogger scoped to the given
// service name. The returned logger is safe for concurrent use by every
// subsystem it is threaded into.
func New(service string) *zap.SugaredLogger {
	cfg := zap.NewProductionConfig()
	cfg.DisableStacktrace = true

	base, err := cfg.Build()
	if err != nil {
		// Falling back to a no-op core keeps construction infallible for
		// callers; logging is observability, not a correctness dependency.
		base = zap.NewNop()
	}

	return base.Named(service).Sugar()
}

// NewNop returns a logger that discards everything written to it. Useful for
// tests that want engine/storage construction without log noise.
func NewNop() *zap.SugaredLogger {
	return zap.NewNop().Sugar()
}
