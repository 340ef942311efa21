package cli

import (
	"context"

	"github.com/mrz1836/rcli/internal/config"
)

// ExecutionContext holds what PersistentPreRunE resolved for the running
// command.
type ExecutionContext struct {
	// RunID identifies this invocation in the log file.
	RunID string

	// Output is the resolved --output format.
	Output string

	// Config is the merged configuration.
	Config *config.Config
}

// executionContextKey is the context key for ExecutionContext.
type executionContextKey struct{}

// WithExecutionContext returns a new context with the ExecutionContext attached.
func WithExecutionContext(ctx context.Context, ec *ExecutionContext) context.Context {
	return context.WithValue(ctx, executionContextKey{}, ec)
}

// GetExecutionContext retrieves the ExecutionContext from the context.
// Returns nil if no execution context was set.
func GetExecutionContext(ctx context.Context) *ExecutionContext {
	ec, _ := ctx.Value(executionContextKey{}).(*ExecutionContext)
	return ec
}

// executionContextOrDefault never returns nil, so commands run directly in
// tests get defaults.
func executionContextOrDefault(ctx context.Context) *ExecutionContext {
	if ec := GetExecutionContext(ctx); ec != nil {
		if ec.Config == nil {
			ec.Config = config.DefaultConfig()
		}
		return ec
	}
	return &ExecutionContext{Output: OutputText, Config: config.DefaultConfig()}
}
