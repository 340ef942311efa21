// Package ctxutil provides context utility functions.
package ctxutil

import "context"

// Canceled returns the context error once ctx is done (Canceled or
// DeadlineExceeded) and nil otherwise. Signers and the batch runner call it
// before reading a stream so a canceled command stops before doing work.
func Canceled(ctx context.Context) error {
	return ctx.Err()
}
