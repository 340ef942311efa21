package flock

import (
	"fmt"
	"os"

	"github.com/mrz1836/rcli/internal/errors"
)

// WriteFile replaces the contents of path with data while holding an
// exclusive lock on it. The file is only truncated once the lock is held, so
// a failed lock leaves the existing contents untouched.
func WriteFile(path string, data []byte, perm os.FileMode) (err error) {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE, perm) //nolint:gosec // path is the user-selected output
	if err != nil {
		return fmt.Errorf("failed to open %q: %w", path, err)
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("failed to close %q: %w", path, closeErr)
		}
	}()

	if lockErr := Exclusive(f.Fd()); lockErr != nil {
		return errors.Wrapf(errors.ErrFileLocked, "%s: %v", path, lockErr)
	}
	defer func() { _ = Unlock(f.Fd()) }()

	if err = f.Truncate(0); err != nil {
		return fmt.Errorf("failed to truncate %q: %w", path, err)
	}
	if _, err = f.Write(data); err != nil {
		return fmt.Errorf("failed to write %q: %w", path, err)
	}
	return nil
}
