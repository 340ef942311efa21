// Package input resolves input designators into readable streams.
//
// The designator "-" selects standard input; any other value is a file path.
// A missing file is reported as errors.ErrInputNotFound so callers can tell it
// apart from other I/O failures.
package input

import (
	stderrors "errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/mrz1836/rcli/internal/constants"
	"github.com/mrz1836/rcli/internal/errors"
)

// Resolver opens input designators.
// The zero value reads standard input from os.Stdin.
type Resolver struct {
	// Stdin is the stream returned for "-". Nil means os.Stdin.
	Stdin io.Reader
}

// NewResolver creates a Resolver whose "-" designator reads from stdin.
func NewResolver(stdin io.Reader) *Resolver {
	return &Resolver{Stdin: stdin}
}

// IsStdin reports whether name designates standard input.
func IsStdin(name string) bool {
	return name == constants.StdinName
}

// Open returns a stream for name. The caller must close it; closing the
// standard input stream is a no-op.
func (r *Resolver) Open(name string) (io.ReadCloser, error) {
	if IsStdin(name) {
		stdin := r.Stdin
		if stdin == nil {
			stdin = os.Stdin
		}
		return io.NopCloser(stdin), nil
	}

	f, err := os.Open(name) //nolint:gosec // reading user-selected input is the point
	if err != nil {
		if stderrors.Is(err, fs.ErrNotExist) {
			return nil, errors.Wrapf(errors.ErrInputNotFound, "%s", name)
		}
		return nil, errors.Wrapf(err, "failed to open input %q", name)
	}
	return f, nil
}

// ReadAll opens name and reads it to the end.
func (r *Resolver) ReadAll(name string) ([]byte, error) {
	rc, err := r.Open(name)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rc.Close() }()

	data, err := io.ReadAll(rc)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", errors.ErrReadInput, name, err)
	}
	return data, nil
}

// Validate checks that name is "-" or an existing regular file, the check the
// CLI runs on --input before doing any work.
func Validate(name string) error {
	if IsStdin(name) {
		return nil
	}
	info, err := os.Stat(name)
	if err != nil {
		if stderrors.Is(err, fs.ErrNotExist) {
			return errors.Wrapf(errors.ErrInputNotFound, "%s", name)
		}
		return errors.Wrapf(err, "failed to stat input %q", name)
	}
	if info.IsDir() {
		return errors.Wrapf(errors.ErrInvalidArgument, "%s is a directory", name)
	}
	return nil
}
