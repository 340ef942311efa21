// Package testutil provides testing utilities for rcli.
//
// This package contains mock errors and test helpers used across test files.
// It should only be imported by test files (*_test.go).
package testutil

import "errors"

// Mock errors for testing purposes.
var (
	// ErrMockRead simulates a stream that fails midway (used in tests).
	ErrMockRead = errors.New("mock read failure")

	// ErrMockWrite simulates an output sink that rejects writes (used in tests).
	ErrMockWrite = errors.New("mock write failure")
)

// FailingReader is an io.Reader whose every Read returns Err.
type FailingReader struct {
	Err error
}

// Read implements io.Reader.
func (r FailingReader) Read(_ []byte) (int, error) {
	return 0, r.Err
}

// FailingWriter is an io.Writer whose every Write returns Err.
type FailingWriter struct {
	Err error
}

// Write implements io.Writer.
func (w FailingWriter) Write(_ []byte) (int, error) {
	return 0, w.Err
}
