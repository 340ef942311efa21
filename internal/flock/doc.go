// Package flock provides cross-platform advisory file locks for the files
// rcli writes.
//
// Usage:
//
//	if err := flock.WriteFile("output.json", data, 0o644); err != nil {
//	    // another rcli process holds the file, or the write failed
//	}
package flock
