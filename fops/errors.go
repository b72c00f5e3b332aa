package fops

import "github.com/cockroachdb/errors"

// Sentinel errors for path validation failures. Wrapped errors carry the
// offending path; check with errors.Is.
var (
	// ErrNotFound indicates a required path does not exist.
	ErrNotFound = errors.New("path does not exist")

	// ErrNotAFile indicates a path exists but is not a regular file.
	ErrNotAFile = errors.New("path is not a regular file")

	// ErrNotADir indicates a path exists but is not a directory.
	ErrNotADir = errors.New("path is not a directory")
)
