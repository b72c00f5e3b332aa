// Package settings builds a layered configuration view from defaults, an
// optional system-level file, and an optional user-level file.
//
// Layers merge in fixed precedence: user over system over defaults, with
// nested mappings merged recursively and everything else replaced wholesale.
// Missing files are tolerated; a supplied path that exists but cannot be
// decoded is an error. The merged view is an immutable snapshot: accessors
// hand out copies, and persisting changes means explicitly re-encoding a
// mapping through the format registry.
//
// The defaults mapping should be complete, carrying every key the program
// recognizes, so the merged view can be decoded into a typed configuration
// struct with [Settings.Decode] at a single boundary.
package settings
