// Package fops provides file operations with backup-before-destructive-write
// semantics and format-aware read/write built on the format registry.
//
// Destructive operations can divert through a numbered backup chain:
// "path.bak", "path.bak.1", "path.bak.2", and so on. The chosen backup name
// is always the first unused one, so existing backups are never overwritten.
// Backups are a plain rename; no copy window is introduced beyond what the
// rename primitive guarantees.
//
// Every operation is a direct, blocking filesystem call. Nothing here
// retries, locks, or coordinates with concurrent processes; two writers
// racing on the same backup chain can pick the same name. Each operation
// emits a debug-level trace through the process slog default.
package fops
