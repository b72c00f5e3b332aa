// Package applog bootstraps process-wide logging for programs built on
// corekit.
//
// Setup installs a slog default logger that writes colorized, terse
// messages to the console and, optionally, full structured JSON records to
// a log file. Library packages trace their work at debug level through the
// slog default, so enabling debug in Setup makes every file operation
// visible without any further wiring.
//
// Console color is applied only when stdout is a terminal, NO_COLOR is
// unset, and TERM is not "dumb".
package applog
