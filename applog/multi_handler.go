package applog

import (
	"context"
	"log/slog"

	"github.com/cockroachdb/errors"
)

// MultiHandler fans a record out to multiple handlers, so the console and
// a log file can observe the same stream at different levels.
type MultiHandler struct {
	handlers []slog.Handler
}

// NewMultiHandler creates a handler dispatching to all provided handlers.
func NewMultiHandler(handlers ...slog.Handler) *MultiHandler {
	return &MultiHandler{handlers: handlers}
}

// Enabled reports whether at least one underlying handler is enabled.
func (h *MultiHandler) Enabled(ctx context.Context, level slog.Level) bool {
	for _, handler := range h.handlers {
		if handler.Enabled(ctx, level) {
			return true
		}
	}
	return false
}

// Handle dispatches the record to every enabled handler. Every handler
// runs; their errors are combined.
func (h *MultiHandler) Handle(ctx context.Context, r slog.Record) error {
	var err error
	for _, handler := range h.handlers {
		if !handler.Enabled(ctx, r.Level) {
			continue
		}
		err = errors.CombineErrors(err, handler.Handle(ctx, r))
	}
	return err
}

// WithAttrs returns a MultiHandler whose members all carry the attributes.
func (h *MultiHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	wrapped := make([]slog.Handler, 0, len(h.handlers))
	for _, handler := range h.handlers {
		wrapped = append(wrapped, handler.WithAttrs(attrs))
	}
	return NewMultiHandler(wrapped...)
}

// WithGroup returns a MultiHandler whose members all carry the group.
func (h *MultiHandler) WithGroup(name string) slog.Handler {
	wrapped := make([]slog.Handler, 0, len(h.handlers))
	for _, handler := range h.handlers {
		wrapped = append(wrapped, handler.WithGroup(name))
	}
	return NewMultiHandler(wrapped...)
}
