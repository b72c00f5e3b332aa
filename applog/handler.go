package applog

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sync"

	"github.com/fatih/color"
)

// ConsoleHandler implements slog.Handler for terse console output: the
// message colored by level, followed by key=value attributes. Color is
// applied only when the writer supports it.
type ConsoleHandler struct {
	level slog.Level
	out   io.Writer
	mu    *sync.Mutex
	attrs []slog.Attr

	debugColor *color.Color
	warnColor  *color.Color
	errorColor *color.Color
	keyColor   *color.Color
}

// NewConsoleHandler creates a console handler writing records at or above
// level to out.
func NewConsoleHandler(out io.Writer, level slog.Level) *ConsoleHandler {
	h := &ConsoleHandler{
		level: level,
		out:   out,
		mu:    &sync.Mutex{},
	}

	if SupportsColor(out) {
		h.debugColor = color.New(color.FgCyan)
		h.warnColor = color.New(color.FgYellow)
		h.errorColor = color.New(color.FgRed)
		h.keyColor = color.New(color.FgHiBlack)
	}

	return h
}

// Enabled reports whether the handler handles records at the given level.
func (h *ConsoleHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level
}

// Handle writes the record as a single line.
func (h *ConsoleHandler) Handle(_ context.Context, r slog.Record) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	msg := r.Message
	if c := h.messageColor(r.Level); c != nil {
		msg = c.Sprint(msg)
	}
	fmt.Fprint(h.out, msg)

	for _, a := range h.attrs {
		h.appendAttr(a)
	}
	r.Attrs(func(a slog.Attr) bool {
		h.appendAttr(a)
		return true
	})

	fmt.Fprintln(h.out)
	return nil
}

// messageColor maps a level to its console color; info stays uncolored.
func (h *ConsoleHandler) messageColor(level slog.Level) *color.Color {
	switch {
	case level >= slog.LevelError:
		return h.errorColor
	case level >= slog.LevelWarn:
		return h.warnColor
	case level < slog.LevelInfo:
		return h.debugColor
	default:
		return nil
	}
}

func (h *ConsoleHandler) appendAttr(a slog.Attr) {
	key := a.Key
	if h.keyColor != nil {
		key = h.keyColor.Sprint(key)
	}
	fmt.Fprintf(h.out, " %s=%v", key, a.Value.Any())
}

// WithAttrs returns a new handler carrying the additional attributes.
func (h *ConsoleHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	newH := *h
	newH.attrs = make([]slog.Attr, len(h.attrs)+len(attrs))
	copy(newH.attrs, h.attrs)
	copy(newH.attrs[len(h.attrs):], attrs)
	return &newH
}

// WithGroup returns the handler unchanged; grouped keys are not nested in
// console output.
func (h *ConsoleHandler) WithGroup(string) slog.Handler {
	return h
}
