package applog

import (
	"io"
	"os"

	"golang.org/x/term"
)

// IsTTY reports whether the writer is a terminal. It supports os.File and
// any wrapper exposing an Fd method.
func IsTTY(w io.Writer) bool {
	if f, ok := w.(interface{ Fd() uintptr }); ok {
		return term.IsTerminal(int(f.Fd()))
	}
	return false
}

// SupportsColor reports whether the writer should receive ANSI color codes.
// It returns false when the writer is not a TTY, NO_COLOR is set
// (https://no-color.org), or TERM is "dumb".
func SupportsColor(w io.Writer) bool {
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		return false
	}
	if os.Getenv("TERM") == "dumb" {
		return false
	}
	return IsTTY(w)
}
