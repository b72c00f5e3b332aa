package applog

import (
	"io"
	"log/slog"
	"os"
	"testing"

	"github.com/cockroachdb/errors"
)

// Setup installs the process-wide default logger. Console output goes to
// stdout at info level, or debug level when debug is set. When logFile is
// non-empty, structured JSON records are also appended there, always at
// debug level regardless of the console level.
//
// The returned closer flushes and releases the log file; it is a no-op
// when no file was requested.
func Setup(debug bool, logFile string) (io.Closer, error) {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}

	console := NewConsoleHandler(os.Stdout, level)

	if logFile == "" {
		slog.SetDefault(slog.New(console))
		return nopCloser{}, nil
	}

	f, err := os.OpenFile(logFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return nil, errors.Wrapf(err, "opening log file %s", logFile)
	}

	fileHandler := slog.NewJSONHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug})
	slog.SetDefault(slog.New(NewMultiHandler(console, fileHandler)))
	return f, nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// Discard installs a default logger that drops everything. Use it for
// quiet mode.
func Discard() {
	slog.SetDefault(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

// testWriter adapts testing.T to io.Writer so handler output lands in the
// test log.
type testWriter struct {
	t *testing.T
}

func (w *testWriter) Write(p []byte) (int, error) {
	w.t.Helper()
	msg := string(p)
	if len(msg) > 0 && msg[len(msg)-1] == '\n' {
		msg = msg[:len(msg)-1]
	}
	w.t.Log(msg)
	return len(p), nil
}

// ForTest returns a debug-level logger whose output appears only when the
// test fails or runs with -v.
func ForTest(t *testing.T) *slog.Logger {
	t.Helper()
	return slog.New(NewConsoleHandler(&testWriter{t: t}, slog.LevelDebug))
}
