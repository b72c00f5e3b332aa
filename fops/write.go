package fops

import (
	"log/slog"
	"os"
	"strings"

	"github.com/cockroachdb/errors"

	"github.com/thoreinstein/corekit/format"
)

// Write writes data to path, creating or truncating it. When backup is set
// an existing file at path is diverted into its backup chain first. A
// non-empty newline rewrites every line ending in data to that style;
// leave it empty to write data untouched.
//
// There is no partial-write recovery: if the write fails after a backup was
// taken, the backup stays on disk as the recovery path.
func Write(path, data string, backup bool, newline string) error {
	if backup {
		if _, err := BackupPath(path); err != nil {
			return err
		}
	}

	if newline != "" {
		data = strings.ReplaceAll(data, "\r\n", "\n")
		data = strings.ReplaceAll(data, "\r", "\n")
		if newline != "\n" {
			data = strings.ReplaceAll(data, "\n", newline)
		}
	}

	slog.Debug("writing file", "path", path, "bytes", len(data))
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		return errors.Wrapf(err, "writing %s", path)
	}
	return nil
}

// WriteConvert encodes data as f through reg and writes it to path. Caller
// opts shadow the format's default options. Output line endings are always
// the canonical '\n' regardless of platform. When backup is set an existing
// file is diverted into its backup chain before the write.
func WriteConvert(reg *format.Registry, path string, f format.Format, data map[string]any, opts format.Options, backup bool) error {
	text, err := reg.Encode(f, data, opts)
	if err != nil {
		return err
	}
	return Write(path, text, backup, "")
}
