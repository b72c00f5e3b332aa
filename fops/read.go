package fops

import (
	"io/fs"
	"log/slog"
	"os"
	"strings"

	"github.com/cockroachdb/errors"

	"github.com/thoreinstein/corekit/format"
)

// Read returns the full textual contents of path. Byte sequences that are
// not valid UTF-8 are replaced with U+FFFD rather than failing the read.
// When strip is set, leading and trailing whitespace is trimmed.
func Read(path string, strip bool) (string, error) {
	slog.Debug("reading file", "path", path)

	raw, err := os.ReadFile(path)
	if err != nil {
		return "", errors.Wrapf(err, "reading %s", path)
	}

	text := strings.ToValidUTF8(string(raw), "�")
	if strip {
		text = strings.TrimSpace(text)
	}
	return text, nil
}

// ReadConvert reads path and decodes it as f through reg. Validation order
// is fixed: format tag first, then existence, then regular-file-ness — an
// unsupported tag fails before the filesystem is touched at all.
//
// A missing path yields an empty mapping when allowMissing is set and
// ErrNotFound otherwise. A path that exists but is not a regular file
// yields ErrNotAFile. opts are decode options shadowing the format's
// defaults; nil is fine.
func ReadConvert(reg *format.Registry, path string, f format.Format, allowMissing bool, opts format.Options) (map[string]any, error) {
	if !reg.Supported(f) {
		return nil, errors.Wrapf(format.ErrUnsupportedFormat, "%q", f)
	}

	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			if allowMissing {
				slog.Debug("missing file tolerated", "path", path)
				return map[string]any{}, nil
			}
			return nil, errors.Wrapf(ErrNotFound, "%s", path)
		}
		return nil, errors.Wrapf(err, "stat %s", path)
	}
	if !info.Mode().IsRegular() {
		return nil, errors.Wrapf(ErrNotAFile, "%s", path)
	}

	text, err := Read(path, false)
	if err != nil {
		return nil, err
	}
	return reg.Decode(f, text, opts)
}
