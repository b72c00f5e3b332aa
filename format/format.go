package format

import (
	"strings"

	"github.com/cockroachdb/errors"
)

// Format selects which codec serializes or parses a mapping.
type Format string

// The closed set of supported format tags.
const (
	JSON Format = "json"
	XML  Format = "xml"
	YAML Format = "yaml"
	TOML Format = "toml"
	KV   Format = "kv"
)

// ErrUnsupportedFormat indicates a format tag outside the supported set.
// It is reported before any filesystem access is attempted on behalf of
// the caller.
var ErrUnsupportedFormat = errors.New("unsupported format")

// Options holds per-call encoding or decoding options. Keys a codec does
// not recognize are ignored.
type Options map[string]any

// Option keys recognized by the built-in codecs.
const (
	// OptIndent is the indentation width for pretty-printed output
	// (JSON, XML, YAML).
	OptIndent = "indent"

	// OptRoot is the document root element name for XML.
	OptRoot = "root"

	// OptDeclaration controls whether XML output starts with an XML
	// declaration.
	OptDeclaration = "declaration"

	// OptSpaced writes KV pairs as "key = value" instead of "key=value".
	OptSpaced = "spaced"

	// OptComment is the inline comment marker honored when decoding KV
	// text. Empty disables inline comment stripping.
	OptComment = "comment"
)

// mergeOptions shadows defaults with caller-supplied options. The merge is
// shallow and caller keys win. Neither input is modified.
func mergeOptions(defaults, override Options) Options {
	merged := make(Options, len(defaults)+len(override))
	for key, value := range defaults {
		merged[key] = value
	}
	for key, value := range override {
		merged[key] = value
	}
	return merged
}

// normalize rewrites line endings to '\n' and guarantees exactly one
// trailing newline.
func normalize(text string) string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	return strings.TrimRight(text, "\n") + "\n"
}

// intOption reads an integer option, tolerating the float64 values that
// appear when options themselves were decoded from JSON.
func intOption(opts Options, key string, fallback int) int {
	switch v := opts[key].(type) {
	case int:
		return v
	case float64:
		return int(v)
	default:
		return fallback
	}
}

func boolOption(opts Options, key string, fallback bool) bool {
	if v, ok := opts[key].(bool); ok {
		return v
	}
	return fallback
}

func stringOption(opts Options, key, fallback string) string {
	if v, ok := opts[key].(string); ok {
		return v
	}
	return fallback
}
