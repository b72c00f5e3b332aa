package format

import (
	"github.com/cockroachdb/errors"
)

// EncodeFunc serializes a mapping to text using merged options.
type EncodeFunc func(data map[string]any, opts Options) (string, error)

// DecodeFunc parses text into a mapping using merged options.
type DecodeFunc func(text string, opts Options) (map[string]any, error)

// entry binds a format tag to its codec pair and default options. Entries
// are registered once during NewRegistry and never mutated afterward.
type entry struct {
	encode   EncodeFunc
	decode   DecodeFunc
	defaults Options
}

// Registry dispatches encode and decode calls over the closed format set.
// A Registry is immutable after construction and safe to share.
type Registry struct {
	entries map[Format]entry
}

// NewRegistry builds a registry with all supported codecs registered.
func NewRegistry() *Registry {
	return &Registry{
		entries: map[Format]entry{
			JSON: {
				encode:   encodeJSON,
				decode:   decodeJSON,
				defaults: Options{OptIndent: 4},
			},
			XML: {
				encode:   encodeXML,
				decode:   decodeXML,
				defaults: Options{OptIndent: 4, OptRoot: "config", OptDeclaration: true},
			},
			YAML: {
				encode:   encodeYAML,
				decode:   decodeYAML,
				defaults: Options{OptIndent: 4},
			},
			TOML: {
				encode:   encodeTOML,
				decode:   decodeTOML,
				defaults: Options{},
			},
			KV: {
				encode:   encodeKV,
				decode:   decodeKV,
				defaults: Options{OptSpaced: false, OptComment: ""},
			},
		},
	}
}

// Supported reports whether f is a registered format tag.
func (r *Registry) Supported(f Format) bool {
	_, ok := r.entries[f]
	return ok
}

// DefaultOptions returns a copy of the default options for f, or an error
// when f is not a supported format.
func (r *Registry) DefaultOptions(f Format) (Options, error) {
	e, ok := r.entries[f]
	if !ok {
		return nil, errors.Wrapf(ErrUnsupportedFormat, "%q", f)
	}
	return mergeOptions(e.defaults, nil), nil
}

// Encode serializes data as f. Caller options shadow the format's defaults.
// Output has normalized '\n' line endings and exactly one trailing newline.
func (r *Registry) Encode(f Format, data map[string]any, opts Options) (string, error) {
	e, ok := r.entries[f]
	if !ok {
		return "", errors.Wrapf(ErrUnsupportedFormat, "%q", f)
	}

	text, err := e.encode(data, mergeOptions(e.defaults, opts))
	if err != nil {
		return "", errors.Wrapf(err, "encoding %s", f)
	}
	return normalize(text), nil
}

// Decode parses text as f. Caller options shadow the format's defaults.
func (r *Registry) Decode(f Format, text string, opts Options) (map[string]any, error) {
	e, ok := r.entries[f]
	if !ok {
		return nil, errors.Wrapf(ErrUnsupportedFormat, "%q", f)
	}

	data, err := e.decode(text, mergeOptions(e.defaults, opts))
	if err != nil {
		return nil, errors.Wrapf(err, "decoding %s", f)
	}
	return data, nil
}

// defaultRegistry is the process-wide registry. It is built once here and
// treated as read-only for the life of the process.
var defaultRegistry = NewRegistry()

// Default returns the process-wide registry.
func Default() *Registry {
	return defaultRegistry
}

// Supported reports whether f is supported by the default registry.
func Supported(f Format) bool {
	return defaultRegistry.Supported(f)
}

// DefaultOptions returns default options for f from the default registry.
func DefaultOptions(f Format) (Options, error) {
	return defaultRegistry.DefaultOptions(f)
}

// Encode serializes data as f using the default registry.
func Encode(f Format, data map[string]any, opts Options) (string, error) {
	return defaultRegistry.Encode(f, data, opts)
}

// Decode parses text as f using the default registry.
func Decode(f Format, text string, opts Options) (map[string]any, error) {
	return defaultRegistry.Decode(f, text, opts)
}
