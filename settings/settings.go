package settings

import (
	"log/slog"

	"github.com/thoreinstein/corekit/fops"
	"github.com/thoreinstein/corekit/format"
	"github.com/thoreinstein/corekit/merge"
)

// Settings is an immutable snapshot of the merged configuration layers.
type Settings struct {
	merged map[string]any
}

// Option configures construction of a Settings view.
type Option func(*loadSpec)

type loadSpec struct {
	sysPath  string
	userPath string
	format   format.Format
	registry *format.Registry
	decode   format.Options
}

// WithSystemPath supplies the system-level settings file. A missing file is
// tolerated and contributes nothing.
func WithSystemPath(path string) Option {
	return func(s *loadSpec) { s.sysPath = path }
}

// WithUserPath supplies the user-level settings file. A missing file is
// tolerated and contributes nothing.
func WithUserPath(path string) Option {
	return func(s *loadSpec) { s.userPath = path }
}

// WithFormat selects the settings file format. The default is YAML.
func WithFormat(f format.Format) Option {
	return func(s *loadSpec) { s.format = f }
}

// WithRegistry selects the codec registry used to decode settings files.
// The default is the process-wide registry.
func WithRegistry(reg *format.Registry) Option {
	return func(s *loadSpec) { s.registry = reg }
}

// WithDecodeOptions supplies decode options shadowing the format's defaults.
func WithDecodeOptions(opts format.Options) Option {
	return func(s *loadSpec) { s.decode = opts }
}

// New builds a settings view. Construction is the only transition: defaults
// are merged with the system layer, then the user layer, and the result is
// retained as an immutable snapshot. The defaults mapping is expected to be
// complete, holding every recognized key.
func New(defaults map[string]any, opts ...Option) (*Settings, error) {
	spec := loadSpec{format: format.YAML, registry: format.Default()}
	for _, opt := range opts {
		opt(&spec)
	}

	view := merge.DeepCopy(defaults)
	for _, path := range []string{spec.sysPath, spec.userPath} {
		if path == "" {
			continue
		}
		layer, err := fops.ReadConvert(spec.registry, path, spec.format, true, spec.decode)
		if err != nil {
			return nil, err
		}
		slog.Debug("merging settings layer", "path", path, "keys", len(layer))
		view = merge.Maps(view, layer)
	}

	return &Settings{merged: view}, nil
}

// Read is the standalone form of the layered load: it merges the system
// file, then the user file, tolerating missing paths, without tracking
// defaults or constructing a Settings value.
func Read(sysPath, userPath string, f format.Format) (map[string]any, error) {
	s, err := New(map[string]any{},
		WithSystemPath(sysPath),
		WithUserPath(userPath),
		WithFormat(f),
	)
	if err != nil {
		return nil, err
	}
	return s.All(), nil
}

// Get returns the value bound to key, or nil when the key is absent.
func (s *Settings) Get(key string) any {
	value, _ := s.Lookup(key)
	return value
}

// Lookup returns the value bound to key and whether the key is present.
// Composite values are copied so callers cannot alter the snapshot.
func (s *Settings) Lookup(key string) (any, bool) {
	value, ok := s.merged[key]
	if !ok {
		return nil, false
	}
	return merge.Value(value), true
}

// All returns a copy of the full merged snapshot.
func (s *Settings) All() map[string]any {
	return merge.DeepCopy(s.merged)
}
