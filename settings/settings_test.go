package settings

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/thoreinstein/corekit/fops"
	"github.com/thoreinstein/corekit/format"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLayering(t *testing.T) {
	dir := t.TempDir()
	sysPath := writeFile(t, dir, "sys.yaml", "sys: sys\nshared: from-system\n")
	userPath := writeFile(t, dir, "user.yaml", "user: user\nshared: from-user\n")

	s, err := New(map[string]any{"test": "test", "shared": "from-defaults"},
		WithSystemPath(sysPath),
		WithUserPath(userPath),
	)
	require.NoError(t, err)

	want := map[string]any{
		"test":   "test",
		"sys":    "sys",
		"user":   "user",
		"shared": "from-user",
	}
	require.Equal(t, want, s.All())
}

func TestLayeringNested(t *testing.T) {
	dir := t.TempDir()
	sysPath := writeFile(t, dir, "sys.yaml", "server:\n    host: sys-host\n    port: 80\n")
	userPath := writeFile(t, dir, "user.yaml", "server:\n    host: user-host\n")

	s, err := New(map[string]any{"server": map[string]any{"host": "default", "port": 8080, "tls": false}},
		WithSystemPath(sysPath),
		WithUserPath(userPath),
	)
	require.NoError(t, err)

	require.Equal(t, map[string]any{"host": "user-host", "port": 80, "tls": false}, s.Get("server"))
}

func TestMissingLayersTolerated(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name string
		opts []Option
	}{
		{name: "no paths at all"},
		{
			name: "both paths missing",
			opts: []Option{
				WithSystemPath(filepath.Join(dir, "no-sys.yaml")),
				WithUserPath(filepath.Join(dir, "no-user.yaml")),
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := New(map[string]any{"test": "test"}, tt.opts...)
			require.NoError(t, err)
			require.Equal(t, map[string]any{"test": "test"}, s.All())
		})
	}
}

func TestMalformedLayerFails(t *testing.T) {
	dir := t.TempDir()
	userPath := writeFile(t, dir, "user.json", "{not json")

	_, err := New(map[string]any{}, WithUserPath(userPath), WithFormat(format.JSON))
	require.Error(t, err)
}

func TestUnsupportedFormatFailsBeforeFilesystem(t *testing.T) {
	_, err := New(map[string]any{},
		WithUserPath(filepath.Join(t.TempDir(), "absent")),
		WithFormat(format.Format("ini")),
	)
	require.ErrorIs(t, err, format.ErrUnsupportedFormat)
}

func TestDirectoryLayerIsWrongKind(t *testing.T) {
	_, err := New(map[string]any{}, WithUserPath(t.TempDir()))
	require.ErrorIs(t, err, fops.ErrNotAFile)
}

func TestGetLookup(t *testing.T) {
	s, err := New(map[string]any{"present": "value", "nested": map[string]any{"k": "v"}})
	require.NoError(t, err)

	require.Equal(t, "value", s.Get("present"))
	require.Nil(t, s.Get("absent"))

	_, ok := s.Lookup("absent")
	require.False(t, ok)

	got, ok := s.Lookup("present")
	require.True(t, ok)
	require.Equal(t, "value", got)
}

func TestSnapshotImmutable(t *testing.T) {
	s, err := New(map[string]any{"nested": map[string]any{"k": "v"}})
	require.NoError(t, err)

	s.All()["nested"].(map[string]any)["k"] = "changed"
	s.Get("nested").(map[string]any)["k"] = "changed too"

	require.Equal(t, map[string]any{"k": "v"}, s.Get("nested"))
}

func TestDefaultsNotMutatedByConstruction(t *testing.T) {
	dir := t.TempDir()
	userPath := writeFile(t, dir, "user.yaml", "nested:\n    k: overridden\n")

	defaults := map[string]any{"nested": map[string]any{"k": "v"}}
	_, err := New(defaults, WithUserPath(userPath))
	require.NoError(t, err)
	require.Equal(t, map[string]any{"nested": map[string]any{"k": "v"}}, defaults)
}

func TestRead(t *testing.T) {
	dir := t.TempDir()
	sysPath := writeFile(t, dir, "sys.yaml", "sys: sys\nshared: from-system\n")
	userPath := writeFile(t, dir, "user.yaml", "user: user\nshared: from-user\n")

	got, err := Read(sysPath, userPath, format.YAML)
	require.NoError(t, err)
	require.Equal(t, map[string]any{"sys": "sys", "user": "user", "shared": "from-user"}, got)

	// Missing system layer contributes nothing.
	got, err = Read(filepath.Join(dir, "absent.yaml"), userPath, format.YAML)
	require.NoError(t, err)
	require.Equal(t, map[string]any{"user": "user", "shared": "from-user"}, got)
}

func TestDecode(t *testing.T) {
	type serverConfig struct {
		Host string `mapstructure:"host"`
		Port int    `mapstructure:"port"`
	}
	type appConfig struct {
		Name   string       `mapstructure:"name"`
		Server serverConfig `mapstructure:"server"`
	}

	dir := t.TempDir()
	userPath := writeFile(t, dir, "user.yaml", "server:\n    port: 9090\n")

	s, err := New(map[string]any{
		"name":   "corekit",
		"server": map[string]any{"host": "localhost", "port": 8080},
	}, WithUserPath(userPath))
	require.NoError(t, err)

	var cfg appConfig
	require.NoError(t, s.Decode(&cfg))
	require.Equal(t, appConfig{Name: "corekit", Server: serverConfig{Host: "localhost", Port: 9090}}, cfg)
}

func TestKVSettingsFile(t *testing.T) {
	dir := t.TempDir()
	userPath := writeFile(t, dir, "user.conf", "# banner\nhost=remote\n")

	s, err := New(map[string]any{"host": "local", "port": "8080"},
		WithUserPath(userPath),
		WithFormat(format.KV),
		WithDecodeOptions(format.Options{format.OptComment: "#"}),
	)
	require.NoError(t, err)
	require.Equal(t, map[string]any{"host": "remote", "port": "8080"}, s.All())
}

func TestDefaultPaths(t *testing.T) {
	sysPath, userPath := DefaultPaths("corekit", "config.yaml")

	require.True(t, filepath.IsAbs(sysPath))
	require.True(t, filepath.IsAbs(userPath))
	require.Equal(t, "config.yaml", filepath.Base(sysPath))
	require.Equal(t, "config.yaml", filepath.Base(userPath))
	require.Contains(t, sysPath, "corekit")
	require.Contains(t, userPath, "corekit")
	require.NotEqual(t, sysPath, userPath)
}
