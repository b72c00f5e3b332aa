package fops

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/cockroachdb/errors"

	"github.com/thoreinstein/corekit/format"
)

func TestReadConvert(t *testing.T) {
	reg := format.Default()

	t.Run("unsupported tag fails before filesystem access", func(t *testing.T) {
		// The path does not exist; a filesystem-first implementation
		// would report not-found instead.
		_, err := ReadConvert(reg, filepath.Join(t.TempDir(), "absent"), format.Format("ini"), false, nil)
		if !errors.Is(err, format.ErrUnsupportedFormat) {
			t.Errorf("ReadConvert() error = %v, want ErrUnsupportedFormat", err)
		}
	})

	t.Run("allow missing yields empty mapping", func(t *testing.T) {
		got, err := ReadConvert(reg, filepath.Join(t.TempDir(), "absent"), format.YAML, true, nil)
		if err != nil {
			t.Fatalf("ReadConvert() error = %v", err)
		}
		if len(got) != 0 {
			t.Errorf("ReadConvert() = %#v, want empty map", got)
		}
	})

	t.Run("missing without tolerance", func(t *testing.T) {
		_, err := ReadConvert(reg, filepath.Join(t.TempDir(), "absent"), format.YAML, false, nil)
		if !errors.Is(err, ErrNotFound) {
			t.Errorf("ReadConvert() error = %v, want ErrNotFound", err)
		}
	})

	t.Run("directory is wrong kind, not missing", func(t *testing.T) {
		_, err := ReadConvert(reg, t.TempDir(), format.YAML, false, nil)
		if !errors.Is(err, ErrNotAFile) {
			t.Errorf("ReadConvert() error = %v, want ErrNotAFile", err)
		}
		if errors.Is(err, ErrNotFound) {
			t.Error("wrong-kind error must stay distinct from not-found")
		}
	})

	t.Run("decodes by format tag", func(t *testing.T) {
		dir := t.TempDir()
		path := filepath.Join(dir, "conf.json")
		if err := os.WriteFile(path, []byte(`{"name": "corekit"}`), 0644); err != nil {
			t.Fatal(err)
		}

		got, err := ReadConvert(reg, path, format.JSON, false, nil)
		if err != nil {
			t.Fatalf("ReadConvert() error = %v", err)
		}
		if !reflect.DeepEqual(got, map[string]any{"name": "corekit"}) {
			t.Errorf("ReadConvert() = %#v", got)
		}
	})

	t.Run("decode options pass through", func(t *testing.T) {
		dir := t.TempDir()
		path := filepath.Join(dir, "conf.kv")
		if err := os.WriteFile(path, []byte("key=value # note\n"), 0644); err != nil {
			t.Fatal(err)
		}

		got, err := ReadConvert(reg, path, format.KV, false, format.Options{format.OptComment: "#"})
		if err != nil {
			t.Fatalf("ReadConvert() error = %v", err)
		}
		if !reflect.DeepEqual(got, map[string]any{"key": "value"}) {
			t.Errorf("ReadConvert() = %#v", got)
		}
	})
}

func TestWrite(t *testing.T) {
	t.Run("creates and truncates", func(t *testing.T) {
		dir := t.TempDir()
		path := filepath.Join(dir, "f")

		if err := Write(path, "first\n", false, ""); err != nil {
			t.Fatalf("Write() error = %v", err)
		}
		if err := Write(path, "second\n", false, ""); err != nil {
			t.Fatalf("Write() error = %v", err)
		}

		raw, err := os.ReadFile(path)
		if err != nil {
			t.Fatal(err)
		}
		if string(raw) != "second\n" {
			t.Errorf("content = %q", raw)
		}
	})

	t.Run("backup before overwrite", func(t *testing.T) {
		dir := t.TempDir()
		path := filepath.Join(dir, "f")
		if err := os.WriteFile(path, []byte("old\n"), 0644); err != nil {
			t.Fatal(err)
		}

		if err := Write(path, "new\n", true, ""); err != nil {
			t.Fatalf("Write() error = %v", err)
		}

		backed, err := os.ReadFile(path + ".bak")
		if err != nil {
			t.Fatalf("backup missing: %v", err)
		}
		if string(backed) != "old\n" {
			t.Errorf("backup content = %q", backed)
		}
	})

	t.Run("newline style rewrite", func(t *testing.T) {
		dir := t.TempDir()
		path := filepath.Join(dir, "f")

		if err := Write(path, "a\r\nb\nc\r", false, "\r\n"); err != nil {
			t.Fatalf("Write() error = %v", err)
		}
		raw, err := os.ReadFile(path)
		if err != nil {
			t.Fatal(err)
		}
		if string(raw) != "a\r\nb\r\nc\r\n" {
			t.Errorf("content = %q", raw)
		}
	})
}

func TestWriteConvert(t *testing.T) {
	reg := format.Default()

	t.Run("round trips through the registry", func(t *testing.T) {
		dir := t.TempDir()
		path := filepath.Join(dir, "conf.yaml")
		data := map[string]any{"name": "corekit", "server": map[string]any{"host": "localhost"}}

		if err := WriteConvert(reg, path, format.YAML, data, nil, false); err != nil {
			t.Fatalf("WriteConvert() error = %v", err)
		}

		raw, err := os.ReadFile(path)
		if err != nil {
			t.Fatal(err)
		}
		if !strings.HasSuffix(string(raw), "\n") || strings.HasSuffix(string(raw), "\n\n") {
			t.Errorf("output not newline-normalized: %q", raw)
		}

		got, err := ReadConvert(reg, path, format.YAML, false, nil)
		if err != nil {
			t.Fatalf("ReadConvert() error = %v", err)
		}
		if !reflect.DeepEqual(got, data) {
			t.Errorf("round trip = %#v, want %#v", got, data)
		}
	})

	t.Run("unsupported tag writes nothing", func(t *testing.T) {
		dir := t.TempDir()
		path := filepath.Join(dir, "conf")

		err := WriteConvert(reg, path, format.Format("ini"), map[string]any{}, nil, false)
		if !errors.Is(err, format.ErrUnsupportedFormat) {
			t.Fatalf("WriteConvert() error = %v, want ErrUnsupportedFormat", err)
		}
		if _, err := os.Stat(path); !errors.Is(err, os.ErrNotExist) {
			t.Error("file created despite encode failure")
		}
	})

	t.Run("backup chain advances per write", func(t *testing.T) {
		dir := t.TempDir()
		path := filepath.Join(dir, "conf.json")

		for i := 0; i < 3; i++ {
			data := map[string]any{"rev": string(rune('a' + i))}
			if err := WriteConvert(reg, path, format.JSON, data, nil, true); err != nil {
				t.Fatalf("WriteConvert() error = %v", err)
			}
		}

		// First write had nothing to back up; the second and third did.
		if _, err := os.Stat(path + ".bak"); err != nil {
			t.Errorf("first backup missing: %v", err)
		}
		if _, err := os.Stat(path + ".bak.1"); err != nil {
			t.Errorf("second backup missing: %v", err)
		}
	})
}
