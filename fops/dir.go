package fops

import (
	"io/fs"
	"log/slog"
	"os"

	"github.com/cockroachdb/errors"
)

// Mkdir creates path and any missing parents. An existing directory is not
// an error. When delExist is set an existing path is deleted and recreated;
// otherwise a path that exists but is not a directory yields ErrNotADir.
func Mkdir(path string, delExist bool) error {
	info, err := os.Lstat(path)
	switch {
	case err == nil && delExist:
		if err := Delete(path, false, false); err != nil {
			return err
		}
	case err == nil:
		if !info.IsDir() {
			return errors.Wrapf(ErrNotADir, "%s", path)
		}
		return nil
	case !errors.Is(err, fs.ErrNotExist):
		return errors.Wrapf(err, "stat %s", path)
	}

	slog.Debug("creating directory", "path", path)
	if err := os.MkdirAll(path, 0755); err != nil {
		return errors.Wrapf(err, "creating %s", path)
	}
	return nil
}
