package fops

import (
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/cockroachdb/errors"
)

// Delete removes a file, directory tree, or symbolic link. A missing path
// is not an error; all other I/O failures propagate.
//
// For a symlink the link itself is always unlinked. When follow is set the
// resolved target is deleted as well, chasing link chains, unless backup is
// also set, in which case the target is left in place for the caller to
// handle. Backing up and deleting a followed target in one call is not
// supported.
//
// For any other path, backup diverts the path into its backup chain instead
// of deleting it.
func Delete(path string, follow, backup bool) error {
	info, err := os.Lstat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return errors.Wrapf(err, "stat %s", path)
	}

	if info.Mode()&fs.ModeSymlink != 0 {
		return deleteLink(path, follow, backup)
	}

	if backup {
		_, err := BackupPath(path)
		return err
	}

	if info.IsDir() {
		slog.Debug("deleting directory", "path", path)
	} else {
		slog.Debug("deleting file", "path", path)
	}
	if err := os.RemoveAll(path); err != nil {
		return errors.Wrapf(err, "removing %s", path)
	}
	return nil
}

func deleteLink(path string, follow, backup bool) error {
	target := ""
	if follow && !backup {
		t, err := os.Readlink(path)
		if err != nil {
			return errors.Wrapf(err, "reading link %s", path)
		}
		if !filepath.IsAbs(t) {
			t = filepath.Join(filepath.Dir(path), t)
		}
		target = t
	}

	slog.Debug("deleting link", "path", path)
	if err := os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return errors.Wrapf(err, "removing link %s", path)
	}

	if target != "" {
		slog.Debug("deleting link target", "path", target)
		return Delete(target, follow, false)
	}
	return nil
}
