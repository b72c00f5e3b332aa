package fops

import (
	"fmt"
	"io/fs"
	"log/slog"
	"os"

	"github.com/cockroachdb/errors"
)

// BackupPath renames path to the first unused name in its backup chain:
// "path.bak", then "path.bak.1", "path.bak.2", and so on. Existing backups
// are never overwritten. The chosen backup name is returned; when path does
// not exist nothing happens and the returned name is empty.
func BackupPath(path string) (string, error) {
	if _, err := os.Lstat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", nil
		}
		return "", errors.Wrapf(err, "stat %s", path)
	}

	target := path + ".bak"
	for n := 1; ; n++ {
		_, err := os.Lstat(target)
		if errors.Is(err, fs.ErrNotExist) {
			break
		}
		if err != nil {
			return "", errors.Wrapf(err, "stat %s", target)
		}
		target = fmt.Sprintf("%s.bak.%d", path, n)
	}

	slog.Debug("backing up path", "path", path, "backup", target)
	if err := os.Rename(path, target); err != nil {
		return "", errors.Wrapf(err, "renaming %s to backup", path)
	}
	return target, nil
}
