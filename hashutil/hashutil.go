// Package hashutil hashes and encodes file contents.
package hashutil

import (
	"crypto/md5"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"hash"
	"io"
	"io/fs"
	"log/slog"
	"os"

	"github.com/cockroachdb/errors"

	"github.com/thoreinstein/corekit/fops"
)

// openRegular opens path after verifying it exists and is a regular file.
func openRegular(path string) (*os.File, error) {
	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, errors.Wrapf(fops.ErrNotFound, "%s", path)
		}
		return nil, errors.Wrapf(err, "stat %s", path)
	}
	if !info.Mode().IsRegular() {
		return nil, errors.Wrapf(fops.ErrNotAFile, "%s", path)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "opening %s", path)
	}
	return f, nil
}

func hashFile(path string, h hash.Hash) (string, error) {
	f, err := openRegular(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	if _, err := io.Copy(h, f); err != nil {
		return "", errors.Wrapf(err, "hashing %s", path)
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}

// MD5 returns the hex-encoded MD5 digest of the file at path.
func MD5(path string) (string, error) {
	slog.Debug("generating MD5 hash", "path", path)
	return hashFile(path, md5.New())
}

// SHA256 returns the hex-encoded SHA256 digest of the file at path.
func SHA256(path string) (string, error) {
	slog.Debug("generating SHA256 hash", "path", path)
	return hashFile(path, sha256.New())
}

// EncodeBase64 reads the file at path and returns its contents as a
// standard base64 string.
func EncodeBase64(path string) (string, error) {
	slog.Debug("base64 encoding file", "path", path)

	f, err := openRegular(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	raw, err := io.ReadAll(f)
	if err != nil {
		return "", errors.Wrapf(err, "reading %s", path)
	}
	return base64.StdEncoding.EncodeToString(raw), nil
}
