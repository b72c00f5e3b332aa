package fops

import (
	"archive/tar"
	"compress/bzip2"
	"compress/gzip"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/cockroachdb/errors"
)

// ErrUnsafeArchivePath indicates an archive member whose name would escape
// the extraction directory.
var ErrUnsafeArchivePath = errors.New("archive member escapes extraction directory")

// openArchive opens a tar archive, unwrapping gzip or bzip2 compression
// based on the file extension. The returned closer releases the underlying
// file handle.
func openArchive(path string) (*tar.Reader, io.Closer, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, errors.Wrapf(err, "opening archive %s", path)
	}

	switch {
	case strings.HasSuffix(path, ".gz") || strings.HasSuffix(path, ".tgz"):
		zr, err := gzip.NewReader(f)
		if err != nil {
			f.Close()
			return nil, nil, errors.Wrapf(err, "reading gzip archive %s", path)
		}
		return tar.NewReader(zr), f, nil
	case strings.HasSuffix(path, ".bz2"):
		return tar.NewReader(bzip2.NewReader(f)), f, nil
	default:
		return tar.NewReader(f), f, nil
	}
}

// memberPath validates an archive member name and resolves it under dir.
func memberPath(dir, name string) (string, error) {
	dir = filepath.Clean(dir)
	cleaned := filepath.Clean(filepath.Join(dir, name))
	if cleaned != dir && !strings.HasPrefix(cleaned, dir+string(os.PathSeparator)) {
		return "", errors.Wrapf(ErrUnsafeArchivePath, "%s", name)
	}
	return cleaned, nil
}

// Extract unpacks a tar archive (optionally gzip or bzip2 compressed) into
// dir, which must already exist and be a directory. Member names that would
// escape dir are rejected. Only directories and regular files are created;
// other member types are skipped.
func Extract(archive, dir string) error {
	info, err := os.Stat(dir)
	if err != nil {
		return errors.Wrapf(ErrNotFound, "%s", dir)
	}
	if !info.IsDir() {
		return errors.Wrapf(ErrNotADir, "%s", dir)
	}

	slog.Debug("extracting archive", "archive", archive, "dir", dir)

	tr, closer, err := openArchive(archive)
	if err != nil {
		return err
	}
	defer closer.Close()

	for {
		hdr, err := tr.Next()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return errors.Wrapf(err, "reading archive %s", archive)
		}

		dest, err := memberPath(dir, hdr.Name)
		if err != nil {
			return err
		}

		switch hdr.Typeflag {
		case tar.TypeDir:
			if err := os.MkdirAll(dest, hdr.FileInfo().Mode().Perm()); err != nil {
				return errors.Wrapf(err, "creating %s", dest)
			}
		case tar.TypeReg:
			if err := os.MkdirAll(filepath.Dir(dest), 0755); err != nil {
				return errors.Wrapf(err, "creating %s", filepath.Dir(dest))
			}
			if err := writeMember(dest, tr, hdr.FileInfo().Mode().Perm()); err != nil {
				return err
			}
		}
	}
}

func writeMember(dest string, r io.Reader, perm os.FileMode) error {
	f, err := os.OpenFile(dest, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, perm)
	if err != nil {
		return errors.Wrapf(err, "creating %s", dest)
	}
	if _, err := io.Copy(f, r); err != nil {
		f.Close()
		return errors.Wrapf(err, "writing %s", dest)
	}
	return errors.Wrapf(f.Close(), "closing %s", dest)
}

// ArchiveList returns the member names of a tar archive. When ignoreHidden
// is set, members whose base name starts with a dot are omitted.
func ArchiveList(archive string, ignoreHidden bool) ([]string, error) {
	slog.Debug("listing archive", "archive", archive)

	tr, closer, err := openArchive(archive)
	if err != nil {
		return nil, err
	}
	defer closer.Close()

	var names []string
	for {
		hdr, err := tr.Next()
		if err == io.EOF {
			return names, nil
		}
		if err != nil {
			return nil, errors.Wrapf(err, "reading archive %s", archive)
		}
		if ignoreHidden && strings.HasPrefix(filepath.Base(hdr.Name), ".") {
			continue
		}
		names = append(names, hdr.Name)
	}
}

// ExtractFile returns the contents of a single named member of a tar
// archive. A member that is not present yields ErrNotFound.
func ExtractFile(archive, name string) (string, error) {
	slog.Debug("extracting archive member", "archive", archive, "member", name)

	tr, closer, err := openArchive(archive)
	if err != nil {
		return "", err
	}
	defer closer.Close()

	for {
		hdr, err := tr.Next()
		if err == io.EOF {
			return "", errors.Wrapf(ErrNotFound, "%s in %s", name, archive)
		}
		if err != nil {
			return "", errors.Wrapf(err, "reading archive %s", archive)
		}
		if hdr.Name != name {
			continue
		}
		raw, err := io.ReadAll(tr)
		if err != nil {
			return "", errors.Wrapf(err, "reading %s from %s", name, archive)
		}
		return string(raw), nil
	}
}
