// Package filesystem is the persistence collaborator for generated
// artifacts. The core packages hand it fully materialized strings; it takes
// care of atomic writes and of skipping writes whose content is unchanged,
// using a sha256 hash comparison (drift detection).
package filesystem

import (
	"crypto/sha256"
	"encoding/hex"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/toolup-cli/toolup/pkg/errors"
	"github.com/toolup-cli/toolup/pkg/logging"
	"github.com/toolup-cli/toolup/pkg/types"
)

// osFS implements types.FS using the OS filesystem
type osFS struct{}

// NewOS creates a new OS filesystem implementation
func NewOS() types.FS {
	return &osFS{}
}

func (o *osFS) Stat(name string) (fs.FileInfo, error) {
	return os.Stat(name)
}

func (o *osFS) ReadFile(name string) ([]byte, error) {
	return os.ReadFile(name)
}

func (o *osFS) WriteFile(name string, data []byte, perm fs.FileMode) error {
	return os.WriteFile(name, data, perm)
}

func (o *osFS) MkdirAll(path string, perm fs.FileMode) error {
	return os.MkdirAll(path, perm)
}

func (o *osFS) Rename(oldpath, newpath string) error {
	return os.Rename(oldpath, newpath)
}

func (o *osFS) Remove(name string) error {
	return os.Remove(name)
}

// ContentHash returns the hex sha256 of content. Generated artifacts are
// deterministic, so equal hashes mean an up-to-date file.
func ContentHash(content []byte) string {
	sum := sha256.Sum256(content)
	return hex.EncodeToString(sum[:])
}

// ReadFileIfExists returns the file content, or "" when the file is absent.
func ReadFileIfExists(filesys types.FS, path string) (string, error) {
	data, err := filesys.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", nil
		}
		return "", errors.Wrapf(err, errors.ErrFileAccess, "failed to read %s", path)
	}
	return string(data), nil
}

// WriteFileAtomic writes content to path via a temp file and rename, so an
// interrupted run never leaves a partially written artifact behind. When
// the existing content hash matches, the write is skipped entirely and
// false is returned.
func WriteFileAtomic(filesys types.FS, path string, content []byte, perm fs.FileMode) (bool, error) {
	log := logging.GetLogger("filesystem")

	if existing, err := filesys.ReadFile(path); err == nil {
		if ContentHash(existing) == ContentHash(content) {
			log.Debug().Str("path", path).Msg("Content unchanged, skipping write")
			return false, nil
		}
	}

	dir := filepath.Dir(path)
	if err := filesys.MkdirAll(dir, 0755); err != nil {
		return false, errors.Wrapf(err, errors.ErrDirCreate, "failed to create directory %s", dir)
	}

	tmp := path + ".toolup.tmp"
	if err := filesys.WriteFile(tmp, content, perm); err != nil {
		return false, errors.Wrapf(err, errors.ErrFileWrite, "failed to write %s", tmp)
	}
	if err := filesys.Rename(tmp, path); err != nil {
		// Best effort cleanup; the rename failure is the real error.
		_ = filesys.Remove(tmp)
		return false, errors.Wrapf(err, errors.ErrFileWrite, "failed to move %s into place", path)
	}

	log.Debug().Str("path", path).Int("bytes", len(content)).Msg("Artifact written")
	return true, nil
}
