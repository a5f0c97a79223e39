//go:build !unix && !windows

package local

import (
	"io/fs"
	"os"
	"syscall"

	"github.com/jmgilman/go/fspath/errors"
	"github.com/jmgilman/go/fspath/fs/core"
)

// Lstat returns file metadata without following symbolic links.
func (l *Local) Lstat(name string) (fs.FileInfo, error) {
	info, err := os.Lstat(name)
	if err != nil {
		return nil, errors.FromOS(err, "lstat", name)
	}
	return info, nil
}

// Unlink removes a file or a symbolic link. Directories are refused.
func (l *Local) Unlink(name string) error {
	info, err := os.Lstat(name)
	if err != nil {
		return errors.FromOS(err, "unlink", name)
	}
	if info.IsDir() {
		return pathError(syscall.EISDIR, "unlink", name)
	}
	if err := os.Remove(name); err != nil {
		return errors.FromOS(err, "unlink", name)
	}
	return nil
}

// Hidden reports false for every existing entry.
func (l *Local) Hidden(name string) (bool, error) {
	if _, err := l.Lstat(name); err != nil {
		return false, err
	}
	return false, nil
}

// FileID is not available: the platform exposes no file identity.
func (l *Local) FileID(name string) (core.FileID, error) {
	return core.FileID{}, errors.FromOS(core.ErrUnsupported, "stat", name)
}
