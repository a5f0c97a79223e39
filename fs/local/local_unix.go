//go:build unix

package local

import (
	"io/fs"
	"os"
	"syscall"

	"golang.org/x/sys/unix"

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

// Unlink removes a single non-directory entry with unlink(2).
func (l *Local) Unlink(name string) error {
	if err := unix.Unlink(name); err != nil {
		return pathError(err, "unlink", name)
	}
	return nil
}

// FileID returns the device and inode of the file with its size and
// modification time.
func (l *Local) FileID(name string) (core.FileID, error) {
	info, err := os.Stat(name)
	if err != nil {
		return core.FileID{}, errors.FromOS(err, "stat", name)
	}

	st, ok := info.Sys().(*syscall.Stat_t)
	if !ok {
		return core.FileID{}, errors.FromOS(core.ErrUnsupported, "fileid", name)
	}

	return core.FileID{
		// Field widths vary by GOOS; Dev is int32 on darwin.
		Device:  uint64(st.Dev),
		Inode:   uint64(st.Ino),
		Size:    info.Size(),
		ModTime: info.ModTime(),
	}, nil
}
