//go:build windows

package local

import (
	"io/fs"
	"os"
	"time"

	"golang.org/x/sys/windows"

	"github.com/jmgilman/go/fspath/errors"
	"github.com/jmgilman/go/fspath/fs/core"
)

// reparseInfo reports a reparse point as a symbolic link even when the os
// package classifies it otherwise (junctions, app execution aliases).
type reparseInfo struct {
	fs.FileInfo
}

func (r reparseInfo) Mode() fs.FileMode {
	return r.FileInfo.Mode() | fs.ModeSymlink
}

func attributes(name string) (uint32, error) {
	p, err := windows.UTF16PtrFromString(name)
	if err != nil {
		return 0, pathError(err, "getfileattributes", name)
	}
	attrs, err := windows.GetFileAttributes(p)
	if err != nil {
		return 0, pathError(err, "getfileattributes", name)
	}
	return attrs, nil
}

// Lstat returns file metadata without following reparse points. Any reparse
// point is reported with fs.ModeSymlink set.
func (l *Local) Lstat(name string) (fs.FileInfo, error) {
	info, err := os.Lstat(name)
	if err != nil {
		return nil, errors.FromOS(err, "lstat", name)
	}
	if info.Mode()&fs.ModeSymlink != 0 {
		return info, nil
	}
	if attrs, err := attributes(name); err == nil && attrs&windows.FILE_ATTRIBUTE_REPARSE_POINT != 0 {
		return reparseInfo{FileInfo: info}, nil
	}
	return info, nil
}

// Unlink removes a single file with DeleteFile.
func (l *Local) Unlink(name string) error {
	p, err := windows.UTF16PtrFromString(name)
	if err != nil {
		return pathError(err, "unlink", name)
	}
	if err := windows.DeleteFile(p); err != nil {
		return pathError(err, "unlink", name)
	}
	return nil
}

// Hidden reports whether the entry carries FILE_ATTRIBUTE_HIDDEN.
func (l *Local) Hidden(name string) (bool, error) {
	attrs, err := attributes(name)
	if err != nil {
		return false, err
	}
	return attrs&windows.FILE_ATTRIBUTE_HIDDEN != 0, nil
}

// FileID returns the volume serial number and file index of the file with
// its size and last write time.
func (l *Local) FileID(name string) (core.FileID, error) {
	p, err := windows.UTF16PtrFromString(name)
	if err != nil {
		return core.FileID{}, pathError(err, "createfile", name)
	}

	// Zero access rights are enough to query metadata.
	h, err := windows.CreateFile(p,
		0,
		windows.FILE_SHARE_READ|windows.FILE_SHARE_WRITE|windows.FILE_SHARE_DELETE,
		nil,
		windows.OPEN_EXISTING,
		windows.FILE_FLAG_BACKUP_SEMANTICS,
		0)
	if err != nil {
		return core.FileID{}, pathError(err, "createfile", name)
	}
	defer func() { _ = windows.CloseHandle(h) }()

	var info windows.ByHandleFileInformation
	if err := windows.GetFileInformationByHandle(h, &info); err != nil {
		return core.FileID{}, pathError(err, "getfileinformationbyhandle", name)
	}

	return core.FileID{
		Device:  uint64(info.VolumeSerialNumber),
		Inode:   uint64(info.FileIndexHigh)<<32 | uint64(info.FileIndexLow),
		Size:    int64(info.FileSizeHigh)<<32 | int64(info.FileSizeLow),
		ModTime: time.Unix(0, info.LastWriteTime.Nanoseconds()),
	}, nil
}
