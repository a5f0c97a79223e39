package core

import (
	"io/fs"
	"time"

	"github.com/jmgilman/go/fspath/generic"
)

// DirPerm is the permission used for directories created by the resolver.
const DirPerm fs.FileMode = 0o755

// FSType represents the underlying type of capability implementation.
type FSType int

const (
	// FSTypeUnknown indicates the filesystem type is unknown or unspecified.
	FSTypeUnknown FSType = iota
	// FSTypeLocal indicates the native operating system filesystem.
	FSTypeLocal
	// FSTypeMemory indicates an in-memory filesystem.
	FSTypeMemory
)

// String returns a string representation of the FSType.
func (t FSType) String() string {
	switch t {
	case FSTypeLocal:
		return "local"
	case FSTypeMemory:
		return "memory"
	default:
		return "unknown"
	}
}

// FileID is the identity key used to decide whether two paths name the same
// file.
//
// On POSIX systems Device and Inode come from stat(2). On Windows they are
// the volume serial number and the 64-bit file index. Backends without a
// native identity derive Inode from the link-resolved path and leave Device
// zero. Size is part of the key on every platform. ModTime is part of it
// wherever the backend records a real modification time; in-memory backends
// leave it zero.
type FileID struct {
	Device  uint64
	Inode   uint64
	Size    int64
	ModTime time.Time
}

// Equal reports whether two identity keys match in every field.
func (id FileID) Equal(other FileID) bool {
	return id.Device == other.Device &&
		id.Inode == other.Inode &&
		id.Size == other.Size &&
		id.ModTime.Equal(other.ModTime)
}

// PlatformFileOps is the capability interface every platform implements.
//
// A resolver depends only on this interface: the native operating system,
// an in-memory filesystem and a chrooted directory are interchangeable.
type PlatformFileOps interface {
	StatFS
	SymlinkFS
	DirFS
	ManageFS
	AttrFS
	Environment

	// Convention returns the syntactic path rules of the platform.
	Convention() generic.Convention

	// Type returns the underlying filesystem type.
	Type() FSType
}

// StatFS answers type and existence questions.
type StatFS interface {
	// Stat returns file metadata, following symbolic links.
	Stat(name string) (fs.FileInfo, error)

	// Lstat returns file metadata without following symbolic links.
	// If the file is a symbolic link, the returned FileInfo describes
	// the link itself and its mode includes fs.ModeSymlink.
	Lstat(name string) (fs.FileInfo, error)
}

// SymlinkFS reads symbolic links.
type SymlinkFS interface {
	// Readlink returns the destination of the named symbolic link exactly
	// as stored. It does not follow chains of links.
	// If the file is not a symbolic link, Readlink returns an error.
	Readlink(name string) (string, error)
}

// DirFS enumerates and creates directories.
type DirFS interface {
	// ReadDirNames returns the names of the entries in the directory,
	// in no particular order. "." and ".." are never included.
	ReadDirNames(name string) ([]string, error)

	// Mkdir creates a single directory. The parent must already exist;
	// if it does not, or if name already exists, Mkdir returns an error.
	Mkdir(name string, perm fs.FileMode) error
}

// ManageFS removes entries.
type ManageFS interface {
	// Unlink removes a single non-directory entry. A symbolic link is
	// removed itself, not its target.
	Unlink(name string) error
}

// AttrFS answers attribute questions that have no portable stat field.
type AttrFS interface {
	// Hidden reports whether the platform marks the entry hidden through a
	// native attribute. It does not apply the dot-file convention.
	// Platforms without such an attribute return false and a nil error
	// for entries that exist.
	Hidden(name string) (bool, error)

	// FileID returns the identity key of the file, following links.
	FileID(name string) (FileID, error)
}

// Environment exposes the process state the resolver reads.
type Environment interface {
	// Getenv returns the value of the environment variable, or "" if unset.
	Getenv(key string) string

	// Getwd returns the current working directory.
	Getwd() (string, error)
}
