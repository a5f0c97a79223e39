package resolver

import (
	"io/fs"
	"strings"

	"github.com/jmgilman/go/fspath/fs/core"
	"github.com/jmgilman/go/fspath/generic"
)

// Exists reports whether p names an existing entry, following links.
func (r *Resolver) Exists(p string) bool {
	_, ok := r.stat(generic.Normalize(p))
	return ok
}

// IsDirectory reports whether p names a directory, following links.
func (r *Resolver) IsDirectory(p string) bool {
	info, ok := r.stat(generic.Normalize(p))
	return ok && info.IsDir()
}

// IsRegularFile reports whether p names a regular file, following links.
func (r *Resolver) IsRegularFile(p string) bool {
	info, ok := r.stat(generic.Normalize(p))
	return ok && info.Mode().IsRegular()
}

// IsSymlink reports whether p itself is a symbolic link. On Windows every
// reparse point counts.
func (r *Resolver) IsSymlink(p string) bool {
	p = generic.Normalize(p)
	info, err := r.ops.Lstat(p)
	if err != nil {
		r.queryFailed("lstat", p, err)
		return false
	}
	return info.Mode()&fs.ModeSymlink != 0
}

// IsHidden reports whether the platform marks p hidden or its file name
// starts with a dot. The dot-file rule applies on every platform.
func (r *Resolver) IsHidden(p string) bool {
	p = generic.Normalize(p)
	hidden, err := r.ops.Hidden(p)
	if err != nil {
		r.queryFailed("hidden", p, err)
	} else if hidden {
		return true
	}
	return strings.HasPrefix(generic.FileName(p), ".")
}

// IsEquivalent reports whether a and b name the same file. Both identity
// queries must succeed and every field of the keys must match.
func (r *Resolver) IsEquivalent(a, b string) bool {
	idA, ok := r.fileID(generic.Normalize(a))
	if !ok {
		return false
	}
	idB, ok := r.fileID(generic.Normalize(b))
	if !ok {
		return false
	}
	return idA.Equal(idB)
}

// RemoveFile removes the single entry p. A path that does not exist counts
// as removed.
func (r *Resolver) RemoveFile(p string) bool {
	p = generic.Normalize(p)
	if !r.Exists(p) {
		return true
	}
	if err := r.ops.Unlink(p); err != nil {
		r.queryFailed("unlink", p, err)
		return false
	}
	return true
}

// CreateDirectory creates p and any missing ancestors. It returns true if
// p exists afterward. Failures creating ancestors are not reported; only
// the final attempt on p decides the result.
func (r *Resolver) CreateDirectory(p string) bool {
	p = generic.Normalize(p)
	if r.Exists(p) {
		return true
	}
	if r.mkdir(p) {
		return true
	}

	// Collect missing ancestors nearest-first, stopping at the root.
	var missing []string
	for dir := p; ; {
		parent := generic.Parent(dir)
		if parent == dir || parent == "" || r.Exists(parent) {
			break
		}
		missing = append(missing, parent)
		dir = parent
	}
	for i := len(missing) - 1; i >= 0; i-- {
		r.mkdir(missing[i])
	}

	return r.mkdir(p)
}

func (r *Resolver) mkdir(p string) bool {
	if err := r.ops.Mkdir(p, core.DirPerm); err != nil {
		r.queryFailed("mkdir", p, err)
		return false
	}
	return true
}

func (r *Resolver) stat(p string) (fs.FileInfo, bool) {
	info, err := r.ops.Stat(p)
	if err != nil {
		r.queryFailed("stat", p, err)
		return nil, false
	}
	return info, true
}

func (r *Resolver) fileID(p string) (core.FileID, bool) {
	id, err := r.ops.FileID(p)
	if err != nil {
		r.queryFailed("fileid", p, err)
		return core.FileID{}, false
	}
	return id, true
}
