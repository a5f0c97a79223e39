package resolver

import (
	"slices"

	"github.com/jmgilman/go/fspath/generic"
)

// DirContent returns the names of the entries of directory p in byte
// order, without "." and "..". It does not recurse. A path that is not a
// directory yields an empty listing.
func (r *Resolver) DirContent(p string) []string {
	p = generic.Normalize(p)
	names := []string{}
	if !r.IsDirectory(p) {
		return names
	}

	entries, err := r.ops.ReadDirNames(p)
	if err != nil {
		r.queryFailed("readdir", p, err)
		return names
	}
	for _, name := range entries {
		if name != "." && name != ".." {
			names = append(names, name)
		}
	}
	slices.Sort(names)
	return names
}

// EscapedPath returns p escaped for a command shell of the platform.
func (r *Resolver) EscapedPath(p string) string {
	return r.convention.Escape(p)
}
