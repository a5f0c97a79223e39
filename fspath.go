package fspath

import (
	"sync"

	"github.com/jmgilman/go/fspath/fs/local"
	"github.com/jmgilman/go/fspath/generic"
	"github.com/jmgilman/go/fspath/resolver"
)

var defaultResolver = sync.OnceValue(func() *resolver.Resolver {
	return resolver.New(local.New())
})

// Default returns the process-wide resolver over the native filesystem.
func Default() *resolver.Resolver {
	return defaultResolver()
}

// GenericPath returns p in generic form.
func GenericPath(p string) string { return generic.Normalize(p) }

// EscapedPath returns p escaped for the native command shell.
func EscapedPath(p string) string { return generic.Escape(p) }

// Parent returns everything before the last separator of p.
func Parent(p string) string { return generic.Parent(p) }

// FileName returns everything after the last separator of p.
func FileName(p string) string { return generic.FileName(p) }

// Stem returns the file name of p without its extension.
func Stem(p string) string { return generic.Stem(p) }

// Extension returns the extension of p including the dot, or "." if it
// has none.
func Extension(p string) string { return generic.Extension(p) }

// IsAbsolute reports whether p is absolute under the native convention.
func IsAbsolute(p string) bool { return generic.IsAbsolute(p) }

// Exists reports whether p exists.
func Exists(p string) bool { return Default().Exists(p) }

// IsDirectory reports whether p is a directory.
func IsDirectory(p string) bool { return Default().IsDirectory(p) }

// IsRegularFile reports whether p is a regular file.
func IsRegularFile(p string) bool { return Default().IsRegularFile(p) }

// IsSymlink reports whether p itself is a symbolic link.
func IsSymlink(p string) bool { return Default().IsSymlink(p) }

// IsHidden reports whether p is hidden.
func IsHidden(p string) bool { return Default().IsHidden(p) }

// IsEquivalent reports whether a and b name the same file.
func IsEquivalent(a, b string) bool { return Default().IsEquivalent(a, b) }

// RemoveFile removes the single entry p.
func RemoveFile(p string) bool { return Default().RemoveFile(p) }

// CreateDirectory creates p and any missing ancestors.
func CreateDirectory(p string) bool { return Default().CreateDirectory(p) }

// AbsolutePath returns p made absolute against the working directory.
func AbsolutePath(p string) string { return Default().AbsolutePath(p) }

// AbsolutePathFrom returns p made absolute against base.
func AbsolutePathFrom(p, base string) string { return Default().AbsolutePathFrom(p, base) }

// ResolvePath expands a leading "." or "~" in p.
func ResolvePath(p, relativeTo string, allowHome bool) string {
	return Default().ResolvePath(p, relativeTo, allowHome)
}

// ResolveSymlink returns the target of the link p, one level deep.
func ResolveSymlink(p string) string { return Default().ResolveSymlink(p) }

// CanonicalPath returns p absolute and free of links and dot segments, or
// "" if it cannot be resolved.
func CanonicalPath(p string) string { return Default().CanonicalPath(p) }

// HomePath returns the home directory of the process.
func HomePath() string { return Default().HomePath() }

// CWDPath returns the working directory of the process.
func CWDPath() string { return Default().CWDPath() }

// DirContent returns the sorted entry names of directory p.
func DirContent(p string) []string { return Default().DirContent(p) }
