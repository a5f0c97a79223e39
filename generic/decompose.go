package generic

import "strings"

// Parent returns everything before the last separator.
// A path without a separator has no representable parent and is returned
// unchanged.
func Parent(p string) string {
	p = Normalize(p)
	if i := strings.LastIndexByte(p, '/'); i >= 0 {
		return p[:i]
	}
	return p
}

// FileName returns everything after the last separator.
// A path ending in a separator names the directory itself and yields ".".
// A path without a separator is entirely a file name.
func FileName(p string) string {
	p = Normalize(p)
	i := strings.LastIndexByte(p, '/')
	switch {
	case i < 0:
		return p
	case i == len(p)-1:
		return "."
	default:
		return p[i+1:]
	}
}

// Stem returns the file name without its extension.
func Stem(p string) string {
	name := FileName(p)
	if name == "." {
		return name
	}
	if i := strings.LastIndexByte(name, '.'); i >= 0 {
		return name[:i]
	}
	return name
}

// Extension returns the suffix of the file name starting at its last dot.
// A file name without a dot, and the directory reference ".", yield ".".
func Extension(p string) string {
	name := FileName(p)
	if name == "." {
		return name
	}
	if i := strings.LastIndexByte(name, '.'); i >= 0 {
		return name[i:]
	}
	return "."
}
