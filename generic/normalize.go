package generic

import "strings"

// extendedPrefix is the Win32 prefix that disables path parsing.
const extendedPrefix = `\\?\`

// Normalize converts an OS-native path into generic form.
//
// It strips a leading extended-length prefix, replaces every backslash with
// a forward slash and collapses runs of slashes into one. Normalize is
// idempotent.
func Normalize(raw string) string {
	p := strings.TrimPrefix(raw, extendedPrefix)
	p = strings.ReplaceAll(p, `\`, "/")

	if !strings.Contains(p, "//") {
		return p
	}

	var b strings.Builder
	b.Grow(len(p))
	for i := 0; i < len(p); i++ {
		if p[i] == '/' && i > 0 && p[i-1] == '/' {
			continue
		}
		b.WriteByte(p[i])
	}
	return b.String()
}

// Split returns the non-empty segments of a path.
// Leading, trailing and duplicate separators produce no segments.
func Split(p string) []string {
	return strings.FieldsFunc(Normalize(p), func(r rune) bool { return r == '/' })
}
