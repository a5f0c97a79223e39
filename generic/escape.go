package generic

import "strings"

// shellUnsafe lists the characters a POSIX shell would interpret.
const shellUnsafe = "\\ '\"!$^&*(){}[]?;<>"

// Escape makes a path safe to pass as a single shell argument.
//
// Under the POSIX convention every unsafe character is preceded by a
// backslash. Under the Windows convention the whole path is wrapped in double
// quotes.
func (c Convention) Escape(p string) string {
	p = Normalize(p)
	if c == ConventionWindows {
		return `"` + p + `"`
	}

	if !strings.ContainsAny(p, shellUnsafe) {
		return p
	}

	var b strings.Builder
	b.Grow(len(p) + 8)
	for i := 0; i < len(p); i++ {
		if strings.IndexByte(shellUnsafe, p[i]) >= 0 {
			b.WriteByte('\\')
		}
		b.WriteByte(p[i])
	}
	return b.String()
}

// Escape escapes p under the native convention.
func Escape(p string) string {
	return Native.Escape(p)
}
