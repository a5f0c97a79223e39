package generic

import "strings"

// Convention identifies the syntactic path rules of a platform family.
type Convention int

const (
	// ConventionPOSIX roots absolute paths at a leading '/'.
	ConventionPOSIX Convention = iota
	// ConventionWindows roots absolute paths at a drive letter ("C:").
	ConventionWindows
)

// String returns a string representation of the Convention.
func (c Convention) String() string {
	switch c {
	case ConventionPOSIX:
		return "posix"
	case ConventionWindows:
		return "windows"
	default:
		return "unknown"
	}
}

// ParseConvention maps "posix", "windows" and "native" to a Convention.
// The second result is false for any other name.
func ParseConvention(name string) (Convention, bool) {
	switch strings.ToLower(name) {
	case "posix", "unix":
		return ConventionPOSIX, true
	case "windows":
		return ConventionWindows, true
	case "native", "":
		return Native, true
	default:
		return Native, false
	}
}

// IsAbsolute reports whether p is absolute under the convention.
//
// POSIX paths are absolute when they begin with '/'. Windows paths are
// absolute when their second character is ':'.
func (c Convention) IsAbsolute(p string) bool {
	p = Normalize(p)
	if c == ConventionWindows {
		return len(p) > 1 && p[1] == ':'
	}
	return len(p) > 0 && p[0] == '/'
}

// Append adds one segment to a path being rebuilt from segments.
//
// POSIX rebuilds always start from the root, so every segment is preceded
// by a separator. Windows rebuilds start with the drive segment, which takes
// no leading separator.
func (c Convention) Append(p, segment string) string {
	if c == ConventionWindows && p == "" {
		return segment
	}
	return p + "/" + segment
}

// IsAbsolute reports whether p is absolute under the native convention.
func IsAbsolute(p string) bool {
	return Native.IsAbsolute(p)
}
