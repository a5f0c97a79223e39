package resolver

import (
	"github.com/jmgilman/go/fspath/errors"
	"github.com/jmgilman/go/fspath/generic"
)

// IsAbsolute reports whether p is absolute under the platform convention.
func (r *Resolver) IsAbsolute(p string) bool {
	return r.convention.IsAbsolute(p)
}

// AbsolutePath returns p made absolute against the working directory.
func (r *Resolver) AbsolutePath(p string) string {
	return r.absolute(p, r.CWDPath())
}

// AbsolutePathFrom returns p made absolute against base. A relative base is
// first made absolute against the working directory.
func (r *Resolver) AbsolutePathFrom(p, base string) string {
	if !r.IsAbsolute(base) {
		base = r.AbsolutePath(base)
	}
	return r.absolute(p, generic.Normalize(base))
}

func (r *Resolver) absolute(p, base string) string {
	p = generic.Normalize(p)
	if r.IsAbsolute(p) {
		return p
	}
	return generic.Normalize(base + "/" + p)
}

// ResolvePath expands a leading "." to relativeTo and, when allowHome is
// set, a leading "~" to the home directory. If relativeTo is not a
// directory its parent is used. Only the first character is replaced, and
// any other path is returned normalized.
func (r *Resolver) ResolvePath(p, relativeTo string, allowHome bool) string {
	p = generic.Normalize(p)
	if p == "" {
		return p
	}

	switch {
	case p[0] == '.':
		if !r.IsDirectory(relativeTo) {
			relativeTo = generic.Parent(relativeTo)
		}
		return generic.Normalize(relativeTo + "/" + p[1:])
	case allowHome && p[0] == '~':
		return generic.Normalize(r.HomePath() + "/" + p[1:])
	default:
		return p
	}
}

// ResolveSymlink returns the stored target of the link p, one level deep.
// It returns "" if p is not a link or cannot be read.
func (r *Resolver) ResolveSymlink(p string) string {
	p = generic.Normalize(p)
	target, err := r.ops.Readlink(p)
	if err != nil {
		r.queryFailed("readlink", p, err)
		return ""
	}
	return generic.Normalize(target)
}

// CanonicalPath returns the absolute form of p with every "." and ".."
// segment and every symbolic link removed. It returns "" when a link is
// dangling or unreadable, or when resolution substitutes more links than
// the configured maximum.
func (r *Resolver) CanonicalPath(p string) string {
	canonical, err := r.Canonical(p)
	if err != nil {
		r.queryFailed("canonical", p, err)
		return ""
	}
	return canonical
}

// Canonical is CanonicalPath with the reason for a failure. The error code
// is CodeDanglingSymlink for a link that cannot be read or points nowhere
// and CodeSymlinkLoop when the link budget is exhausted.
func (r *Resolver) Canonical(p string) (string, error) {
	path := r.AbsolutePath(p)
	splices := 0

	for walking := true; walking; {
		segments := generic.Split(path)
		path = ""
		walking = false

		for i, seg := range segments {
			switch seg {
			case ".":
				continue
			case "..":
				path = generic.Parent(path)
				continue
			}

			path = r.convention.Append(path, seg)
			if !r.IsSymlink(path) {
				continue
			}

			if err := r.checkLink(p, path); err != nil {
				return "", err
			}
			target := r.ResolveSymlink(path)
			if target == "" {
				return "", linkError(nil, errors.CodeDanglingSymlink, p, path, "unreadable symbolic link")
			}

			splices++
			if splices > r.maxSymlinks {
				return "", linkError(nil, errors.CodeSymlinkLoop, p, path, "too many levels of symbolic links")
			}

			if r.IsAbsolute(target) {
				path = target
			} else {
				path = generic.Parent(path) + "/" + target
			}
			for _, rest := range segments[i+1:] {
				path = r.convention.Append(path, rest)
			}
			walking = true
			break
		}
	}

	if path == "" && r.convention == generic.ConventionPOSIX {
		path = "/"
	}
	return path, nil
}

// checkLink reports a link whose destination cannot be reached.
func (r *Resolver) checkLink(p, link string) error {
	_, err := r.ops.Stat(link)
	switch {
	case err == nil:
		return nil
	case errors.GetCode(err) == errors.CodeSymlinkLoop:
		return linkError(err, errors.CodeSymlinkLoop, p, link, "too many levels of symbolic links")
	default:
		return linkError(err, errors.CodeDanglingSymlink, p, link, "dangling symbolic link")
	}
}

func linkError(cause error, code errors.ErrorCode, p, link, reason string) errors.PlatformError {
	ctx := map[string]interface{}{
		"path": p,
		"link": link,
	}
	msg := "canonicalize " + p + ": " + reason + " " + link
	if cause != nil {
		return errors.WrapWithContext(cause, code, msg, ctx)
	}
	return errors.WithContextMap(errors.New(code, msg), ctx)
}

// HomePath returns the home directory from HOME. On the Windows convention
// it falls back to HOMEDRIVE followed by HOMEPATH. The value is computed on
// the first call and cached for the life of the Resolver, including an empty
// result: setting HOME after the first call has no effect.
func (r *Resolver) HomePath() string {
	return r.home()
}

func (r *Resolver) computeHome() string {
	if home := r.ops.Getenv("HOME"); home != "" {
		return generic.Normalize(home)
	}
	if r.convention == generic.ConventionWindows {
		drive, path := r.ops.Getenv("HOMEDRIVE"), r.ops.Getenv("HOMEPATH")
		if drive != "" && path != "" {
			return generic.Normalize(drive + "/" + path)
		}
	}
	return ""
}

// CWDPath returns the working directory, or "" if it cannot be determined.
func (r *Resolver) CWDPath() string {
	wd, err := r.ops.Getwd()
	if err != nil {
		r.queryFailed("getwd", "", err)
		return ""
	}
	return generic.Normalize(wd)
}
