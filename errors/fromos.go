package errors

import (
	stderrors "errors"
	"io/fs"
	"syscall"
)

// FromOS translates an error returned by an OS or filesystem call into a
// PlatformError tagged with the operation and path that produced it.
//
// The original error stays in the chain, so errors.Is(err, fs.ErrNotExist)
// still holds for a translated not-found error. The op and path of an
// *fs.PathError are printed once, by the message. PlatformErrors pass through
// unchanged. Returns nil if err is nil.
func FromOS(err error, op, path string) PlatformError {
	if err == nil {
		return nil
	}

	var platformErr PlatformError
	if stderrors.As(err, &platformErr) {
		return platformErr
	}

	code := classifyOS(err, op)

	var pathErr *fs.PathError
	if stderrors.As(err, &pathErr) && pathErr.Err != nil {
		err = pathCause{err: err, text: pathErr.Err.Error()}
	}

	return WrapWithContext(err, code, op+" "+path, map[string]interface{}{
		"op":   op,
		"path": path,
	})
}

// pathCause prints only the inner error of an *fs.PathError.
type pathCause struct {
	err  error
	text string
}

func (c pathCause) Error() string { return c.text }
func (c pathCause) Unwrap() error { return c.err }

func classifyOS(err error, op string) ErrorCode {
	switch {
	case stderrors.Is(err, fs.ErrNotExist):
		return CodeNotFound
	case stderrors.Is(err, fs.ErrExist):
		return CodeAlreadyExists
	case stderrors.Is(err, fs.ErrPermission):
		return CodePermission
	case stderrors.Is(err, stderrors.ErrUnsupported):
		return CodeUnsupported
	case stderrors.Is(err, syscall.ENOTDIR):
		return CodeNotDirectory
	case stderrors.Is(err, syscall.EISDIR):
		return CodeIsDirectory
	case stderrors.Is(err, syscall.ELOOP):
		return CodeSymlinkLoop
	case op == "readlink" && stderrors.Is(err, syscall.EINVAL):
		// readlink(2) reports EINVAL for entries that are not links.
		return CodeNotSymlink
	default:
		return CodeIO
	}
}
