package local

import (
	"io/fs"
	"os"

	"github.com/jmgilman/go/fspath/errors"
	"github.com/jmgilman/go/fspath/fs/core"
	"github.com/jmgilman/go/fspath/generic"
)

// Local provides the native operating system capabilities.
// It holds no state; Local values are safe for concurrent use.
type Local struct{}

// New returns the native capability implementation.
func New() *Local {
	return &Local{}
}

// Stat returns file metadata for the named file, following symbolic links.
func (l *Local) Stat(name string) (fs.FileInfo, error) {
	info, err := os.Stat(name)
	if err != nil {
		return nil, errors.FromOS(err, "stat", name)
	}
	return info, nil
}

// Readlink returns the stored destination of a symbolic link.
func (l *Local) Readlink(name string) (string, error) {
	target, err := os.Readlink(name)
	if err != nil {
		return "", errors.FromOS(err, "readlink", name)
	}
	return target, nil
}

// ReadDirNames returns the entry names of a directory in directory order.
func (l *Local) ReadDirNames(name string) ([]string, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, errors.FromOS(err, "open", name)
	}
	defer func() { _ = f.Close() }()

	names, err := f.Readdirnames(-1)
	if err != nil {
		return nil, errors.FromOS(err, "readdir", name)
	}
	return names, nil
}

// Mkdir creates a single directory.
func (l *Local) Mkdir(name string, perm fs.FileMode) error {
	if err := os.Mkdir(name, perm); err != nil {
		return errors.FromOS(err, "mkdir", name)
	}
	return nil
}

// Getenv returns the value of an environment variable of the process.
func (l *Local) Getenv(key string) string {
	return os.Getenv(key)
}

// Getwd returns the working directory of the process.
func (l *Local) Getwd() (string, error) {
	wd, err := os.Getwd()
	if err != nil {
		return "", errors.FromOS(err, "getwd", ".")
	}
	return wd, nil
}

// Convention returns the path convention the binary was built for.
func (l *Local) Convention() generic.Convention {
	return generic.Native
}

// Type returns FSTypeLocal.
func (l *Local) Type() core.FSType {
	return core.FSTypeLocal
}

// pathError builds the error for a failed raw system call.
func pathError(err error, op, name string) error {
	return errors.FromOS(&fs.PathError{Op: op, Path: name, Err: err}, op, name)
}

// Compile-time interface checks.
var _ core.PlatformFileOps = (*Local)(nil)
