package billy

import (
	"hash/fnv"
	"io/fs"
	"strings"
	"syscall"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/memfs"
	"github.com/go-git/go-billy/v5/osfs"

	"github.com/jmgilman/go/fspath/errors"
	"github.com/jmgilman/go/fspath/fs/core"
	"github.com/jmgilman/go/fspath/generic"
)

// maxLinks bounds link resolution inside FileID.
const maxLinks = 40

// Filesystem is the subset of go-billy a Platform needs.
type Filesystem interface {
	billy.Basic
	billy.Dir
	billy.Symlink
}

// Platform implements core.PlatformFileOps over a go-billy filesystem.
type Platform struct {
	bfs        Filesystem
	fsType     core.FSType
	convention generic.Convention
	env        map[string]string
	wd         string
}

// Option configures a Platform.
type Option func(*Platform)

// WithEnv sets the environment variables returned by Getenv.
// The map is copied.
func WithEnv(env map[string]string) Option {
	return func(p *Platform) {
		p.env = make(map[string]string, len(env))
		for k, v := range env {
			p.env[k] = v
		}
	}
}

// WithWorkingDir sets the directory returned by Getwd.
func WithWorkingDir(dir string) Option {
	return func(p *Platform) {
		p.wd = generic.Normalize(dir)
	}
}

// WithConvention sets the path convention reported by the platform.
// The default is ConventionPOSIX.
func WithConvention(c generic.Convention) Option {
	return func(p *Platform) {
		p.convention = c
	}
}

// New wraps an existing go-billy filesystem.
func New(bfs Filesystem, opts ...Option) *Platform {
	return newPlatform(bfs, core.FSTypeUnknown, opts)
}

// NewMemory creates a Platform over an empty go-billy memfs.
func NewMemory(opts ...Option) *Platform {
	return newPlatform(memfs.New(), core.FSTypeMemory, opts)
}

// NewLocal creates a Platform over the local directory root. Every path is
// interpreted relative to root, and links cannot escape it.
func NewLocal(root string, opts ...Option) *Platform {
	return newPlatform(osfs.New(root), core.FSTypeLocal, opts)
}

func newPlatform(bfs Filesystem, t core.FSType, opts []Option) *Platform {
	p := &Platform{
		bfs:        bfs,
		fsType:     t,
		convention: generic.ConventionPOSIX,
		env:        map[string]string{},
		wd:         "/",
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Unwrap returns the underlying go-billy filesystem.
func (p *Platform) Unwrap() Filesystem {
	return p.bfs
}

// Stat returns file metadata for the named file, following symbolic links.
func (p *Platform) Stat(name string) (fs.FileInfo, error) {
	resolved, err := p.resolve(name, "stat")
	if err != nil {
		return nil, err
	}
	info, err := p.bfs.Lstat(resolved)
	if err != nil {
		return nil, errors.FromOS(err, "stat", name)
	}
	return info, nil
}

// Lstat returns file metadata without following a final symbolic link.
func (p *Platform) Lstat(name string) (fs.FileInfo, error) {
	physical, err := p.resolveParent(name, "lstat")
	if err != nil {
		return nil, err
	}
	info, err := p.bfs.Lstat(physical)
	if err != nil {
		return nil, errors.FromOS(err, "lstat", name)
	}
	return info, nil
}

// Readlink returns the stored destination of a symbolic link.
func (p *Platform) Readlink(name string) (string, error) {
	physical, err := p.resolveParent(name, "readlink")
	if err != nil {
		return "", err
	}
	info, err := p.bfs.Lstat(physical)
	if err != nil {
		return "", errors.FromOS(err, "readlink", name)
	}
	if info.Mode()&fs.ModeSymlink == 0 {
		return "", errors.WithContextMap(
			errors.Newf(errors.CodeNotSymlink, "readlink %s: not a symbolic link", name),
			map[string]interface{}{"op": "readlink", "path": name},
		)
	}

	target, err := p.bfs.Readlink(physical)
	if err != nil {
		return "", errors.FromOS(err, "readlink", name)
	}
	return target, nil
}

// ReadDirNames returns the entry names of a directory.
func (p *Platform) ReadDirNames(name string) ([]string, error) {
	resolved, err := p.resolve(name, "open")
	if err != nil {
		return nil, err
	}
	info, err := p.bfs.Lstat(resolved)
	if err != nil {
		return nil, errors.FromOS(err, "open", name)
	}
	if !info.IsDir() {
		return nil, errors.FromOS(&fs.PathError{Op: "readdir", Path: name, Err: syscall.ENOTDIR}, "readdir", name)
	}

	infos, err := p.bfs.ReadDir(resolved)
	if err != nil {
		return nil, errors.FromOS(err, "readdir", name)
	}
	names := make([]string, 0, len(infos))
	for _, fi := range infos {
		if n := fi.Name(); n != "." && n != ".." {
			names = append(names, n)
		}
	}
	return names, nil
}

// Mkdir creates a single directory.
// Unlike MkdirAll, this will fail if the parent directory does not exist.
func (p *Platform) Mkdir(name string, perm fs.FileMode) error {
	physical, err := p.resolveParent(name, "mkdir")
	if err != nil {
		return err
	}
	if _, err := p.bfs.Lstat(physical); err == nil {
		return errors.FromOS(&fs.PathError{Op: "mkdir", Path: name, Err: fs.ErrExist}, "mkdir", name)
	}

	// Check if parent exists (unless it's root)
	parent := generic.Parent(physical)
	if parent != "" && parent != physical {
		info, err := p.bfs.Lstat(parent)
		if err != nil {
			return errors.FromOS(err, "mkdir", name)
		}
		if !info.IsDir() {
			return errors.FromOS(&fs.PathError{Op: "mkdir", Path: name, Err: syscall.ENOTDIR}, "mkdir", name)
		}
	}

	// MkdirAll won't create parents since we verified the parent exists
	if err := p.bfs.MkdirAll(physical, perm); err != nil {
		return errors.FromOS(err, "mkdir", name)
	}
	return nil
}

// Unlink removes a single non-directory entry. Links are removed
// themselves.
func (p *Platform) Unlink(name string) error {
	physical, err := p.resolveParent(name, "unlink")
	if err != nil {
		return err
	}
	info, err := p.bfs.Lstat(physical)
	if err != nil {
		return errors.FromOS(err, "unlink", name)
	}
	if info.IsDir() {
		return errors.FromOS(&fs.PathError{Op: "unlink", Path: name, Err: syscall.EISDIR}, "unlink", name)
	}
	if err := p.bfs.Remove(physical); err != nil {
		return errors.FromOS(err, "unlink", name)
	}
	return nil
}

// Hidden reports false for every existing entry; go-billy has no hidden
// attribute.
func (p *Platform) Hidden(name string) (bool, error) {
	if _, err := p.Lstat(name); err != nil {
		return false, err
	}
	return false, nil
}

// FileID returns the identity key of the file, following links. ModTime is
// only set for a Platform created by NewLocal; other go-billy filesystems
// carry no stable modification time.
func (p *Platform) FileID(name string) (core.FileID, error) {
	resolved, err := p.resolve(name, "stat")
	if err != nil {
		return core.FileID{}, err
	}
	info, err := p.bfs.Lstat(resolved)
	if err != nil {
		return core.FileID{}, errors.FromOS(err, "stat", name)
	}

	h := fnv.New64a()
	_, _ = h.Write([]byte(resolved))
	id := core.FileID{
		Inode: h.Sum64(),
		Size:  info.Size(),
	}
	// memfs reports the current time as every file's ModTime.
	if p.fsType == core.FSTypeLocal {
		id.ModTime = info.ModTime()
	}
	return id, nil
}

// resolve returns the physical location of name with every symbolic link
// followed, including links in directory components. go-billy memfs only
// follows a link in the final component, and recurses without bound on
// cycles.
func (p *Platform) resolve(name, op string) (string, error) {
	pending := generic.Split(name)
	resolved := p.root()
	links := 0

	for len(pending) > 0 {
		seg := pending[0]
		pending = pending[1:]

		switch seg {
		case ".":
			continue
		case "..":
			if resolved != p.root() {
				resolved = p.join(generic.Parent(resolved), "")
			}
			continue
		}

		next := p.join(resolved, seg)
		info, err := p.bfs.Lstat(next)
		if err != nil {
			return "", errors.FromOS(err, op, name)
		}
		if info.Mode()&fs.ModeSymlink == 0 {
			resolved = next
			continue
		}

		links++
		if links > maxLinks {
			return "", errors.FromOS(&fs.PathError{Op: op, Path: name, Err: syscall.ELOOP}, op, name)
		}
		target, err := p.bfs.Readlink(next)
		if err != nil {
			return "", errors.FromOS(err, op, name)
		}
		target = generic.Normalize(target)
		if p.convention.IsAbsolute(target) {
			resolved = p.root()
		}
		pending = append(generic.Split(target), pending...)
	}
	return resolved, nil
}

// resolveParent resolves every component of name except the last.
func (p *Platform) resolveParent(name, op string) (string, error) {
	name = generic.Normalize(name)
	segments := generic.Split(name)
	if len(segments) == 0 {
		return p.root(), nil
	}
	last := segments[len(segments)-1]
	if last == "." || last == ".." {
		return p.resolve(name, op)
	}

	dir, err := p.resolve(strings.Join(segments[:len(segments)-1], "/"), op)
	if err != nil {
		return "", err
	}
	return p.join(dir, last), nil
}

// root is the path every resolution starts from.
func (p *Platform) root() string {
	if p.convention == generic.ConventionWindows {
		return ""
	}
	return "/"
}

// join appends a segment to a resolved directory.
func (p *Platform) join(dir, seg string) string {
	if seg == "" {
		if dir == "" {
			return p.root()
		}
		return dir
	}
	return generic.Normalize(p.convention.Append(dir, seg))
}

// Getenv returns the configured value of the environment variable.
func (p *Platform) Getenv(key string) string {
	return p.env[key]
}

// Getwd returns the configured working directory.
func (p *Platform) Getwd() (string, error) {
	return p.wd, nil
}

// Convention returns the configured path convention.
func (p *Platform) Convention() generic.Convention {
	return p.convention
}

// Type returns the filesystem type the Platform was created with.
func (p *Platform) Type() core.FSType {
	return p.fsType
}

// Compile-time interface checks.
var _ core.PlatformFileOps = (*Platform)(nil)
