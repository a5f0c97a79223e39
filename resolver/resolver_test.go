package resolver

import (
	"bytes"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/go-git/go-billy/v5/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmgilman/go/fspath/errors"
	"github.com/jmgilman/go/fspath/fs/billy"
	"github.com/jmgilman/go/fspath/fs/core"
	"github.com/jmgilman/go/fspath/generic"
)

// sandbox builds an in-memory tree for one test.
type sandbox struct {
	t   *testing.T
	ops *billy.Platform
}

func newSandbox(t *testing.T, opts ...billy.Option) *sandbox {
	t.Helper()
	defaults := []billy.Option{
		billy.WithEnv(map[string]string{"HOME": "/home/player"}),
		billy.WithWorkingDir("/home/player"),
	}
	s := &sandbox{t: t, ops: billy.NewMemory(append(defaults, opts...)...)}
	s.dir("/home/player")
	return s
}

func (s *sandbox) file(name, content string) {
	s.t.Helper()
	require.NoError(s.t, util.WriteFile(s.ops.Unwrap(), name, []byte(content), 0o644))
}

func (s *sandbox) dir(name string) {
	s.t.Helper()
	require.NoError(s.t, s.ops.Unwrap().MkdirAll(name, core.DirPerm))
}

func (s *sandbox) link(target, name string) {
	s.t.Helper()
	require.NoError(s.t, s.ops.Unwrap().Symlink(target, name))
}

func (s *sandbox) resolver(opts ...Option) *Resolver {
	return New(s.ops, opts...)
}

func TestResolver_TypeQueries(t *testing.T) {
	s := newSandbox(t)
	s.file("/roms/snes/game.sfc", "rom")
	s.link("/roms/snes", "/snes")
	s.link("/roms/snes/game.sfc", "/game")
	s.link("/nowhere", "/dangling")
	r := s.resolver()

	tests := []struct {
		path      string
		exists    bool
		isDir     bool
		isRegular bool
		isSymlink bool
	}{
		{path: "/roms", exists: true, isDir: true},
		{path: `\roms\snes\game.sfc`, exists: true, isRegular: true},
		{path: "/snes", exists: true, isDir: true, isSymlink: true},
		{path: "/game", exists: true, isRegular: true, isSymlink: true},
		{path: "/dangling", isSymlink: true},
		{path: "/missing"},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			assert.Equal(t, tt.exists, r.Exists(tt.path), "Exists")
			assert.Equal(t, tt.isDir, r.IsDirectory(tt.path), "IsDirectory")
			assert.Equal(t, tt.isRegular, r.IsRegularFile(tt.path), "IsRegularFile")
			assert.Equal(t, tt.isSymlink, r.IsSymlink(tt.path), "IsSymlink")
		})
	}
}

func TestResolver_IsHidden(t *testing.T) {
	s := newSandbox(t)
	s.file("/x/.foo", "")
	s.file("/x/foo", "")
	r := s.resolver()

	assert.True(t, r.IsHidden("/x/.foo"))
	assert.True(t, r.IsHidden("/missing/.config"), "dot-file rule needs no filesystem entry")
	assert.True(t, r.IsHidden("/x/"), "a trailing separator names the directory as \".\"")
	assert.False(t, r.IsHidden("/x/foo"))
	assert.False(t, r.IsHidden("/missing/foo"))
	assert.False(t, r.IsHidden(""))
}

// hiddenOps marks every entry hidden.
type hiddenOps struct {
	core.PlatformFileOps
}

func (hiddenOps) Hidden(string) (bool, error) { return true, nil }

func TestResolver_IsHiddenAttribute(t *testing.T) {
	s := newSandbox(t)
	s.file("/x/visible", "")
	r := New(hiddenOps{PlatformFileOps: s.ops})

	assert.True(t, r.IsHidden("/x/visible"))
}

func TestResolver_IsEquivalent(t *testing.T) {
	s := newSandbox(t)
	s.file("/roms/a.sfc", "same")
	s.file("/roms/b.sfc", "same")
	s.link("/roms/a.sfc", "/alias")
	s.link("a.sfc", "/roms/relative")
	r := s.resolver()

	assert.True(t, r.IsEquivalent("/roms/a.sfc", "/roms/a.sfc"))
	assert.True(t, r.IsEquivalent("/roms/a.sfc", "/alias"))
	assert.True(t, r.IsEquivalent("/roms/relative", "/alias"))
	assert.True(t, r.IsEquivalent("/roms/../roms/a.sfc", `\roms\a.sfc`))
	assert.False(t, r.IsEquivalent("/roms/a.sfc", "/roms/b.sfc"))
	assert.False(t, r.IsEquivalent("/roms/a.sfc", "/missing"))
	assert.False(t, r.IsEquivalent("/missing", "/missing"))
}

func TestResolver_IsEquivalentAfterWrite(t *testing.T) {
	s := newSandbox(t)
	s.file("/saves/slot1.srm", "before")
	s.link("/saves/slot1.srm", "/current")
	r := s.resolver()

	require.True(t, r.IsEquivalent("/saves/slot1.srm", "/current"))
	s.file("/saves/slot1.srm", "after the save grew")
	assert.True(t, r.IsEquivalent("/saves/slot1.srm", "/current"))
	assert.True(t, r.IsEquivalent("/current", "/current"))
}

func TestResolver_RemoveFile(t *testing.T) {
	s := newSandbox(t)
	s.file("/saves/slot1", "data")
	s.file("/saves/target", "data")
	s.link("/saves/target", "/saves/link")
	s.dir("/saves/dir")
	r := s.resolver()

	assert.True(t, r.RemoveFile("/saves/missing"), "missing path counts as removed")

	assert.True(t, r.RemoveFile("/saves/slot1"))
	assert.False(t, r.Exists("/saves/slot1"))

	assert.True(t, r.RemoveFile("/saves/link"))
	assert.False(t, r.IsSymlink("/saves/link"))
	assert.True(t, r.Exists("/saves/target"), "removing a link keeps its target")

	assert.False(t, r.RemoveFile("/saves/dir"), "directories are not unlinked")
	assert.True(t, r.IsDirectory("/saves/dir"))
}

func TestResolver_CreateDirectory(t *testing.T) {
	t.Run("missing ancestors", func(t *testing.T) {
		s := newSandbox(t)
		r := s.resolver()

		require.True(t, r.CreateDirectory("/a/b/c"))
		for _, p := range []string{"/a", "/a/b", "/a/b/c"} {
			assert.True(t, r.IsDirectory(p), p)
		}
	})

	t.Run("existing", func(t *testing.T) {
		s := newSandbox(t)
		s.dir("/themes")
		r := s.resolver()

		assert.True(t, r.CreateDirectory("/themes"))
		assert.True(t, r.CreateDirectory(`\themes\`))
	})

	t.Run("below a file", func(t *testing.T) {
		s := newSandbox(t)
		s.file("/file", "x")
		r := s.resolver()

		assert.False(t, r.CreateDirectory("/file/sub/dir"))
		assert.False(t, r.Exists("/file/sub"))
	})

	t.Run("through link", func(t *testing.T) {
		s := newSandbox(t)
		s.dir("/storage")
		s.link("/storage", "/data")
		r := s.resolver()

		require.True(t, r.CreateDirectory("/data/media/images"))
		assert.True(t, r.IsDirectory("/storage/media/images"))
	})
}

func TestResolver_IsAbsolute(t *testing.T) {
	posix := newSandbox(t).resolver()
	windows := newSandbox(t, billy.WithConvention(generic.ConventionWindows)).resolver()

	tests := []struct {
		path    string
		posix   bool
		windows bool
	}{
		{path: "/home/player", posix: true},
		{path: `\home`, posix: true},
		{path: "C:/Users", windows: true},
		{path: `C:\Users`, windows: true},
		{path: "C:", windows: true},
		{path: "relative/path"},
		{path: ""},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			assert.Equal(t, tt.posix, posix.IsAbsolute(tt.path), "posix")
			assert.Equal(t, tt.windows, windows.IsAbsolute(tt.path), "windows")
		})
	}
}

func TestResolver_AbsolutePath(t *testing.T) {
	r := newSandbox(t).resolver()

	assert.Equal(t, "/home/player/roms", r.AbsolutePath("roms"))
	assert.Equal(t, "/etc/config", r.AbsolutePath(`\etc\\config`))
	assert.Equal(t, "/home/player/", r.AbsolutePath(""))
	assert.Equal(t, "/base/roms", r.AbsolutePathFrom("roms", "/base"))
	assert.Equal(t, "/home/player/base/roms", r.AbsolutePathFrom("roms", "base"))
	assert.Equal(t, "/abs", r.AbsolutePathFrom("/abs", "base"))
}

func TestResolver_AbsolutePathIsAbsolute(t *testing.T) {
	r := newSandbox(t).resolver()

	paths := []string{"", ".", "..", "a", "a/b", "/a", `\a\b`, "~", "./x/../y"}
	bases := []string{"", "/", "/base", "rel", `rel\dir`, "/a/../b"}

	for _, p := range paths {
		for _, base := range bases {
			got := r.AbsolutePathFrom(p, base)
			assert.True(t, r.IsAbsolute(got), "AbsolutePathFrom(%q, %q) = %q", p, base, got)
		}
	}
}

func TestResolver_ResolvePath(t *testing.T) {
	s := newSandbox(t)
	s.file("/themes/default/theme.xml", "<theme/>")
	r := s.resolver()

	tests := []struct {
		name       string
		path       string
		relativeTo string
		allowHome  bool
		want       string
	}{
		{name: "empty", path: "", relativeTo: "/themes", allowHome: true, want: ""},
		{name: "empty without home", path: "", relativeTo: "/themes", want: ""},
		{name: "home", path: "~/foo", allowHome: true, want: "/home/player/foo"},
		{name: "home not allowed", path: "~/foo", want: "~/foo"},
		{name: "dot against directory", path: "./art/logo.png", relativeTo: "/themes/default", want: "/themes/default/art/logo.png"},
		{name: "dot against file", path: "./art/logo.png", relativeTo: "/themes/default/theme.xml", want: "/themes/default/art/logo.png"},
		{name: "only leading character", path: "../shared", relativeTo: "/themes/default", want: "/themes/default/./shared"},
		{name: "absolute unchanged", path: `\roms\\snes`, relativeTo: "/themes", allowHome: true, want: "/roms/snes"},
		{name: "relative unchanged", path: "roms/snes", relativeTo: "/themes", allowHome: true, want: "roms/snes"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, r.ResolvePath(tt.path, tt.relativeTo, tt.allowHome))
		})
	}
}

func TestResolver_ResolveSymlink(t *testing.T) {
	s := newSandbox(t)
	s.file("/roms/game.sfc", "rom")
	s.link("../roms//game.sfc", "/links/relative")
	s.link(`\roms\game.sfc`, "/links/backslash")
	r := s.resolver()

	assert.Equal(t, "../roms/game.sfc", r.ResolveSymlink("/links/relative"))
	assert.Equal(t, "/roms/game.sfc", r.ResolveSymlink("/links/backslash"))
	assert.Empty(t, r.ResolveSymlink("/roms/game.sfc"), "not a link")
	assert.Empty(t, r.ResolveSymlink("/missing"))
}

func TestResolver_CanonicalPath(t *testing.T) {
	s := newSandbox(t)
	s.dir("/storage/roms/snes")
	s.dir("/storage/roms/nes")
	s.file("/storage/roms/nes/game.nes", "rom")
	s.link("..", "/storage/roms/snes/up")
	s.link("/storage/roms", "/roms")
	s.link("roms/nes", "/storage/nes")
	s.link("/storage/nes", "/chain")
	s.link("/storage/missing", "/dangling")
	s.link("/loop-b", "/loop-a")
	s.link("/loop-a", "/loop-b")
	s.link("self", "/self")
	r := s.resolver()

	tests := []struct {
		name string
		path string
		want string
	}{
		{name: "dot segments", path: "/storage/./roms/../roms/snes", want: "/storage/roms/snes"},
		{name: "relative to working directory", path: "../player/x", want: "/home/player/x"},
		{name: "link to parent", path: "/storage/roms/snes/up/nes", want: "/storage/roms/nes"},
		{name: "absolute link", path: "/roms/nes/game.nes", want: "/storage/roms/nes/game.nes"},
		{name: "chain of links", path: "/chain/game.nes", want: "/storage/roms/nes/game.nes"},
		{name: "missing tail", path: "/roms/gba/none.gba", want: "/storage/roms/gba/none.gba"},
		{name: "parent past root", path: "/../../storage", want: "/storage"},
		{name: "root", path: "/", want: "/"},
		{name: "dangling link", path: "/dangling/x", want: ""},
		{name: "loop", path: "/loop-a", want: ""},
		{name: "self reference", path: "/self", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, r.CanonicalPath(tt.path))
		})
	}
}

func TestResolver_CanonicalMatchesManualSubstitution(t *testing.T) {
	s := newSandbox(t)
	s.dir("/a/b/c")
	s.link("..", "/a/b/c/up")
	r := s.resolver()

	// Substituting the link target by hand gives /a/b/c/../d.
	assert.Equal(t, r.CanonicalPath("/a/b/c/../d"), r.CanonicalPath("/a/b/c/up/d"))
	assert.Equal(t, "/a/b/d", r.CanonicalPath("/a/b/c/up/d"))
}

func TestResolver_Canonical(t *testing.T) {
	s := newSandbox(t)
	s.dir("/data")
	s.link("/data", "/first")
	s.link("/first", "/second")
	s.link("/nowhere", "/dangling")
	s.link("/loop-b", "/loop-a")
	s.link("/loop-a", "/loop-b")

	t.Run("success", func(t *testing.T) {
		got, err := s.resolver().Canonical("/second/file")
		require.NoError(t, err)
		assert.Equal(t, "/data/file", got)
	})

	t.Run("dangling", func(t *testing.T) {
		got, err := s.resolver().Canonical("/dangling/file")
		require.Error(t, err)
		assert.Empty(t, got)
		assert.Equal(t, errors.CodeDanglingSymlink, errors.GetCode(err))

		var platformErr errors.PlatformError
		require.True(t, errors.As(err, &platformErr))
		assert.Equal(t, "/dangling", platformErr.Context()["link"])
		assert.Equal(t, "/dangling/file", platformErr.Context()["path"])
	})

	t.Run("loop", func(t *testing.T) {
		_, err := s.resolver().Canonical("/loop-a")
		require.Error(t, err)
		assert.Equal(t, errors.CodeSymlinkLoop, errors.GetCode(err))
	})

	t.Run("link budget", func(t *testing.T) {
		_, err := s.resolver(WithMaxSymlinks(1)).Canonical("/second/file")
		require.Error(t, err)
		assert.Equal(t, errors.CodeSymlinkLoop, errors.GetCode(err))

		got, err := s.resolver(WithMaxSymlinks(2)).Canonical("/second/file")
		require.NoError(t, err)
		assert.Equal(t, "/data/file", got)
	})
}

func TestResolver_CanonicalWindows(t *testing.T) {
	s := newSandbox(t, billy.WithConvention(generic.ConventionWindows))
	r := s.resolver()

	raw := `C:\Users\foo\..\bar\.\baz.TXT`
	normalized := generic.Normalize(raw)
	require.Equal(t, "C:/Users/foo/../bar/./baz.TXT", normalized)
	assert.Equal(t, "baz", generic.Stem(normalized))
	assert.Equal(t, ".TXT", generic.Extension(normalized))
	assert.Equal(t, "C:/Users/bar/baz.TXT", r.CanonicalPath(raw))
	assert.Equal(t, "C:/Users", r.CanonicalPath(`\\?\C:\Users\`))
}

func TestResolver_HomePath(t *testing.T) {
	tests := []struct {
		name       string
		env        map[string]string
		convention generic.Convention
		want       string
	}{
		{name: "home", env: map[string]string{"HOME": `/home//player/`}, want: "/home/player/"},
		{name: "home wins on windows", env: map[string]string{"HOME": `C:\Users\player`, "HOMEDRIVE": "D:", "HOMEPATH": `\other`}, convention: generic.ConventionWindows, want: "C:/Users/player"},
		{name: "windows fallback", env: map[string]string{"HOMEDRIVE": "C:", "HOMEPATH": `\Users\player`}, convention: generic.ConventionWindows, want: "C:/Users/player"},
		{name: "windows fallback needs both", env: map[string]string{"HOMEDRIVE": "C:"}, convention: generic.ConventionWindows, want: ""},
		{name: "no fallback on posix", env: map[string]string{"HOMEDRIVE": "C:", "HOMEPATH": `\Users\player`}, want: ""},
		{name: "unset", env: map[string]string{}, want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ops := billy.NewMemory(billy.WithEnv(tt.env), billy.WithConvention(tt.convention))
			assert.Equal(t, tt.want, New(ops).HomePath())
		})
	}
}

// countingOps counts environment lookups.
type countingOps struct {
	core.PlatformFileOps
	lookups atomic.Int32
}

func (c *countingOps) Getenv(key string) string {
	c.lookups.Add(1)
	return c.PlatformFileOps.Getenv(key)
}

func TestResolver_HomePathComputedOnce(t *testing.T) {
	ops := &countingOps{PlatformFileOps: billy.NewMemory(billy.WithEnv(map[string]string{"HOME": "/home/player"}))}
	r := New(ops)

	var wg sync.WaitGroup
	for range 16 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.Equal(t, "/home/player", r.HomePath())
		}()
	}
	wg.Wait()

	assert.Equal(t, "/home/player/roms", r.ResolvePath("~/roms", "", true))
	assert.Equal(t, int32(1), ops.lookups.Load())
}

// mutableEnvOps reads environment variables from a map the test can change.
type mutableEnvOps struct {
	core.PlatformFileOps
	env map[string]string
}

func (m *mutableEnvOps) Getenv(key string) string { return m.env[key] }

func TestResolver_HomePathCachesEmpty(t *testing.T) {
	ops := &mutableEnvOps{PlatformFileOps: billy.NewMemory(), env: map[string]string{}}
	r := New(ops)

	require.Equal(t, "", r.HomePath())
	ops.env["HOME"] = "/home/late"
	assert.Equal(t, "", r.HomePath())
	assert.Equal(t, "/home/late", New(ops).HomePath())
}

// brokenWdOps fails every working directory query.
type brokenWdOps struct {
	core.PlatformFileOps
}

func (brokenWdOps) Getwd() (string, error) {
	return "", fmt.Errorf("getwd: %w", core.ErrNotExist)
}

func TestResolver_CWDPath(t *testing.T) {
	r := newSandbox(t, billy.WithWorkingDir(`\srv\\emulation\`)).resolver()
	assert.Equal(t, "/srv/emulation/", r.CWDPath())

	broken := New(brokenWdOps{PlatformFileOps: billy.NewMemory()})
	assert.Empty(t, broken.CWDPath())
}

func TestResolver_DirContent(t *testing.T) {
	s := newSandbox(t)
	s.file("/list/b.txt", "")
	s.file("/list/a.txt", "")
	s.file("/list/.hidden", "")
	s.dir("/list/sub")
	s.file("/list/sub/nested.txt", "")
	s.link("/list", "/alias")
	r := s.resolver()

	want := []string{".hidden", "a.txt", "b.txt", "sub"}
	assert.Equal(t, want, r.DirContent("/list"))
	assert.Equal(t, want, r.DirContent(`\list\`))
	assert.Equal(t, want, r.DirContent("/alias"), "links to directories are listed")

	assert.Empty(t, r.DirContent("/missing"))
	assert.NotNil(t, r.DirContent("/missing"))
	assert.Empty(t, r.DirContent("/list/a.txt"), "a file has no entries")
}

func TestResolver_EscapedPath(t *testing.T) {
	posix := newSandbox(t).resolver()
	windows := newSandbox(t, billy.WithConvention(generic.ConventionWindows)).resolver()

	assert.Equal(t, `/roms/Super\ Mario\ \(USA\).sfc`, posix.EscapedPath("/roms/Super Mario (USA).sfc"))
	assert.Equal(t, `"C:/roms/Super Mario (USA).sfc"`, windows.EscapedPath(`C:\roms\Super Mario (USA).sfc`))
}

func TestResolver_WithLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	r := newSandbox(t).resolver(WithLogger(logger))

	assert.False(t, r.IsDirectory("/missing"))
	assert.Contains(t, buf.String(), "path query failed")
	assert.Contains(t, buf.String(), "op=stat")
	assert.Contains(t, buf.String(), "path=/missing")
}

func TestResolver_Options(t *testing.T) {
	ops := billy.NewMemory()

	r := New(ops, WithMaxSymlinks(0), WithLogger(nil))
	assert.Equal(t, DefaultMaxSymlinks, r.maxSymlinks)
	assert.NotNil(t, r.logger)
	assert.Same(t, ops, r.Ops())
	assert.Equal(t, generic.ConventionPOSIX, r.Convention())
}
