// Package fstest provides a conformance test suite for core.PlatformFileOps
// implementations.
//
// The suite validates the capability contracts the path resolver relies on
// (link-aware stat, one-level readlink, single-level mkdir, unlink, identity
// keys), not backend-specific behavior. Provider packages run it from their
// own tests:
//
//	func TestConformance(t *testing.T) {
//	    fstest.TestPlatformOps(t, func(t *testing.T) fstest.Harness {
//	        return fstest.Harness{Ops: myprovider.New(), Fixture: ..., Root: ...}
//	    })
//	}
package fstest

import (
	"strings"
	"testing"

	"github.com/jmgilman/go/fspath/fs/core"
)

// Fixture builds the state a conformance test needs. Capability
// implementations are read-mostly, so fixtures are created out of band.
type Fixture interface {
	// WriteFile creates a regular file with the given content.
	WriteFile(name string, data []byte) error

	// MkdirAll creates a directory and any missing parents.
	MkdirAll(name string) error

	// Symlink creates a symbolic link named link pointing to target.
	Symlink(target, link string) error
}

// Harness is one fresh, empty test environment.
type Harness struct {
	// Ops is the implementation under test.
	Ops core.PlatformFileOps

	// Fixture creates test state visible through Ops.
	Fixture Fixture

	// Root is the generic absolute path of an empty, writable directory.
	Root string
}

// Path joins a name below the harness root.
func (h Harness) Path(name string) string {
	if strings.HasSuffix(h.Root, "/") {
		return h.Root + name
	}
	return h.Root + "/" + name
}

// Config configures the suite to match platform characteristics.
type Config struct {
	// SkipSymlinks disables tests that need symbolic links, for platforms
	// where creating them requires privileges the test run lacks.
	SkipSymlinks bool

	// SkipTests lists specific test names to skip.
	// Format: "Group/SubTest" (e.g., "DirFS/MkdirMissingParent").
	SkipTests []string
}

// DefaultConfig returns the configuration for fully capable platforms.
func DefaultConfig() Config {
	return Config{}
}

// TestPlatformOps runs all conformance tests with DefaultConfig.
// newHarness must return a fresh, empty environment on every call.
func TestPlatformOps(t *testing.T, newHarness func(t *testing.T) Harness) {
	TestPlatformOpsWithConfig(t, newHarness, DefaultConfig())
}

// TestPlatformOpsWithConfig runs all conformance tests with the given configuration.
func TestPlatformOpsWithConfig(t *testing.T, newHarness func(t *testing.T) Harness, config Config) {
	groups := []struct {
		name     string
		symlinks bool
		run      func(t *testing.T, newHarness func(t *testing.T) Harness, config Config)
	}{
		{name: "StatFS", run: TestStatFS},
		{name: "SymlinkFS", symlinks: true, run: TestSymlinkFS},
		{name: "DirFS", run: TestDirFS},
		{name: "ManageFS", run: TestManageFS},
		{name: "AttrFS", run: TestAttrFS},
		{name: "Environment", run: TestEnvironment},
	}

	for _, g := range groups {
		t.Run(g.name, func(t *testing.T) {
			if config.shouldSkip(g.name) {
				t.Skip("Skipped by provider configuration")
				return
			}
			if g.symlinks && config.SkipSymlinks {
				t.Skip("symlinks not available")
				return
			}
			g.run(t, newHarness, config)
		})
	}
}

func (c Config) shouldSkip(name string) bool {
	for _, skip := range c.SkipTests {
		if skip == name {
			return true
		}
	}
	return false
}

// subtest runs fn on a fresh harness unless the configuration skips it.
func subtest(t *testing.T, group, name string, newHarness func(t *testing.T) Harness, config Config, fn func(t *testing.T, h Harness)) {
	t.Run(name, func(t *testing.T) {
		if config.shouldSkip(group + "/" + name) {
			t.Skip("Skipped by provider configuration")
			return
		}
		fn(t, newHarness(t))
	})
}

func mustWrite(t *testing.T, h Harness, name string, data []byte) string {
	t.Helper()
	p := h.Path(name)
	if err := h.Fixture.WriteFile(p, data); err != nil {
		t.Fatalf("WriteFile(%s): setup failed: %v", p, err)
	}
	return p
}

func mustMkdir(t *testing.T, h Harness, name string) string {
	t.Helper()
	p := h.Path(name)
	if err := h.Fixture.MkdirAll(p); err != nil {
		t.Fatalf("MkdirAll(%s): setup failed: %v", p, err)
	}
	return p
}

func mustSymlink(t *testing.T, h Harness, target, name string) string {
	t.Helper()
	p := h.Path(name)
	if err := h.Fixture.Symlink(target, p); err != nil {
		t.Fatalf("Symlink(%s, %s): setup failed: %v", target, p, err)
	}
	return p
}
