package fstest

import (
	"errors"
	"io/fs"
	"slices"
	"testing"

	"github.com/jmgilman/go/fspath/fs/core"
)

// TestDirFS tests ReadDirNames and Mkdir.
func TestDirFS(t *testing.T, newHarness func(t *testing.T) Harness, config Config) {
	subtest(t, "DirFS", "ReadDirNames", newHarness, config, testReadDirNames)
	subtest(t, "DirFS", "ReadDirNamesEmpty", newHarness, config, testReadDirNamesEmpty)
	subtest(t, "DirFS", "ReadDirNamesMissing", newHarness, config, testReadDirNamesMissing)
	subtest(t, "DirFS", "Mkdir", newHarness, config, testMkdir)
	subtest(t, "DirFS", "MkdirExisting", newHarness, config, testMkdirExisting)
	subtest(t, "DirFS", "MkdirMissingParent", newHarness, config, testMkdirMissingParent)
}

func testReadDirNames(t *testing.T, h Harness) {
	dir := mustMkdir(t, h, "gamelists")
	mustWrite(t, h, "gamelists/snes.xml", []byte("<gameList/>"))
	mustWrite(t, h, "gamelists/nes.xml", []byte("<gameList/>"))
	mustMkdir(t, h, "gamelists/media")

	names, err := h.Ops.ReadDirNames(dir)
	if err != nil {
		t.Fatalf("ReadDirNames(%s): got error %v, want nil", dir, err)
	}
	slices.Sort(names)
	want := []string{"media", "nes.xml", "snes.xml"}
	if !slices.Equal(names, want) {
		t.Errorf("ReadDirNames(%s): got %v, want %v", dir, names, want)
	}
}

func testReadDirNamesEmpty(t *testing.T, h Harness) {
	dir := mustMkdir(t, h, "empty")

	names, err := h.Ops.ReadDirNames(dir)
	if err != nil {
		t.Fatalf("ReadDirNames(%s): got error %v, want nil", dir, err)
	}
	if len(names) != 0 {
		t.Errorf("ReadDirNames(%s): got %v, want no entries", dir, names)
	}
}

func testReadDirNamesMissing(t *testing.T, h Harness) {
	dir := h.Path("missing")

	if _, err := h.Ops.ReadDirNames(dir); !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("ReadDirNames(%s): got error %v, want fs.ErrNotExist", dir, err)
	}
}

func testMkdir(t *testing.T, h Harness) {
	dir := h.Path("saves")

	if err := h.Ops.Mkdir(dir, core.DirPerm); err != nil {
		t.Fatalf("Mkdir(%s): got error %v, want nil", dir, err)
	}
	info, err := h.Ops.Stat(dir)
	if err != nil {
		t.Fatalf("Stat(%s) after Mkdir: got error %v, want nil", dir, err)
	}
	if !info.IsDir() {
		t.Errorf("Stat(%s) after Mkdir: IsDir() = false, want true", dir)
	}
}

func testMkdirExisting(t *testing.T, h Harness) {
	dir := mustMkdir(t, h, "existing")

	if err := h.Ops.Mkdir(dir, core.DirPerm); !errors.Is(err, fs.ErrExist) {
		t.Errorf("Mkdir(%s) on existing directory: got error %v, want fs.ErrExist", dir, err)
	}
}

func testMkdirMissingParent(t *testing.T, h Harness) {
	dir := h.Path("missing/child")

	if err := h.Ops.Mkdir(dir, core.DirPerm); err == nil {
		t.Errorf("Mkdir(%s) without parent: got nil error, want error", dir)
	}
	if _, err := h.Ops.Stat(h.Path("missing")); !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("Stat(%s) after failed Mkdir: got error %v, want fs.ErrNotExist", h.Path("missing"), err)
	}
}
