package fstest

import (
	"errors"
	"io/fs"
	"testing"
)

// TestSymlinkFS tests link-aware stat and Readlink.
func TestSymlinkFS(t *testing.T, newHarness func(t *testing.T) Harness, config Config) {
	subtest(t, "SymlinkFS", "LstatReportsLink", newHarness, config, testLstatReportsLink)
	subtest(t, "SymlinkFS", "ReadlinkRelative", newHarness, config, testReadlinkRelative)
	subtest(t, "SymlinkFS", "ReadlinkNotLink", newHarness, config, testReadlinkNotLink)
	subtest(t, "SymlinkFS", "DanglingLink", newHarness, config, testDanglingLink)
}

func testLstatReportsLink(t *testing.T, h Harness) {
	target := mustWrite(t, h, "target.txt", []byte("content"))
	link := mustSymlink(t, h, target, "link.txt")

	info, err := h.Ops.Lstat(link)
	if err != nil {
		t.Fatalf("Lstat(%s): got error %v, want nil", link, err)
	}
	if info.Mode()&fs.ModeSymlink == 0 {
		t.Errorf("Lstat(%s): mode %v lacks ModeSymlink", link, info.Mode())
	}

	info, err = h.Ops.Stat(link)
	if err != nil {
		t.Fatalf("Stat(%s): got error %v, want nil", link, err)
	}
	if !info.Mode().IsRegular() {
		t.Errorf("Stat(%s) through link: mode %v is not regular", link, info.Mode())
	}
}

func testReadlinkRelative(t *testing.T, h Harness) {
	mustMkdir(t, h, "dir")
	link := mustSymlink(t, h, "dir", "dirlink")

	target, err := h.Ops.Readlink(link)
	if err != nil {
		t.Fatalf("Readlink(%s): got error %v, want nil", link, err)
	}
	if target != "dir" {
		t.Errorf("Readlink(%s): got %q, want %q", link, target, "dir")
	}
}

func testReadlinkNotLink(t *testing.T, h Harness) {
	p := mustWrite(t, h, "plain.txt", []byte("x"))

	if _, err := h.Ops.Readlink(p); err == nil {
		t.Errorf("Readlink(%s) on regular file: got nil error, want error", p)
	}
	missing := h.Path("missing")
	if _, err := h.Ops.Readlink(missing); !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("Readlink(%s): got error %v, want fs.ErrNotExist", missing, err)
	}
}

func testDanglingLink(t *testing.T, h Harness) {
	link := mustSymlink(t, h, h.Path("nowhere"), "dangling")

	if _, err := h.Ops.Lstat(link); err != nil {
		t.Errorf("Lstat(%s) on dangling link: got error %v, want nil", link, err)
	}
	if _, err := h.Ops.Stat(link); !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("Stat(%s) on dangling link: got error %v, want fs.ErrNotExist", link, err)
	}
	target, err := h.Ops.Readlink(link)
	if err != nil {
		t.Fatalf("Readlink(%s): got error %v, want nil", link, err)
	}
	if target != h.Path("nowhere") {
		t.Errorf("Readlink(%s): got %q, want %q", link, target, h.Path("nowhere"))
	}
}
