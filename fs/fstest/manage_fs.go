package fstest

import (
	"errors"
	"io/fs"
	"testing"
)

// TestManageFS tests Unlink.
func TestManageFS(t *testing.T, newHarness func(t *testing.T) Harness, config Config) {
	subtest(t, "ManageFS", "UnlinkFile", newHarness, config, testUnlinkFile)
	subtest(t, "ManageFS", "UnlinkMissing", newHarness, config, testUnlinkMissing)
	subtest(t, "ManageFS", "UnlinkDirectory", newHarness, config, testUnlinkDirectory)
	if !config.SkipSymlinks {
		subtest(t, "ManageFS", "UnlinkSymlink", newHarness, config, testUnlinkSymlink)
	}
}

func testUnlinkFile(t *testing.T, h Harness) {
	p := mustWrite(t, h, "remove.txt", []byte("bye"))

	if err := h.Ops.Unlink(p); err != nil {
		t.Fatalf("Unlink(%s): got error %v, want nil", p, err)
	}
	if _, err := h.Ops.Lstat(p); !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("Lstat(%s) after Unlink: got error %v, want fs.ErrNotExist", p, err)
	}
}

func testUnlinkMissing(t *testing.T, h Harness) {
	p := h.Path("missing")

	if err := h.Ops.Unlink(p); !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("Unlink(%s): got error %v, want fs.ErrNotExist", p, err)
	}
}

func testUnlinkDirectory(t *testing.T, h Harness) {
	dir := mustMkdir(t, h, "keep")

	if err := h.Ops.Unlink(dir); err == nil {
		t.Errorf("Unlink(%s) on directory: got nil error, want error", dir)
	}
	if _, err := h.Ops.Stat(dir); err != nil {
		t.Errorf("Stat(%s) after failed Unlink: got error %v, want nil", dir, err)
	}
}

func testUnlinkSymlink(t *testing.T, h Harness) {
	target := mustWrite(t, h, "target.txt", []byte("stay"))
	link := mustSymlink(t, h, target, "link.txt")

	if err := h.Ops.Unlink(link); err != nil {
		t.Fatalf("Unlink(%s): got error %v, want nil", link, err)
	}
	if _, err := h.Ops.Lstat(link); !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("Lstat(%s) after Unlink: got error %v, want fs.ErrNotExist", link, err)
	}
	if _, err := h.Ops.Stat(target); err != nil {
		t.Errorf("Stat(%s) after unlinking its link: got error %v, want nil", target, err)
	}
}
