package fstest

import (
	"errors"
	"io/fs"
	"testing"
)

// TestAttrFS tests Hidden and FileID.
func TestAttrFS(t *testing.T, newHarness func(t *testing.T) Harness, config Config) {
	subtest(t, "AttrFS", "HiddenPlainFile", newHarness, config, testHiddenPlainFile)
	subtest(t, "AttrFS", "HiddenMissing", newHarness, config, testHiddenMissing)
	subtest(t, "AttrFS", "FileIDStable", newHarness, config, testFileIDStable)
	subtest(t, "AttrFS", "FileIDDistinct", newHarness, config, testFileIDDistinct)
	subtest(t, "AttrFS", "FileIDMissing", newHarness, config, testFileIDMissing)
	if !config.SkipSymlinks {
		subtest(t, "AttrFS", "FileIDThroughLink", newHarness, config, testFileIDThroughLink)
	}
}

func testHiddenPlainFile(t *testing.T, h Harness) {
	p := mustWrite(t, h, "visible.txt", []byte("x"))

	hidden, err := h.Ops.Hidden(p)
	if err != nil {
		t.Fatalf("Hidden(%s): got error %v, want nil", p, err)
	}
	if hidden {
		t.Errorf("Hidden(%s): got true, want false", p)
	}
}

func testHiddenMissing(t *testing.T, h Harness) {
	p := h.Path("missing")

	if _, err := h.Ops.Hidden(p); !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("Hidden(%s): got error %v, want fs.ErrNotExist", p, err)
	}
}

func testFileIDStable(t *testing.T, h Harness) {
	p := mustWrite(t, h, "bios.bin", []byte("bios"))

	first, err := h.Ops.FileID(p)
	if err != nil {
		t.Fatalf("FileID(%s): got error %v, want nil", p, err)
	}
	second, err := h.Ops.FileID(p)
	if err != nil {
		t.Fatalf("FileID(%s): got error %v, want nil", p, err)
	}
	if !first.Equal(second) {
		t.Errorf("FileID(%s) twice: got %+v and %+v, want equal", p, first, second)
	}
}

func testFileIDDistinct(t *testing.T, h Harness) {
	a := mustWrite(t, h, "a.bin", []byte("same"))
	b := mustWrite(t, h, "b.bin", []byte("same"))

	idA, err := h.Ops.FileID(a)
	if err != nil {
		t.Fatalf("FileID(%s): got error %v, want nil", a, err)
	}
	idB, err := h.Ops.FileID(b)
	if err != nil {
		t.Fatalf("FileID(%s): got error %v, want nil", b, err)
	}
	if idA.Equal(idB) {
		t.Errorf("FileID(%s) and FileID(%s): got equal keys %+v, want distinct", a, b, idA)
	}
}

func testFileIDMissing(t *testing.T, h Harness) {
	p := h.Path("missing")

	if _, err := h.Ops.FileID(p); !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("FileID(%s): got error %v, want fs.ErrNotExist", p, err)
	}
}

func testFileIDThroughLink(t *testing.T, h Harness) {
	target := mustWrite(t, h, "target.bin", []byte("data"))
	link := mustSymlink(t, h, target, "alias.bin")

	idTarget, err := h.Ops.FileID(target)
	if err != nil {
		t.Fatalf("FileID(%s): got error %v, want nil", target, err)
	}
	idLink, err := h.Ops.FileID(link)
	if err != nil {
		t.Fatalf("FileID(%s): got error %v, want nil", link, err)
	}
	if !idTarget.Equal(idLink) {
		t.Errorf("FileID(%s) via link: got %+v, want %+v", link, idLink, idTarget)
	}
}
