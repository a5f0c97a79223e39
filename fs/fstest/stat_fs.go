package fstest

import (
	"errors"
	"io/fs"
	"testing"
)

// TestStatFS tests Stat and Lstat on regular files, directories and missing paths.
func TestStatFS(t *testing.T, newHarness func(t *testing.T) Harness, config Config) {
	subtest(t, "StatFS", "StatRegularFile", newHarness, config, testStatRegularFile)
	subtest(t, "StatFS", "StatDirectory", newHarness, config, testStatDirectory)
	subtest(t, "StatFS", "StatMissing", newHarness, config, testStatMissing)
}

func testStatRegularFile(t *testing.T, h Harness) {
	data := []byte("rom data")
	p := mustWrite(t, h, "game.sfc", data)

	for name, stat := range map[string]func(string) (fs.FileInfo, error){"Stat": h.Ops.Stat, "Lstat": h.Ops.Lstat} {
		info, err := stat(p)
		if err != nil {
			t.Errorf("%s(%s): got error %v, want nil", name, p, err)
			continue
		}
		if !info.Mode().IsRegular() {
			t.Errorf("%s(%s): mode %v is not regular", name, p, info.Mode())
		}
		if info.Size() != int64(len(data)) {
			t.Errorf("%s(%s): Size() = %d, want %d", name, p, info.Size(), len(data))
		}
	}
}

func testStatDirectory(t *testing.T, h Harness) {
	p := mustMkdir(t, h, "roms")

	info, err := h.Ops.Stat(p)
	if err != nil {
		t.Fatalf("Stat(%s): got error %v, want nil", p, err)
	}
	if !info.IsDir() {
		t.Errorf("Stat(%s): IsDir() = false, want true", p)
	}
}

func testStatMissing(t *testing.T, h Harness) {
	p := h.Path("missing")

	if _, err := h.Ops.Stat(p); !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("Stat(%s): got error %v, want fs.ErrNotExist", p, err)
	}
	if _, err := h.Ops.Lstat(p); !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("Lstat(%s): got error %v, want fs.ErrNotExist", p, err)
	}
}
