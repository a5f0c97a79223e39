package local

import (
	"os"
	"path/filepath"
	"testing"

	"golang.org/x/sys/unix"
)

// TestLocal_HiddenFlag verifies UF_HIDDEN is reported.
func TestLocal_HiddenFlag(t *testing.T) {
	p := filepath.Join(t.TempDir(), "flagged")
	if err := os.WriteFile(p, []byte("x"), 0o644); err != nil {
		t.Fatalf("WriteFile: setup failed: %v", err)
	}
	if err := unix.Chflags(p, ufHidden); err != nil {
		t.Fatalf("Chflags: setup failed: %v", err)
	}

	hidden, err := New().Hidden(p)
	if err != nil {
		t.Fatalf("Hidden(%s) error = %v", p, err)
	}
	if !hidden {
		t.Errorf("Hidden(%s) = false, want true", p)
	}
}
