package fstest

import (
	"testing"

	"github.com/jmgilman/go/fspath/generic"
)

// TestEnvironment tests Getwd, Convention and Type.
func TestEnvironment(t *testing.T, newHarness func(t *testing.T) Harness, config Config) {
	subtest(t, "Environment", "Getwd", newHarness, config, testGetwd)
	subtest(t, "Environment", "Convention", newHarness, config, testConvention)
}

func testGetwd(t *testing.T, h Harness) {
	wd, err := h.Ops.Getwd()
	if err != nil {
		t.Fatalf("Getwd(): got error %v, want nil", err)
	}
	if wd == "" {
		t.Errorf("Getwd(): got empty string, want a directory")
	}
}

func testConvention(t *testing.T, h Harness) {
	c := h.Ops.Convention()
	if c != generic.ConventionPOSIX && c != generic.ConventionWindows {
		t.Errorf("Convention(): got %v, want POSIX or Windows", c)
	}
	if _, ok := generic.ParseConvention(c.String()); !ok {
		t.Errorf("ParseConvention(%q): got ok=false, want true", c.String())
	}
}
