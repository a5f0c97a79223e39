//go:build unix && !darwin

package local

import (
	"os"

	"github.com/jmgilman/go/fspath/errors"
)

// Hidden reports false for every existing entry: the platform has no native
// hidden attribute.
func (l *Local) Hidden(name string) (bool, error) {
	if _, err := os.Lstat(name); err != nil {
		return false, errors.FromOS(err, "lstat", name)
	}
	return false, nil
}
