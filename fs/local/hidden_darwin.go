//go:build darwin

package local

import "golang.org/x/sys/unix"

// ufHidden is UF_HIDDEN from <sys/stat.h>, set by `chflags hidden`.
const ufHidden = 0x00008000

// Hidden reports whether the entry carries the UF_HIDDEN flag.
func (l *Local) Hidden(name string) (bool, error) {
	var st unix.Stat_t
	if err := unix.Lstat(name, &st); err != nil {
		return false, pathError(err, "lstat", name)
	}
	return st.Flags&ufHidden != 0, nil
}
