// Package billy adapts go-billy filesystems to core.PlatformFileOps.
//
// Any billy.Filesystem that also implements billy.Symlink can back a
// resolver: go-billy's memfs gives tests and sandboxes a symlink-capable
// filesystem without touching disk, and osfs chrooted at a directory
// confines every operation below that directory.
//
// Usage:
//
//	// In-memory platform with a fixed environment
//	ops := billy.NewMemory(
//	    billy.WithEnv(map[string]string{"HOME": "/home/player"}),
//	    billy.WithWorkingDir("/home/player"),
//	)
//
//	// Local directory as the filesystem root
//	ops := billy.NewLocal("/srv/sandbox")
//
//	// Reach the underlying filesystem to build fixtures
//	bfs := ops.Unwrap()
//	err := bfs.Symlink("/roms", "/home/player/roms")
//
// # Environment
//
// A Platform never reads the process environment. Environment variables
// and the working directory come from options; the working directory
// defaults to "/".
//
// # Symbolic Links
//
// Links in directory components are followed by the Platform itself, with
// at most 40 links per lookup, so Stat and FileID behave the same on memfs
// as on an operating system. A link cycle is reported as ELOOP.
//
// # Identity
//
// go-billy exposes no inode numbers, so FileID keys files by an FNV-64a
// hash of their link-resolved path, with Device left zero.
//
// # Thread Safety
//
// Platform values are safe for concurrent use when the underlying
// filesystem is.
package billy
