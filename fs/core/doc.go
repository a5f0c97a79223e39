// Package core defines the platform capability interfaces the path resolver
// is built on.
//
// Every filesystem question the resolver asks (stat, lstat, readlink,
// directory listing, mkdir, unlink, hidden attribute, file identity) and
// every piece of process state it reads (environment variables, working
// directory) goes through a PlatformFileOps value. Implementations exist
// per operating system (fs/local, selected by build tags) and over go-billy
// filesystems (fs/billy), so the resolver contains no platform branching.
//
// # Interface Hierarchy
//
// PlatformFileOps is composed of small sub-interfaces:
//
//   - StatFS: Stat and Lstat
//   - SymlinkFS: Readlink
//   - DirFS: ReadDirNames and Mkdir
//   - ManageFS: Unlink
//   - AttrFS: Hidden and FileID
//   - Environment: Getenv and Getwd
//
// # Paths
//
// All names passed to a PlatformFileOps are generic paths (see package
// generic). Implementations translate them to native form if they need to.
//
// # Errors
//
// Implementations report failures as errors.PlatformError values created
// with errors.FromOS, which keep the OS error in the chain:
//
//	if _, err := ops.Lstat(name); errors.Is(err, core.ErrNotExist) {
//	    // ...
//	}
package core
