// Package local implements core.PlatformFileOps on top of the native
// operating system.
//
// The portable operations use the os package. Operations whose semantics
// differ between platforms live in build-tagged files:
//
//   - local_unix.go: lstat, unlink(2) and identity from stat(2)
//   - hidden_darwin.go: the UF_HIDDEN file flag
//   - hidden_other.go: no native hidden flag
//   - local_windows.go: reparse points reported as symbolic links,
//     FILE_ATTRIBUTE_HIDDEN, DeleteFile and identity from the volume serial
//     number and file index
//
// Usage:
//
//	ops := local.New()
//	r := resolver.New(ops)
//	fmt.Println(r.CanonicalPath("~/roms/../roms/snes"))
package local
