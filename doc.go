// Package fspath locates, normalizes and resolves filesystem paths across
// operating system path conventions.
//
// The package-level functions operate on the native filesystem through a
// process-wide resolver.Resolver. They accept paths in any separator style
// and return generic paths: forward slashes only, no repeated separators
// and no "\\?\" prefix.
//
// Usage:
//
//	themes := fspath.ResolvePath("~/.emulationstation/themes", "", true)
//	for _, name := range fspath.DirContent(themes) {
//	    if fspath.IsHidden(name) {
//	        continue
//	    }
//	    // ...
//	}
//
// Pure path algebra lives in package generic, the capability interfaces in
// fs/core and their implementations in fs/local and fs/billy. Build a
// resolver.Resolver directly to query anything other than the native
// filesystem.
package fspath
