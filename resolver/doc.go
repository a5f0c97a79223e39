// Package resolver answers filesystem questions about generic paths and
// resolves them to absolute and canonical form.
//
// A Resolver combines the pure path algebra of package generic with the
// capability interface core.PlatformFileOps. Every disk round-trip goes
// through the capability value, so the same Resolver logic runs against the
// native operating system, a go-billy memfs or a chrooted directory.
//
// # Failure Reporting
//
// Query and resolution operations collapse failure into their zero value:
// predicates return false, resolutions return the empty string and
// DirContent returns an empty listing. A caller cannot tell "does not
// exist" from "exists but is inaccessible". Canonical is the one variant
// that returns a structured error describing why resolution failed.
//
// Collapsed failures are reported to the logger configured with WithLogger
// at debug level.
//
// Usage:
//
//	r := resolver.New(local.New())
//
//	roms := r.ResolvePath("~/roms", "", true) // "/home/player/roms"
//	snes := r.CanonicalPath(roms + "/../roms/snes")
//	if r.IsDirectory(snes) {
//	    for _, name := range r.DirContent(snes) {
//	        // ...
//	    }
//	}
//
// # Thread Safety
//
// A Resolver is safe for concurrent use. The home path is computed once per
// Resolver on first use.
package resolver
