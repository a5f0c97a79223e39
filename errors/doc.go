// Package errors provides structured errors for filesystem capability
// implementations.
//
// Capability providers (see fs/core) report failures as PlatformError values
// carrying an ErrorCode, the failing operation and path, and the underlying
// OS error. The path resolver collapses these into boolean or empty-string
// results at its public boundary; callers that want to know why something
// failed use the error-returning variants or attach a logger.
//
// The package stays compatible with the standard library (errors.Is,
// errors.As, errors.Unwrap), so a PlatformError built from an *fs.PathError
// still matches fs.ErrNotExist.
//
// # Quick Start
//
// Creating errors:
//
//	err := errors.New(errors.CodeInvalidPath, "empty path")
//	err := errors.Newf(errors.CodeSymlinkLoop, "more than %d links", max)
//
// Translating OS errors:
//
//	info, err := os.Lstat(name)
//	if err != nil {
//	    return nil, errors.FromOS(err, "lstat", name)
//	}
//
// Inspecting:
//
//	if errors.GetCode(err) == errors.CodeNotFound {
//	    // ...
//	}
//
// JSON serialization:
//
//	json.NewEncoder(w).Encode(errors.ToJSON(err))
package errors
