// Package generic implements the string algebra of generic paths.
//
// A generic path uses only '/' as separator, never contains "//" and never
// starts with the Windows extended-length prefix `\\?\`. Every function in
// this package normalizes its input first, never touches the filesystem and
// never fails: malformed input produces a well-defined result.
//
// Decomposition deliberately works on raw strings rather than on cleaned
// paths, so Parent("/a/b/..") is "/a/b" and FileName("/a/") is ".".
package generic
