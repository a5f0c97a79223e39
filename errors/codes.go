package errors

// ErrorCode represents a specific error condition.
// Error codes are string-based for debuggability and natural JSON serialization.
type ErrorCode string

const (
	// Resource errors.

	// CodeNotFound indicates the path does not exist.
	CodeNotFound ErrorCode = "NOT_FOUND"

	// CodeAlreadyExists indicates the path exists and cannot be created again.
	CodeAlreadyExists ErrorCode = "ALREADY_EXISTS"

	// CodePermission indicates the OS denied access to the path.
	CodePermission ErrorCode = "PERMISSION_DENIED"

	// Type errors.

	// CodeNotDirectory indicates a directory was required.
	CodeNotDirectory ErrorCode = "NOT_A_DIRECTORY"

	// CodeIsDirectory indicates a non-directory entry was required.
	CodeIsDirectory ErrorCode = "IS_A_DIRECTORY"

	// CodeNotSymlink indicates a symbolic link was required.
	CodeNotSymlink ErrorCode = "NOT_A_SYMLINK"

	// Resolution errors.

	// CodeDanglingSymlink indicates a symbolic link could not be read or
	// points nowhere during canonicalization.
	CodeDanglingSymlink ErrorCode = "DANGLING_SYMLINK"

	// CodeSymlinkLoop indicates canonicalization gave up after too many
	// symbolic link substitutions.
	CodeSymlinkLoop ErrorCode = "SYMLINK_LOOP"

	// CodeInvalidPath indicates the path is syntactically unusable.
	CodeInvalidPath ErrorCode = "INVALID_PATH"

	// System errors.

	// CodeUnsupported indicates the capability is not available on this platform.
	CodeUnsupported ErrorCode = "UNSUPPORTED"

	// CodeIO indicates the OS call failed for a reason not covered above.
	CodeIO ErrorCode = "IO_ERROR"

	// CodeInternal indicates an internal error occurred.
	CodeInternal ErrorCode = "INTERNAL_ERROR"

	// Generic errors.

	// CodeUnknown indicates an unknown or unclassified error occurred.
	CodeUnknown ErrorCode = "UNKNOWN"
)
