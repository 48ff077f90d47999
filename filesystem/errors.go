package filesystem

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound indicates a path component or the target item doesn't exist
	ErrNotFound = errors.New("no such item")

	// ErrNotADirectory indicates a path walks through, or targets, a file where a directory is required
	ErrNotADirectory = errors.New("not a directory")

	// ErrInvalidName indicates a malformed basename, e.g. a file referenced with a trailing "/"
	ErrInvalidName = errors.New("not a valid name")

	// ErrAlreadyExists indicates a directory-kind name collision
	ErrAlreadyExists = errors.New("item already exists")

	// ErrSelfContainment indicates a transfer into the source's own subtree or of the root itself
	ErrSelfContainment = errors.New("cannot transfer into own subtree")

	// ErrUnsupportedCommand indicates a command name with no tree operation
	ErrUnsupportedCommand = errors.New("unsupported command")
)

// Common operation names for consistent logging and error reporting
const (
	OpResolve = "resolve" // Looking up a path
	OpMkdir   = "md"      // Creating a new directory
	OpMkfile  = "mf"      // Creating a new file
	OpRemove  = "rm"      // Removing a file or directory
	OpCopy    = "cp"      // Copying a file or directory
	OpMove    = "mv"      // Moving/renaming a file or directory
)

// Error wraps tree errors with context about the operation and the
// normalized path it was applied to.
type Error struct {
	Op   string // Operation that failed (e.g., "md", "mv")
	Path string // Normalized path the operation was given
	Err  error  // Underlying error, wraps one of the Err* sentinels
}

// Error implements the error interface, providing a formatted error message
func (e *Error) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("operation %s failed: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("operation %s on %s failed: %v", e.Op, e.Path, e.Err)
}

// Unwrap implements error unwrapping for the errors.Is/As functions
func (e *Error) Unwrap() error {
	return e.Err
}

// newError builds an [Error] whose cause is kind annotated with a formatted detail
func newError(op, path string, kind error, format string, args ...any) *Error {
	return &Error{
		Op:   op,
		Path: path,
		Err:  fmt.Errorf("%w: %s", kind, fmt.Sprintf(format, args...)),
	}
}
