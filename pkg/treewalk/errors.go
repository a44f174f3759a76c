package treewalk

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
)

// Sentinel errors for common failure scenarios.
// These enable callers to distinguish error types using errors.Is().
//
// Example usage:
//
//	ok, err := l.Next()
//	if errors.Is(err, treewalk.ErrUseAfterClose) {
//	    // Caller kept using a lister after closing it
//	}
var (
	// ErrInvalidArgument indicates a constructor received an empty path,
	// a nil record or factory, a malformed pattern or an unknown order.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrInvalidOrder indicates an EnumerationOrder value or name is not one of
	// the three defined orders. It wraps ErrInvalidArgument.
	ErrInvalidOrder = fmt.Errorf("invalid enumeration order: %w", ErrInvalidArgument)

	// ErrNoCurrent indicates Current was called before the first successful
	// Next or after the sequence completed.
	ErrNoCurrent = errors.New("no current element")

	// ErrUnsupportedOperation indicates Reset was called. Listings are
	// forward-only and cannot be rewound.
	ErrUnsupportedOperation = errors.New("operation not supported: sequences are forward-only")

	// ErrUseAfterClose indicates a method was called on a closed lister or walker.
	ErrUseAfterClose = errors.New("use after close")

	// ErrRootNotDirectory indicates a walk was requested on a regular file.
	// It wraps fs.ErrNotExist so callers treat it like a missing root.
	ErrRootNotDirectory = fmt.Errorf("root is not a directory: %w", fs.ErrNotExist)
)

// IsProtocolError reports whether err is a caller-misuse error: reading
// Current at the wrong time, calling Reset, or using a closed sequence.
// Protocol errors are never swallowed, not even in safe mode.
func IsProtocolError(err error) bool {
	return errors.Is(err, ErrNoCurrent) ||
		errors.Is(err, ErrUnsupportedOperation) ||
		errors.Is(err, ErrUseAfterClose)
}

// ExitCodeForError returns the appropriate exit code for an error.
// Returns ExitSuccess (0) for nil errors, semantic codes for known errors,
// and ExitGeneralError (1) for unclassified errors.
func ExitCodeForError(err error) int {
	if err == nil {
		return ExitSuccess
	}

	switch {
	case errors.Is(err, ErrInvalidArgument):
		return ExitConfigError
	case errors.Is(err, fs.ErrNotExist):
		return ExitRootNotFound
	case errors.Is(err, fs.ErrPermission):
		return ExitPermissionDenied
	}

	// cobra reports usage problems as plain formatted errors
	errStr := err.Error()
	for _, pattern := range usageErrorPatterns {
		if strings.Contains(errStr, pattern) {
			return ExitUsageError
		}
	}

	return ExitGeneralError
}

var usageErrorPatterns = []string{
	"unknown flag",
	"unknown shorthand flag",
	"unknown command",
	"accepts ",
	"requires at least",
	"required flag",
	"invalid argument",
	"missing required argument",
}
