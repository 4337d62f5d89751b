package config

import (
	"errors"
	"fmt"
)

// Configuration validation errors.
// These errors are returned by Config.Validate() and the category lookup
// helpers, and provide specific information about what is wrong with the
// configuration.
//
// Design decision: We use package-level sentinel errors rather than
// creating new error instances at each call site. This allows callers to
// use errors.Is() for programmatic error handling while still providing
// human-readable messages.
var (
	// ErrUnknownCategory is returned when a category name is not one of
	// the archive's known top-level media groupings.
	ErrUnknownCategory = errors.New("unknown category")

	// ErrNegativeMinWorks is returned when the minimum work count is
	// negative. Zero means "retain all fandoms".
	ErrNegativeMinWorks = errors.New("invalid minimum work count: must be non-negative")

	// ErrInvalidVerbosity is returned when the verbosity tier is outside
	// the supported 0..2 range.
	ErrInvalidVerbosity = errors.New("invalid verbosity: must be 0, 1, or 2")

	// ErrInvalidTimeout is returned when the HTTP timeout is not positive.
	// A timeout of zero or negative would cause immediate request failures.
	ErrInvalidTimeout = errors.New("invalid timeout: must be positive")
)

// wrapValue annotates a sentinel error with the offending value while
// keeping errors.Is classification intact.
func wrapValue(sentinel error, value any) error {
	return fmt.Errorf("%w: %v", sentinel, value)
}
