package premisgen

import (
	"errors"
	"strings"
)

// Sentinel errors for common failure scenarios.
// These enable callers to distinguish error types using errors.Is().
//
// Example usage:
//
//	err := generator.Generate(cfg)
//	if errors.Is(err, premisgen.ErrSourceNotFound) {
//	    // Handle a missing SIP directory
//	}
var (
	// ErrInvalidConfig indicates the provided configuration is invalid.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrSourceNotFound indicates the source root is missing or is not a directory.
	ErrSourceNotFound = errors.New("source root not found")

	// ErrSerialization indicates the output document could not be written.
	ErrSerialization = errors.New("serialization failed")

	// ErrUsage indicates the command line was used incorrectly.
	ErrUsage = errors.New("usage error")
)

// ExitCodeForError returns the appropriate exit code for an error.
// Returns ExitSuccess (0) for nil errors, semantic codes for known errors,
// and ExitGeneralError (1) for unclassified errors.
func ExitCodeForError(err error) int {
	if err == nil {
		return ExitSuccess
	}

	switch {
	case errors.Is(err, ErrUsage):
		return ExitUsageError
	case errors.Is(err, ErrSourceNotFound):
		return ExitSourceMissing
	case errors.Is(err, ErrInvalidConfig):
		return ExitConfigError
	case errors.Is(err, ErrSerialization):
		return ExitSerializationFailed
	}

	// cobra reports argument and flag problems as plain errors
	errStr := err.Error()
	if strings.Contains(errStr, "missing required argument") ||
		strings.Contains(errStr, "accepts ") ||
		strings.Contains(errStr, "unknown flag") ||
		strings.Contains(errStr, "unknown command") ||
		strings.Contains(errStr, "requires at least") ||
		strings.Contains(errStr, "required flag") ||
		strings.Contains(errStr, "invalid argument") {
		return ExitUsageError
	}

	return ExitGeneralError
}
