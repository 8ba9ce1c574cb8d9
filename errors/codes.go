package errors

// ErrorCode represents a machine-readable error code.
type ErrorCode string

// Argument errors
const (
	// ErrCodeMissingArgument indicates a required argument was nil.
	ErrCodeMissingArgument ErrorCode = "MISSING_ARGUMENT"
	// ErrCodeInvalidArgument indicates an argument was present but unusable,
	// e.g. a collection holding a nil element.
	ErrCodeInvalidArgument ErrorCode = "INVALID_ARGUMENT"
)

// Validation errors
const (
	// ErrCodeInvalidInput indicates configuration or user input failed validation.
	ErrCodeInvalidInput ErrorCode = "INVALID_INPUT"
)

// Internal errors
const (
	// ErrCodeInternal indicates an unexpected failure.
	ErrCodeInternal ErrorCode = "INTERNAL_ERROR"
)

// IsArgumentCode reports whether code describes a caller contract violation.
func IsArgumentCode(code ErrorCode) bool {
	return code == ErrCodeMissingArgument || code == ErrCodeInvalidArgument
}
