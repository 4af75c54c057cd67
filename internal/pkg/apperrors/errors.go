package apperrors

import "errors"

// Session validation errors
var (
	// ErrNoSession is returned when no session credential is present at all.
	ErrNoSession = errors.New("no session")
	// ErrInvalidSessionFormat is returned when a self-issued session envelope
	// cannot be decoded or is missing required fields.
	ErrInvalidSessionFormat = errors.New("invalid session format")
	// ErrInvalidProviderSession is returned when the identity provider rejects
	// a native session credential.
	ErrInvalidProviderSession = errors.New("invalid provider session")
	// ErrUserNotFound is returned when a session names a user whose record is
	// missing from the primary store.
	ErrUserNotFound = errors.New("user not found")
	// ErrInvalidCredentials is returned on a failed password login.
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// Store errors
var (
	// ErrStoreUnavailable is returned when a store round trip fails for
	// reasons other than a missing record (network, backend outage).
	ErrStoreUnavailable = errors.New("store unavailable")
	// ErrResourceNotFound is the generic missing-record error shared by the
	// repository layer.
	ErrResourceNotFound = errors.New("resource not found")
)

// Resolution errors
var (
	// ErrPartialResolution indicates a mentee resolution completed but one or
	// more student ids could not be hydrated and were skipped.
	ErrPartialResolution = errors.New("partial resolution")
)

// Validation errors
var (
	ErrValidationFailed = errors.New("validation failed")
	ErrBadRequest       = errors.New("bad request")
	ErrPermissionDenied = errors.New("permission denied")
)

// CustomError represents application-specific errors with additional context
type CustomError struct {
	Err     error
	Message string
	Code    string
	Details map[string]interface{}
}

// Error implements error interface
func (e *CustomError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "unknown error"
}

// Unwrap implements errors.Unwrap interface
func (e *CustomError) Unwrap() error {
	return e.Err
}

// NewCustomError creates a CustomError with underlying error
func NewCustomError(err error, message string) *CustomError {
	return &CustomError{
		Err:     err,
		Message: message,
	}
}

// WithDetails adds context details to the error
func (e *CustomError) WithDetails(details map[string]interface{}) *CustomError {
	e.Details = details
	return e
}

// WithCode adds an error code
func (e *CustomError) WithCode(code string) *CustomError {
	e.Code = code
	return e
}

// Is returns whether target or any error in errList matches err
func Is(err, target error, errList ...error) bool {
	if errors.Is(err, target) {
		return true
	}

	for _, e := range errList {
		if errors.Is(err, e) {
			return true
		}
	}

	return false
}
