package apperrors

import (
	"errors"
	"fmt"
)

// Class sentinels. Repositories and services wrap these so callers can
// branch with errors.Is without knowing the concrete failure.
var (
	// ErrNotFound indicates that a requested resource could not be found.
	ErrNotFound = errors.New("resource not found")

	// ErrConflict indicates a uniqueness or duplicate violation.
	ErrConflict = errors.New("resource already exists")

	// ErrUnauthorized indicates failed credential or token verification.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrInvalidOperation indicates a policy-violating request.
	ErrInvalidOperation = errors.New("invalid operation")

	// ErrValidation indicates that input data failed validation checks.
	ErrValidation = errors.New("validation error")
)

// Narrowed conflicts for the two unique indexes on users. Both unwrap to
// ErrConflict; the user repository returns them so callers can tell an
// email race from a follow-id collision.
var (
	ErrDuplicateEmail    = fmt.Errorf("email already registered: %w", ErrConflict)
	ErrDuplicateFollowID = fmt.Errorf("follow id already taken: %w", ErrConflict)
)

// BusinessError is a named domain failure carrying a stable code and a
// human-readable message. It unwraps to one of the class sentinels above so
// generic errors.Is handling keeps working alongside code-based mapping.
type BusinessError struct {
	Code    string
	Message string
	class   error
}

// NewBusiness creates a BusinessError of the given class.
func NewBusiness(code, message string, class error) *BusinessError {
	return &BusinessError{Code: code, Message: message, class: class}
}

func (e *BusinessError) Error() string {
	return e.Code + ": " + e.Message
}

func (e *BusinessError) Unwrap() error {
	return e.class
}

// AsBusiness extracts a BusinessError from an error chain, if present.
func AsBusiness(err error) (*BusinessError, bool) {
	var be *BusinessError
	if errors.As(err, &be) {
		return be, true
	}
	return nil, false
}
