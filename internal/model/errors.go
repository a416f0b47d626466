package model

import "errors"

var (
	// ErrNotFound is returned when a requested entity does not exist or is
	// not owned by the caller. The two cases are deliberately not
	// distinguishable.
	ErrNotFound = errors.New("not found")
	// ErrUsernameTaken is returned when registering an already existing username.
	ErrUsernameTaken = errors.New("username already exists")
	// ErrInvalidCredentials is returned on login when the user does not exist
	// or the password does not match.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrInvalidToken is returned for any session token failure: missing,
	// malformed, tampered or expired.
	ErrInvalidToken = errors.New("invalid session token")
)

// ValidationError reports rejected request input. The reason is safe to
// return to the client verbatim.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Reason
}

// NewValidationError creates a ValidationError with the given reason.
func NewValidationError(reason string) error {
	return &ValidationError{Reason: reason}
}
