// Package service implements the domain layer: identity, group membership,
// chat participant management and the user info aggregation.
package service

import "errors"

var (
	// ErrUserExists means the registration email is already taken.
	ErrUserExists = errors.New("user already exists")
	// ErrWeakPassword means the password failed the strength check.
	ErrWeakPassword = errors.New("weak password")
	// ErrInvalidCredentials covers both unknown email and wrong password;
	// callers must not reveal which one it was.
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// ValidationError is a user-visible rejection of a request: a malformed or
// missing field, a duplicate invariant violation or a participant resolution
// failure. The message is safe to return to the client.
type ValidationError struct {
	msg string
}

func (e *ValidationError) Error() string { return e.msg }

func newValidationError(msg string) error {
	return &ValidationError{msg: msg}
}

// IsValidation reports whether err is a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
