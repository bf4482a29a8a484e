package apperrors

import "errors"

// Constraint violations
var (
	ErrDuplicateUsername = errors.New("username already exists")
	ErrDuplicateEmail    = errors.New("student with this email already exists")
)

// Identity failures. Messages never say which of username/password was wrong.
var (
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrInvalidToken       = errors.New("could not validate credentials")
	ErrUnauthenticated    = errors.New("could not validate credentials")
)

// Authorization failures
var (
	ErrInactiveAccount = errors.New("inactive user")
	ErrForbidden       = errors.New("user cannot edit or delete the data")
)

// Resource errors
var (
	ErrUserNotFound    = errors.New("user not found")
	ErrStudentNotFound = errors.New("student not found")
)
