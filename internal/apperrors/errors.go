package apperrors

import (
	"errors"
	"fmt"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrUnauthorized indicates missing or invalid credentials.
var ErrUnauthorized = errors.New("unauthorized")

// ErrForbidden indicates the authenticated actor is not allowed to perform the action.
var ErrForbidden = errors.New("forbidden")

// ErrConflict indicates a write raced past its status/version precondition.
// Callers should refresh their view of the record rather than retry blindly.
var ErrConflict = errors.New("conflict: the record changed since it was read")

// ErrRefreshTokenExpired indicates the stored refresh token is no longer usable.
var ErrRefreshTokenExpired = errors.New("refresh token expired")

// Wrapf annotates a sentinel with a formatted message while keeping errors.Is
// matching intact.
func Wrapf(sentinel error, format string, args ...any) error {
	return fmt.Errorf("%w: %s", sentinel, fmt.Sprintf(format, args...))
}
