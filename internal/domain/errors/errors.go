// File: internal/domain/errors/errors.go
package errors

import (
	"errors"
	"fmt"
)

// Machine codes returned on the wire alongside human-readable messages.
const (
	CodeBadRequest   = "Error-400"
	CodeUnauthorized = "Error-401"
	CodeNotFound     = "Error-404"
	CodeInternal     = "Error-500"
)

var (
	// Authentication errors
	ErrUserNotFound    = errors.New("user not found")
	ErrAccountLocked   = errors.New("account locked")
	ErrInvalidPassword = errors.New("invalid password")

	// Permission resolution errors
	ErrUserNotFoundOrInactive = errors.New("user not found or inactive")

	// Registration errors
	ErrEmailExists    = errors.New("email is already registered")
	ErrUsernameExists = errors.New("username is already registered")
	ErrValidation     = errors.New("validation failed")

	// Store errors
	ErrPersistence    = errors.New("persistence failure")
	ErrTenantNotFound = errors.New("tenant not found")

	// Token errors
	ErrInvalidToken      = errors.New("invalid token")
	ErrVerifyUnsupported = errors.New("token verification not supported by this signing strategy")
	ErrDuplicateValue    = errors.New("duplicate value")
)

// AppError carries a user-facing message, an HTTP status and a machine code
// next to the underlying error.
type AppError struct {
	Err        error
	Message    string
	StatusCode int
	Code       string
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// NewAppError creates a new application error.
func NewAppError(err error, message string, statusCode int, code string) *AppError {
	return &AppError{
		Err:        err,
		Message:    message,
		StatusCode: statusCode,
		Code:       code,
	}
}

// IsNotFound reports whether err is a "not found" failure.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrUserNotFound) ||
		errors.Is(err, ErrUserNotFoundOrInactive)
}

// IsDuplicate reports whether err is a uniqueness conflict, whether it came
// from a best-effort pre-check or from the authoritative store constraint.
func IsDuplicate(err error) bool {
	return errors.Is(err, ErrEmailExists) ||
		errors.Is(err, ErrUsernameExists) ||
		errors.Is(err, ErrDuplicateValue)
}

// IsBadRequest reports whether err should map to a 400 response.
func IsBadRequest(err error) bool {
	return errors.Is(err, ErrAccountLocked) ||
		errors.Is(err, ErrInvalidPassword) ||
		errors.Is(err, ErrValidation) ||
		IsDuplicate(err)
}
