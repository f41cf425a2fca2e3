package models

import (
	"errors"
	"fmt"
)

// AppError is the application error type carried across the repository and
// service boundaries. Code identifies the failure class for callers that need
// to branch; Err holds the underlying cause when one exists.
type AppError struct {
	Code    string
	Message string
	Err     error
}

// Error codes used across the application.
const (
	CodeSchemaError      = "SCHEMA_ERROR"
	CodeStoreUnavailable = "STORE_UNAVAILABLE"
	CodeDuplicateUser    = "DUPLICATE_USER"
	CodeNotFound         = "NOT_FOUND"
	CodeValidation       = "VALIDATION_ERROR"
	CodeInternal         = "INTERNAL_ERROR"
)

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// NewSchemaError marks a failed migration step. Fatal: no feed is available
// for the rest of the session.
func NewSchemaError(err error) *AppError {
	return &AppError{
		Code:    CodeSchemaError,
		Message: "schema migration failed",
		Err:     err,
	}
}

// NewStoreUnavailableError marks a store that could not be opened or reached.
// The triggering action can be retried.
func NewStoreUnavailableError(err error) *AppError {
	return &AppError{
		Code:    CodeStoreUnavailable,
		Message: "store unavailable",
		Err:     err,
	}
}

// NewDuplicateUserError is returned on a unique-index collision during signup.
// It never reveals which of email/username collided.
func NewDuplicateUserError() *AppError {
	return &AppError{
		Code:    CodeDuplicateUser,
		Message: "email or username already taken",
	}
}

func NewNotFoundError(resource string, id interface{}) *AppError {
	return &AppError{
		Code:    CodeNotFound,
		Message: fmt.Sprintf("%s %v not found", resource, id),
	}
}

func NewValidationError(message string) *AppError {
	return &AppError{
		Code:    CodeValidation,
		Message: message,
	}
}

func NewInternalError(err error) *AppError {
	return &AppError{
		Code:    CodeInternal,
		Message: "internal error",
		Err:     err,
	}
}

// CodeOf extracts the AppError code from an error chain, or empty string.
func CodeOf(err error) string {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code
	}
	return ""
}

// IsNotFound reports whether err is a not-found AppError.
func IsNotFound(err error) bool { return CodeOf(err) == CodeNotFound }

// IsDuplicateUser reports whether err is a duplicate-user AppError.
func IsDuplicateUser(err error) bool { return CodeOf(err) == CodeDuplicateUser }
