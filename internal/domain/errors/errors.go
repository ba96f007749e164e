// Package errors defines the failure taxonomy the use cases return and the
// HTTP layer renders: each value carries its status code, a stable business
// code, and a client-safe message.
package errors

import (
	"net/http"

	"rolodex/internal/errors"
)

// AppError is the contract the response layer renders from.
type AppError interface {
	error
	// HTTPCode is the status the failure maps to.
	HTTPCode() int
	// ErrorCode is the stable machine-readable code clients branch on.
	ErrorCode() string
	// Message is safe to show an end user.
	Message() string
	// Details optionally narrows the failure for 4xx responses.
	Details() string
}

// BaseError backs the predefined sentinel values below. Comparison with
// errors.Is keeps working because every wrap goes through WrapMessage.
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError constructs a sentinel.
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{httpCode: httpCode, errorCode: errorCode, message: message, details: details}
}

func (e *BaseError) Error() string { return e.message }

// WrapMessage annotates the sentinel with call-site context while keeping it
// matchable by errors.Is and errors.As.
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

func (e *BaseError) HTTPCode() int     { return e.httpCode }
func (e *BaseError) ErrorCode() string { return e.errorCode }
func (e *BaseError) Message() string   { return e.message }
func (e *BaseError) Details() string   { return e.details }

var (
	// Credential and token errors. Login failures never reveal whether the
	// email or the password was the wrong half.
	ErrInvalidCredentials = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_CREDENTIALS",
		"Incorrect email or password",
		"",
	)

	ErrUnauthenticated = NewBaseError(
		http.StatusUnauthorized,
		"UNAUTHENTICATED",
		"Could not validate credentials",
		"",
	)

	ErrInvalidToken = NewBaseError(
		http.StatusBadRequest,
		"INVALID_TOKEN",
		"Invalid or expired token",
		"",
	)

	// Account errors
	ErrDuplicateEmail = NewBaseError(
		http.StatusConflict,
		"EMAIL_ALREADY_REGISTERED",
		"Email already registered",
		"",
	)

	ErrPasswordHashFailed = NewBaseError(
		http.StatusInternalServerError,
		"PASSWORD_HASH_FAILED",
		"Password processing failed",
		"",
	)

	// Contact errors
	ErrContactNotFound = NewBaseError(
		http.StatusNotFound,
		"CONTACT_NOT_FOUND",
		"Contact not found",
		"",
	)

	// Rate limiting
	ErrTooManyRequests = NewBaseError(
		http.StatusTooManyRequests,
		"RATE_LIMIT_EXCEEDED",
		"Too many requests, slow down",
		"",
	)
)

// DatabaseExecuteError classifies unexpected store failures. Unlike the
// sentinels it keeps the cause, while the client still sees a generic 500.
type DatabaseExecuteError struct {
	err     error
	details string
}

// NewDatabaseExecuteError wraps a store failure.
func NewDatabaseExecuteError(err error, details string) AppError {
	return &DatabaseExecuteError{err: err, details: details}
}

func (e *DatabaseExecuteError) Error() string {
	return errors.Wrap(e.err, "database execution failed").Error()
}

func (e *DatabaseExecuteError) HTTPCode() int     { return http.StatusInternalServerError }
func (e *DatabaseExecuteError) ErrorCode() string { return "DATABASE_EXECUTE_FAILED" }
func (e *DatabaseExecuteError) Message() string   { return "Database execution failed" }
func (e *DatabaseExecuteError) Details() string   { return e.details }
