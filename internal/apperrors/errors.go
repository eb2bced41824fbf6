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

// ErrInvalidState indicates that the operation is not allowed in the resource's current state.
var ErrInvalidState = errors.New("invalid state")

// ErrIntegrity indicates that a bookkeeping write failed part-way through a transaction.
// The surrounding transaction is always rolled back when this is returned.
var ErrIntegrity = errors.New("integrity failure")

// AppError carries an HTTP-ish status code for infrastructure failures
// (begin/commit/rollback) while keeping the cause reachable through errors.Is.
type AppError struct {
	Code    int
	Message string
	Err     error
}

// NewAppError wraps err with a code and message.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}

func (e *AppError) Error() string {
	if e.Err == nil {
		return e.Message
	}
	return fmt.Sprintf("%s: %v", e.Message, e.Err)
}

func (e *AppError) Unwrap() error {
	return e.Err
}
