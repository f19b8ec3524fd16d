package apperrors

import (
	"errors"
	"fmt"
)

// ErrNotFound signals that the requested row does not exist.
var ErrNotFound = errors.New("not found")

// ValidationError is the caller's fault: malformed input that never reaches the store.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// NewValidation builds a ValidationError with a formatted message.
func NewValidation(format string, args ...interface{}) error {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

// IsValidation reports whether err is (or wraps) a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// QueryError is a store-side failure while executing a query or routine.
type QueryError struct {
	Op  string
	Err error
}

func (e *QueryError) Error() string {
	return fmt.Sprintf("query %s: %v", e.Op, e.Err)
}

func (e *QueryError) Unwrap() error {
	return e.Err
}

// NewQuery wraps a store error with the operation that failed.
func NewQuery(op string, err error) error {
	return &QueryError{Op: op, Err: err}
}

// ConnectionError is raised when the store is unreachable or rejects credentials.
type ConnectionError struct {
	Err error
}

func (e *ConnectionError) Error() string {
	return fmt.Sprintf("store connection: %v", e.Err)
}

func (e *ConnectionError) Unwrap() error {
	return e.Err
}

// NewConnection wraps a connectivity failure.
func NewConnection(err error) error {
	return &ConnectionError{Err: err}
}
