package services

import (
	"errors"
	"fmt"
)

// Service errors carry just enough type information for the controllers to
// pick a status code: bad input, missing row, or a datastore read that failed.

type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

func NewValidationError(format string, args ...interface{}) *ValidationError {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

type NotFoundError struct {
	Message string
}

func (e *NotFoundError) Error() string { return e.Message }

func NewNotFoundError(format string, args ...interface{}) *NotFoundError {
	return &NotFoundError{Message: fmt.Sprintf(format, args...)}
}

// UpstreamError names the log stream whose query failed so a multi-bucket
// summary aborts with a usable message instead of partial data.
type UpstreamError struct {
	Stream string
	Err    error
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("failed to fetch %s: %v", e.Stream, e.Err)
}

func (e *UpstreamError) Unwrap() error { return e.Err }

func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

func IsNotFound(err error) bool {
	var nfe *NotFoundError
	return errors.As(err, &nfe)
}

func IsUpstream(err error) bool {
	var ue *UpstreamError
	return errors.As(err, &ue)
}
