package services

import "errors"

// ErrSubmissionNotFound is returned by lookups for ids with no matching row.
var ErrSubmissionNotFound = errors.New("submission not found")

// ValidationError marks a client-caused failure so the HTTP layer can map
// it to a 400 instead of a 500.
type ValidationError struct {
	Code    string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func newValidationError(code, message string) *ValidationError {
	return &ValidationError{Code: code, Message: message}
}

func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
