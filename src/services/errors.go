package services

import (
	"errors"
	"fmt"
)

// Operation errors surfaced to the HTTP layer. Handlers translate these into
// structured failure responses; none of them is fatal to the process.
var (
	ErrNotFound        = errors.New("record not found")
	ErrSelfAction      = errors.New("cannot perform this action on yourself")
	ErrUnauthorized    = errors.New("not authorized")
	ErrAlreadyResolved = errors.New("request has already been processed")
)

// ValidationError reports a malformed input field.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}
