package errors

import (
	"errors"
	"fmt"
)

// InvalidArgumentError reports an argument that cannot be processed at all,
// as opposed to one that was processed and found invalid.
type InvalidArgumentError struct {
	Argument string
	Reason   string
}

func (e *InvalidArgumentError) Error() string {
	if e.Reason == "" {
		return fmt.Sprintf("invalid argument %q", e.Argument)
	}
	return fmt.Sprintf("invalid argument %q: %s", e.Argument, e.Reason)
}

// NewInvalidArgumentError creates an InvalidArgumentError for the named argument.
func NewInvalidArgumentError(argument, reason string) *InvalidArgumentError {
	return &InvalidArgumentError{Argument: argument, Reason: reason}
}

// IsInvalidArgumentError reports whether err is an InvalidArgumentError (even when wrapped).
func IsInvalidArgumentError(err error) bool {
	var argErr *InvalidArgumentError
	return errors.As(err, &argErr)
}
