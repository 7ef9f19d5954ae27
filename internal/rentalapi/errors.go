package rentalapi

import (
	"errors"
	"fmt"
)

const StatusSuccess = "success"

var (
	// ErrRejected matches every StatusError.
	ErrRejected = errors.New("request rejected by rental api")
	ErrNotFound = errors.New("not found")
)

// StatusError is a response envelope whose status is not success.
type StatusError struct {
	Operation string
	Status    string
	Message   string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s: status %q: %s", e.Operation, e.Status, e.Message)
}

func (e *StatusError) Is(target error) bool {
	return target == ErrRejected
}
