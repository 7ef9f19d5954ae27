package checkout

import (
	"errors"
	"fmt"
)

var (
	ErrNotReady        = errors.New("checkout is not ready")
	ErrDraftNotFound   = errors.New("checkout draft not found")
	ErrUnknownSection  = errors.New("unknown checkout section")
	ErrMalformed       = errors.New("malformed section payload")
	ErrInvalidRange    = errors.New("drop-off must be after pick-up")
	ErrInvalidListing  = errors.New("listing identifiers are not numeric")
	ErrAttemptNotFound = errors.New("checkout attempt not found")
	ErrPaymentPending  = errors.New("a payment is in progress for this checkout")
	ErrOrderMismatch   = errors.New("payment does not match the pending order")
)

type FailureKind string

const (
	FailureOrder        FailureKind = "order"
	FailureWidget       FailureKind = "widget"
	FailureVerification FailureKind = "verification"
	FailureUnavailable  FailureKind = "unavailable"
)

// Failure is a terminal outcome of a submit or verify attempt. The user has
// to start the whole submission again; nothing is retried or rolled back.
type Failure struct {
	Kind    FailureKind
	Message string
	Err     error
}

func (f *Failure) Error() string {
	if f.Err != nil {
		return fmt.Sprintf("checkout %s failure: %s: %v", f.Kind, f.Message, f.Err)
	}
	return fmt.Sprintf("checkout %s failure: %s", f.Kind, f.Message)
}

func (f *Failure) Unwrap() error {
	return f.Err
}

// Title is the short heading shown to the user for this failure.
func (f *Failure) Title() string {
	switch f.Kind {
	case FailureWidget:
		return "SDK Load Failure"
	case FailureUnavailable:
		return "Car Unavailable"
	case FailureOrder:
		return "Order Failed"
	default:
		return "Payment Failed"
	}
}

// Text is the user-visible explanation for this failure.
func (f *Failure) Text() string {
	switch f.Kind {
	case FailureWidget:
		return "Failed to load the payment SDK. Please check your internet connection."
	case FailureUnavailable:
		return "The car is not available for the selected dates. Please try other dates or cars."
	case FailureOrder:
		return "Could not create a payment order. Please try again."
	default:
		return "Payment verification failed. Please try again."
	}
}
