package services

import (
	"context"
	"errors"
	"fmt"
)

var (
	// ErrCancelled reports that the caller cancelled the generation. Callers
	// show it as an informational message, not a failure.
	ErrCancelled = errors.New("poem generation cancelled")

	// ErrInvalidResponseShape matches *InvalidResponseError.
	ErrInvalidResponseShape = errors.New("invalid response shape")

	// ErrService matches *ServiceError.
	ErrService = errors.New("generation service error")

	ErrMissingAPIKey = errors.New("API key is not set")
)

// InvalidResponseError is returned when the service replied with well-formed
// JSON that does not carry a string title and content.
type InvalidResponseError struct {
	Reason string
	Raw    string
}

func (e *InvalidResponseError) Error() string {
	return fmt.Sprintf("invalid response shape: %s", e.Reason)
}

func (e *InvalidResponseError) Is(target error) bool {
	return target == ErrInvalidResponseShape
}

// ServiceError covers transport failures, service-side errors and
// undecodable payloads.
type ServiceError struct {
	Op  string
	Err error
}

func (e *ServiceError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *ServiceError) Unwrap() error { return e.Err }

func (e *ServiceError) Is(target error) bool {
	return target == ErrService
}

// contextError maps a context error to the generation taxonomy. Deadline
// expiry is a service failure; only explicit cancellation is ErrCancelled.
func contextError(err error) error {
	if errors.Is(err, context.Canceled) {
		return ErrCancelled
	}
	return &ServiceError{Op: "generate", Err: err}
}

const (
	cancelledMessage = "Generation cancelled."
	failedMessage    = "Something went wrong while composing the poem. Please try again."
)

// UserMessage returns the text shown to the user for a generation error.
// Only cancelled and failed are distinguished.
func UserMessage(err error) string {
	if errors.Is(err, ErrCancelled) {
		return cancelledMessage
	}
	return failedMessage
}
