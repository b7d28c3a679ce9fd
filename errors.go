package teller

import (
	"errors"
	"fmt"
)

// Sentinel errors for common failure modes.
var (
	// ErrValidation indicates credentials or a message failed validation.
	ErrValidation = errors.New("validation error")

	// ErrNotAuthenticated indicates an operation that requires a session
	// was called without one.
	ErrNotAuthenticated = errors.New("not authenticated")

	// ErrNoPendingTransfer indicates ConfirmTransfer() was called with no
	// transfer awaiting confirmation.
	ErrNoPendingTransfer = errors.New("no pending transfer")
)

// APIError is an error reported by the backend in a well-formed response.
// Its message is safe to surface to the user verbatim. Any other error
// returned by a Backend is a transport or decoding failure and is reported
// with a generic message instead.
type APIError struct {
	Status  int // HTTP status code; 0 when the body carried the error
	Message string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("backend error (HTTP %d)", e.Status)
}
