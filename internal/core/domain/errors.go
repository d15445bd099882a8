package domain

import (
	"errors"
	"fmt"
	"net/http"
)

// Remote error taxonomy
var (
	ErrUnauthenticated = errors.New("authentication required")
	ErrForbidden       = errors.New("access denied")
	ErrInvalidInput    = errors.New("invalid input")
	ErrNotFound        = errors.New("resource not found")
	ErrTransport       = errors.New("service unavailable")
)

// Local precondition errors. These abort an action before any request is sent.
var (
	ErrNoCredential            = errors.New("no session credential")
	ErrActorNotAllowed         = errors.New("action not permitted for this role")
	ErrLoanNotLoaded           = errors.New("loan not loaded")
	ErrInvalidTransition       = errors.New("invalid loan status transition")
	ErrRejectionReasonRequired = errors.New("a rejection reason is required")
	ErrInvalidEvaluation       = errors.New("evaluation aborted: quality index and final offer must be positive")
)

// APIError is a non-2xx answer from the backend
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("backend returned %d", e.Status)
	}
	return fmt.Sprintf("backend returned %d: %s", e.Status, e.Message)
}

// Unwrap places the status in the taxonomy so callers can use errors.Is
func (e *APIError) Unwrap() error {
	switch {
	case e.Status == http.StatusUnauthorized:
		return ErrUnauthenticated
	case e.Status == http.StatusForbidden:
		return ErrForbidden
	case e.Status == http.StatusNotFound:
		return ErrNotFound
	case e.Status >= 400 && e.Status < 500:
		return ErrInvalidInput
	default:
		return ErrTransport
	}
}

// ValidationError is a form that failed local checks
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return e.Field + ": " + e.Message
}

func (e *ValidationError) Unwrap() error { return ErrInvalidInput }

// Invalid builds a ValidationError
func Invalid(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// IsLocal reports whether err was raised before any request left the process
func IsLocal(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve) ||
		errors.Is(err, ErrNoCredential) ||
		errors.Is(err, ErrActorNotAllowed) ||
		errors.Is(err, ErrLoanNotLoaded) ||
		errors.Is(err, ErrInvalidTransition) ||
		errors.Is(err, ErrRejectionReasonRequired) ||
		errors.Is(err, ErrInvalidEvaluation)
}

// UserMessage is the text shown to the actor for err
func UserMessage(err error) string {
	var apiErr *APIError
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrUnauthenticated):
		return "Session expired or invalid token. Please log in again."
	case errors.Is(err, ErrForbidden):
		return "You don't have permission to perform this action."
	case errors.As(err, &apiErr) && apiErr.Status >= 400 && apiErr.Status < 500 && apiErr.Message != "":
		return apiErr.Message
	case IsLocal(err):
		return err.Error()
	case errors.Is(err, ErrNotFound):
		return "Loan Application not found."
	default:
		return "Server error. Please try again."
	}
}
