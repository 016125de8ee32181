package services

import (
	"errors"
	"net/http"

	"github.com/forestgump22/tutorgo-frontend/internal/api"
)

var (
	ErrInvalidInput         = errors.New("invalid input")
	ErrConfirmationRequired = errors.New("confirmation required")
	ErrNoSession            = errors.New("no session")
	ErrSessionNotFound      = errors.New("session not found")
	ErrPaymentNotPending    = errors.New("payment not pending")
	ErrAlreadyReviewed      = errors.New("session already reviewed")
	ErrTooManyLinks         = errors.New("link limit reached")
)

// ValidationError is a client-side rejection: no upstream request was made.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

func validationErr(message string) error {
	return &ValidationError{Message: message}
}

// UpstreamError wraps an upstream failure with the message shown to the
// user: the backend envelope's reason when present, otherwise the
// operation's fixed fallback.
type UpstreamError struct {
	Message string
	Status  int
	Err     error
}

func (e *UpstreamError) Error() string { return e.Message }

func (e *UpstreamError) Unwrap() error { return e.Err }

// HTTPStatus picks the status mirrored to the caller: the upstream status
// when the backend rejected the request, 502 for transport-level failures.
func (e *UpstreamError) HTTPStatus() int {
	if e.Status >= http.StatusBadRequest {
		return e.Status
	}
	return http.StatusBadGateway
}

func upstreamErr(err error, fallback string) error {
	return &UpstreamError{
		Message: api.Message(err, fallback),
		Status:  api.StatusOf(err),
		Err:     err,
	}
}
