package api

import (
	"errors"
	"fmt"
)

// ErrNoContent marks a 204 response; list callers map it to an empty slice.
var ErrNoContent = errors.New("no content")

type ErrorKind int

const (
	// KindBackend is a request the backend rejected (HTTP error status or a
	// success:false envelope). Message carries the backend's reason when the
	// envelope provided one.
	KindBackend ErrorKind = iota
	// KindNetwork is a transport-level failure; no response was decoded.
	KindNetwork
	// KindDecode means the backend answered but the body did not match the
	// expected shape.
	KindDecode
)

// Error classifies an upstream failure at the service boundary. Callers
// branch on Kind instead of inspecting response bodies.
type Error struct {
	Kind    ErrorKind
	Status  int
	Message string
	cause   error
}

func (e *Error) Error() string {
	switch e.Kind {
	case KindNetwork:
		return fmt.Sprintf("api: network failure: %v", e.cause)
	case KindDecode:
		return fmt.Sprintf("api: decode failure: %v", e.cause)
	default:
		if e.Message != "" {
			return fmt.Sprintf("api: backend rejected (status %d): %s", e.Status, e.Message)
		}
		return fmt.Sprintf("api: backend rejected (status %d)", e.Status)
	}
}

func (e *Error) Unwrap() error { return e.cause }

// Message extracts the user-displayable reason from err: a backend-provided
// envelope message when present, otherwise the given fallback.
func Message(err error, fallback string) string {
	var apiErr *Error
	if errors.As(err, &apiErr) && apiErr.Kind == KindBackend && apiErr.Message != "" {
		return apiErr.Message
	}
	return fallback
}

// StatusOf reports the upstream HTTP status carried by err, or 0.
func StatusOf(err error) int {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr.Status
	}
	return 0
}
