package errors

import (
	"fmt"
)

// TransportError is a connection-level failure of the realtime channel.
// It is never fatal: the session reacts by scheduling a reconnect.
type TransportError struct {
	Op  string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("transport %s: %v", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// LocationErrorKind classifies why a position could not be obtained.
type LocationErrorKind string

const (
	LocationPermissionDenied LocationErrorKind = "permission_denied"
	LocationTimeout          LocationErrorKind = "timeout"
	LocationUnavailable      LocationErrorKind = "position_unavailable"
)

// LocationError is an actionable positioning failure ("enable location").
type LocationError struct {
	Kind LocationErrorKind
	Err  error
}

func (e *LocationError) Error() string {
	if e.Err == nil {
		return "location: " + string(e.Kind)
	}

	return fmt.Sprintf("location: %s: %v", e.Kind, e.Err)
}

func (e *LocationError) Unwrap() error {
	return e.Err
}

// NewLocationError builds a LocationError of the given kind.
func NewLocationError(kind LocationErrorKind, err error) *LocationError {
	return &LocationError{Kind: kind, Err: err}
}

// PreferenceSyncError reports that the remote profile could not be read or
// written. Local state stays authoritative for the session.
type PreferenceSyncError struct {
	Op  string
	Err error
}

func (e *PreferenceSyncError) Error() string {
	return fmt.Sprintf("preferences %s: %v", e.Op, e.Err)
}

func (e *PreferenceSyncError) Unwrap() error {
	return e.Err
}
