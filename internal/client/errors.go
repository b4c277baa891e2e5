package client

import "errors"

// Sentinel errors for conditions the UI layer maps to specific messages.
var (
	// ErrNoToken means no bearer token is configured; the user has never
	// logged in on this device.
	ErrNoToken = errors.New("not logged in")

	// ErrTokenExpired means the stored token is past its expiry and a
	// fresh login is required.
	ErrTokenExpired = errors.New("session expired, please log in again")

	// ErrUnauthorized means the server rejected the token.
	ErrUnauthorized = errors.New("authentication failed, please log in again")

	// ErrDuplicate means the server already has this posting recorded.
	ErrDuplicate = errors.New("job already tracked")
)

// SubmitError wraps a submission failure with a short message safe to show
// in the tracking UI. The underlying cause is preserved for logs.
type SubmitError struct {
	Message string
	cause   error
}

// Error implements the error interface.
func (e *SubmitError) Error() string {
	return e.Message
}

// Unwrap returns the underlying cause.
func (e *SubmitError) Unwrap() error {
	return e.cause
}
