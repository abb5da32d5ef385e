package booking

import "fmt"

// BookingError is a validation failure detected before any remote call.
type BookingError struct {
	Code    string
	Message string
}

func (e *BookingError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

var (
	// ErrMissingSlot signals that no date or no time has been chosen.
	ErrMissingSlot = &BookingError{Code: "missingSlot", Message: "please choose a date and time first"}
	// ErrNoServicesSelected signals an empty service selection.
	ErrNoServicesSelected = &BookingError{Code: "noServicesSelected", Message: "please select at least one service"}
	// ErrUnauthenticated signals that no user session is active.
	ErrUnauthenticated = &BookingError{Code: "unauthenticated", Message: "you must be signed in to book an appointment"}
)

// RemoteError wraps any storage failure surfaced during the booking flow.
type RemoteError struct {
	Op  string
	Err error
}

func (e *RemoteError) Error() string {
	return fmt.Sprintf("remote operation failed (%s): %v", e.Op, e.Err)
}

func (e *RemoteError) Unwrap() error { return e.Err }
