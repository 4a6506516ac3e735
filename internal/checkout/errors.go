package checkout

import (
	"errors"
	"fmt"
)

// ErrInvalidInput indicates an empty cart or a missing required customer
// field. The notification sink is never contacted in this case.
var ErrInvalidInput = errors.New("checkout: invalid input")

// ErrSubmissionInFlight indicates the session already has an outstanding
// submission; no second sink call is issued while one is in flight.
var ErrSubmissionInFlight = errors.New("checkout: submission already in flight")

// NotificationError wraps a failed sink call. The cart is left untouched so
// the user can retry without rebuilding it.
type NotificationError struct {
	Reason string
	Err    error
}

func (e *NotificationError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("checkout: order notification failed: %s: %v", e.Reason, e.Err)
	}
	return fmt.Sprintf("checkout: order notification failed: %s", e.Reason)
}

func (e *NotificationError) Unwrap() error { return e.Err }
