package order

import (
	"fmt"

	"tradematch/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
// It implements a state machine with a single transition:
//
//	New ──> Accepted
//
// Accepted is terminal. There is no cancellation or expiry state: an order
// that is never claimed stays New indefinitely.
//
// Status is a value object that validates state transitions and provides
// string representations for persistence and display.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	StatusUnknown Status = iota

	// New is the initial status when an order is created.
	// Orders in this status are open to claims.
	New

	// Accepted indicates exactly one worker has been awarded the order.
	// This is a final state with no further transitions allowed.
	Accepted
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown: "Unknown",
		New:           "New",
		Accepted:      "Accepted",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // StatusUnknown is intentionally excluded as it's invalid
	return map[Status]string{
		New:      "New",
		Accepted: "Accepted",
	}
}

// Validate checks if the Status value is valid.
// Valid statuses are New and Accepted; StatusUnknown and anything else fail.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the human-readable name of the status.
// Implements fmt.Stringer and is safe to call on any value.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// Accept transitions the status to Accepted.
//
// Valid transitions:
//   - New -> Accepted (the single winning claim)
//
// Invalid transitions:
//   - Accepted -> Accepted (at most one winner)
//   - StatusUnknown -> Accepted (invalid initial state)
//
// Returns (Accepted, nil) on a valid transition, or (0, error) otherwise.
func (s Status) Accept() (Status, error) {
	if s != New {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status", fmt.Errorf("%s is not a valid status to accept", s.String()))
	}
	return Accepted, nil
}

// ValidateCanHaveAcceptor validates the consistency between order status and
// the accepted-by field. Accepted orders must have an acceptor; New orders
// must not.
func (s Status) ValidateCanHaveAcceptor(acceptor bool) error {
	if acceptor && s != Accepted {
		return errs.NewValueIsInvalidErrorWithCause(
			"status", fmt.Errorf("%s is not a valid status to have an acceptor", s.String()))
	}

	if !acceptor && s == Accepted {
		return errs.NewValueIsInvalidErrorWithCause(
			"status", fmt.Errorf("%s is not a valid status to have no acceptor", s.String()))
	}

	return nil
}
