package worker

import (
	"fmt"
	"strings"

	"tradematch/internal/pkg/errs"
)

// Availability represents whether a worker is currently free to take orders
// or busy with one. It is informational only: availability is shown in
// listings but does not exclude the worker from matching, mirroring how the
// worker self-reports it.
//
// Availability is a value object that validates its values and provides
// string representations for persistence and display.
type Availability int

const (
	// AvailabilityUnknown represents an invalid or undefined availability.
	// This value (0) helps catch uninitialized Availability values.
	AvailabilityUnknown Availability = iota

	// Free indicates the worker is not occupied and welcomes new orders.
	Free

	// Busy indicates the worker is currently occupied.
	Busy
)

func getAvailabilityStrings() map[Availability]string {
	return map[Availability]string{
		AvailabilityUnknown: "Unknown",
		Free:                "Free",
		Busy:                "Busy",
	}
}

func getValidAvailabilityStrings() map[Availability]string {
	//nolint:exhaustive // AvailabilityUnknown is intentionally excluded as it's invalid
	return map[Availability]string{
		Free: "Free",
		Busy: "Busy",
	}
}

// AvailabilityFromString parses an availability from its textual form.
// Matching is case-insensitive. Returns an error for unrecognized values.
func AvailabilityFromString(s string) (Availability, error) {
	for value, str := range getValidAvailabilityStrings() {
		if strings.EqualFold(str, s) {
			return value, nil
		}
	}
	return AvailabilityUnknown, errs.NewValueIsInvalidErrorWithCause(
		"availability", fmt.Errorf("%q is not a valid availability", s))
}

// Validate checks if the Availability value is valid.
// Valid values are Free and Busy; AvailabilityUnknown and anything else fail.
func (a Availability) Validate() error {
	if _, ok := getValidAvailabilityStrings()[a]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"availability", fmt.Errorf("%d is not a valid availability", a))
	}
	return nil
}

// String returns the human-readable name of the availability.
// Implements fmt.Stringer and is safe to call on any value.
func (a Availability) String() string {
	if str, ok := getAvailabilityStrings()[a]; ok {
		return str
	}
	return "Unknown"
}
