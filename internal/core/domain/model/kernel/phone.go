package kernel

import (
	"regexp"
	"strings"

	"tradematch/internal/pkg/errs"
)

// ErrPhoneIsNotConstructed indicates that a Phone was not created via NewPhone.
var ErrPhoneIsNotConstructed = errs.NewValueIsRequiredError("Phone must be created via NewPhone")

// phonePattern accepts a permissive phone-like contact string: an optional
// leading '+', then at least eight digits possibly separated by spaces or
// dashes. Intake flows collect free-text numbers from many locales, so the
// rule trades strictness for reach.
var phonePattern = regexp.MustCompile(`^\+?\d[\d\s\-]{7,}$`)

// Phone is a value object holding a validated reachable contact string.
// It is used both as a worker's contact and as an order's requester contact.
//
// Example usage:
//
//	contact, err := kernel.NewPhone("+998901234567")
//	if err != nil {
//	    // surface a validation error to the intake front end
//	}
type Phone struct {
	value string
}

// NewPhone validates and wraps a contact string.
// The input is trimmed before validation.
func NewPhone(value string) (Phone, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return Phone{}, errs.NewValueIsRequiredError("phone")
	}
	if !phonePattern.MatchString(value) {
		return Phone{}, errs.NewValueIsInvalidError("phone")
	}
	return Phone{value: value}, nil
}

// String returns the contact string.
func (p Phone) String() string {
	return p.value
}

// IsEqual compares two phones for equality.
func (p Phone) IsEqual(other Phone) bool {
	return p.value == other.value
}

// Validate checks if the Phone is properly constructed.
// Returns ErrPhoneIsNotConstructed for the zero value.
func (p Phone) Validate() error {
	if p.value == "" {
		return ErrPhoneIsNotConstructed
	}
	return nil
}
