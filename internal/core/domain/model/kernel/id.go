package kernel

import (
	"fmt"
	"strconv"

	"tradematch/internal/pkg/errs"
)

// ErrUserIDIsNotConstructed indicates that a UserID was not properly initialized
// through one of the constructor functions. This error is returned when
// validating a zero-value UserID.
var ErrUserIDIsNotConstructed = errs.NewValueIsRequiredError(
	"UserID must be created via NewUserID or UserIDFromString",
)

// UserID is a value object that represents the stable identity of a participant.
// Identities are assigned by the external identity source, not generated here,
// so the constructor only checks that the value is a positive integer.
//
// The zero value of UserID is invalid and must be constructed using NewUserID
// or UserIDFromString.
//
// UserID is immutable, comparable, and safe for concurrent use.
//
// Example usage:
//
//	workerID, err := kernel.NewUserID(1019797279)
//	if err != nil {
//	    // handle error
//	}
//	fmt.Println(workerID.String()) // "1019797279"
type UserID struct {
	id int64
}

// NewUserID wraps an externally assigned identity value.
// Returns an error if the value is not positive.
func NewUserID(id int64) (UserID, error) {
	if id <= 0 {
		return UserID{}, errs.NewValueIsInvalidErrorWithCause(
			"user id", fmt.Errorf("%d is not a positive identifier", id))
	}
	return UserID{id: id}, nil
}

// UserIDFromString parses a UserID from its decimal string representation.
// This is typically used when reconstructing identities from route parameters
// or inbound claim actions.
func UserIDFromString(s string) (UserID, error) {
	raw, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return UserID{}, errs.NewValueIsInvalidErrorWithCause("user id", err)
	}
	return NewUserID(raw)
}

// Int64 returns the underlying identity value.
func (u UserID) Int64() int64 {
	return u.id
}

// String returns the decimal string representation of the identity.
func (u UserID) String() string {
	return strconv.FormatInt(u.id, 10)
}

// IsEqual compares two identities for equality.
func (u UserID) IsEqual(other UserID) bool {
	return u.id == other.id
}

// Validate checks if the UserID is properly constructed.
// Returns ErrUserIDIsNotConstructed for the zero value.
func (u UserID) Validate() error {
	if u.id == 0 {
		return ErrUserIDIsNotConstructed
	}
	return nil
}
