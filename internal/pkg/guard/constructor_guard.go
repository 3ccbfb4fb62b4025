// Package guard implements the constructor-guard pattern used by commands and
// value objects to ensure instances are only created through their designated
// constructor functions, never as bare zero values.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when a nil error is passed
// as the validation error, so validation always fails with a meaningful message.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard detects whether a struct was created through its constructor.
// The guard holds an internal flag that is only set by NewConstructorGuard;
// a zero-value struct therefore fails Validate.
//
// Example usage:
//
//	type RegisterWorkerCommand struct {
//	    workerID kernel.UserID
//	    guard    guard.ConstructorGuard
//	}
//
//	func NewRegisterWorkerCommand(id kernel.UserID) (RegisterWorkerCommand, error) {
//	    return RegisterWorkerCommand{workerID: id, guard: guard.NewConstructorGuard()}, nil
//	}
//
//	func (c RegisterWorkerCommand) Validate() error {
//	    return c.guard.Validate(ErrRegisterWorkerCommandIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard creates a guard that marks an object as properly constructed.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil if the guarded object was properly constructed.
// Otherwise it returns validationError, or ErrDefaultConstructorGuard when
// validationError is nil.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
