package commands

import (
	"errors"

	"tradematch/internal/core/domain/model/kernel"
	"tradematch/internal/pkg/guard"
)

var ErrSetWorkerActiveCommandIsNotConstructed = errors.New(
	"SetWorkerActiveCommand is not constructed correctly: use NewSetWorkerActiveCommand")

// SetWorkerActiveCommand toggles a worker's eligibility for matching.
// Deactivated workers keep their profile but never appear in candidate lists.
type SetWorkerActiveCommand struct {
	guard guard.ConstructorGuard

	workerID kernel.UserID
	active   bool
}

// NewSetWorkerActiveCommand creates a validated SetWorkerActiveCommand.
func NewSetWorkerActiveCommand(workerID kernel.UserID, active bool) (SetWorkerActiveCommand, error) {
	if err := workerID.Validate(); err != nil {
		return SetWorkerActiveCommand{}, err
	}

	return SetWorkerActiveCommand{
		guard:    guard.NewConstructorGuard(),
		workerID: workerID,
		active:   active,
	}, nil
}

func (c SetWorkerActiveCommand) WorkerID() kernel.UserID {
	return c.workerID
}

func (c SetWorkerActiveCommand) Active() bool {
	return c.active
}

func (c SetWorkerActiveCommand) Validate() error {
	return c.guard.Validate(ErrSetWorkerActiveCommandIsNotConstructed)
}
