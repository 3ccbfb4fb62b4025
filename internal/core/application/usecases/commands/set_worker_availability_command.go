package commands

import (
	"errors"

	"tradematch/internal/core/domain/model/kernel"
	"tradematch/internal/core/domain/model/worker"
	"tradematch/internal/pkg/guard"
)

var ErrSetWorkerAvailabilityCommandIsNotConstructed = errors.New(
	"SetWorkerAvailabilityCommand must be created via NewSetWorkerAvailabilityCommand constructor",
)

// SetWorkerAvailabilityCommand represents a worker's self-reported Free/Busy update.
type SetWorkerAvailabilityCommand struct { //nolint:recvcheck //using for validation
	workerID     kernel.UserID
	availability worker.Availability

	guard guard.ConstructorGuard
}

// NewSetWorkerAvailabilityCommand creates a command to record a worker's availability.
func NewSetWorkerAvailabilityCommand(
	workerID kernel.UserID,
	availability worker.Availability,
) (SetWorkerAvailabilityCommand, error) {
	if err := workerID.Validate(); err != nil {
		return SetWorkerAvailabilityCommand{}, err
	}
	if err := availability.Validate(); err != nil {
		return SetWorkerAvailabilityCommand{}, err
	}

	return SetWorkerAvailabilityCommand{
		workerID:     workerID,
		availability: availability,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c SetWorkerAvailabilityCommand) Validate() error {
	return c.guard.Validate(ErrSetWorkerAvailabilityCommandIsNotConstructed)
}

// WorkerID returns the worker's stable external identity.
func (c SetWorkerAvailabilityCommand) WorkerID() kernel.UserID {
	return c.workerID
}

// Availability returns the requested Free/Busy state.
func (c SetWorkerAvailabilityCommand) Availability() worker.Availability {
	return c.availability
}
