package commands

import (
	"context"
	"errors"

	"tradematch/internal/pkg/errs"
)

// ErrWorkerNotRegistered is returned when an operation references an identity
// that has no worker profile. Callers surface it as a "register first"
// outcome, never a crash.
var ErrWorkerNotRegistered = errors.New("worker is not registered")

// SetWorkerAvailabilityCommandHandler records a worker's Free/Busy state.
//
// Example:
//
//	handler := NewSetWorkerAvailabilityCommandHandler(uowFactory)
//	cmd, _ := NewSetWorkerAvailabilityCommand(workerID, worker.Busy)
//	err := handler.Handle(ctx, cmd)
//	if errors.Is(err, ErrWorkerNotRegistered) {
//	    // ask the caller to register first
//	}
type SetWorkerAvailabilityCommandHandler struct {
	uowFactory WorkerUoWFactory
}

// NewSetWorkerAvailabilityCommandHandler creates a handler for availability updates.
func NewSetWorkerAvailabilityCommandHandler(uowFactory WorkerUoWFactory) SetWorkerAvailabilityCommandHandler {
	return SetWorkerAvailabilityCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle loads the worker, applies the availability change, and persists it.
// Returns ErrWorkerNotRegistered if the identity has no profile.
func (h SetWorkerAvailabilityCommandHandler) Handle(ctx context.Context, cmd SetWorkerAvailabilityCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.WorkerRepository()

	w, err := repo.Get(ctx, cmd.WorkerID())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return ErrWorkerNotRegistered
	}
	if err != nil {
		return err
	}

	if err = w.SetAvailability(cmd.Availability()); err != nil {
		return err
	}

	if err = repo.Update(ctx, w); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
