package commands

import (
	"context"
	"errors"

	"tradematch/internal/pkg/errs"
)

// SetWorkerActiveCommandHandler activates or deactivates a worker profile.
type SetWorkerActiveCommandHandler struct {
	uowFactory WorkerUoWFactory
}

// NewSetWorkerActiveCommandHandler creates a handler for activation changes.
func NewSetWorkerActiveCommandHandler(uowFactory WorkerUoWFactory) SetWorkerActiveCommandHandler {
	return SetWorkerActiveCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle loads the worker, applies the activation flag, and persists it.
// Returns ErrWorkerNotRegistered if the identity has no profile.
func (h SetWorkerActiveCommandHandler) Handle(ctx context.Context, cmd SetWorkerActiveCommand) error {
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

	w.SetActive(cmd.Active())

	if err = repo.Update(ctx, w); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
