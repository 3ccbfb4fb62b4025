package commands

import (
	"context"

	"tradematch/internal/core/domain/model/worker"
)

// RegisterWorkerCommandHandler handles worker registration and re-registration.
// Registration is an idempotent upsert: the repository inserts a new worker or
// replaces the profile fields of an existing one, preserving its availability
// and active flag.
//
// Example:
//
//	handler := NewRegisterWorkerCommandHandler(uowFactory)
//	cmd, _ := NewRegisterWorkerCommand(workerID, "Alisher", phone, "Plumber", "North")
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("registration failed: %w", err)
//	}
type RegisterWorkerCommandHandler struct {
	uowFactory WorkerUoWFactory
}

// NewRegisterWorkerCommandHandler creates a handler for worker registration.
// Requires a WorkerUoWFactory for transactional persistence.
func NewRegisterWorkerCommandHandler(uowFactory WorkerUoWFactory) RegisterWorkerCommandHandler {
	return RegisterWorkerCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the registration command.
// Builds the aggregate (enforcing the field rules) and upserts it within a
// transaction.
func (h RegisterWorkerCommandHandler) Handle(ctx context.Context, cmd RegisterWorkerCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	w, err := worker.NewWorker(cmd.WorkerID(), cmd.Name(), cmd.Phone(), cmd.Trade(), cmd.Region())
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.WorkerRepository().Upsert(ctx, w); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
