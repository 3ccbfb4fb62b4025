// Package ports defines the contracts between the core and infrastructure.
// These interfaces establish dependency inversion boundaries: the core owns
// the contracts, the adapters implement them.
package ports

import (
	"context"

	"tradematch/internal/core/domain/model/kernel"
	"tradematch/internal/core/domain/model/worker"
)

// WorkerRepository defines the persistence contract for worker aggregates.
type WorkerRepository interface {
	// Upsert inserts a new worker or replaces the profile fields of an
	// existing one identified by the same id. Availability and the active
	// flag of an existing worker are preserved. Idempotent.
	Upsert(ctx context.Context, aggregate *worker.Worker) error

	// Update persists changes to an existing worker aggregate.
	// Returns an ObjectNotFoundError if the worker does not exist.
	Update(ctx context.Context, aggregate *worker.Worker) error

	// Get retrieves a worker by its stable external identity.
	// Returns an ObjectNotFoundError if the worker is not registered.
	Get(ctx context.Context, id kernel.UserID) (*worker.Worker, error)

	// GetAllActive retrieves all workers currently eligible for matching.
	// Inactive workers are never returned.
	GetAllActive(ctx context.Context) ([]*worker.Worker, error)
}
