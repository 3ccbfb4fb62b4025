package queries

import (
	"context"
	"database/sql"
	"errors"

	"tradematch/internal/core/domain/model/worker"
	"tradematch/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetWorkerQueryHandler retrieves one worker from the database.
type GetWorkerQueryHandler struct {
	db *gorm.DB
}

// NewGetWorkerQueryHandler creates a handler for single-worker queries.
// Requires a GORM database connection for query execution.
func NewGetWorkerQueryHandler(db *gorm.DB) GetWorkerQueryHandler {
	return GetWorkerQueryHandler{db: db}
}

// Handle executes the query.
// Returns an ObjectNotFoundError if the worker is not registered.
func (h GetWorkerQueryHandler) Handle(
	ctx context.Context,
	query GetWorkerQuery,
) (GetWorkersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetWorkersQueryResponse{}, err
	}

	var w GetWorkersQueryResponse
	var availability int16

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			phone,
			trade,
			region,
			availability,
			active,
			updated_at
		FROM workers
		WHERE id = ?
	`, query.WorkerID()).Row()

	err := row.Scan(
		&w.ID,
		&w.Name,
		&w.Phone,
		&w.Trade,
		&w.Region,
		&availability,
		&w.Active,
		&w.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return GetWorkersQueryResponse{}, errs.NewObjectNotFoundError("worker", query.WorkerID())
	}
	if err != nil {
		return GetWorkersQueryResponse{}, err
	}

	w.Availability = worker.Availability(availability)
	return w, nil
}
