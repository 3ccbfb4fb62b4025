package queries

import (
	"context"

	"tradematch/internal/core/domain/model/worker"

	"gorm.io/gorm"
)

// GetWorkersQueryHandler retrieves worker roster information from the database.
// Uses direct SQL queries for optimal read performance in the CQRS pattern.
type GetWorkersQueryHandler struct {
	db *gorm.DB
}

// NewGetWorkersQueryHandler creates a handler for worker roster queries.
// Requires a GORM database connection for query execution.
func NewGetWorkersQueryHandler(db *gorm.DB) GetWorkersQueryHandler {
	return GetWorkersQueryHandler{db: db}
}

// Handle executes the query to retrieve the worker roster.
// Returns worker read models, most recently updated first.
func (h GetWorkersQueryHandler) Handle(
	ctx context.Context,
	query GetWorkersQuery,
) ([]GetWorkersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	workers := make([]GetWorkersQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
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
		ORDER BY updated_at DESC, id DESC
		LIMIT ?
	`, query.Limit()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var w GetWorkersQueryResponse
		var availability int16

		err = rows.Scan(
			&w.ID,
			&w.Name,
			&w.Phone,
			&w.Trade,
			&w.Region,
			&availability,
			&w.Active,
			&w.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}

		w.Availability = worker.Availability(availability)
		workers = append(workers, w)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return workers, nil
}
