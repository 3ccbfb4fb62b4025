// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries return optimized read models for specific use cases.
package queries

import (
	"errors"
	"time"

	"tradematch/internal/core/domain/model/worker"
	"tradematch/internal/pkg/errs"
	"tradematch/internal/pkg/guard"
)

var ErrGetWorkersQueryIsNotConstructed = errors.New(
	"GetWorkersQuery must be created via NewGetWorkersQuery constructor",
)

// GetWorkersQuery retrieves the most recently updated workers.
//
// Example:
//
//	query, _ := NewGetWorkersQuery(50)
//	handler := NewGetWorkersQueryHandler(db)
//
//	workers, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to retrieve workers: %w", err)
//	}
type GetWorkersQuery struct {
	guard guard.ConstructorGuard

	limit int
}

// NewGetWorkersQuery creates a query for the worker roster, capped at limit.
func NewGetWorkersQuery(limit int) (GetWorkersQuery, error) {
	if limit <= 0 {
		return GetWorkersQuery{}, errs.NewValueIsInvalidError("limit")
	}

	return GetWorkersQuery{
		guard: guard.NewConstructorGuard(),
		limit: limit,
	}, nil
}

func (q GetWorkersQuery) Limit() int {
	return q.limit
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetWorkersQueryIsNotConstructed if validation fails.
func (q GetWorkersQuery) Validate() error {
	return q.guard.Validate(ErrGetWorkersQueryIsNotConstructed)
}

// GetWorkersQueryResponse represents worker information in the read model.
type GetWorkersQueryResponse struct {
	ID           int64
	Name         string
	Phone        string
	Trade        string
	Region       string
	Availability worker.Availability
	Active       bool
	UpdatedAt    time.Time
}
