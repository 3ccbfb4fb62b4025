package queries

import (
	"errors"

	"tradematch/internal/pkg/errs"
	"tradematch/internal/pkg/guard"
)

var ErrGetWorkerQueryIsNotConstructed = errors.New(
	"GetWorkerQuery must be created via NewGetWorkerQuery constructor",
)

// GetWorkerQuery retrieves one worker by its identity.
type GetWorkerQuery struct {
	guard guard.ConstructorGuard

	workerID int64
}

// NewGetWorkerQuery creates a validated GetWorkerQuery.
func NewGetWorkerQuery(workerID int64) (GetWorkerQuery, error) {
	if workerID <= 0 {
		return GetWorkerQuery{}, errs.NewValueIsInvalidError("workerID")
	}

	return GetWorkerQuery{
		guard:    guard.NewConstructorGuard(),
		workerID: workerID,
	}, nil
}

func (q GetWorkerQuery) WorkerID() int64 {
	return q.workerID
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetWorkerQueryIsNotConstructed if validation fails.
func (q GetWorkerQuery) Validate() error {
	return q.guard.Validate(ErrGetWorkerQueryIsNotConstructed)
}
