package queries

import (
	"errors"
	"time"

	"tradematch/internal/pkg/guard"
)

var ErrGetUnclaimedBacklogQueryIsNotConstructed = errors.New(
	"GetUnclaimedBacklogQuery must be created via NewGetUnclaimedBacklogQuery constructor",
)

// GetUnclaimedBacklogQuery summarizes the orders no worker has claimed yet.
// This is a parameterless query used for periodic operational reporting.
type GetUnclaimedBacklogQuery struct {
	guard guard.ConstructorGuard
}

// NewGetUnclaimedBacklogQuery creates a query for the unclaimed backlog summary.
func NewGetUnclaimedBacklogQuery() GetUnclaimedBacklogQuery {
	return GetUnclaimedBacklogQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetUnclaimedBacklogQueryIsNotConstructed if validation fails.
func (q GetUnclaimedBacklogQuery) Validate() error {
	return q.guard.Validate(ErrGetUnclaimedBacklogQueryIsNotConstructed)
}

// GetUnclaimedBacklogQueryResponse summarizes the unclaimed backlog.
// OldestCreatedAt is nil when the backlog is empty.
type GetUnclaimedBacklogQueryResponse struct {
	Count           int64
	OldestCreatedAt *time.Time
}
