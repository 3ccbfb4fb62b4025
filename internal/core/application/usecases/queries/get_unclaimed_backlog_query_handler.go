package queries

import (
	"context"

	"tradematch/internal/core/domain/model/order"

	"gorm.io/gorm"
)

// GetUnclaimedBacklogQueryHandler summarizes unclaimed orders for reporting.
// Strictly read-only: orders never expire or get swept, the backlog report
// just makes a growing pile visible.
type GetUnclaimedBacklogQueryHandler struct {
	db *gorm.DB
}

// NewGetUnclaimedBacklogQueryHandler creates a handler for backlog summaries.
// Requires a GORM database connection for query execution.
func NewGetUnclaimedBacklogQueryHandler(db *gorm.DB) GetUnclaimedBacklogQueryHandler {
	return GetUnclaimedBacklogQueryHandler{db: db}
}

// Handle executes the backlog summary query.
func (h GetUnclaimedBacklogQueryHandler) Handle(
	ctx context.Context,
	query GetUnclaimedBacklogQuery,
) (GetUnclaimedBacklogQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetUnclaimedBacklogQueryResponse{}, err
	}

	var response GetUnclaimedBacklogQueryResponse

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			COUNT(*),
			MIN(created_at)
		FROM orders
		WHERE status = ?
	`, order.New).Row()

	if err := row.Scan(&response.Count, &response.OldestCreatedAt); err != nil {
		return GetUnclaimedBacklogQueryResponse{}, err
	}

	return response, nil
}
