package queries

import (
	"context"
	"database/sql"
	"errors"

	"tradematch/internal/core/domain/model/order"
	"tradematch/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetOrderQueryHandler retrieves one order from the database.
type GetOrderQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderQueryHandler creates a handler for single-order queries.
// Requires a GORM database connection for query execution.
func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db}
}

// Handle executes the query.
// Returns an ObjectNotFoundError if the order does not exist.
func (h GetOrderQueryHandler) Handle(
	ctx context.Context,
	query GetOrderQuery,
) (GetOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrdersQueryResponse{}, err
	}

	var o GetOrdersQueryResponse
	var status int16

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			requester_id,
			trade,
			region,
			comment,
			status,
			accepted_by,
			accepted_at,
			created_at
		FROM orders
		WHERE id = ?
	`, query.OrderID()).Row()

	err := row.Scan(
		&o.ID,
		&o.RequesterID,
		&o.Trade,
		&o.Region,
		&o.Comment,
		&status,
		&o.AcceptedBy,
		&o.AcceptedAt,
		&o.CreatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return GetOrdersQueryResponse{}, errs.NewObjectNotFoundError("order", query.OrderID())
	}
	if err != nil {
		return GetOrdersQueryResponse{}, err
	}

	o.Status = order.Status(status)
	return o, nil
}
