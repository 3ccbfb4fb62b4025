package queries

import (
	"context"

	"tradematch/internal/core/domain/model/order"

	"gorm.io/gorm"
)

// GetOrdersQueryHandler retrieves order history from the database.
// Uses direct SQL queries for optimal read performance in the CQRS pattern.
// The requester's contact is deliberately absent from the read model: it is
// only ever revealed to the winning worker through the outcome notification.
type GetOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetOrdersQueryHandler creates a handler for order history queries.
// Requires a GORM database connection for query execution.
func NewGetOrdersQueryHandler(db *gorm.DB) GetOrdersQueryHandler {
	return GetOrdersQueryHandler{db: db}
}

// Handle executes the query to retrieve recent orders, newest id first.
func (h GetOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetOrdersQuery,
) ([]GetOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders := make([]GetOrdersQueryResponse, 0)

	sql := `
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
	`
	args := make([]any, 0, 2)
	if query.RequesterID() != 0 {
		sql += ` WHERE requester_id = ?`
		args = append(args, query.RequesterID())
	}
	sql += ` ORDER BY id DESC LIMIT ?`
	args = append(args, query.Limit())

	rows, err := h.db.WithContext(ctx).Raw(sql, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var o GetOrdersQueryResponse
		var status int16

		err = rows.Scan(
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
		if err != nil {
			return nil, err
		}

		o.Status = order.Status(status)
		orders = append(orders, o)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
