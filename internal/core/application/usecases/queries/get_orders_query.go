package queries

import (
	"errors"
	"time"

	"tradematch/internal/core/domain/model/order"
	"tradematch/internal/pkg/errs"
	"tradematch/internal/pkg/guard"
)

var ErrGetOrdersQueryIsNotConstructed = errors.New(
	"GetOrdersQuery must be created via NewGetOrdersQuery constructor",
)

// GetOrdersQuery retrieves recent orders, optionally scoped to one requester.
// A zero requesterID means all requesters.
type GetOrdersQuery struct {
	guard guard.ConstructorGuard

	requesterID int64
	limit       int
}

// NewGetOrdersQuery creates a query for recent orders across all requesters.
func NewGetOrdersQuery(limit int) (GetOrdersQuery, error) {
	if limit <= 0 {
		return GetOrdersQuery{}, errs.NewValueIsInvalidError("limit")
	}

	return GetOrdersQuery{
		guard: guard.NewConstructorGuard(),
		limit: limit,
	}, nil
}

// NewGetOrdersForRequesterQuery creates a query for one requester's recent orders.
func NewGetOrdersForRequesterQuery(requesterID int64, limit int) (GetOrdersQuery, error) {
	if requesterID <= 0 {
		return GetOrdersQuery{}, errs.NewValueIsInvalidError("requesterID")
	}

	q, err := NewGetOrdersQuery(limit)
	if err != nil {
		return GetOrdersQuery{}, err
	}

	q.requesterID = requesterID
	return q, nil
}

func (q GetOrdersQuery) RequesterID() int64 {
	return q.requesterID
}

func (q GetOrdersQuery) Limit() int {
	return q.limit
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetOrdersQueryIsNotConstructed if validation fails.
func (q GetOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetOrdersQueryIsNotConstructed)
}

// GetOrdersQueryResponse represents order information in the read model.
// AcceptedBy and AcceptedAt are nil while the order is still unclaimed.
type GetOrdersQueryResponse struct {
	ID          int64
	RequesterID int64
	Trade       string
	Region      string
	Comment     string
	Status      order.Status
	AcceptedBy  *int64
	AcceptedAt  *time.Time
	CreatedAt   time.Time
}
