package queries

import (
	"errors"

	"tradematch/internal/pkg/errs"
	"tradematch/internal/pkg/guard"
)

var ErrGetOrderQueryIsNotConstructed = errors.New(
	"GetOrderQuery must be created via NewGetOrderQuery constructor",
)

// GetOrderQuery retrieves one order by its id.
type GetOrderQuery struct {
	guard guard.ConstructorGuard

	orderID int64
}

// NewGetOrderQuery creates a validated GetOrderQuery.
func NewGetOrderQuery(orderID int64) (GetOrderQuery, error) {
	if orderID <= 0 {
		return GetOrderQuery{}, errs.NewValueIsInvalidError("orderID")
	}

	return GetOrderQuery{
		guard:   guard.NewConstructorGuard(),
		orderID: orderID,
	}, nil
}

func (q GetOrderQuery) OrderID() int64 {
	return q.orderID
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetOrderQueryIsNotConstructed if validation fails.
func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}
