package ports

import (
	"context"
	"time"

	"tradematch/internal/core/domain/model/kernel"
	"tradematch/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
type OrderRepository interface {
	// Add persists a new order and assigns its monotonic surrogate key into
	// the aggregate before returning. The id is durable once Add returns, so
	// a claim can never reference a not-yet-stored order.
	Add(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order by its surrogate key.
	// Returns an ObjectNotFoundError if the order does not exist.
	Get(ctx context.Context, id int64) (*order.Order, error)

	// Accept performs the atomic conditional claim transition: it sets
	// status=Accepted, acceptedBy and acceptedAt in a single conditional
	// write that only applies while the order is still New.
	//
	// Returns (true, nil) when this call won the order, (false, nil) when the
	// conditional write affected no rows (already accepted, or no such
	// order), and a non-nil error only for storage failures. Implementations
	// must never realize this as a separate read followed by a write.
	Accept(ctx context.Context, orderID int64, workerID kernel.UserID, at time.Time) (bool, error)
}
