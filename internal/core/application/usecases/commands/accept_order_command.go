package commands

import (
	"errors"

	"tradematch/internal/core/domain/model/kernel"
	"tradematch/internal/pkg/errs"
	"tradematch/internal/pkg/guard"
)

var ErrAcceptOrderCommandIsNotConstructed = errors.New(
	"AcceptOrderCommand is not constructed correctly: use NewAcceptOrderCommand")

// AcceptOrderCommand is a worker's claim on an order. Many workers may race
// to claim the same order; the handler guarantees at most one wins.
type AcceptOrderCommand struct {
	guard guard.ConstructorGuard

	orderID  int64
	workerID kernel.UserID
}

// NewAcceptOrderCommand creates a validated AcceptOrderCommand.
func NewAcceptOrderCommand(orderID int64, workerID kernel.UserID) (AcceptOrderCommand, error) {
	if orderID <= 0 {
		return AcceptOrderCommand{}, errs.NewValueIsInvalidError("orderID")
	}
	if err := workerID.Validate(); err != nil {
		return AcceptOrderCommand{}, err
	}

	return AcceptOrderCommand{
		guard:    guard.NewConstructorGuard(),
		orderID:  orderID,
		workerID: workerID,
	}, nil
}

func (c AcceptOrderCommand) OrderID() int64 {
	return c.orderID
}

func (c AcceptOrderCommand) WorkerID() kernel.UserID {
	return c.workerID
}

func (c AcceptOrderCommand) Validate() error {
	return c.guard.Validate(ErrAcceptOrderCommandIsNotConstructed)
}
