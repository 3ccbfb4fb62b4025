package commands

import (
	"context"
	"errors"
	"time"

	"tradematch/internal/core/domain/model/order"
	"tradematch/internal/core/domain/model/worker"
	"tradematch/internal/pkg/errs"
	"tradematch/internal/pkg/metrics"
)

var (
	// ErrOrderAlreadyAccepted is returned when the order was claimed by
	// someone else before this claim landed.
	ErrOrderAlreadyAccepted = errors.New("order is already accepted")

	// ErrOrderNotFound is returned when the claim references an order that
	// does not exist.
	ErrOrderNotFound = errors.New("order not found")
)

// AcceptOrderResult reports a won claim: the accepted order and the worker it
// was awarded to.
type AcceptOrderResult struct {
	Order  *order.Order
	Winner *worker.Worker
}

// AcceptOrderCommandHandler resolves claim races. The decision is a single
// conditional write inside the storage layer, so under any number of
// concurrent claims exactly one caller gets the award and every other caller
// gets ErrOrderAlreadyAccepted. A repeated claim by the winner is not
// special-cased: the order is no longer New, so it reports already accepted.
type AcceptOrderCommandHandler struct {
	uowFactory UoWFactory
	dispatcher *Dispatcher
}

// NewAcceptOrderCommandHandler creates a handler for claim resolution.
func NewAcceptOrderCommandHandler(uowFactory UoWFactory, dispatcher *Dispatcher) (AcceptOrderCommandHandler, error) {
	if uowFactory == nil {
		return AcceptOrderCommandHandler{}, errs.NewValueIsRequiredError("uowFactory")
	}
	if dispatcher == nil {
		return AcceptOrderCommandHandler{}, errs.NewValueIsRequiredError("dispatcher")
	}

	return AcceptOrderCommandHandler{
		uowFactory: uowFactory,
		dispatcher: dispatcher,
	}, nil
}

// Handle attempts the claim.
//
// Outcomes:
//   - nil error with a populated result: the claim won
//   - ErrWorkerNotRegistered: the claimant has no profile; the order is untouched
//   - ErrOrderAlreadyAccepted: someone won first
//   - ErrOrderNotFound: no such order
//
// On a win the requester's contact goes to the winner and the requester
// learns who accepted, both outside the transaction and best effort.
func (h AcceptOrderCommandHandler) Handle(ctx context.Context, cmd AcceptOrderCommand) (AcceptOrderResult, error) {
	if err := cmd.Validate(); err != nil {
		return AcceptOrderResult{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return AcceptOrderResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	w, err := uow.WorkerRepository().Get(ctx, cmd.WorkerID())
	if errors.Is(err, errs.ErrObjectNotFound) {
		metrics.ClaimsTotal.WithLabelValues(metrics.ClaimWorkerUnknown).Inc()
		return AcceptOrderResult{}, ErrWorkerNotRegistered
	}
	if err != nil {
		return AcceptOrderResult{}, err
	}

	orders := uow.OrderRepository()

	won, err := orders.Accept(ctx, cmd.OrderID(), cmd.WorkerID(), time.Now().UTC())
	if err != nil {
		return AcceptOrderResult{}, err
	}

	if !won {
		// The conditional write affected nothing. Look at the order to tell
		// a lost race from a claim on a nonexistent order.
		if _, err = orders.Get(ctx, cmd.OrderID()); errors.Is(err, errs.ErrObjectNotFound) {
			metrics.ClaimsTotal.WithLabelValues(metrics.ClaimOrderNotFound).Inc()
			return AcceptOrderResult{}, ErrOrderNotFound
		}
		if err != nil {
			return AcceptOrderResult{}, err
		}

		metrics.ClaimsTotal.WithLabelValues(metrics.ClaimAlreadyAccepted).Inc()
		return AcceptOrderResult{}, ErrOrderAlreadyAccepted
	}

	o, err := orders.Get(ctx, cmd.OrderID())
	if err != nil {
		return AcceptOrderResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return AcceptOrderResult{}, err
	}

	metrics.ClaimsTotal.WithLabelValues(metrics.ClaimAwarded).Inc()

	h.dispatcher.NotifyOutcome(ctx, o, w)

	return AcceptOrderResult{
		Order:  o,
		Winner: w,
	}, nil
}
