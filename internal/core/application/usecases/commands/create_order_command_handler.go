package commands

import (
	"context"

	"tradematch/internal/core/domain/model/order"
	"tradematch/internal/core/domain/model/worker"
	"tradematch/internal/core/domain/services"
	"tradematch/internal/pkg/errs"
	"tradematch/internal/pkg/metrics"
)

// CreateOrderResult reports what happened to a freshly created order: the
// persisted aggregate, the candidates the matcher selected, and how many of
// them the announcement actually reached.
type CreateOrderResult struct {
	Order      *order.Order
	Candidates []*worker.Worker
	Delivered  int
}

// CreateOrderCommandHandler persists a new order and announces it to matching
// workers. Persistence and announcement are deliberately decoupled: the order
// commits first, then the fan-out runs outside the transaction, so a slow or
// failing notification channel can never roll back a stored order.
type CreateOrderCommandHandler struct {
	uowFactory     UoWFactory
	matcher        services.Matcher
	dispatcher     *Dispatcher
	candidateLimit int
}

// NewCreateOrderCommandHandler creates a handler for order creation.
func NewCreateOrderCommandHandler(
	uowFactory UoWFactory,
	matcher services.Matcher,
	dispatcher *Dispatcher,
	candidateLimit int,
) (CreateOrderCommandHandler, error) {
	if uowFactory == nil {
		return CreateOrderCommandHandler{}, errs.NewValueIsRequiredError("uowFactory")
	}
	if dispatcher == nil {
		return CreateOrderCommandHandler{}, errs.NewValueIsRequiredError("dispatcher")
	}
	if candidateLimit <= 0 {
		return CreateOrderCommandHandler{}, errs.NewValueIsInvalidError("candidateLimit")
	}

	return CreateOrderCommandHandler{
		uowFactory:     uowFactory,
		matcher:        matcher,
		dispatcher:     dispatcher,
		candidateLimit: candidateLimit,
	}, nil
}

// Handle stores the order and broadcasts it to candidates.
// A match with zero candidates is a success: the order stays stored and
// claimable, the result just reports an empty fan-out.
func (h CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (CreateOrderResult, error) {
	if err := cmd.Validate(); err != nil {
		return CreateOrderResult{}, err
	}

	o, err := order.NewOrder(cmd.RequesterID(), cmd.Trade(), cmd.Region(), cmd.Contact(), cmd.Comment())
	if err != nil {
		return CreateOrderResult{}, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return CreateOrderResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.OrderRepository().Add(ctx, o); err != nil {
		return CreateOrderResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return CreateOrderResult{}, err
	}

	metrics.OrdersCreatedTotal.Inc()

	// Read outside any transaction: the order is durable, candidate
	// selection works off a point-in-time snapshot of the pool.
	workers, err := h.uowFactory.Create().WorkerRepository().GetAllActive(ctx)
	if err != nil {
		return CreateOrderResult{}, err
	}

	candidates, err := h.matcher.FindCandidates(o, workers, h.candidateLimit)
	if err != nil {
		return CreateOrderResult{}, err
	}

	delivered := h.dispatcher.Broadcast(ctx, o, candidates)

	return CreateOrderResult{
		Order:      o,
		Candidates: candidates,
		Delivered:  delivered,
	}, nil
}
