package commands

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"tradematch/internal/core/domain/model/kernel"
	"tradematch/internal/core/domain/model/order"
	"tradematch/internal/core/domain/model/worker"
	"tradematch/internal/core/ports"
	"tradematch/internal/pkg/errs"
	"tradematch/internal/pkg/metrics"
)

// Dispatcher fans an order announcement out to candidate workers and reports
// claim outcomes back to the parties. Delivery is best effort: a failed send
// is logged and counted, never propagated, so one unreachable recipient does
// not block the rest.
type Dispatcher struct {
	notifier ports.Notifier
	logger   *slog.Logger
}

// NewDispatcher creates a Dispatcher over the given notifier.
func NewDispatcher(notifier ports.Notifier, logger *slog.Logger) (*Dispatcher, error) {
	if notifier == nil {
		return nil, errs.NewValueIsRequiredError("notifier")
	}
	if logger == nil {
		return nil, errs.NewValueIsRequiredError("logger")
	}

	return &Dispatcher{
		notifier: notifier,
		logger:   logger,
	}, nil
}

// Broadcast announces a new order to every candidate concurrently and returns
// how many notifications were actually delivered. Each candidate gets a fresh
// claim token so duplicated announcements are distinguishable downstream.
func (d *Dispatcher) Broadcast(ctx context.Context, o *order.Order, candidates []*worker.Worker) int {
	if len(candidates) == 0 {
		return 0
	}

	text := fmt.Sprintf("New order #%d in %s: %s. Requester contact: %s",
		o.ID(), o.Region(), o.Trade(), o.Contact())
	if comment := o.Comment(); comment != "" {
		text += ". " + comment
	}

	delivered := make(chan struct{}, len(candidates))

	g, gctx := errgroup.WithContext(ctx)
	for _, candidate := range candidates {
		g.Go(func() error {
			notification := ports.Notification{
				Text:       text,
				OrderID:    o.ID(),
				ClaimToken: uuid.NewString(),
			}

			if err := d.notifier.Notify(gctx, candidate.ID(), notification); err != nil {
				d.logger.Warn("order announcement failed",
					slog.Int64("order_id", o.ID()),
					slog.String("worker_id", candidate.ID().String()),
					slog.Any("error", err))
				metrics.NotificationsTotal.WithLabelValues("failed").Inc()
				return nil
			}

			metrics.NotificationsTotal.WithLabelValues("delivered").Inc()
			delivered <- struct{}{}
			return nil
		})
	}

	_ = g.Wait()
	close(delivered)

	return len(delivered)
}

// NotifyOutcome tells the winning worker the requester's contact and tells the
// requester who accepted. Both sends are best effort.
func (d *Dispatcher) NotifyOutcome(ctx context.Context, o *order.Order, winner *worker.Worker) {
	winnerText := fmt.Sprintf("You won order #%d (%s, %s). Requester contact: %s",
		o.ID(), o.Trade(), o.Region(), o.Contact())
	d.send(ctx, winner.ID(), ports.Notification{Text: winnerText, OrderID: o.ID()})

	requesterText := fmt.Sprintf("Order #%d was accepted by %s (%s, %s). Phone: %s",
		o.ID(), winner.Name(), winner.Trade(), winner.Region(), winner.Phone().String())
	d.send(ctx, o.RequesterID(), ports.Notification{Text: requesterText, OrderID: o.ID()})
}

func (d *Dispatcher) send(ctx context.Context, recipient kernel.UserID, notification ports.Notification) {
	if err := d.notifier.Notify(ctx, recipient, notification); err != nil {
		d.logger.Warn("outcome notification failed",
			slog.Int64("order_id", notification.OrderID),
			slog.String("recipient", recipient.String()),
			slog.Any("error", err))
		metrics.NotificationsTotal.WithLabelValues("failed").Inc()
		return
	}

	metrics.NotificationsTotal.WithLabelValues("delivered").Inc()
}
