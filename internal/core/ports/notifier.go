package ports

import (
	"context"

	"tradematch/internal/core/domain/model/kernel"
)

// Notification is the payload delivered to a participant over the
// notification channel. Text carries the rendered human-readable message;
// OrderID and ClaimToken are set only on order broadcasts, where they form
// the claim affordance the recipient's client echoes back.
type Notification struct {
	Text       string
	OrderID    int64
	ClaimToken string
}

// Notifier is the outbound notification channel capability.
//
// Delivery is best-effort and at-most-once per call: implementations return
// an error on failure but must not retry. Callers are responsible for fault
// isolation between recipients.
type Notifier interface {
	Notify(ctx context.Context, recipient kernel.UserID, notification Notification) error
}
