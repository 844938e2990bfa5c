package ports

import (
	"context"

	"universestore/internal/core/domain/model/kernel"
)

// NotificationKind selects which of the three fixed message templates a
// notification uses.
type NotificationKind string

const (
	// NotificationReceived announces that the order was accepted.
	NotificationReceived NotificationKind = "received"

	// NotificationShipped announces that cosmic delivery has started.
	NotificationShipped NotificationKind = "shipped"

	// NotificationDelivered announces arrival in the customer's timeline.
	NotificationDelivered NotificationKind = "delivered"
)

// NotificationSender dispatches a stage-keyed message to the configured
// messaging sink. Sends are fire-and-forget: one best-effort attempt, no
// retry, no queuing. The returned error exists for observability only —
// callers log it but must never let it fail the surrounding operation.
type NotificationSender interface {
	Send(ctx context.Context, kind NotificationKind, number kernel.OrderNumber, item string) error
}
