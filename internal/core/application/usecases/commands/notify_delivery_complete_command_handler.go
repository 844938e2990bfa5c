package commands

import (
	"context"
	"errors"
	"log/slog"

	"universestore/internal/core/domain/model/kernel"
	"universestore/internal/core/domain/services"
	"universestore/internal/core/ports"
)

// ErrOrderNotYetDelivered is returned when delivery completion is announced
// for an order whose computed progress has not reached 100%.
var ErrOrderNotYetDelivered = errors.New("order has not yet reached the delivered stage")

// NotifyDeliveryCompleteCommandHandler announces delivery completion for an
// order that has reached 100% progress.
//
// The handler keeps no de-duplication state: every call resends the delivered
// notification. Callers are expected to invoke it at most once per order, but
// nothing enforces that — the dispatch is idempotent at the sink's level of
// tolerance, not guaranteed-once.
type NotifyDeliveryCompleteCommandHandler struct {
	orders        ports.OrderRepository
	notifications ports.NotificationSender
	calculator    services.ProgressCalculator
	clock         kernel.Clock
	logger        *slog.Logger
}

// NewNotifyDeliveryCompleteCommandHandler creates a handler for delivery
// completion announcements.
func NewNotifyDeliveryCompleteCommandHandler(
	orders ports.OrderRepository,
	notifications ports.NotificationSender,
	calculator services.ProgressCalculator,
	clock kernel.Clock,
	logger *slog.Logger,
) NotifyDeliveryCompleteCommandHandler {
	return NotifyDeliveryCompleteCommandHandler{
		orders:        orders,
		notifications: notifications,
		calculator:    calculator,
		clock:         clock,
		logger:        logger.With("component", "notify_delivery_complete_handler"),
	}
}

// Handle verifies the order exists and has reached 100% progress, then sends
// the delivered notification. A transport failure is logged and swallowed;
// an unknown order or an undelivered order is an error.
func (h *NotifyDeliveryCompleteCommandHandler) Handle(ctx context.Context, cmd NotifyDeliveryCompleteCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	o, err := h.orders.Get(ctx, cmd.OrderNumber())
	if err != nil {
		return err
	}

	p, err := h.calculator.Compute(o.CreatedAt(), h.clock())
	if err != nil {
		return err
	}

	if !p.IsDelivered() {
		return ErrOrderNotYetDelivered
	}

	if err = h.notifications.Send(ctx, ports.NotificationDelivered, o.Number(), o.Item()); err != nil {
		h.logger.WarnContext(ctx, "notification send failed",
			"kind", string(ports.NotificationDelivered),
			"order_number", o.Number().String(),
			"error", err)
	}

	return nil
}
