package commands

import (
	"context"
	"log/slog"

	"universestore/internal/core/domain/model/kernel"
	"universestore/internal/core/domain/model/order"
	"universestore/internal/core/ports"
)

// PlaceOrderCommandHandler handles the business logic for order placement.
// Generates a time-anchored order number, persists the order, and dispatches
// the "received" and "shipped" notifications after the write has committed.
//
// Notification failures are logged and swallowed: placement succeeds whether
// or not the messaging sink is reachable.
type PlaceOrderCommandHandler struct {
	orders        ports.OrderRepository
	notifications ports.NotificationSender
	clock         kernel.Clock
	logger        *slog.Logger
}

// NewPlaceOrderCommandHandler creates a handler for order placement.
func NewPlaceOrderCommandHandler(
	orders ports.OrderRepository,
	notifications ports.NotificationSender,
	clock kernel.Clock,
	logger *slog.Logger,
) PlaceOrderCommandHandler {
	return PlaceOrderCommandHandler{
		orders:        orders,
		notifications: notifications,
		clock:         clock,
		logger:        logger.With("component", "place_order_handler"),
	}
}

// Handle processes the order placement command and returns the created order.
// The creation time is taken from the injected clock once and anchors both the
// order number and all future progress computation.
func (h *PlaceOrderCommandHandler) Handle(ctx context.Context, cmd PlaceOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	createdAt := h.clock()
	number, err := kernel.NewOrderNumber(createdAt)
	if err != nil {
		return nil, err
	}

	placed, err := order.NewOrder(
		number,
		cmd.Item(),
		cmd.Address(),
		cmd.DeliveryRequest(),
		cmd.MentalState(),
		cmd.Price(),
		createdAt,
	)
	if err != nil {
		return nil, err
	}

	if err = h.orders.Append(ctx, placed); err != nil {
		return nil, err
	}

	// The order is durable at this point; notifications are best-effort.
	h.notify(ctx, ports.NotificationReceived, placed)
	h.notify(ctx, ports.NotificationShipped, placed)

	return placed, nil
}

func (h *PlaceOrderCommandHandler) notify(ctx context.Context, kind ports.NotificationKind, o *order.Order) {
	if err := h.notifications.Send(ctx, kind, o.Number(), o.Item()); err != nil {
		h.logger.WarnContext(ctx, "notification send failed",
			"kind", string(kind),
			"order_number", o.Number().String(),
			"error", err)
	}
}
