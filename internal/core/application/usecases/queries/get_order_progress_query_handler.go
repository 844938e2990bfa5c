package queries

import (
	"context"

	"universestore/internal/core/domain/model/kernel"
	"universestore/internal/core/domain/services"
	"universestore/internal/core/ports"
)

// GetOrderProgressQueryHandler answers progress queries for a single order by
// combining the stored record with live progress computation.
type GetOrderProgressQueryHandler struct {
	orders     ports.OrderRepository
	calculator services.ProgressCalculator
	clock      kernel.Clock
}

// NewGetOrderProgressQueryHandler creates a handler for single-order progress queries.
func NewGetOrderProgressQueryHandler(
	orders ports.OrderRepository,
	calculator services.ProgressCalculator,
	clock kernel.Clock,
) GetOrderProgressQueryHandler {
	return GetOrderProgressQueryHandler{
		orders:     orders,
		calculator: calculator,
		clock:      clock,
	}
}

// Handle looks up the order and computes its progress at the current time.
// Returns an ObjectNotFoundError for an unknown order number.
func (h GetOrderProgressQueryHandler) Handle(
	ctx context.Context,
	query GetOrderProgressQuery,
) (GetOrderProgressQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderProgressQueryResponse{}, err
	}

	o, err := h.orders.Get(ctx, query.OrderNumber())
	if err != nil {
		return GetOrderProgressQueryResponse{}, err
	}

	p, err := h.calculator.Compute(o.CreatedAt(), h.clock())
	if err != nil {
		return GetOrderProgressQueryResponse{}, err
	}

	return GetOrderProgressQueryResponse{
		OrderNumber:      o.Number(),
		Item:             o.Item(),
		Percent:          p.Percent(),
		Stage:            p.Stage(),
		Delivered:        p.IsDelivered(),
		RemainingHours:   p.RemainingHours(),
		RemainingMinutes: p.RemainingMinutes(),
	}, nil
}
