package queries

import (
	"context"

	"universestore/internal/core/domain/model/kernel"
	"universestore/internal/core/domain/services"
	"universestore/internal/core/ports"
)

// ListOrdersQueryHandler loads all orders and attaches live delivery progress
// to each, computed against the injected clock.
type ListOrdersQueryHandler struct {
	orders     ports.OrderRepository
	calculator services.ProgressCalculator
	clock      kernel.Clock
}

// NewListOrdersQueryHandler creates a handler for order listing.
func NewListOrdersQueryHandler(
	orders ports.OrderRepository,
	calculator services.ProgressCalculator,
	clock kernel.Clock,
) ListOrdersQueryHandler {
	return ListOrdersQueryHandler{
		orders:     orders,
		calculator: calculator,
		clock:      clock,
	}
}

// Handle returns all orders in most-recent-first order, each with the
// delivery percentage and stage it has reached at the current time.
func (h ListOrdersQueryHandler) Handle(
	ctx context.Context,
	query ListOrdersQuery,
) ([]ListOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	all, err := h.orders.Load(ctx)
	if err != nil {
		return nil, err
	}

	now := h.clock()
	entries := make([]ListOrdersQueryResponse, 0, len(all))

	// The store keeps insertion order; walk it backwards for newest-first.
	for i := len(all) - 1; i >= 0; i-- {
		o := all[i]

		p, progressErr := h.calculator.Compute(o.CreatedAt(), now)
		if progressErr != nil {
			return nil, progressErr
		}

		entries = append(entries, ListOrdersQueryResponse{
			OrderNumber:     o.Number(),
			Item:            o.Item(),
			Address:         o.Address(),
			DeliveryRequest: o.DeliveryRequest(),
			MentalState:     o.MentalState(),
			Price:           o.Price(),
			CreatedAt:       o.CreatedAt(),
			StatusLabel:     o.StatusLabel(),
			Percent:         p.Percent(),
			Stage:           p.Stage(),
		})
	}

	return entries, nil
}
