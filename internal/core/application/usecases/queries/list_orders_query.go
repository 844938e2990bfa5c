// Package queries contains read-only operations over the order store.
// Query handlers combine persisted records with live progress computation;
// they never modify state and are safe to run concurrently.
package queries

import (
	"errors"
	"time"

	"universestore/internal/core/domain/model/kernel"
	"universestore/internal/core/domain/model/order"
	"universestore/internal/core/domain/model/progress"
	"universestore/internal/pkg/guard"
)

var (
	ErrListOrdersQueryIsNotConstructed = errors.New(
		"ListOrdersQuery must be created via NewListOrdersQuery constructor",
	)
)

// ListOrdersQuery retrieves every placed order with its live delivery
// progress, most recent first.
//
// Example:
//
//	query := NewListOrdersQuery()
//	entries, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to list orders: %w", err)
//	}
//	for _, e := range entries {
//	    fmt.Printf("%s — %d%% (%s)\n", e.OrderNumber, e.Percent, e.Stage)
//	}
type ListOrdersQuery struct {
	guard guard.ConstructorGuard
}

// NewListOrdersQuery creates a query to list all orders.
// This is a parameterless query.
func NewListOrdersQuery() ListOrdersQuery {
	return ListOrdersQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrListOrdersQueryIsNotConstructed if validation fails.
func (q ListOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListOrdersQueryIsNotConstructed)
}

// ListOrdersQueryResponse is one order with its live progress snapshot.
// Stored fields are carried through unchanged; Percent and Stage are
// recomputed from the creation time at query time.
type ListOrdersQueryResponse struct {
	OrderNumber     kernel.OrderNumber
	Item            string
	Address         string
	DeliveryRequest string
	MentalState     order.MentalState
	Price           string
	CreatedAt       time.Time
	StatusLabel     string
	Percent         int
	Stage           progress.Stage
}
