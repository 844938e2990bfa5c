package queries

import (
	"errors"

	"universestore/internal/core/domain/model/kernel"
	"universestore/internal/core/domain/model/progress"
	"universestore/internal/pkg/guard"
)

var (
	ErrGetOrderProgressQueryIsNotConstructed = errors.New(
		"GetOrderProgressQuery must be created via NewGetOrderProgressQuery constructor",
	)
)

// GetOrderProgressQuery retrieves the live delivery progress of one order.
type GetOrderProgressQuery struct { //nolint:recvcheck //using for validation
	orderNumber kernel.OrderNumber

	guard guard.ConstructorGuard
}

// NewGetOrderProgressQuery creates a query for the given order number.
func NewGetOrderProgressQuery(orderNumber kernel.OrderNumber) (GetOrderProgressQuery, error) {
	q := GetOrderProgressQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := q.setOrderNumber(orderNumber); err != nil {
		return GetOrderProgressQuery{}, err
	}

	return q, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetOrderProgressQueryIsNotConstructed if validation fails.
func (q GetOrderProgressQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderProgressQueryIsNotConstructed)
}

// OrderNumber returns the number of the order being queried.
func (q GetOrderProgressQuery) OrderNumber() kernel.OrderNumber {
	return q.orderNumber
}

func (q *GetOrderProgressQuery) setOrderNumber(orderNumber kernel.OrderNumber) error {
	if err := orderNumber.Validate(); err != nil {
		return err
	}
	q.orderNumber = orderNumber
	return nil
}

// GetOrderProgressQueryResponse is the live progress snapshot of one order.
// RemainingHours and RemainingMinutes are floor-rounded and meaningful only
// while Delivered is false.
type GetOrderProgressQueryResponse struct {
	OrderNumber      kernel.OrderNumber
	Item             string
	Percent          int
	Stage            progress.Stage
	Delivered        bool
	RemainingHours   int
	RemainingMinutes int
}
