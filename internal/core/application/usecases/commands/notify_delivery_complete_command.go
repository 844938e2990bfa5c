package commands

import (
	"errors"

	"universestore/internal/core/domain/model/kernel"
	"universestore/internal/pkg/guard"
)

var (
	ErrNotifyDeliveryCompleteCommandIsNotConstructed = errors.New(
		"NotifyDeliveryCompleteCommand must be created via NewNotifyDeliveryCompleteCommand constructor",
	)
)

// NotifyDeliveryCompleteCommand represents a request to announce that an
// order has arrived. It may only be handled once the order's computed
// progress has reached 100%.
type NotifyDeliveryCompleteCommand struct { //nolint:recvcheck //using for validation
	orderNumber kernel.OrderNumber

	guard guard.ConstructorGuard
}

// NewNotifyDeliveryCompleteCommand creates a command to announce delivery
// completion for the given order number.
func NewNotifyDeliveryCompleteCommand(orderNumber kernel.OrderNumber) (NotifyDeliveryCompleteCommand, error) {
	cmd := NotifyDeliveryCompleteCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setOrderNumber(orderNumber); err != nil {
		return NotifyDeliveryCompleteCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrNotifyDeliveryCompleteCommandIsNotConstructed if validation fails.
func (c NotifyDeliveryCompleteCommand) Validate() error {
	return c.guard.Validate(ErrNotifyDeliveryCompleteCommandIsNotConstructed)
}

// OrderNumber returns the number of the order to announce.
func (c NotifyDeliveryCompleteCommand) OrderNumber() kernel.OrderNumber {
	return c.orderNumber
}

func (c *NotifyDeliveryCompleteCommand) setOrderNumber(orderNumber kernel.OrderNumber) error {
	if err := orderNumber.Validate(); err != nil {
		return err
	}
	c.orderNumber = orderNumber
	return nil
}
