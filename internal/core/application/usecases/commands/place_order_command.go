// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS split.
// All commands follow a consistent pattern: constructor-guarded validation,
// persistence through ports, and fire-and-forget notification dispatch.
package commands

import (
	"errors"
	"strings"

	"universestore/internal/core/domain/model/order"
	"universestore/internal/pkg/errs"
	"universestore/internal/pkg/guard"
)

var (
	ErrPlaceOrderCommandIsNotConstructed = errors.New(
		"PlaceOrderCommand must be created via NewPlaceOrderCommand constructor",
	)
)

// PlaceOrderCommand represents a request to place a new order.
// Encapsulates the customer's desire, destination, and order-time metadata.
//
// Example:
//
//	cmd, err := NewPlaceOrderCommand("🏠 Dream home", "present me", "",
//	    order.MentalStateCalmCertainty, "inner peace")
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	placed, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("failed to place order: %w", err)
//	}
//	fmt.Printf("Order %s placed", placed.Number())
type PlaceOrderCommand struct { //nolint:recvcheck //using for validation
	item            string
	address         string
	deliveryRequest string
	mentalState     order.MentalState
	price           string

	guard guard.ConstructorGuard
}

// NewPlaceOrderCommand creates a command to place a new order.
// Item and address must be non-blank and the mental state must belong to the
// fixed set. The delivery request may be empty; the price label is passed
// through unchanged.
func NewPlaceOrderCommand(
	item string,
	address string,
	deliveryRequest string,
	mentalState order.MentalState,
	price string,
) (PlaceOrderCommand, error) {
	cmd := PlaceOrderCommand{
		deliveryRequest: deliveryRequest,
		price:           price,
		guard:           guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setItem(item),
		cmd.setAddress(address),
		cmd.setMentalState(mentalState),
	); err != nil {
		return PlaceOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrPlaceOrderCommandIsNotConstructed if validation fails.
func (c PlaceOrderCommand) Validate() error {
	return c.guard.Validate(ErrPlaceOrderCommandIsNotConstructed)
}

// Item returns the ordered product or desire description.
func (c PlaceOrderCommand) Item() string {
	return c.item
}

// Address returns the delivery destination label.
func (c PlaceOrderCommand) Address() string {
	return c.address
}

// DeliveryRequest returns the optional delivery request, possibly empty.
func (c PlaceOrderCommand) DeliveryRequest() string {
	return c.deliveryRequest
}

// MentalState returns the customer's mental state at order time.
func (c PlaceOrderCommand) MentalState() order.MentalState {
	return c.mentalState
}

// Price returns the display-formatted price label.
func (c PlaceOrderCommand) Price() string {
	return c.price
}

func (c *PlaceOrderCommand) setItem(item string) error {
	if strings.TrimSpace(item) == "" {
		return errs.NewValueIsRequiredError("item")
	}
	c.item = item
	return nil
}

func (c *PlaceOrderCommand) setAddress(address string) error {
	if strings.TrimSpace(address) == "" {
		return errs.NewValueIsRequiredError("address")
	}
	c.address = address
	return nil
}

func (c *PlaceOrderCommand) setMentalState(state order.MentalState) error {
	if err := state.Validate(); err != nil {
		return err
	}
	c.mentalState = state
	return nil
}
