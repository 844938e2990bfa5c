package order

import (
	"errors"
	"strings"
	"time"

	"universestore/internal/core/domain/model/kernel"
	"universestore/internal/pkg/errs"
)

// ErrOrderIsNotConstructed is returned when an Order instance was not created
// through the NewOrder or RestoreOrder factory methods.
var ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder")

const (
	// DefaultDeliveryRequest is the sentinel stored when the customer leaves
	// the delivery request blank.
	DefaultDeliveryRequest = "none"

	// defaultStatusLabel is the display label written at creation. The label
	// is presentation data only; the authoritative delivery state is always
	// recomputed from the creation time.
	defaultStatusLabel = "shipping 🚀"
)

// Order is the persisted unit of state: one placed order. Orders are immutable
// once created — the store is append-only, no order is ever edited or deleted,
// and there is no cancel or refund path.
//
// Order maintains these invariants:
//   - Order number is valid and unique across the store
//   - Item and address are non-blank
//   - Delivery request defaults to "none" when absent
//   - Creation time is set once and never mutated; it is the sole time anchor
//     for delivery progress
//
// Delivery progress is never stored on the order. It is recomputed on demand
// from the creation time, which keeps the system crash-resilient and progress
// queries idempotent.
type Order struct {
	number          kernel.OrderNumber
	item            string
	address         string
	deliveryRequest string
	mentalState     MentalState
	price           string
	createdAt       time.Time
	statusLabel     string

	isConstructed bool
}

// NewOrder creates a new Order with validation. This is the only way to place
// a fresh order; RestoreOrder exists solely for reloading persisted records.
//
// Item and address must be non-blank. The delivery request may be empty and
// defaults to DefaultDeliveryRequest. The mental state must belong to the
// fixed set. Price is a display-formatted label and is passed through
// unchanged — it is never parsed or computed on.
func NewOrder(
	number kernel.OrderNumber,
	item string,
	address string,
	deliveryRequest string,
	mentalState MentalState,
	price string,
	createdAt time.Time,
) (*Order, error) {
	o := &Order{
		price:         price,
		statusLabel:   defaultStatusLabel,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setNumber(number),
		o.setItem(item),
		o.setAddress(address),
		o.setDeliveryRequest(deliveryRequest),
		o.setMentalState(mentalState),
		o.setCreatedAt(createdAt),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOrder reconstructs an Order from persistence. Unlike NewOrder it does
// not re-validate the mental state against the fixed set, so data files
// written by earlier versions (with different state labels) stay loadable.
// The stored status label is preserved byte for byte.
func RestoreOrder(
	number kernel.OrderNumber,
	item string,
	address string,
	deliveryRequest string,
	mentalState MentalState,
	price string,
	createdAt time.Time,
	statusLabel string,
) (*Order, error) {
	o := &Order{
		mentalState:   mentalState,
		price:         price,
		statusLabel:   statusLabel,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setNumber(number),
		o.setItem(item),
		o.setAddress(address),
		o.setDeliveryRequest(deliveryRequest),
		o.setCreatedAt(createdAt),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// Validate ensures the Order instance was properly constructed through a
// factory method, preventing use of directly instantiated structs.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by order number.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.number.IsEqual(other.number)
}

// Number returns the order's unique number.
func (o *Order) Number() kernel.OrderNumber {
	return o.number
}

// Item returns the ordered product or desire description.
func (o *Order) Item() string {
	return o.item
}

// Address returns the delivery destination label.
func (o *Order) Address() string {
	return o.address
}

// DeliveryRequest returns the optional delivery request,
// or DefaultDeliveryRequest when none was given.
func (o *Order) DeliveryRequest() string {
	return o.deliveryRequest
}

// MentalState returns the customer's mental state at order time.
func (o *Order) MentalState() MentalState {
	return o.mentalState
}

// Price returns the display-formatted price label.
func (o *Order) Price() string {
	return o.price
}

// CreatedAt returns the creation time, the sole anchor for progress computation.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// StatusLabel returns the stored display status label.
// It is not authoritative; live state is computed from CreatedAt.
func (o *Order) StatusLabel() string {
	return o.statusLabel
}

func (o *Order) setNumber(number kernel.OrderNumber) error {
	if err := number.Validate(); err != nil {
		return err
	}
	o.number = number
	return nil
}

func (o *Order) setItem(item string) error {
	if strings.TrimSpace(item) == "" {
		return errs.NewValueIsRequiredError("item")
	}
	o.item = item
	return nil
}

func (o *Order) setAddress(address string) error {
	if strings.TrimSpace(address) == "" {
		return errs.NewValueIsRequiredError("address")
	}
	o.address = address
	return nil
}

func (o *Order) setDeliveryRequest(deliveryRequest string) error {
	if strings.TrimSpace(deliveryRequest) == "" {
		deliveryRequest = DefaultDeliveryRequest
	}
	o.deliveryRequest = deliveryRequest
	return nil
}

func (o *Order) setMentalState(state MentalState) error {
	if err := state.Validate(); err != nil {
		return err
	}
	o.mentalState = state
	return nil
}

func (o *Order) setCreatedAt(createdAt time.Time) error {
	if createdAt.IsZero() {
		return errs.NewValueIsRequiredError("createdAt")
	}
	o.createdAt = createdAt
	return nil
}
