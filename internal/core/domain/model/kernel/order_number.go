package kernel

import (
	"fmt"
	"strings"
	"time"

	"universestore/internal/pkg/errs"
	"universestore/internal/pkg/guard"

	"github.com/google/uuid"
)

// orderNumberPrefix is the fixed prefix of generated order numbers. The digits
// that follow are the creation unix timestamp, so generated numbers sort by
// creation time lexicographically within the same prefix.
const orderNumberPrefix = "UNIVERSE"

// ErrOrderNumberIsNotConstructed indicates that an OrderNumber was not created
// through NewOrderNumber or OrderNumberFromString.
var ErrOrderNumberIsNotConstructed = errs.NewValueIsRequiredError(
	"order number must be created via NewOrderNumber or OrderNumberFromString")

// OrderNumber is a value object identifying an order across the lifetime of
// the store. Generated numbers have the form UNIVERSE-<unix>-<suffix>, where
// the unix seconds of the creation instant make numbers time-sortable and a
// random suffix avoids collisions for orders placed within the same second.
//
// The zero value is invalid; use one of the constructors.
//
// Example:
//
//	number, err := kernel.NewOrderNumber(time.Now())
//	if err != nil {
//	    // handle error
//	}
//	fmt.Println(number) // e.g. "UNIVERSE-1735725600-a1b2c3d4"
type OrderNumber struct {
	value string
	guard guard.ConstructorGuard
}

// NewOrderNumber generates a new order number anchored to the given creation
// instant. Returns an error if createdAt is the zero time.
func NewOrderNumber(createdAt time.Time) (OrderNumber, error) {
	if createdAt.IsZero() {
		return OrderNumber{}, errs.NewValueIsRequiredError("createdAt")
	}

	suffix := strings.SplitN(uuid.NewString(), "-", 2)[0]
	return OrderNumber{
		value: fmt.Sprintf("%s-%d-%s", orderNumberPrefix, createdAt.Unix(), suffix),
		guard: guard.NewConstructorGuard(),
	}, nil
}

// OrderNumberFromString restores an order number from its string form, as read
// from persistence or received from a caller. The format is treated as opaque:
// any non-blank string is accepted, which keeps pre-existing data files with
// legacy numbers loadable.
func OrderNumberFromString(s string) (OrderNumber, error) {
	if strings.TrimSpace(s) == "" {
		return OrderNumber{}, errs.NewValueIsRequiredError("orderNumber")
	}

	return OrderNumber{
		value: s,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// String returns the order number in its canonical string form.
func (n OrderNumber) String() string {
	return n.value
}

// IsEqual reports whether two order numbers identify the same order.
func (n OrderNumber) IsEqual(other OrderNumber) bool {
	return n.value == other.value
}

// Validate checks that the order number was properly constructed.
func (n OrderNumber) Validate() error {
	return n.guard.Validate(ErrOrderNumberIsNotConstructed)
}
