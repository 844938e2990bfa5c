package progress

import (
	"fmt"
	"time"

	"universestore/internal/pkg/errs"
	"universestore/internal/pkg/guard"
)

// ErrProgressIsNotConstructed indicates that a Progress value was not created
// via the NewProgress constructor.
var ErrProgressIsNotConstructed = errs.NewValueIsRequiredError(
	"progress must be created via NewProgress")

// Progress is an immutable snapshot of an order's delivery state at one
// instant: the completion percentage, the stage derived from it, and the time
// remaining until delivery.
type Progress struct {
	percent   int
	stage     Stage
	remaining time.Duration

	guard guard.ConstructorGuard
}

// NewProgress creates a Progress snapshot. The percentage must be within
// [0, 100]; the stage is derived from it via the fixed threshold table.
// Remaining must be zero when the percentage is 100.
func NewProgress(percent int, remaining time.Duration) (Progress, error) {
	stage, err := StageFromPercent(percent)
	if err != nil {
		return Progress{}, err
	}

	if remaining < 0 {
		return Progress{}, errs.NewValueIsInvalidErrorWithCause("remaining",
			fmt.Errorf("%s is negative", remaining))
	}

	if stage.IsFinal() {
		remaining = 0
	}

	return Progress{
		percent:   percent,
		stage:     stage,
		remaining: remaining,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Percent returns the completion percentage in [0, 100].
func (p Progress) Percent() int {
	return p.percent
}

// Stage returns the delivery stage derived from the percentage.
func (p Progress) Stage() Stage {
	return p.stage
}

// Remaining returns the time left until delivery. Zero once delivered.
func (p Progress) Remaining() time.Duration {
	return p.remaining
}

// RemainingHours returns the whole hours left until delivery, floor-rounded.
func (p Progress) RemainingHours() int {
	return int(p.remaining / time.Hour)
}

// RemainingMinutes returns the whole minutes left beyond RemainingHours,
// floor-rounded.
func (p Progress) RemainingMinutes() int {
	return int(p.remaining/time.Minute) % 60
}

// IsDelivered reports whether the order has reached the final stage.
func (p Progress) IsDelivered() bool {
	return p.stage.IsFinal()
}

// Validate checks that the Progress value was properly constructed.
func (p Progress) Validate() error {
	return p.guard.Validate(ErrProgressIsNotConstructed)
}
