package services

import (
	"time"

	"universestore/internal/core/domain/model/progress"
)

// TotalDeliveryDuration is the fixed time a delivery takes from order
// creation to arrival. Every order completes exactly this long after its
// creation instant.
const TotalDeliveryDuration = 3 * time.Hour

// ProgressCalculator is a domain service computing delivery progress from
// elapsed wall-clock time. It is a pure function of its inputs: no side
// effects, no I/O, no ambient time source — the caller supplies "now".
//
// The computation:
//   - percent = floor(100 * elapsed / TotalDeliveryDuration), clamped to [0, 100]
//   - stage follows the fixed threshold table in the progress package
//   - remaining = TotalDeliveryDuration - elapsed while undelivered
//
// Because the result depends only on (createdAt, now), progress is
// monotonically non-decreasing in now, queries are idempotent, and no
// partial-transition state ever needs crash recovery.
//
// Example:
//
//	calc := services.NewProgressCalculator()
//	p, err := calc.Compute(order.CreatedAt(), time.Now())
//	if err != nil {
//	    return err
//	}
//	fmt.Printf("%d%% — %s", p.Percent(), p.Stage())
type ProgressCalculator struct{}

// NewProgressCalculator creates a new ProgressCalculator instance.
func NewProgressCalculator() ProgressCalculator {
	return ProgressCalculator{}
}

// Compute derives the delivery progress of an order created at createdAt as
// observed at now. A now before createdAt (clock skew) clamps to 0%.
func (c ProgressCalculator) Compute(createdAt, now time.Time) (progress.Progress, error) {
	elapsed := now.Sub(createdAt)
	if elapsed < 0 {
		elapsed = 0
	}

	percent := int(elapsed * 100 / TotalDeliveryDuration)
	if percent > 100 {
		percent = 100
	}

	remaining := TotalDeliveryDuration - elapsed
	if remaining < 0 {
		remaining = 0
	}

	return progress.NewProgress(percent, remaining)
}
