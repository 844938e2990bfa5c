package order

import (
	"fmt"

	"universestore/internal/pkg/errs"
)

// MentalState is the customer's self-reported state of mind at order time.
// It is presentation-level metadata carried through unchanged; it has no
// effect on delivery progress.
type MentalState string

const (
	// MentalStateAlreadyReceived means the customer feels the order is already theirs.
	MentalStateAlreadyReceived MentalState = "already received"

	// MentalStateExpectant means the customer is looking forward to delivery.
	MentalStateExpectant MentalState = "expectant"

	// MentalStateEarnest means the customer longs for the order intensely.
	MentalStateEarnest MentalState = "earnest"

	// MentalStateCalmCertainty means the customer is calmly certain of arrival.
	MentalStateCalmCertainty MentalState = "calm certainty"
)

// AllMentalStates returns the fixed set of accepted mental states,
// in the order presented to customers.
func AllMentalStates() []MentalState {
	return []MentalState{
		MentalStateAlreadyReceived,
		MentalStateExpectant,
		MentalStateEarnest,
		MentalStateCalmCertainty,
	}
}

// Validate checks that the mental state belongs to the fixed set.
func (s MentalState) Validate() error {
	for _, valid := range AllMentalStates() {
		if s == valid {
			return nil
		}
	}
	return errs.NewValueIsInvalidErrorWithCause("mentalState",
		fmt.Errorf("%q is not a known mental state", string(s)))
}

// String returns the mental state as presented to customers.
func (s MentalState) String() string {
	return string(s)
}
