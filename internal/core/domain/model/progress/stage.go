package progress

import (
	"fmt"

	"universestore/internal/pkg/errs"
)

// Stage represents one of the five fixed delivery-progress labels. Unlike a
// stored state machine, stages are never advanced by events: a stage is
// always derived from the completion percentage, so the same percentage
// always maps to the same stage.
//
// Threshold table:
//
//	  0% ..  19%  Received
//	 20% ..  39%  DepartedWarehouse
//	 40% ..  59%  InTransit
//	 60% ..  99%  Finalizing
//	100%          Delivered
type Stage int

const (
	// Unknown represents an invalid or undefined stage.
	// This value (0) helps catch uninitialized Stage values.
	Unknown Stage = iota

	// Received means the order was accepted and is awaiting warehouse departure.
	Received

	// DepartedWarehouse means the order left the cosmic warehouse.
	DepartedWarehouse

	// InTransit means the order is passing through the quantum tunnel.
	InTransit

	// Finalizing means the materialization process is underway.
	Finalizing

	// Delivered means the order arrived in the customer's timeline.
	// This is the final stage.
	Delivered
)

// stageThreshold pairs a stage with the minimum percentage at which it applies.
type stageThreshold struct {
	stage      Stage
	minPercent int
}

// getStageThresholds returns the threshold table in descending order of
// minimum percentage, so the first match wins.
func getStageThresholds() []stageThreshold {
	return []stageThreshold{
		{Delivered, 100},
		{Finalizing, 60},
		{InTransit, 40},
		{DepartedWarehouse, 20},
		{Received, 0},
	}
}

// getStageStrings returns a map of Stage values to their display labels.
func getStageStrings() map[Stage]string {
	return map[Stage]string{
		Unknown:           "unknown",
		Received:          "received",
		DepartedWarehouse: "departed warehouse",
		InTransit:         "in transit",
		Finalizing:        "finalizing",
		Delivered:         "delivered",
	}
}

// StageFromPercent maps a completion percentage to its delivery stage
// according to the fixed threshold table. The percentage must already be
// clamped to [0, 100].
func StageFromPercent(percent int) (Stage, error) {
	if percent < 0 || percent > 100 {
		return Unknown, errs.NewValueIsOutOfRangeError("percent", percent, 0, 100)
	}

	for _, threshold := range getStageThresholds() {
		if percent >= threshold.minPercent {
			return threshold.stage, nil
		}
	}

	// Unreachable: the table ends at 0 and percent is non-negative.
	return Unknown, errs.NewValueIsInvalidError("percent")
}

// Validate checks that the Stage value is one of the five fixed stages.
func (s Stage) Validate() error {
	if s < Received || s > Delivered {
		return errs.NewValueIsInvalidErrorWithCause("stage",
			fmt.Errorf("%d is not a valid stage", s))
	}
	return nil
}

// IsFinal reports whether the stage is Delivered, the terminal stage.
func (s Stage) IsFinal() bool {
	return s == Delivered
}

// String returns the human-readable stage label.
// It implements fmt.Stringer and is safe to call on any Stage value.
func (s Stage) String() string {
	if str, ok := getStageStrings()[s]; ok {
		return str
	}
	return "unknown"
}
