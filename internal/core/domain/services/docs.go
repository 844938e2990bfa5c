// Package services provides domain services for the order engine.
//
// The package includes:
//   - ProgressCalculator: a pure domain service mapping an order's creation
//     time and the current time to a delivery-progress snapshot
//
// Domain services hold logic that does not belong to a single entity. The
// calculator deliberately takes the current time as a parameter rather than
// reading a clock, which makes it exhaustively testable.
package services
