// Package progress provides value objects describing delivery progress.
//
// The package includes:
//   - Stage: the five fixed delivery-progress labels with their percentage
//     thresholds
//   - Progress: an immutable snapshot of percentage, stage, and remaining time
//
// Progress values are always computed from an order's creation time and the
// current time (see the services package); they are never stored or advanced
// by events.
package progress
