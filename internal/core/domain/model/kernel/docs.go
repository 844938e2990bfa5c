// Package kernel provides core domain primitives used throughout the order
// engine's domain model.
//
// The package includes:
//   - OrderNumber: a value object identifying orders, time-sortable by creation
//   - Clock: an injectable source of the current time
//
// These primitives enforce domain invariants and validation rules, ensuring
// that domain objects are always in a valid state. They are immutable and
// safe for concurrent use.
package kernel
