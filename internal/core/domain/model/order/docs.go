// Package order provides the domain entity for placed orders.
//
// The package includes:
//   - Order: the persisted unit of state, immutable once created
//   - MentalState: the fixed set of customer states carried as metadata
//
// Key business rules:
//   - Orders must have a valid number, non-blank item and address, and a
//     creation time that is never mutated afterwards
//   - The store is append-only: no order is ever edited, cancelled, or deleted
//   - Delivery state is not stored; it is recomputed from the creation time
//     on every query (see the progress package)
package order
