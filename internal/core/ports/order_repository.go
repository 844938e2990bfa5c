package ports

import (
	"context"

	"universestore/internal/core/domain/model/kernel"
	"universestore/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for orders. The store is
// append-only: no update or delete operations are exposed, and records are
// returned in insertion order.
type OrderRepository interface {
	// Load returns all persisted orders in insertion order. An absent backing
	// file yields an empty slice; unreadable or corrupt data yields a
	// StorageError and never a silently empty result.
	Load(ctx context.Context) ([]*order.Order, error)

	// Append durably adds one order. Implementations must serialize the
	// load-append-rewrite sequence so concurrent appends cannot lose records,
	// and must replace the backing data atomically.
	Append(ctx context.Context, aggregate *order.Order) error

	// Get retrieves a single order by its number.
	// Returns an ObjectNotFoundError when no such order exists.
	Get(ctx context.Context, number kernel.OrderNumber) (*order.Order, error)
}
