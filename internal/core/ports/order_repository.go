// Package ports defines the boundary contracts between the domain core and
// infrastructure: order persistence, transaction control, and the real-time
// order event stream. These interfaces enable dependency inversion: the
// postgres and in-memory adapters are interchangeable behind them.
package ports

import (
	"context"

	"attieke/internal/core/domain/model/kernel"
	"attieke/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// The store only receives writes the status machine has already validated;
// the repository itself enforces no workflow rules.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	// The order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate.
	// Concurrent updates are last-write-wins on the status field.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier.
	// Returns *errs.ObjectNotFoundError for unknown ids.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetByClient retrieves all orders placed by a client.
	// No ordering is guaranteed; callers sort by creation time.
	GetByClient(ctx context.Context, clientID kernel.UUID) ([]*order.Order, error)

	// GetAllInStatus retrieves all orders currently in the given status.
	// Used by the tracking job to find in-delivery orders to animate.
	GetAllInStatus(ctx context.Context, status order.Status) ([]*order.Order, error)
}
