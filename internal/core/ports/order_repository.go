package ports

import (
	"context"

	"galapagos/internal/core/domain/model/kernel"
	"galapagos/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	// The order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate.
	// The order must exist in the repository and be valid.
	Update(ctx context.Context, aggregate *order.Order) error

	// UpdateStatusFrom transitions an order's persisted status with a single
	// conditional update that only touches the row while its status still
	// equals from. Concurrent transitions over the same order serialize
	// here: the loser receives an order.StatusConflictError instead of
	// silently overwriting. Returns an ObjectNotFound error if no order
	// exists with the given id.
	UpdateStatusFrom(ctx context.Context, id kernel.UUID, from order.Status, to order.Status) error

	// Get retrieves an order aggregate by its unique identifier.
	// Returns an ObjectNotFound error if no order exists with the given id.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetAllInProgress retrieves all orders currently being delivered.
	// Used by the shipment completion job to finish orders whose shipments
	// have all arrived.
	GetAllInProgress(ctx context.Context) ([]*order.Order, error)
}
