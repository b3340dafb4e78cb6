package ports

import (
	"context"

	"galapagos/internal/core/domain/model/kernel"
	"galapagos/internal/core/domain/model/product"
)

// ProductRepository defines the persistence contract for product aggregates.
type ProductRepository interface {
	// Add persists a new product aggregate to storage.
	Add(ctx context.Context, aggregate *product.Product) error

	// Update persists changes to an existing product aggregate.
	Update(ctx context.Context, aggregate *product.Product) error

	// Get retrieves a product aggregate by its unique identifier.
	// Returns an ObjectNotFound error if no product exists with the given id.
	Get(ctx context.Context, id kernel.UUID) (*product.Product, error)

	// DecrementStock atomically decrements a product's stock by quantity,
	// but only if the stored stock is at least quantity at mutation time.
	// Returns an InsufficientStockError when the conditional update matches
	// no row, which closes the race between an earlier availability check
	// and the mutation.
	DecrementStock(ctx context.Context, id kernel.UUID, quantity int) error

	// IncrementStock atomically returns quantity units to a product's stock.
	// Used by delivery orchestration compensation.
	IncrementStock(ctx context.Context, id kernel.UUID, quantity int) error
}
