package ports

import (
	"context"
	"time"

	"galapagos/internal/core/domain/model/kernel"
	"galapagos/internal/core/domain/model/shipment"
)

// ShipmentRepository defines the persistence contract for shipment records.
type ShipmentRepository interface {
	// Add persists a new shipment record to storage.
	Add(ctx context.Context, aggregate *shipment.Shipment) error

	// Update persists changes to an existing shipment record.
	Update(ctx context.Context, aggregate *shipment.Shipment) error

	// Get retrieves a shipment record by its unique identifier.
	// Returns an ObjectNotFound error if no shipment exists with the given id.
	Get(ctx context.Context, id kernel.UUID) (*shipment.Shipment, error)

	// GetAllByOrder retrieves every shipment record of the given order.
	GetAllByOrder(ctx context.Context, orderID kernel.UUID) ([]*shipment.Shipment, error)

	// GetAllInProgress retrieves every shipment record currently underway.
	// Used by the fleet status resolver to detect in-flight vehicles.
	GetAllInProgress(ctx context.Context) ([]*shipment.Shipment, error)

	// GetAllInProgressDueBy retrieves in-progress shipment records whose
	// estimated date is at or before the given moment. Used by the shipment
	// completion job.
	GetAllInProgressDueBy(ctx context.Context, due time.Time) ([]*shipment.Shipment, error)
}
