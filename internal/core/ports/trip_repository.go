package ports

import (
	"context"

	"galapagos/internal/core/domain/model/kernel"
	"galapagos/internal/core/domain/model/trip"
)

// TripRepository defines the persistence contract for trips.
// Trips are immutable after creation, so there is no update operation.
type TripRepository interface {
	// Add persists a new trip to storage.
	Add(ctx context.Context, aggregate *trip.Trip) error

	// Get retrieves a trip by its unique identifier.
	// Returns an ObjectNotFound error if no trip exists with the given id.
	Get(ctx context.Context, id kernel.UUID) (*trip.Trip, error)
}
