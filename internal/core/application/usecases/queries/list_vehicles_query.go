package queries

import (
	"errors"

	"galapagos/internal/core/domain/services"
	"galapagos/internal/pkg/guard"
)

var (
	ErrListVehiclesQueryIsNotConstructed = errors.New(
		"ListVehiclesQuery must be created via NewListVehiclesQuery constructor",
	)
)

// ListVehiclesQuery retrieves every vehicle in the fleet together with its
// derived status and current port. Status is never stored; it is resolved
// from the topology and the trips of in-progress shipments at query time.
//
// Example:
//
//	query := NewListVehiclesQuery()
//	handler := NewListVehiclesQueryHandler(topology, db)
//
//	fleet, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to list vehicles: %w", err)
//	}
//
//	for _, entry := range fleet {
//	    fmt.Printf("%s: %s\n", entry.Vehicle.ID(), entry.Status)
//	}
type ListVehiclesQuery struct {
	guard guard.ConstructorGuard
}

// NewListVehiclesQuery creates a query to retrieve the fleet status.
// This is a parameterless query that resolves every vehicle.
func NewListVehiclesQuery() ListVehiclesQuery {
	return ListVehiclesQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrListVehiclesQueryIsNotConstructed if validation fails.
func (q ListVehiclesQuery) Validate() error {
	return q.guard.Validate(ErrListVehiclesQueryIsNotConstructed)
}

// ListVehiclesQueryResponse is the fleet read model: one entry per vehicle
// with its derived status.
type ListVehiclesQueryResponse = services.VehicleStatus
