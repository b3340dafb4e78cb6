package queries

import (
	"context"

	"galapagos/internal/core/domain/model/kernel"
	"galapagos/internal/core/domain/model/shipment"
	"galapagos/internal/core/domain/model/trip"
	"galapagos/internal/core/domain/services"
	"galapagos/internal/core/ports"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ListVehiclesQueryHandler resolves the fleet's status by combining the
// vehicle facts from the topology store with the trips that currently have
// in-progress shipments in the record store.
type ListVehiclesQueryHandler struct {
	topology ports.TopologyStore
	db       *gorm.DB
	resolver services.FleetStatusResolver
}

// NewListVehiclesQueryHandler creates a handler for fleet status queries.
// Requires the topology store for vehicle facts and a GORM database
// connection for the active trip lookup.
func NewListVehiclesQueryHandler(topology ports.TopologyStore, db *gorm.DB) ListVehiclesQueryHandler {
	return ListVehiclesQueryHandler{
		topology: topology,
		db:       db,
		resolver: services.NewFleetStatusResolver(),
	}
}

// Handle executes the query and returns one entry per known vehicle.
func (h ListVehiclesQueryHandler) Handle(
	ctx context.Context,
	query ListVehiclesQuery,
) ([]ListVehiclesQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	facts, err := h.topology.GetVehicleFacts(ctx)
	if err != nil {
		return nil, err
	}

	activeTrips, err := h.getActiveTrips(ctx)
	if err != nil {
		return nil, err
	}

	return h.resolver.Resolve(facts, activeTrips), nil
}

// getActiveTrips retrieves every trip that still has an in-progress
// shipment aboard.
func (h ListVehiclesQueryHandler) getActiveTrips(ctx context.Context) ([]*trip.Trip, error) {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT DISTINCT
			t.id,
			t.vehicle_id,
			t.origin_port_id,
			t.destination_port_id,
			t.distance_km,
			t.duration_minutes
		FROM trips t
		JOIN shipments s ON s.trip_id = t.id
		WHERE s.status = ?
	`, int(shipment.InProgress)).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	activeTrips := make([]*trip.Trip, 0)

	for rows.Next() {
		var id uuid.UUID
		var vehicleID, originPortID, destinationPortID string
		var distanceKm float64
		var durationMinutes int

		err = rows.Scan(
			&id,
			&vehicleID,
			&originPortID,
			&destinationPortID,
			&distanceKm,
			&durationMinutes,
		)
		if err != nil {
			return nil, err
		}

		tripID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}

		restored, restoreErr := trip.RestoreTrip(
			tripID, vehicleID, originPortID, destinationPortID, distanceKm, durationMinutes)
		if restoreErr != nil {
			return nil, restoreErr
		}

		activeTrips = append(activeTrips, restored)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return activeTrips, nil
}
