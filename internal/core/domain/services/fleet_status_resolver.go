package services

import (
	"galapagos/internal/core/domain/model/trip"
	"galapagos/internal/core/domain/model/vehicle"
	"galapagos/internal/core/ports"
)

// VehicleStatus is a vehicle together with its derived operational state.
// CurrentPortID is the port the vehicle is parked at, or the origin port of
// its active trip when in flight; nil under maintenance.
type VehicleStatus struct {
	Vehicle       vehicle.Vehicle
	Status        vehicle.Status
	CurrentPortID *string
}

// FleetStatusResolver is a domain service that derives each vehicle's
// operational state by joining topology stationed-at facts with active
// trips. Status is never stored; it is recomputed on every read, which
// keeps it immune to staleness.
//
// Derivation rules:
//   - Base status is "parked" at the stationed port when a stationed-at
//     fact exists, else "maintenance".
//   - Any active trip referencing the vehicle overrides its status to
//     "in-flight" and places it at the trip's origin port, the last known
//     position before departure.
type FleetStatusResolver struct{}

// NewFleetStatusResolver creates a new FleetStatusResolver instance.
func NewFleetStatusResolver() FleetStatusResolver {
	return FleetStatusResolver{}
}

// Resolve derives the fleet's statuses from vehicle facts and the trips of
// currently in-progress shipments.
//
// The topology store may yield duplicate facts for the same vehicle;
// results are deduplicated by vehicle identifier, keeping the last fact
// seen. Output order follows the first appearance of each vehicle in the
// input, so results are deterministic.
func (FleetStatusResolver) Resolve(facts []ports.VehicleFact, activeTrips []*trip.Trip) []VehicleStatus {
	indexByID := make(map[string]int)
	statuses := make([]VehicleStatus, 0, len(facts))

	for _, fact := range facts {
		status := VehicleStatus{
			Vehicle: fact.Vehicle,
			Status:  vehicle.StatusMaintenance,
		}
		if fact.StationedAtPortID != nil {
			portID := *fact.StationedAtPortID
			status.Status = vehicle.StatusParked
			status.CurrentPortID = &portID
		}

		if i, seen := indexByID[fact.Vehicle.ID()]; seen {
			statuses[i] = status
			continue
		}

		indexByID[fact.Vehicle.ID()] = len(statuses)
		statuses = append(statuses, status)
	}

	for _, activeTrip := range activeTrips {
		i, seen := indexByID[activeTrip.VehicleID()]
		if !seen {
			continue
		}

		origin := activeTrip.OriginPortID()
		statuses[i].Status = vehicle.StatusInFlight
		statuses[i].CurrentPortID = &origin
	}

	return statuses
}
