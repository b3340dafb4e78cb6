// Package trip provides the trip domain entity: a planned flight of a seaplane
// between two ports, created once per delivery orchestration run and immutable
// after creation. Shipment records reference trips but never own them.
package trip

import (
	"errors"
	"fmt"

	"galapagos/internal/core/domain/model/kernel"
	"galapagos/internal/pkg/errs"
)

var (
	// ErrTripIsNotConstructed is returned when a Trip instance was not created
	// through the NewTrip factory method.
	ErrTripIsNotConstructed = errors.New("Trip must be created via NewTrip constructor")
)

// Trip is an immutable record of a planned flight. The origin and destination
// are the first and last hops of the computed route, which may differ from the
// ports named in the original delivery request when the path reroutes.
// Vehicle and port references use topology store identifiers, not UUIDs,
// because those entities live in the graph store.
type Trip struct {
	id              kernel.UUID
	vehicleID       string
	originPortID    string
	destinationPort string
	distanceKm      float64
	durationMinutes int
	isConstructed   bool
}

// NewTrip creates a new Trip with validation.
// Distance and duration come from the route planner and must not be negative.
func NewTrip(
	id kernel.UUID,
	vehicleID string,
	originPortID string,
	destinationPortID string,
	distanceKm float64,
	durationMinutes int,
) (*Trip, error) {
	t := &Trip{
		isConstructed: true,
	}

	if err := errors.Join(
		t.setID(id),
		t.setVehicleID(vehicleID),
		t.setPorts(originPortID, destinationPortID),
		t.setDistanceKm(distanceKm),
		t.setDurationMinutes(durationMinutes),
	); err != nil {
		return nil, err
	}

	return t, nil
}

// RestoreTrip reconstructs a Trip from persisted state.
// Trips are immutable, so restoration applies the same validation as creation.
func RestoreTrip(
	id kernel.UUID,
	vehicleID string,
	originPortID string,
	destinationPortID string,
	distanceKm float64,
	durationMinutes int,
) (*Trip, error) {
	return NewTrip(id, vehicleID, originPortID, destinationPortID, distanceKm, durationMinutes)
}

// Validate ensures the Trip instance was properly constructed through a constructor.
func (t *Trip) Validate() error {
	if t == nil || !t.isConstructed {
		return ErrTripIsNotConstructed
	}
	return nil
}

// IsEqual compares two trips by their unique identifiers.
func (t *Trip) IsEqual(other *Trip) bool {
	return other != nil && t.id.IsEqual(other.id)
}

// ID returns the trip's unique identifier.
func (t *Trip) ID() kernel.UUID {
	return t.id
}

// VehicleID returns the topology identifier of the assigned seaplane.
func (t *Trip) VehicleID() string {
	return t.vehicleID
}

// OriginPortID returns the topology identifier of the departure port.
func (t *Trip) OriginPortID() string {
	return t.originPortID
}

// DestinationPortID returns the topology identifier of the arrival port.
func (t *Trip) DestinationPortID() string {
	return t.destinationPort
}

// DistanceKm returns the total route distance in kilometers.
func (t *Trip) DistanceKm() float64 {
	return t.distanceKm
}

// DurationMinutes returns the estimated flight duration in minutes.
func (t *Trip) DurationMinutes() int {
	return t.durationMinutes
}

func (t *Trip) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	t.id = id
	return nil
}

func (t *Trip) setVehicleID(vehicleID string) error {
	if vehicleID == "" {
		return errs.NewValueIsRequiredError("vehicleID")
	}
	t.vehicleID = vehicleID
	return nil
}

func (t *Trip) setPorts(originPortID string, destinationPortID string) error {
	if originPortID == "" {
		return errs.NewValueIsRequiredError("originPortID")
	}
	if destinationPortID == "" {
		return errs.NewValueIsRequiredError("destinationPortID")
	}
	t.originPortID = originPortID
	t.destinationPort = destinationPortID
	return nil
}

func (t *Trip) setDistanceKm(distanceKm float64) error {
	if distanceKm < 0 {
		return errs.NewValueIsInvalidErrorWithCause("distanceKm is invalid",
			fmt.Errorf("%f is negative", distanceKm))
	}
	t.distanceKm = distanceKm
	return nil
}

func (t *Trip) setDurationMinutes(durationMinutes int) error {
	if durationMinutes < 0 {
		return errs.NewValueIsInvalidErrorWithCause("durationMinutes is invalid",
			fmt.Errorf("%d is negative", durationMinutes))
	}
	t.durationMinutes = durationMinutes
	return nil
}
