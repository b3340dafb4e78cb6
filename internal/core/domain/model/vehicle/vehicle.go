// Package vehicle provides the seaplane domain entity and its derived
// operational status. Vehicles are reference data owned by the topology store;
// their status and current port are never stored but computed at read time
// from stationed-at facts and active shipment records.
package vehicle

import (
	"errors"
	"fmt"

	"galapagos/internal/pkg/errs"
)

// ErrVehicleIsNotConstructed is returned when attempting to use an improperly
// initialized Vehicle. Vehicles must be created using the NewVehicle constructor.
var ErrVehicleIsNotConstructed = errors.New("Vehicle must be created via NewVehicle constructor")

// Status is the derived operational state of a seaplane.
type Status string

const (
	// StatusParked means a stationed-at fact places the vehicle at a port.
	StatusParked Status = "parked"

	// StatusInFlight means an in-progress shipment's trip references the vehicle.
	StatusInFlight Status = "in-flight"

	// StatusMaintenance means the vehicle is neither stationed nor flying.
	StatusMaintenance Status = "maintenance"
)

// Vehicle is a seaplane of the archipelago fleet.
// The identifier is the topology store's node identifier.
type Vehicle struct {
	id              string
	model           string
	capacityKg      int
	consumptionRate float64
	isConstructed   bool
}

// NewVehicle creates a new Vehicle value with validation.
func NewVehicle(id string, model string, capacityKg int, consumptionRate float64) (Vehicle, error) {
	v := Vehicle{
		isConstructed: true,
	}

	if err := errors.Join(
		v.setID(id),
		v.setModel(model),
		v.setCapacityKg(capacityKg),
		v.setConsumptionRate(consumptionRate),
	); err != nil {
		return Vehicle{}, err
	}

	return v, nil
}

// Validate ensures the Vehicle was properly constructed through NewVehicle.
func (v Vehicle) Validate() error {
	if !v.isConstructed {
		return ErrVehicleIsNotConstructed
	}
	return nil
}

// ID returns the topology identifier of the vehicle.
func (v Vehicle) ID() string {
	return v.id
}

// Model returns the seaplane's model name.
func (v Vehicle) Model() string {
	return v.model
}

// CapacityKg returns the maximum cargo weight in kilograms.
func (v Vehicle) CapacityKg() int {
	return v.capacityKg
}

// ConsumptionRate returns the fuel consumption in liters per 100 km.
func (v Vehicle) ConsumptionRate() float64 {
	return v.consumptionRate
}

// String returns a human-readable representation of the vehicle.
// It implements the fmt.Stringer interface.
func (v Vehicle) String() string {
	return fmt.Sprintf("Vehicle(%s, %s)", v.id, v.model)
}

func (v *Vehicle) setID(id string) error {
	if id == "" {
		return errs.NewValueIsRequiredError("id")
	}
	v.id = id
	return nil
}

func (v *Vehicle) setModel(model string) error {
	if model == "" {
		return errs.NewValueIsRequiredError("model")
	}
	v.model = model
	return nil
}

func (v *Vehicle) setCapacityKg(capacityKg int) error {
	if capacityKg <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("capacityKg is invalid",
			fmt.Errorf("%d is not greater than 0", capacityKg))
	}
	v.capacityKg = capacityKg
	return nil
}

func (v *Vehicle) setConsumptionRate(consumptionRate float64) error {
	if consumptionRate < 0 {
		return errs.NewValueIsInvalidErrorWithCause("consumptionRate is invalid",
			fmt.Errorf("%f is negative", consumptionRate))
	}
	v.consumptionRate = consumptionRate
	return nil
}
