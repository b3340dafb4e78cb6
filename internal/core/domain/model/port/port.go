// Package port provides the seaport domain value object. Ports are immutable
// reference data owned by the topology store; the core reads them for route
// planning and presentation but never mutates them.
package port

import (
	"errors"
	"fmt"

	"galapagos/internal/core/domain/model/kernel"
	"galapagos/internal/pkg/errs"
)

// ErrPortIsNotConstructed is returned when attempting to use an improperly
// initialized Port. Ports must be created using the NewPort constructor.
var ErrPortIsNotConstructed = errors.New("Port must be created via NewPort constructor")

// Port is a seaplane landing site on one of the islands.
// The identifier is the topology store's node identifier and is unique
// across the archipelago.
type Port struct {
	id            string
	name          string
	island        string
	location      kernel.GeoPoint
	isConstructed bool
}

// NewPort creates a new Port value with validation.
func NewPort(id string, name string, island string, location kernel.GeoPoint) (Port, error) {
	p := Port{
		isConstructed: true,
	}

	if err := errors.Join(
		p.setID(id),
		p.setName(name),
		p.setIsland(island),
		p.setLocation(location),
	); err != nil {
		return Port{}, err
	}

	return p, nil
}

// Validate ensures the Port was properly constructed through NewPort.
func (p Port) Validate() error {
	if !p.isConstructed {
		return ErrPortIsNotConstructed
	}
	return nil
}

// ID returns the topology identifier of the port.
func (p Port) ID() string {
	return p.id
}

// Name returns the port's display name.
func (p Port) Name() string {
	return p.name
}

// Island returns the name of the island the port belongs to.
func (p Port) Island() string {
	return p.island
}

// Location returns the port's geographic position.
func (p Port) Location() kernel.GeoPoint {
	return p.location
}

// String returns a human-readable representation of the port.
// It implements the fmt.Stringer interface.
func (p Port) String() string {
	return fmt.Sprintf("Port(%s, %s)", p.id, p.name)
}

func (p *Port) setID(id string) error {
	if id == "" {
		return errs.NewValueIsRequiredError("id")
	}
	p.id = id
	return nil
}

func (p *Port) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	p.name = name
	return nil
}

func (p *Port) setIsland(island string) error {
	if island == "" {
		return errs.NewValueIsRequiredError("island")
	}
	p.island = island
	return nil
}

func (p *Port) setLocation(location kernel.GeoPoint) error {
	if err := location.Validate(); err != nil {
		return err
	}
	p.location = location
	return nil
}
