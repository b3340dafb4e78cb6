// Package shipment provides the shipment record domain entity. One shipment
// record is created per allocated storage locker for a given order; every
// record of the same delivery planning run references the same trip.
package shipment

import (
	"errors"
	"time"

	"galapagos/internal/core/domain/model/kernel"
	"galapagos/internal/pkg/errs"
)

var (
	// ErrShipmentIsNotConstructed is returned when a Shipment instance was not
	// created through the NewShipment or RestoreShipment factory methods.
	ErrShipmentIsNotConstructed = errors.New("Shipment must be created via NewShipment constructor")
)

// Shipment represents a single item-unit of an order traveling aboard a trip.
// The locker reference is optional: it is cleared once the shipment is
// delivered and the locker returns to the shared pool.
type Shipment struct {
	id            kernel.UUID
	orderID       kernel.UUID
	tripID        kernel.UUID
	lockerID      *kernel.UUID
	status        Status
	estimatedDate time.Time
	isConstructed bool
}

// NewShipment creates a new Shipment in InProgress status.
//
// Parameters:
//   - id: Unique identifier for the shipment (must be valid UUID)
//   - orderID: The order this shipment fulfills
//   - tripID: The trip carrying the shipment
//   - lockerID: The storage locker holding the item-unit
//   - estimatedDate: The expected arrival date
func NewShipment(
	id kernel.UUID,
	orderID kernel.UUID,
	tripID kernel.UUID,
	lockerID kernel.UUID,
	estimatedDate time.Time,
) (*Shipment, error) {
	s := &Shipment{
		status:        InProgress,
		isConstructed: true,
	}

	if err := errors.Join(
		s.setID(id),
		s.setOrderID(orderID),
		s.setTripID(tripID),
		s.setLockerID(&lockerID),
		s.setEstimatedDate(estimatedDate),
	); err != nil {
		return nil, err
	}

	return s, nil
}

// RestoreShipment reconstructs a Shipment from persisted state.
// Unlike NewShipment it accepts the stored status and an optional locker
// reference, and is intended exclusively for repository rehydration.
func RestoreShipment(
	id kernel.UUID,
	orderID kernel.UUID,
	tripID kernel.UUID,
	lockerID *kernel.UUID,
	status Status,
	estimatedDate time.Time,
) (*Shipment, error) {
	s := &Shipment{
		isConstructed: true,
	}

	if err := errors.Join(
		s.setID(id),
		s.setOrderID(orderID),
		s.setTripID(tripID),
		s.setLockerID(lockerID),
		s.setStatus(status),
		s.setEstimatedDate(estimatedDate),
	); err != nil {
		return nil, err
	}

	return s, nil
}

// Validate ensures the Shipment instance was properly constructed through a constructor.
func (s *Shipment) Validate() error {
	if s == nil || !s.isConstructed {
		return ErrShipmentIsNotConstructed
	}
	return nil
}

// IsEqual compares two shipments by their unique identifiers.
func (s *Shipment) IsEqual(other *Shipment) bool {
	return other != nil && s.id.IsEqual(other.id)
}

// ID returns the shipment's unique identifier.
func (s *Shipment) ID() kernel.UUID {
	return s.id
}

// OrderID returns the identifier of the order this shipment fulfills.
func (s *Shipment) OrderID() kernel.UUID {
	return s.orderID
}

// TripID returns the identifier of the trip carrying the shipment.
func (s *Shipment) TripID() kernel.UUID {
	return s.tripID
}

// LockerID returns the storage locker holding the item-unit.
// Returns nil once the shipment is delivered and the locker released.
func (s *Shipment) LockerID() *kernel.UUID {
	return s.lockerID
}

// Status returns the current status of the shipment.
func (s *Shipment) Status() Status {
	return s.status
}

// EstimatedDate returns the expected arrival date.
func (s *Shipment) EstimatedDate() time.Time {
	return s.estimatedDate
}

// Deliver marks the shipment as arrived and drops the locker reference,
// returning the released locker's identifier so the caller can free the unit.
//
// This method enforces the following business rules:
//   - The shipment must be in InProgress status
//   - Delivered is a final state with no further transitions
func (s *Shipment) Deliver() (*kernel.UUID, error) {
	newStatus, err := s.status.Deliver()
	if err != nil {
		return nil, err
	}

	released := s.lockerID
	s.status = newStatus
	s.lockerID = nil
	return released, nil
}

func (s *Shipment) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	s.id = id
	return nil
}

func (s *Shipment) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	s.orderID = orderID
	return nil
}

func (s *Shipment) setTripID(tripID kernel.UUID) error {
	if err := tripID.Validate(); err != nil {
		return err
	}
	s.tripID = tripID
	return nil
}

func (s *Shipment) setLockerID(lockerID *kernel.UUID) error {
	if lockerID == nil {
		s.lockerID = nil
		return nil
	}
	if err := lockerID.Validate(); err != nil {
		return err
	}
	id := *lockerID
	s.lockerID = &id
	return nil
}

func (s *Shipment) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	s.status = status
	return nil
}

func (s *Shipment) setEstimatedDate(estimatedDate time.Time) error {
	if estimatedDate.IsZero() {
		return errs.NewValueIsRequiredError("estimatedDate")
	}
	s.estimatedDate = estimatedDate
	return nil
}
