// Package shipmentrepo provides data transfer objects and mapping functions for shipment persistence.
// This package implements the repository pattern for shipment records, handling
// the conversion between domain entities and database representations.
package shipmentrepo

import (
	"time"

	"galapagos/internal/core/domain/model/kernel"
	"galapagos/internal/core/domain/model/shipment"

	"github.com/google/uuid"
)

// ShipmentDTO represents the database structure for persisting shipment records.
// The locker reference is nullable; it drops when the shipment is delivered.
type ShipmentDTO struct {
	ID            uuid.UUID  `gorm:"type:uuid;primaryKey"`
	OrderID       uuid.UUID  `gorm:"type:uuid;not null;index"`
	TripID        uuid.UUID  `gorm:"type:uuid;not null;index"`
	LockerID      *uuid.UUID `gorm:"type:uuid"`
	Status        int        `gorm:"type:int;not null;index"`
	EstimatedDate time.Time  `gorm:"not null;index"`
}

// TableName specifies the database table name for shipment entities.
// Overrides GORM's default naming convention to use "shipments".
func (ShipmentDTO) TableName() string {
	return "shipments"
}

// fromDomain converts a shipment domain aggregate to its database representation.
func fromDomain(aggregate *shipment.Shipment) ShipmentDTO {
	var lockerID *uuid.UUID
	if id := aggregate.LockerID(); id != nil {
		raw := id.Bytes()
		lockerID = &raw
	}

	return ShipmentDTO{
		ID:            aggregate.ID().Bytes(),
		OrderID:       aggregate.OrderID().Bytes(),
		TripID:        aggregate.TripID().Bytes(),
		LockerID:      lockerID,
		Status:        int(aggregate.Status()),
		EstimatedDate: aggregate.EstimatedDate(),
	}
}

// toDomain converts a database DTO to a shipment domain aggregate.
// Reconstructs the record including its optional locker reference using RestoreShipment.
func toDomain(dto ShipmentDTO) (*shipment.Shipment, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}

	tripID, err := kernel.UUIDFromBytes(dto.TripID[:])
	if err != nil {
		return nil, err
	}

	var lockerID *kernel.UUID
	if dto.LockerID != nil {
		lID, lockerErr := kernel.UUIDFromBytes((*dto.LockerID)[:])
		if lockerErr != nil {
			return nil, lockerErr
		}
		lockerID = &lID
	}

	return shipment.RestoreShipment(
		id, orderID, tripID, lockerID, shipment.Status(dto.Status), dto.EstimatedDate)
}
