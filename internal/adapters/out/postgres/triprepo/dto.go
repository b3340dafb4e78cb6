// Package triprepo provides data transfer objects and mapping functions for trip persistence.
// Trips are immutable once planned, so the repository only inserts and reads.
package triprepo

import (
	"galapagos/internal/core/domain/model/kernel"
	"galapagos/internal/core/domain/model/trip"

	"github.com/google/uuid"
)

// TripDTO represents the database structure for persisting trips.
type TripDTO struct {
	ID                uuid.UUID `gorm:"type:uuid;primaryKey"`
	VehicleID         string    `gorm:"type:varchar(255);not null;index"`
	OriginPortID      string    `gorm:"type:varchar(255);not null"`
	DestinationPortID string    `gorm:"type:varchar(255);not null"`
	DistanceKm        float64   `gorm:"type:numeric;not null"`
	DurationMinutes   int       `gorm:"type:int;not null"`
}

// TableName specifies the database table name for trip entities.
// Overrides GORM's default naming convention to use "trips".
func (TripDTO) TableName() string {
	return "trips"
}

// fromDomain converts a trip domain aggregate to its database representation.
func fromDomain(aggregate *trip.Trip) TripDTO {
	return TripDTO{
		ID:                aggregate.ID().Bytes(),
		VehicleID:         aggregate.VehicleID(),
		OriginPortID:      aggregate.OriginPortID(),
		DestinationPortID: aggregate.DestinationPortID(),
		DistanceKm:        aggregate.DistanceKm(),
		DurationMinutes:   aggregate.DurationMinutes(),
	}
}

// toDomain converts a database DTO to a trip domain aggregate.
func toDomain(dto TripDTO) (*trip.Trip, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return trip.RestoreTrip(
		id, dto.VehicleID, dto.OriginPortID, dto.DestinationPortID,
		dto.DistanceKm, dto.DurationMinutes)
}
