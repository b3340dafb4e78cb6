// Package lockerrepo provides data transfer objects and mapping functions for locker persistence.
// Locker claims and releases are individually atomic conditional updates, so this
// repository lives outside the unit of work and commits immediately.
package lockerrepo

import (
	"galapagos/internal/core/domain/model/kernel"
	"galapagos/internal/core/domain/model/locker"

	"github.com/google/uuid"
)

// LockerDTO represents the database structure for persisting storage lockers.
type LockerDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Available bool      `gorm:"not null;index"`
}

// TableName specifies the database table name for locker entities.
// Overrides GORM's default naming convention to use "lockers".
func (LockerDTO) TableName() string {
	return "lockers"
}

// fromDomain converts a locker domain aggregate to its database representation.
func fromDomain(aggregate *locker.Locker) LockerDTO {
	return LockerDTO{
		ID:        aggregate.ID().Bytes(),
		Available: aggregate.IsAvailable(),
	}
}

// toDomain converts a database DTO to a locker domain aggregate.
func toDomain(dto LockerDTO) (*locker.Locker, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return locker.RestoreLocker(id, dto.Available)
}
