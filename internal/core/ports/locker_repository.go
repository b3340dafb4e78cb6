package ports

import (
	"context"

	"galapagos/internal/core/domain/model/kernel"
	"galapagos/internal/core/domain/model/locker"
)

// LockerRepository defines the persistence contract for storage lockers.
//
// Unlike the other repositories it is not part of the unit of work: claims
// and releases are individually atomic conditional updates that commit
// immediately, so their effect is visible to concurrent delivery planning
// runs the moment they happen. The allocator compensates released claims
// explicitly when a later orchestration step fails.
type LockerRepository interface {
	// Add persists a new locker to storage.
	Add(ctx context.Context, aggregate *locker.Locker) error

	// Get retrieves a locker by its unique identifier.
	// Returns an ObjectNotFound error if no locker exists with the given id.
	Get(ctx context.Context, id kernel.UUID) (*locker.Locker, error)

	// GetAllAvailable retrieves every locker currently marked available,
	// in a deterministic order.
	GetAllAvailable(ctx context.Context) ([]*locker.Locker, error)

	// GetAll retrieves every locker regardless of availability.
	GetAll(ctx context.Context) ([]*locker.Locker, error)

	// TryClaim atomically marks the locker unavailable, but only if it is
	// still available at mutation time. Reports false without error when
	// another caller claimed the locker first.
	TryClaim(ctx context.Context, id kernel.UUID) (bool, error)

	// Release marks the locker available again.
	// Releasing an already-available locker is a no-op.
	Release(ctx context.Context, id kernel.UUID) error
}
