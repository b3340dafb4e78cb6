package services

import (
	"context"
	"fmt"

	"galapagos/internal/core/domain/model/kernel"
	"galapagos/internal/core/ports"
	"galapagos/internal/pkg/errs"
)

// InsufficientLockersError is returned when fewer storage lockers are
// available than a reservation requests. It carries the requested and
// available counts so the caller can act on it. The error is deterministic
// and must never be retried.
type InsufficientLockersError struct {
	Requested int
	Available int
}

func (e *InsufficientLockersError) Error() string {
	return fmt.Sprintf("insufficient lockers: requested %d, available %d", e.Requested, e.Available)
}

// NewInsufficientLockersError creates an InsufficientLockersError.
func NewInsufficientLockersError(requested int, available int) error {
	return &InsufficientLockersError{
		Requested: requested,
		Available: available,
	}
}

// LockerAllocator is a domain service that reserves storage lockers for
// delivery planning runs. It is the single owner of the locker availability
// protocol: no other component flips availability flags.
//
// Reservations are all-or-nothing. Each individual claim is an atomic
// conditional update against the persisted availability flag, so two
// concurrent reservations can never obtain the same locker. When the pool
// runs out mid-reservation, every locker claimed so far is released before
// the reservation fails.
type LockerAllocator struct {
	lockers ports.LockerRepository
}

// NewLockerAllocator creates a new LockerAllocator backed by the given
// locker repository.
func NewLockerAllocator(lockers ports.LockerRepository) (*LockerAllocator, error) {
	if lockers == nil {
		return nil, fmt.Errorf("locker repository is required")
	}

	return &LockerAllocator{lockers: lockers}, nil
}

// Reserve claims count lockers from the available pool and returns their
// identifiers in claim order.
//
// The candidate set is fetched once, then claimed one by one with atomic
// conditional updates. Candidates snatched away by a concurrent reservation
// are skipped. If the candidates run out before count lockers are claimed,
// all partial claims are released and the reservation fails with an
// InsufficientLockersError; the same locker is never granted twice across
// concurrent callers.
func (a *LockerAllocator) Reserve(ctx context.Context, count int) ([]kernel.UUID, error) {
	if count < 1 {
		return nil, errs.NewValueIsInvalidErrorWithCause("count is invalid",
			fmt.Errorf("%d is not at least 1", count))
	}

	candidates, err := a.lockers.GetAllAvailable(ctx)
	if err != nil {
		return nil, err
	}

	if len(candidates) < count {
		return nil, NewInsufficientLockersError(count, len(candidates))
	}

	claimed := make([]kernel.UUID, 0, count)
	for _, candidate := range candidates {
		ok, claimErr := a.lockers.TryClaim(ctx, candidate.ID())
		if claimErr != nil {
			a.releaseAll(ctx, claimed)
			return nil, claimErr
		}
		if !ok {
			continue
		}

		claimed = append(claimed, candidate.ID())
		if len(claimed) == count {
			return claimed, nil
		}
	}

	a.releaseAll(ctx, claimed)

	// Recount after releasing so the error reports the pool as it stands,
	// not how many claims this caller had collected.
	available, err := a.lockers.GetAllAvailable(ctx)
	if err != nil {
		return nil, err
	}
	return nil, NewInsufficientLockersError(count, len(available))
}

// Release marks a single locker available again.
// Used when a shipment completes and by delivery planning compensation.
func (a *LockerAllocator) Release(ctx context.Context, lockerID kernel.UUID) error {
	return a.lockers.Release(ctx, lockerID)
}

// releaseAll returns partially claimed lockers to the pool, ignoring
// release errors. The reservation is already failing at this point.
func (a *LockerAllocator) releaseAll(ctx context.Context, lockerIDs []kernel.UUID) {
	for _, id := range lockerIDs {
		_ = a.lockers.Release(ctx, id)
	}
}
