// Package locker provides the storage unit domain entity for the Galapagos
// delivery system. A locker is a process-wide shared resource: its availability
// flag is the sole mutable field and is updated exclusively through the locker
// allocator's reservation protocol.
package locker

import (
	"errors"
	"fmt"

	"galapagos/internal/core/domain/model/kernel"
)

var (
	// ErrLockerIsNotConstructed is returned when a Locker instance was not created
	// through the NewLocker or RestoreLocker factory methods.
	ErrLockerIsNotConstructed = errors.New("Locker must be created via NewLocker constructor")
)

// Locker is a storage unit aboard a seaplane. Each unit of an ordered product
// occupies exactly one locker for the duration of a shipment. A locker marked
// unavailable is referenced by exactly one active shipment record.
type Locker struct {
	id            kernel.UUID
	available     bool
	isConstructed bool
}

// NewLocker creates a new, available Locker.
func NewLocker(id kernel.UUID) (*Locker, error) {
	l := &Locker{
		available:     true,
		isConstructed: true,
	}

	if err := l.setID(id); err != nil {
		return nil, err
	}

	return l, nil
}

// RestoreLocker reconstructs a Locker from persisted state, including its
// availability flag. Intended exclusively for repository rehydration.
func RestoreLocker(id kernel.UUID, available bool) (*Locker, error) {
	l := &Locker{
		available:     available,
		isConstructed: true,
	}

	if err := l.setID(id); err != nil {
		return nil, err
	}

	return l, nil
}

// Validate ensures the Locker instance was properly constructed through a constructor.
func (l *Locker) Validate() error {
	if l == nil || !l.isConstructed {
		return ErrLockerIsNotConstructed
	}
	return nil
}

// IsEqual compares two lockers by their unique identifiers.
func (l *Locker) IsEqual(other *Locker) bool {
	return other != nil && l.id.IsEqual(other.id)
}

// ID returns the locker's unique identifier.
func (l *Locker) ID() kernel.UUID {
	return l.id
}

// IsAvailable reports whether the locker is free for reservation.
func (l *Locker) IsAvailable() bool {
	return l.available
}

// Reserve marks the locker unavailable.
// Fails if the locker is already reserved.
func (l *Locker) Reserve() error {
	if !l.available {
		return fmt.Errorf("locker %s is already reserved", l.id)
	}

	l.available = false
	return nil
}

// Release marks the locker available again.
// Releasing an already-available locker is a no-op, which keeps delivery
// compensation and shipment completion safe to repeat.
func (l *Locker) Release() {
	l.available = true
}

func (l *Locker) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	l.id = id
	return nil
}
