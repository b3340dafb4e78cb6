package queries

import (
	"errors"

	"galapagos/internal/core/domain/model/kernel"
	"galapagos/internal/pkg/guard"
)

var (
	ErrGetLockersQueryIsNotConstructed = errors.New(
		"GetLockersQuery must be created via NewGetLockersQuery constructor",
	)
)

// GetLockersQuery retrieves every storage locker with its availability.
// Used for monitoring locker pool utilization.
type GetLockersQuery struct {
	guard guard.ConstructorGuard
}

// NewGetLockersQuery creates a query to retrieve all lockers.
func NewGetLockersQuery() GetLockersQuery {
	return GetLockersQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetLockersQueryIsNotConstructed if validation fails.
func (q GetLockersQuery) Validate() error {
	return q.guard.Validate(ErrGetLockersQueryIsNotConstructed)
}

// GetLockersQueryResponse represents locker information in the read model.
type GetLockersQueryResponse struct {
	ID        kernel.UUID
	Available bool
}
