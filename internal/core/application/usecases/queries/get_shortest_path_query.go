// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries return optimized read models for specific use cases.
package queries

import (
	"errors"

	"galapagos/internal/pkg/errs"
	"galapagos/internal/pkg/guard"
)

var (
	ErrGetShortestPathQueryIsNotConstructed = errors.New(
		"GetShortestPathQuery must be created via NewGetShortestPathQuery constructor",
	)
)

// GetShortestPathQuery computes the shortest route between two ports.
// Returns the full hop sequence with per-leg distances, the total distance,
// and the estimated flight duration.
//
// Example:
//
//	query, err := NewGetShortestPathQuery("PRT-AYORA", "PRT-VILLAMIL")
//	if err != nil {
//	    return fmt.Errorf("invalid port pair: %w", err)
//	}
//
//	handler := NewGetShortestPathQueryHandler(planner, cache)
//	result, err := handler.Handle(ctx, query)
type GetShortestPathQuery struct { //nolint:recvcheck //using for validation
	originPortID      string
	destinationPortID string

	guard guard.ConstructorGuard
}

// NewGetShortestPathQuery creates a query for the shortest route between
// the given ports. Both port identifiers are required.
func NewGetShortestPathQuery(originPortID string, destinationPortID string) (GetShortestPathQuery, error) {
	query := GetShortestPathQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		query.setOriginPortID(originPortID),
		query.setDestinationPortID(destinationPortID),
	); err != nil {
		return GetShortestPathQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetShortestPathQueryIsNotConstructed if validation fails.
func (q GetShortestPathQuery) Validate() error {
	return q.guard.Validate(ErrGetShortestPathQueryIsNotConstructed)
}

// OriginPortID returns the identifier of the departure port.
func (q GetShortestPathQuery) OriginPortID() string {
	return q.originPortID
}

// DestinationPortID returns the identifier of the arrival port.
func (q GetShortestPathQuery) DestinationPortID() string {
	return q.destinationPortID
}

func (q *GetShortestPathQuery) setOriginPortID(originPortID string) error {
	if originPortID == "" {
		return errs.NewValueIsRequiredError("originPortID")
	}

	q.originPortID = originPortID
	return nil
}

func (q *GetShortestPathQuery) setDestinationPortID(destinationPortID string) error {
	if destinationPortID == "" {
		return errs.NewValueIsRequiredError("destinationPortID")
	}

	q.destinationPortID = destinationPortID
	return nil
}
