package queries

import (
	"errors"

	"galapagos/internal/core/domain/model/kernel"
	"galapagos/internal/pkg/guard"
)

var (
	ErrGetPortsQueryIsNotConstructed = errors.New(
		"GetPortsQuery must be created via NewGetPortsQuery constructor",
	)
)

// GetPortsQuery retrieves every port in the archipelago topology.
// Returns port identities, islands, and coordinates for display and for
// building route requests.
type GetPortsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetPortsQuery creates a query to retrieve all ports.
func NewGetPortsQuery() GetPortsQuery {
	return GetPortsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetPortsQueryIsNotConstructed if validation fails.
func (q GetPortsQuery) Validate() error {
	return q.guard.Validate(ErrGetPortsQueryIsNotConstructed)
}

// GetPortsQueryResponse represents port information in the read model.
type GetPortsQueryResponse struct {
	ID       string
	Name     string
	Island   string
	Location kernel.GeoPoint
}
