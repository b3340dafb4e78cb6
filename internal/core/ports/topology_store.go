package ports

import (
	"context"

	"galapagos/internal/core/domain/model/port"
	"galapagos/internal/core/domain/model/vehicle"
)

// RouteEdge is a weighted sea route between two ports as stored in the
// topology graph. Edges are symmetric: an edge is traversable in both
// directions with equal weight. The distance is never negative.
type RouteEdge struct {
	FromPortID string
	ToPortID   string
	DistanceKm float64
}

// VehicleFact is a vehicle node together with its optional stationed-at
// relation. StationedAtPortID is nil while the vehicle has no stationed-at
// fact in the graph. Graph traversal may yield the same vehicle more than
// once; consumers deduplicate by vehicle identifier.
type VehicleFact struct {
	Vehicle           vehicle.Vehicle
	StationedAtPortID *string
}

// TopologyStore defines the read contract against the graph-oriented
// topology store holding ports, sea routes, vehicles, and stationed-at
// facts. The core never mutates the topology; seeding is external.
type TopologyStore interface {
	// GetPort retrieves a single port node by its identifier.
	// Returns an ObjectNotFound error if the node does not exist.
	GetPort(ctx context.Context, portID string) (port.Port, error)

	// GetAllPorts retrieves every port node.
	GetAllPorts(ctx context.Context) ([]port.Port, error)

	// GetRoutesFrom traverses the outgoing weighted route edges of the
	// given port, in the store's natural traversal order. The returned
	// edges all have FromPortID equal to portID.
	GetRoutesFrom(ctx context.Context, portID string) ([]RouteEdge, error)

	// GetVehicleFacts retrieves every vehicle node together with its
	// stationed-at relation when one exists. Duplicate facts for the same
	// vehicle may be returned.
	GetVehicleFacts(ctx context.Context) ([]VehicleFact, error)

	// GetVehicle retrieves a single vehicle node by its identifier.
	// Returns an ObjectNotFound error if the node does not exist.
	GetVehicle(ctx context.Context, vehicleID string) (vehicle.Vehicle, error)
}
