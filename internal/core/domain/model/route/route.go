// Package route provides the computed route value objects produced by the
// route planner. A Route is a read model: it is derived from the topology
// store on demand and never persisted, only cached.
package route

import (
	"fmt"
)

// NoRouteFoundError is returned when no sequence of route edges connects the
// origin port to the destination port. The planner never returns a partial or
// infinite-distance result. The error is deterministic and must never be
// retried.
type NoRouteFoundError struct {
	FromPortID string
	ToPortID   string
}

func (e *NoRouteFoundError) Error() string {
	return fmt.Sprintf("no route found from port %s to port %s", e.FromPortID, e.ToPortID)
}

// NewNoRouteFoundError creates a NoRouteFoundError for the given port pair.
func NewNoRouteFoundError(fromPortID string, toPortID string) error {
	return &NoRouteFoundError{
		FromPortID: fromPortID,
		ToPortID:   toPortID,
	}
}

// Hop is a single step of a computed route.
// DistanceToNext is the edge weight to the following hop in kilometers,
// nil for the final hop.
type Hop struct {
	PortID         string   `json:"portId"`
	PortName       string   `json:"portName"`
	DistanceToNext *float64 `json:"distanceToNext,omitempty"`
}

// Route is the result of a shortest path computation between two ports.
// TotalDistanceKm equals the sum of per-hop distances; TotalDurationMinutes
// is derived deterministically from the distance at the fleet's reference
// cruise speed.
type Route struct {
	TotalDistanceKm      float64 `json:"totalDistanceKm"`
	TotalDurationMinutes int     `json:"totalDurationMinutes"`
	Hops                 []Hop   `json:"hops"`
}

// Origin returns the identifier of the first hop's port.
func (r Route) Origin() string {
	if len(r.Hops) == 0 {
		return ""
	}
	return r.Hops[0].PortID
}

// Destination returns the identifier of the last hop's port.
func (r Route) Destination() string {
	if len(r.Hops) == 0 {
		return ""
	}
	return r.Hops[len(r.Hops)-1].PortID
}
