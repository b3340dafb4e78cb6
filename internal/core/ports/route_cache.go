package ports

import (
	"context"

	"galapagos/internal/core/domain/model/route"
)

// RouteCache caches computed shortest paths keyed by the (origin,
// destination) port pair. Topology is immutable reference data, so cached
// routes only expire by TTL. A cache failure must never fail a query; the
// caller falls back to recomputing the route.
type RouteCache interface {
	// Get retrieves a cached route for the given port pair.
	// Reports false when the pair is not cached.
	Get(ctx context.Context, originPortID string, destinationPortID string) (route.Route, bool, error)

	// Set stores a computed route for the given port pair.
	Set(ctx context.Context, originPortID string, destinationPortID string, r route.Route) error
}
