package queries

import (
	"context"

	"galapagos/internal/core/domain/model/route"
	"galapagos/internal/core/domain/services"
	"galapagos/internal/core/ports"
)

// GetShortestPathQueryHandler serves shortest-route lookups, backed by a
// cache in front of the planner. Port topology is immutable reference data,
// so cached routes stay valid until their TTL expires. Cache failures fall
// back to recomputing the route; they never fail the query.
//
// Example:
//
//	handler := NewGetShortestPathQueryHandler(planner, cache)
//	query, _ := NewGetShortestPathQuery("PRT-AYORA", "PRT-VILLAMIL")
//
//	result, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to compute route: %w", err)
//	}
type GetShortestPathQueryHandler struct {
	planner *services.RoutePlanner
	cache   ports.RouteCache
}

// NewGetShortestPathQueryHandler creates a handler for shortest-route queries.
// The cache is optional; pass nil to always compute.
func NewGetShortestPathQueryHandler(planner *services.RoutePlanner, cache ports.RouteCache) GetShortestPathQueryHandler {
	return GetShortestPathQueryHandler{
		planner: planner,
		cache:   cache,
	}
}

// Handle executes the query and returns the shortest route between the two
// ports.
func (h GetShortestPathQueryHandler) Handle(
	ctx context.Context,
	query GetShortestPathQuery,
) (route.Route, error) {
	if err := query.Validate(); err != nil {
		return route.Route{}, err
	}

	if h.cache != nil {
		cached, found, err := h.cache.Get(ctx, query.OriginPortID(), query.DestinationPortID())
		if err == nil && found {
			return cached, nil
		}
	}

	computed, err := h.planner.ShortestPath(ctx, query.OriginPortID(), query.DestinationPortID())
	if err != nil {
		return route.Route{}, err
	}

	if h.cache != nil {
		_ = h.cache.Set(ctx, query.OriginPortID(), query.DestinationPortID(), computed)
	}

	return computed, nil
}
