package services

import (
	"context"
	"fmt"
	"math"

	"galapagos/internal/core/domain/model/route"
	"galapagos/internal/core/ports"
)

// CruiseSpeedKmh is the fleet's reference cruise speed used to derive a
// trip's estimated duration from its distance.
const CruiseSpeedKmh float64 = 250

// RoutePlanner is a domain service that computes the shortest sea route
// between two ports of the archipelago.
//
// Key responsibilities:
//   - Single-source shortest path over the non-negatively-weighted,
//     undirected route graph (Dijkstra)
//   - Deriving trip duration from distance at the reference cruise speed
//   - Reporting unreachable destinations as a NoRouteFoundError
//
// The planner traverses the topology store lazily: edges are fetched per
// port as the search expands, never the whole graph up front. Queries are
// pure reads and safe for unlimited concurrency.
type RoutePlanner struct {
	topology ports.TopologyStore
}

// NewRoutePlanner creates a new RoutePlanner backed by the given topology store.
func NewRoutePlanner(topology ports.TopologyStore) (*RoutePlanner, error) {
	if topology == nil {
		return nil, fmt.Errorf("topology store is required")
	}

	return &RoutePlanner{topology: topology}, nil
}

// DurationMinutes derives the estimated flight duration for a distance,
// rounding to the nearest whole minute.
func DurationMinutes(distanceKm float64) int {
	return int(math.Round(distanceKm / CruiseSpeedKmh * 60))
}

// ShortestPath computes the cheapest route from the origin port to the
// destination port.
//
// Both ports must exist in the topology; a missing port surfaces the store's
// ObjectNotFound error. When no sequence of edges connects the pair the
// method fails with a NoRouteFoundError and never returns a partial result.
// Ties between equally cheap paths are broken by the store's natural
// traversal order, so results are deterministic for a given topology.
func (p *RoutePlanner) ShortestPath(ctx context.Context, originPortID string, destinationPortID string) (route.Route, error) {
	if _, err := p.topology.GetPort(ctx, originPortID); err != nil {
		return route.Route{}, err
	}
	if _, err := p.topology.GetPort(ctx, destinationPortID); err != nil {
		return route.Route{}, err
	}

	hops, totalDistance, err := p.search(ctx, originPortID, destinationPortID)
	if err != nil {
		return route.Route{}, err
	}

	resolved, err := p.resolveHops(ctx, hops)
	if err != nil {
		return route.Route{}, err
	}

	return route.Route{
		TotalDistanceKm:      totalDistance,
		TotalDurationMinutes: DurationMinutes(totalDistance),
		Hops:                 resolved,
	}, nil
}

// pathNode tracks the search state for a discovered port.
type pathNode struct {
	distance   float64
	previous   string
	discovered int
	visited    bool
}

// search runs Dijkstra from origin until destination is settled, expanding
// the frontier by fetching each port's edges on demand. It returns the
// ordered port identifiers of the cheapest path and its total distance.
func (p *RoutePlanner) search(ctx context.Context, origin string, destination string) ([]string, float64, error) {
	nodes := map[string]*pathNode{
		origin: {distance: 0, discovered: 0},
	}
	discoveries := 1

	for {
		current, ok := nextUnvisited(nodes)
		if !ok {
			return nil, 0, route.NewNoRouteFoundError(origin, destination)
		}

		node := nodes[current]
		node.visited = true

		if current == destination {
			return reconstructPath(nodes, origin, destination), node.distance, nil
		}

		edges, err := p.topology.GetRoutesFrom(ctx, current)
		if err != nil {
			return nil, 0, err
		}

		for _, edge := range edges {
			candidate := node.distance + edge.DistanceKm

			neighbor, seen := nodes[edge.ToPortID]
			switch {
			case !seen:
				nodes[edge.ToPortID] = &pathNode{
					distance:   candidate,
					previous:   current,
					discovered: discoveries,
				}
				discoveries++
			case !neighbor.visited && candidate < neighbor.distance:
				neighbor.distance = candidate
				neighbor.previous = current
			}
		}
	}
}

// nextUnvisited selects the unvisited port with the smallest tentative
// distance, breaking ties by discovery order to keep the search
// deterministic.
func nextUnvisited(nodes map[string]*pathNode) (string, bool) {
	var (
		bestID    string
		best      *pathNode
		bestFound bool
	)

	for id, node := range nodes {
		if node.visited {
			continue
		}
		if !bestFound || node.distance < best.distance ||
			(node.distance == best.distance && node.discovered < best.discovered) {
			bestID, best, bestFound = id, node, true
		}
	}

	return bestID, bestFound
}

// reconstructPath walks the previous pointers back from destination to origin.
func reconstructPath(nodes map[string]*pathNode, origin string, destination string) []string {
	var reversed []string
	for current := destination; ; current = nodes[current].previous {
		reversed = append(reversed, current)
		if current == origin {
			break
		}
	}

	path := make([]string, len(reversed))
	for i, id := range reversed {
		path[len(path)-1-i] = id
	}
	return path
}

// resolveHops turns the ordered port identifiers into route hops carrying
// display names and per-hop distances. The distance to the next hop is
// recovered from the traversed edges; the final hop carries none.
func (p *RoutePlanner) resolveHops(ctx context.Context, pathIDs []string) ([]route.Hop, error) {
	hops := make([]route.Hop, len(pathIDs))

	for i, portID := range pathIDs {
		node, err := p.topology.GetPort(ctx, portID)
		if err != nil {
			return nil, err
		}

		hops[i] = route.Hop{
			PortID:   portID,
			PortName: node.Name(),
		}

		if i == len(pathIDs)-1 {
			continue
		}

		distance, err := p.edgeDistance(ctx, portID, pathIDs[i+1])
		if err != nil {
			return nil, err
		}
		hops[i].DistanceToNext = &distance
	}

	return hops, nil
}

// edgeDistance looks up the weight of the direct edge between two adjacent
// path ports.
func (p *RoutePlanner) edgeDistance(ctx context.Context, fromPortID string, toPortID string) (float64, error) {
	edges, err := p.topology.GetRoutesFrom(ctx, fromPortID)
	if err != nil {
		return 0, err
	}

	for _, edge := range edges {
		if edge.ToPortID == toPortID {
			return edge.DistanceKm, nil
		}
	}

	return 0, fmt.Errorf("no direct route between %s and %s", fromPortID, toPortID)
}
