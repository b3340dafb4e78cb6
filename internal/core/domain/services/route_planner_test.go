package services_test

import (
	"context"
	"testing"

	"galapagos/internal/core/domain/model/kernel"
	"galapagos/internal/core/domain/model/port"
	"galapagos/internal/core/domain/model/route"
	"galapagos/internal/core/domain/model/vehicle"
	"galapagos/internal/core/domain/services"
	"galapagos/internal/core/ports"
	"galapagos/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeTopology is an in-memory topology store for planner tests.
// Edges are registered symmetrically, matching the real route graph.
type fakeTopology struct {
	ports map[string]port.Port
	edges map[string][]ports.RouteEdge
}

func newFakeTopology(t *testing.T, portIDs ...string) *fakeTopology {
	t.Helper()
	topo := &fakeTopology{
		ports: make(map[string]port.Port),
		edges: make(map[string][]ports.RouteEdge),
	}
	for _, id := range portIDs {
		location, err := kernel.NewGeoPoint(-0.5, -90.5)
		require.NoError(t, err)
		p, err := port.NewPort(id, "Port "+id, "Santa Cruz", location)
		require.NoError(t, err)
		topo.ports[id] = p
	}
	return topo
}

func (f *fakeTopology) addEdge(from, to string, distanceKm float64) {
	f.edges[from] = append(f.edges[from], ports.RouteEdge{FromPortID: from, ToPortID: to, DistanceKm: distanceKm})
	f.edges[to] = append(f.edges[to], ports.RouteEdge{FromPortID: to, ToPortID: from, DistanceKm: distanceKm})
}

func (f *fakeTopology) GetPort(_ context.Context, portID string) (port.Port, error) {
	p, ok := f.ports[portID]
	if !ok {
		return port.Port{}, errs.NewObjectNotFoundError("portID", portID)
	}
	return p, nil
}

func (f *fakeTopology) GetAllPorts(_ context.Context) ([]port.Port, error) {
	all := make([]port.Port, 0, len(f.ports))
	for _, p := range f.ports {
		all = append(all, p)
	}
	return all, nil
}

func (f *fakeTopology) GetRoutesFrom(_ context.Context, portID string) ([]ports.RouteEdge, error) {
	return f.edges[portID], nil
}

func (f *fakeTopology) GetVehicleFacts(_ context.Context) ([]ports.VehicleFact, error) {
	return nil, nil
}

func (f *fakeTopology) GetVehicle(_ context.Context, vehicleID string) (vehicle.Vehicle, error) {
	return vehicle.Vehicle{}, errs.NewObjectNotFoundError("vehicleID", vehicleID)
}

func newPlanner(t *testing.T, topo *fakeTopology) *services.RoutePlanner {
	t.Helper()
	planner, err := services.NewRoutePlanner(topo)
	require.NoError(t, err)
	return planner
}

func TestNewRoutePlanner(t *testing.T) {
	t.Run("requires topology store", func(t *testing.T) {
		planner, err := services.NewRoutePlanner(nil)
		require.Error(t, err)
		assert.Nil(t, planner)
	})
}

func TestRoutePlanner_ShortestPath_Chain(t *testing.T) {
	topo := newFakeTopology(t, "P1", "P2", "P3", "P4")
	topo.addEdge("P1", "P2", 12)
	topo.addEdge("P2", "P3", 18)
	topo.addEdge("P3", "P4", 20)
	planner := newPlanner(t, topo)

	result, err := planner.ShortestPath(t.Context(), "P1", "P4")

	require.NoError(t, err)
	assert.InEpsilon(t, 50.0, result.TotalDistanceKm, 1e-9)
	assert.Equal(t, 12, result.TotalDurationMinutes)

	require.Len(t, result.Hops, 4)
	assert.Equal(t, "P1", result.Hops[0].PortID)
	assert.Equal(t, "P2", result.Hops[1].PortID)
	assert.Equal(t, "P3", result.Hops[2].PortID)
	assert.Equal(t, "P4", result.Hops[3].PortID)
	assert.Equal(t, "Port P1", result.Hops[0].PortName)

	require.NotNil(t, result.Hops[0].DistanceToNext)
	assert.InEpsilon(t, 12.0, *result.Hops[0].DistanceToNext, 1e-9)
	require.NotNil(t, result.Hops[1].DistanceToNext)
	assert.InEpsilon(t, 18.0, *result.Hops[1].DistanceToNext, 1e-9)
	require.NotNil(t, result.Hops[2].DistanceToNext)
	assert.InEpsilon(t, 20.0, *result.Hops[2].DistanceToNext, 1e-9)
	assert.Nil(t, result.Hops[3].DistanceToNext)

	assert.Equal(t, "P1", result.Origin())
	assert.Equal(t, "P4", result.Destination())
}

func TestRoutePlanner_ShortestPath_Symmetry(t *testing.T) {
	topo := newFakeTopology(t, "P1", "P2", "P3")
	topo.addEdge("P1", "P2", 30)
	topo.addEdge("P2", "P3", 45)
	planner := newPlanner(t, topo)

	pairs := [][2]string{{"P1", "P2"}, {"P2", "P3"}}
	weights := []float64{30, 45}

	for i, pair := range pairs {
		forward, err := planner.ShortestPath(t.Context(), pair[0], pair[1])
		require.NoError(t, err)
		backward, err := planner.ShortestPath(t.Context(), pair[1], pair[0])
		require.NoError(t, err)

		assert.InEpsilon(t, weights[i], forward.TotalDistanceKm, 1e-9)
		assert.InEpsilon(t, weights[i], backward.TotalDistanceKm, 1e-9)
		assert.Len(t, forward.Hops, 2)
		assert.Len(t, backward.Hops, 2)
	}
}

func TestRoutePlanner_ShortestPath_PrefersCheaperDetour(t *testing.T) {
	topo := newFakeTopology(t, "A", "B", "C")
	topo.addEdge("A", "B", 10)
	topo.addEdge("B", "C", 10)
	topo.addEdge("A", "C", 25)
	planner := newPlanner(t, topo)

	result, err := planner.ShortestPath(t.Context(), "A", "C")

	require.NoError(t, err)
	assert.InEpsilon(t, 20.0, result.TotalDistanceKm, 1e-9)
	require.Len(t, result.Hops, 3)
	assert.Equal(t, "B", result.Hops[1].PortID)

	sum := 0.0
	for _, hop := range result.Hops {
		if hop.DistanceToNext != nil {
			sum += *hop.DistanceToNext
		}
	}
	assert.InEpsilon(t, result.TotalDistanceKm, sum, 1e-9)
}

func TestRoutePlanner_ShortestPath_TieBreakIsDeterministic(t *testing.T) {
	topo := newFakeTopology(t, "A", "B", "C", "D")
	topo.addEdge("A", "B", 10)
	topo.addEdge("A", "C", 10)
	topo.addEdge("B", "D", 10)
	topo.addEdge("C", "D", 10)
	planner := newPlanner(t, topo)

	for range 10 {
		result, err := planner.ShortestPath(t.Context(), "A", "D")
		require.NoError(t, err)
		require.Len(t, result.Hops, 3)
		assert.Equal(t, "B", result.Hops[1].PortID)
	}
}

func TestRoutePlanner_ShortestPath_SamePort(t *testing.T) {
	topo := newFakeTopology(t, "P1", "P2")
	topo.addEdge("P1", "P2", 12)
	planner := newPlanner(t, topo)

	result, err := planner.ShortestPath(t.Context(), "P1", "P1")

	require.NoError(t, err)
	assert.Zero(t, result.TotalDistanceKm)
	assert.Zero(t, result.TotalDurationMinutes)
	require.Len(t, result.Hops, 1)
	assert.Equal(t, "P1", result.Hops[0].PortID)
	assert.Nil(t, result.Hops[0].DistanceToNext)
}

func TestRoutePlanner_ShortestPath_Unreachable(t *testing.T) {
	topo := newFakeTopology(t, "P1", "P2", "P3")
	topo.addEdge("P1", "P2", 12)
	planner := newPlanner(t, topo)

	result, err := planner.ShortestPath(t.Context(), "P1", "P3")

	require.Error(t, err)
	var noRouteErr *route.NoRouteFoundError
	require.ErrorAs(t, err, &noRouteErr)
	assert.Equal(t, "P1", noRouteErr.FromPortID)
	assert.Equal(t, "P3", noRouteErr.ToPortID)
	assert.Empty(t, result.Hops)
}

func TestRoutePlanner_ShortestPath_UnknownPort(t *testing.T) {
	topo := newFakeTopology(t, "P1")
	planner := newPlanner(t, topo)

	_, err := planner.ShortestPath(t.Context(), "P1", "NOPE")

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrObjectNotFound)
}

func TestDurationMinutes(t *testing.T) {
	tests := []struct {
		distanceKm float64
		want       int
	}{
		{50, 12},
		{0, 0},
		{250, 60},
		{125, 30},
		{10, 2},   // 2.4 rounds down
		{11, 3},   // 2.64 rounds up
		{260, 62}, // 62.4 rounds down
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, services.DurationMinutes(tt.distanceKm))
	}
}
