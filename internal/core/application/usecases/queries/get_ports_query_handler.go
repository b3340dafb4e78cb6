package queries

import (
	"context"
	"sort"

	"galapagos/internal/core/ports"
)

// GetPortsQueryHandler retrieves the port list from the topology store.
type GetPortsQueryHandler struct {
	topology ports.TopologyStore
}

// NewGetPortsQueryHandler creates a handler for port listing queries.
func NewGetPortsQueryHandler(topology ports.TopologyStore) GetPortsQueryHandler {
	return GetPortsQueryHandler{topology: topology}
}

// Handle executes the query and returns all ports sorted by name.
func (h GetPortsQueryHandler) Handle(
	ctx context.Context,
	query GetPortsQuery,
) ([]GetPortsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	nodes, err := h.topology.GetAllPorts(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]GetPortsQueryResponse, 0, len(nodes))
	for _, node := range nodes {
		responses = append(responses, GetPortsQueryResponse{
			ID:       node.ID(),
			Name:     node.Name(),
			Island:   node.Island(),
			Location: node.Location(),
		})
	}

	sort.Slice(responses, func(i, j int) bool {
		return responses[i].Name < responses[j].Name
	})

	return responses, nil
}
