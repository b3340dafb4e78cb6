// Package neo4j implements the topology store port against the archipelago
// graph. Ports are nodes connected by weighted ROUTE relationships seeded in
// both directions; seaplanes are Hydravion nodes optionally stationed at a
// port via STATIONNE_A.
package neo4j

import (
	"context"

	"galapagos/internal/core/domain/model/kernel"
	"galapagos/internal/core/domain/model/port"
	"galapagos/internal/core/domain/model/vehicle"
	"galapagos/internal/core/ports"
	"galapagos/internal/pkg/errs"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
)

// TopologyStore implements ports.TopologyStore over a Neo4j driver.
type TopologyStore struct {
	driver   neo4j.DriverWithContext
	database string
}

// NewTopologyStore creates a topology store over the given driver.
func NewTopologyStore(driver neo4j.DriverWithContext, database string) (*TopologyStore, error) {
	if driver == nil {
		return nil, errs.NewValueIsRequiredError("driver")
	}

	return &TopologyStore{
		driver:   driver,
		database: database,
	}, nil
}

// GetPort retrieves a single port node by its identifier.
func (s *TopologyStore) GetPort(ctx context.Context, portID string) (port.Port, error) {
	records, err := s.read(ctx, `
		MATCH (p:Port {id: $id})
		RETURN p.id AS id, p.nom AS name, p.ile AS island, p.lat AS lat, p.lng AS lng
	`, map[string]any{"id": portID})
	if err != nil {
		return port.Port{}, err
	}

	if len(records) == 0 {
		return port.Port{}, errs.NewObjectNotFoundError("port", portID)
	}

	return portFromRecord(records[0])
}

// GetAllPorts retrieves every port node.
func (s *TopologyStore) GetAllPorts(ctx context.Context) ([]port.Port, error) {
	records, err := s.read(ctx, `
		MATCH (p:Port)
		RETURN p.id AS id, p.nom AS name, p.ile AS island, p.lat AS lat, p.lng AS lng
	`, nil)
	if err != nil {
		return nil, err
	}

	result := make([]port.Port, 0, len(records))
	for _, record := range records {
		node, portErr := portFromRecord(record)
		if portErr != nil {
			return nil, portErr
		}
		result = append(result, node)
	}

	return result, nil
}

// GetRoutesFrom traverses the outgoing ROUTE relationships of the given
// port in the store's natural traversal order.
func (s *TopologyStore) GetRoutesFrom(ctx context.Context, portID string) ([]ports.RouteEdge, error) {
	records, err := s.read(ctx, `
		MATCH (a:Port {id: $id})-[r:ROUTE]->(b:Port)
		RETURN b.id AS to, r.km AS km
	`, map[string]any{"id": portID})
	if err != nil {
		return nil, err
	}

	edges := make([]ports.RouteEdge, 0, len(records))
	for _, record := range records {
		to, toErr := toString("to", record["to"])
		if toErr != nil {
			return nil, toErr
		}

		km, kmErr := toFloat64("km", record["km"])
		if kmErr != nil {
			return nil, kmErr
		}

		edges = append(edges, ports.RouteEdge{
			FromPortID: portID,
			ToPortID:   to,
			DistanceKm: km,
		})
	}

	return edges, nil
}

// GetVehicleFacts retrieves every seaplane node together with its
// stationed-at port when one exists.
func (s *TopologyStore) GetVehicleFacts(ctx context.Context) ([]ports.VehicleFact, error) {
	records, err := s.read(ctx, `
		MATCH (h:Hydravion)
		OPTIONAL MATCH (h)-[:STATIONNE_A]->(p:Port)
		RETURN h.id AS id, h.modele AS model, h.capacite AS capacity,
		       h.consommation AS consumption, p.id AS port
	`, nil)
	if err != nil {
		return nil, err
	}

	facts := make([]ports.VehicleFact, 0, len(records))
	for _, record := range records {
		fact, factErr := vehicleFactFromRecord(record)
		if factErr != nil {
			return nil, factErr
		}
		facts = append(facts, fact)
	}

	return facts, nil
}

// GetVehicle retrieves a single seaplane node by its identifier.
func (s *TopologyStore) GetVehicle(ctx context.Context, vehicleID string) (vehicle.Vehicle, error) {
	records, err := s.read(ctx, `
		MATCH (h:Hydravion {id: $id})
		RETURN h.id AS id, h.modele AS model, h.capacite AS capacity,
		       h.consommation AS consumption
	`, map[string]any{"id": vehicleID})
	if err != nil {
		return vehicle.Vehicle{}, err
	}

	if len(records) == 0 {
		return vehicle.Vehicle{}, errs.NewObjectNotFoundError("vehicle", vehicleID)
	}

	return vehicleFromRecord(records[0])
}

// read runs a Cypher query in a read session and returns one map per record.
func (s *TopologyStore) read(ctx context.Context, query string, params map[string]any) ([]map[string]any, error) {
	session := s.driver.NewSession(ctx, neo4j.SessionConfig{
		AccessMode:   neo4j.AccessModeRead,
		DatabaseName: s.database,
	})
	defer func() {
		_ = session.Close(ctx)
	}()

	result, err := session.ExecuteRead(ctx, func(tx neo4j.ManagedTransaction) (any, error) {
		cursor, runErr := tx.Run(ctx, query, params)
		if runErr != nil {
			return nil, runErr
		}

		records, collectErr := cursor.Collect(ctx)
		if collectErr != nil {
			return nil, collectErr
		}

		rows := make([]map[string]any, 0, len(records))
		for _, record := range records {
			rows = append(rows, record.AsMap())
		}
		return rows, nil
	})
	if err != nil {
		return nil, errs.NewPersistenceFailureError("neo4j", err)
	}

	return result.([]map[string]any), nil
}

func portFromRecord(record map[string]any) (port.Port, error) {
	id, err := toString("id", record["id"])
	if err != nil {
		return port.Port{}, err
	}

	name, err := toString("name", record["name"])
	if err != nil {
		return port.Port{}, err
	}

	island, err := toString("island", record["island"])
	if err != nil {
		return port.Port{}, err
	}

	lat, err := toFloat64("lat", record["lat"])
	if err != nil {
		return port.Port{}, err
	}

	lng, err := toFloat64("lng", record["lng"])
	if err != nil {
		return port.Port{}, err
	}

	location, err := kernel.NewGeoPoint(lat, lng)
	if err != nil {
		return port.Port{}, err
	}

	return port.NewPort(id, name, island, location)
}

func vehicleFromRecord(record map[string]any) (vehicle.Vehicle, error) {
	id, err := toString("id", record["id"])
	if err != nil {
		return vehicle.Vehicle{}, err
	}

	model, err := toString("model", record["model"])
	if err != nil {
		return vehicle.Vehicle{}, err
	}

	capacity, err := toInt("capacity", record["capacity"])
	if err != nil {
		return vehicle.Vehicle{}, err
	}

	consumption, err := toFloat64("consumption", record["consumption"])
	if err != nil {
		return vehicle.Vehicle{}, err
	}

	return vehicle.NewVehicle(id, model, capacity, consumption)
}

func vehicleFactFromRecord(record map[string]any) (ports.VehicleFact, error) {
	node, err := vehicleFromRecord(record)
	if err != nil {
		return ports.VehicleFact{}, err
	}

	var stationedAt *string
	if record["port"] != nil {
		portID, portErr := toString("port", record["port"])
		if portErr != nil {
			return ports.VehicleFact{}, portErr
		}
		stationedAt = &portID
	}

	return ports.VehicleFact{
		Vehicle:           node,
		StationedAtPortID: stationedAt,
	}, nil
}
