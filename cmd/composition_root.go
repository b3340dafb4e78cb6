package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"galapagos/internal/adapters/out/neo4j"
	"galapagos/internal/adapters/out/postgres"
	"galapagos/internal/adapters/out/postgres/lockerrepo"
	"galapagos/internal/adapters/out/rediscache"
	"galapagos/internal/core/application/usecases/commands"
	"galapagos/internal/core/application/usecases/queries"
	"galapagos/internal/core/domain/services"
	"galapagos/internal/jobs"

	neo4jdriver "github.com/neo4j/neo4j-go-driver/v5/neo4j"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// CompositionRoot builds and holds the application's object graph: the
// Postgres record store, the Neo4j topology store, the Redis route cache
// and the domain services built on top of them. Command and query handlers
// are created on demand through the Create* methods.
type CompositionRoot struct {
	gormDB      *gorm.DB
	neo4jDriver neo4jdriver.DriverWithContext

	uowFactory postgres.GormUnitOfWorkFactory
	topology   *neo4j.TopologyStore
	routeCache *rediscache.RouteCache
	allocator  *services.LockerAllocator
	planner    *services.RoutePlanner

	logger *slog.Logger
}

// NewCompositionRoot connects to all external stores and wires the
// application services. The caller owns the returned root and must call
// Close on shutdown.
func NewCompositionRoot(ctx context.Context, configs Config) (*CompositionRoot, error) {
	dsn := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser,
		configs.DBPassword, configs.DBName, configs.DBSslMode,
	)

	gormDB, err := gorm.Open(postgresdriver.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to Postgres: %w", err)
	}

	driver, err := neo4jdriver.NewDriverWithContext(
		configs.Neo4jURI,
		neo4jdriver.BasicAuth(configs.Neo4jUser, configs.Neo4jPassword, ""),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to Neo4j: %w", err)
	}

	topology, err := neo4j.NewTopologyStore(driver, configs.Neo4jDatabase)
	if err != nil {
		return nil, err
	}

	routeCache, err := rediscache.NewRouteCache(configs.RedisURL, rediscache.DefaultTTL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	if err := routeCache.Ping(ctx); err != nil {
		return nil, fmt.Errorf("failed to reach Redis: %w", err)
	}

	lockerRepo := lockerrepo.NewGormLockerRepository(gormDB)

	allocator, err := services.NewLockerAllocator(lockerRepo)
	if err != nil {
		return nil, err
	}

	planner, err := services.NewRoutePlanner(topology)
	if err != nil {
		return nil, err
	}

	return &CompositionRoot{
		gormDB:      gormDB,
		neo4jDriver: driver,
		uowFactory:  *postgres.NewGormUnitOfWorkFactory(gormDB),
		topology:    topology,
		routeCache:  routeCache,
		allocator:   allocator,
		planner:     planner,
		logger:      slog.New(slog.NewJSONHandler(os.Stdout, nil)),
	}, nil
}

// Close releases the Neo4j and Redis connections.
func (c *CompositionRoot) Close(ctx context.Context) error {
	if err := c.neo4jDriver.Close(ctx); err != nil {
		return err
	}
	return c.routeCache.Close()
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateOrderCommandHandler(f)
}

func (c *CompositionRoot) CreatePlanDeliveryCommandHandler() commands.PlanDeliveryCommandHandler {
	var f commands.DeliveryUoWFactory = FuncDeliveryUoWFactory(func() commands.DeliveryUoW {
		return c.uowFactory.Create()
	})
	return commands.NewPlanDeliveryCommandHandler(f, c.allocator, c.planner)
}

func (c *CompositionRoot) CreateCompleteShipmentsCommandHandler() commands.CompleteShipmentsCommandHandler {
	var f commands.CompletionUoWFactory = FuncCompletionUoWFactory(func() commands.CompletionUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCompleteShipmentsCommandHandler(f, c.allocator)
}

func (c *CompositionRoot) CreateGetShortestPathQueryHandler() queries.GetShortestPathQueryHandler {
	return queries.NewGetShortestPathQueryHandler(c.planner, c.routeCache)
}

func (c *CompositionRoot) CreateListVehiclesQueryHandler() queries.ListVehiclesQueryHandler {
	return queries.NewListVehiclesQueryHandler(c.topology, c.gormDB)
}

func (c *CompositionRoot) CreateGetPortsQueryHandler() queries.GetPortsQueryHandler {
	return queries.NewGetPortsQueryHandler(c.topology)
}

func (c *CompositionRoot) CreateGetLockersQueryHandler() queries.GetLockersQueryHandler {
	return queries.NewGetLockersQueryHandler(c.gormDB)
}

// CreateJobManager wires the background jobs, currently the periodic
// shipment completion sweep.
func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(c.CreateCompleteShipmentsCommandHandler(), c.logger)
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncDeliveryUoWFactory func() commands.DeliveryUoW

func (f FuncDeliveryUoWFactory) Create() commands.DeliveryUoW {
	return f()
}

type FuncCompletionUoWFactory func() commands.CompletionUoW

func (f FuncCompletionUoWFactory) Create() commands.CompletionUoW {
	return f()
}
