package lockerrepo_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"galapagos/internal/adapters/out/postgres/lockerrepo"
	"galapagos/internal/core/domain/model/kernel"
	"galapagos/internal/core/domain/model/locker"
	"galapagos/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// LockerRepositoryIntegrationTestSuite verifies the conditional claim
// semantics against a real PostgreSQL instance.
type LockerRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *lockerrepo.GormLockerRepository
}

func (suite *LockerRepositoryIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(&lockerrepo.LockerDTO{}))
}

func (suite *LockerRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE lockers").Error)
	suite.repository = lockerrepo.NewGormLockerRepository(suite.db)
}

func (suite *LockerRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *LockerRepositoryIntegrationTestSuite) addLockers(count int) []kernel.UUID {
	ctx := context.Background()
	ids := make([]kernel.UUID, 0, count)
	for i := 0; i < count; i++ {
		id := kernel.NewUUID()
		newLocker, err := locker.NewLocker(id)
		suite.Require().NoError(err)
		suite.Require().NoError(suite.repository.Add(ctx, newLocker))
		ids = append(ids, id)
	}
	return ids
}

func (suite *LockerRepositoryIntegrationTestSuite) TestTryClaim_AvailableLocker_Succeeds() {
	ctx := context.Background()
	ids := suite.addLockers(1)

	claimed, err := suite.repository.TryClaim(ctx, ids[0])

	suite.Require().NoError(err)
	suite.True(claimed)

	loaded, err := suite.repository.Get(ctx, ids[0])
	suite.Require().NoError(err)
	suite.False(loaded.IsAvailable())
}

func (suite *LockerRepositoryIntegrationTestSuite) TestTryClaim_AlreadyClaimed_ReportsFalse() {
	ctx := context.Background()
	ids := suite.addLockers(1)

	claimed, err := suite.repository.TryClaim(ctx, ids[0])
	suite.Require().NoError(err)
	suite.Require().True(claimed)

	claimed, err = suite.repository.TryClaim(ctx, ids[0])

	suite.Require().NoError(err)
	suite.False(claimed)
}

func (suite *LockerRepositoryIntegrationTestSuite) TestTryClaim_NonExistentLocker_ReturnsNotFound() {
	ctx := context.Background()

	claimed, err := suite.repository.TryClaim(ctx, kernel.NewUUID())

	suite.Require().Error(err)
	suite.ErrorIs(err, errs.ErrObjectNotFound)
	suite.False(claimed)
}

func (suite *LockerRepositoryIntegrationTestSuite) TestTryClaim_ConcurrentClaims_ExactlyOneWins() {
	ctx := context.Background()
	ids := suite.addLockers(1)

	const attempts = 8
	results := make([]bool, attempts)
	var wg sync.WaitGroup

	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			claimed, err := suite.repository.TryClaim(ctx, ids[0])
			suite.NoError(err)
			results[n] = claimed
		}(i)
	}
	wg.Wait()

	winners := 0
	for _, claimed := range results {
		if claimed {
			winners++
		}
	}
	suite.Equal(1, winners)
}

func (suite *LockerRepositoryIntegrationTestSuite) TestRelease_ClaimedLocker_BecomesAvailable() {
	ctx := context.Background()
	ids := suite.addLockers(1)

	claimed, err := suite.repository.TryClaim(ctx, ids[0])
	suite.Require().NoError(err)
	suite.Require().True(claimed)

	suite.Require().NoError(suite.repository.Release(ctx, ids[0]))

	loaded, err := suite.repository.Get(ctx, ids[0])
	suite.Require().NoError(err)
	suite.True(loaded.IsAvailable())
}

func (suite *LockerRepositoryIntegrationTestSuite) TestRelease_AvailableLocker_IsNoOp() {
	ctx := context.Background()
	ids := suite.addLockers(1)

	suite.Require().NoError(suite.repository.Release(ctx, ids[0]))

	loaded, err := suite.repository.Get(ctx, ids[0])
	suite.Require().NoError(err)
	suite.True(loaded.IsAvailable())
}

func (suite *LockerRepositoryIntegrationTestSuite) TestGetAllAvailable_ReturnsStableOrder() {
	ctx := context.Background()
	ids := suite.addLockers(4)

	claimed, err := suite.repository.TryClaim(ctx, ids[1])
	suite.Require().NoError(err)
	suite.Require().True(claimed)

	first, err := suite.repository.GetAllAvailable(ctx)
	suite.Require().NoError(err)
	suite.Len(first, 3)

	second, err := suite.repository.GetAllAvailable(ctx)
	suite.Require().NoError(err)
	suite.Require().Len(second, 3)

	for i := range first {
		suite.True(first[i].ID().IsEqual(second[i].ID()))
		suite.True(first[i].IsAvailable())
	}
}

func (suite *LockerRepositoryIntegrationTestSuite) TestGetAll_IncludesClaimedLockers() {
	ctx := context.Background()
	ids := suite.addLockers(3)

	claimed, err := suite.repository.TryClaim(ctx, ids[0])
	suite.Require().NoError(err)
	suite.Require().True(claimed)

	all, err := suite.repository.GetAll(ctx)

	suite.Require().NoError(err)
	suite.Len(all, 3)
}

func TestLockerRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(LockerRepositoryIntegrationTestSuite))
}
