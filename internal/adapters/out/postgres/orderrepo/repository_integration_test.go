package orderrepo_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"tradematch/internal/adapters/out/postgres/orderrepo"
	"tradematch/internal/core/domain/model/kernel"
	"tradematch/internal/core/domain/model/order"
	"tradematch/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// OrderRepositoryIntegrationTestSuite provides integration tests for OrderRepository
// using PostgreSQL containers to verify database persistence behavior,
// in particular the atomicity of the conditional claim write.
type OrderRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *orderrepo.GormOrderRepository
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupSuite() {
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

	suite.Require().NoError(db.AutoMigrate(&orderrepo.OrderDTO{}))
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE orders").Error)
	suite.repository = orderrepo.NewGormOrderRepository(suite.db)
}

func (suite *OrderRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *OrderRepositoryIntegrationTestSuite) userID(id int64) kernel.UserID {
	userID, err := kernel.NewUserID(id)
	suite.Require().NoError(err)
	return userID
}

func (suite *OrderRepositoryIntegrationTestSuite) createTestOrder() *order.Order {
	contact, err := kernel.NewPhone("+998907654321")
	suite.Require().NoError(err)
	o, err := order.NewOrder(suite.userID(200), "Plumber", "North", contact, "leaking pipe")
	suite.Require().NoError(err)
	suite.Require().NoError(suite.repository.Add(context.Background(), o))
	return o
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAdd_AssignsGeneratedID() {
	o := suite.createTestOrder()
	suite.Positive(o.ID())

	second := suite.createTestOrder()
	suite.Greater(second.ID(), o.ID())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_RoundTripsAggregate() {
	ctx := context.Background()
	o := suite.createTestOrder()

	stored, err := suite.repository.Get(ctx, o.ID())
	suite.Require().NoError(err)
	suite.Equal(o.ID(), stored.ID())
	suite.Equal("Plumber", stored.Trade())
	suite.Equal("North", stored.Region())
	suite.Equal("leaking pipe", stored.Comment())
	suite.Equal(order.New, stored.Status())
	suite.Nil(stored.AcceptedBy())
	suite.Nil(stored.AcceptedAt())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_NonexistentOrder_ReturnsNotFound() {
	_, err := suite.repository.Get(context.Background(), 424242)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAccept_NewOrder_Wins() {
	ctx := context.Background()
	o := suite.createTestOrder()
	workerID := suite.userID(100)

	won, err := suite.repository.Accept(ctx, o.ID(), workerID, time.Now().UTC())
	suite.Require().NoError(err)
	suite.True(won)

	stored, err := suite.repository.Get(ctx, o.ID())
	suite.Require().NoError(err)
	suite.Equal(order.Accepted, stored.Status())
	suite.Require().NotNil(stored.AcceptedBy())
	suite.True(stored.AcceptedBy().IsEqual(workerID))
	suite.NotNil(stored.AcceptedAt())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAccept_AlreadyAccepted_Loses() {
	ctx := context.Background()
	o := suite.createTestOrder()

	won, err := suite.repository.Accept(ctx, o.ID(), suite.userID(100), time.Now().UTC())
	suite.Require().NoError(err)
	suite.True(won)

	won, err = suite.repository.Accept(ctx, o.ID(), suite.userID(101), time.Now().UTC())
	suite.Require().NoError(err)
	suite.False(won)

	// The first acceptor is still on record.
	stored, err := suite.repository.Get(ctx, o.ID())
	suite.Require().NoError(err)
	suite.True(stored.AcceptedBy().IsEqual(suite.userID(100)))
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAccept_RepeatedClaimByWinner_Loses() {
	ctx := context.Background()
	o := suite.createTestOrder()
	workerID := suite.userID(100)

	won, err := suite.repository.Accept(ctx, o.ID(), workerID, time.Now().UTC())
	suite.Require().NoError(err)
	suite.True(won)

	won, err = suite.repository.Accept(ctx, o.ID(), workerID, time.Now().UTC())
	suite.Require().NoError(err)
	suite.False(won)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAccept_NonexistentOrder_Loses() {
	won, err := suite.repository.Accept(context.Background(), 424242, suite.userID(100), time.Now().UTC())
	suite.Require().NoError(err)
	suite.False(won)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAccept_ConcurrentClaims_ExactlyOneWinner() {
	ctx := context.Background()
	o := suite.createTestOrder()

	const claimants = 20

	var wg sync.WaitGroup
	wins := make(chan int64, claimants)
	for i := range claimants {
		wg.Add(1)
		go func(workerID int64) {
			defer wg.Done()
			won, err := suite.repository.Accept(ctx, o.ID(), suite.userID(workerID), time.Now().UTC())
			suite.NoError(err)
			if won {
				wins <- workerID
			}
		}(int64(100 + i))
	}
	wg.Wait()
	close(wins)

	winners := make([]int64, 0, 1)
	for id := range wins {
		winners = append(winners, id)
	}
	suite.Require().Len(winners, 1)

	// The recorded acceptor is the claimant that reported the win.
	stored, err := suite.repository.Get(ctx, o.ID())
	suite.Require().NoError(err)
	suite.Equal(winners[0], stored.AcceptedBy().Int64())
}

func TestOrderRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(OrderRepositoryIntegrationTestSuite))
}
