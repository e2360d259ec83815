package postgres_test

import (
	"context"
	"testing"
	"time"

	"marketplace/internal/adapters/out/postgres"
	"marketplace/internal/adapters/out/postgres/orderrepo"
	"marketplace/internal/adapters/out/postgres/sellerrepo"
	"marketplace/internal/adapters/out/postgres/sellerrequestrepo"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/sellerrequest"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// UnitOfWorkIntegrationTestSuite verifies transaction semantics across the
// repositories, in particular that an approval and its provisioned seller
// record commit or roll back together.
type UnitOfWorkIntegrationTestSuite struct {
	suite.Suite
	container *tcpostgres.PostgresContainer
	db        *gorm.DB
	factory   *postgres.GormUnitOfWorkFactory
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := tcpostgres.Run(ctx,
		"postgres:15-alpine",
		tcpostgres.WithDatabase("testdb"),
		tcpostgres.WithUsername("testuser"),
		tcpostgres.WithPassword("testpass"),
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

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{TranslateError: true})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(
		&sellerrequestrepo.SellerRequestDTO{},
		&sellerrepo.SellerDTO{},
		&orderrepo.OrderDTO{},
	))

	suite.factory = postgres.NewGormUnitOfWorkFactory(db)
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE seller_requests, sellers, orders").Error)
}

func (suite *UnitOfWorkIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *UnitOfWorkIntegrationTestSuite) createPendingRequest(ctx context.Context) *sellerrequest.SellerRequest {
	request, err := sellerrequest.NewSellerRequest(
		kernel.NewUUID(), kernel.NewUUID(),
		"Alice", "alice@example.com",
		"Shop A", "+1-555-0101", "game accounts", "bank transfer", "DE89370400440532013000",
	)
	suite.Require().NoError(err)

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.SellerRequestRepository().Add(ctx, request))
	suite.Require().NoError(uow.Commit(ctx))

	return request
}

func (suite *UnitOfWorkIntegrationTestSuite) TestApprovalFlow_CommitsDecisionAndSellerTogether() {
	ctx := context.Background()
	request := suite.createPendingRequest(ctx)

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))

	suite.Require().NoError(request.Approve())
	suite.Require().NoError(uow.SellerRequestRepository().UpdateFromPending(ctx, request))

	provisioned, err := uow.SellerProvisioner().CreateFromRequest(ctx, request)
	suite.Require().NoError(err)
	suite.Require().NoError(uow.Commit(ctx))

	check := suite.factory.Create()
	retrieved, err := check.SellerRequestRepository().Get(ctx, request.ID())
	suite.Require().NoError(err)
	suite.Equal(sellerrequest.Approved, retrieved.Status())

	s, err := check.SellerRepository().GetByUser(ctx, request.UserID())
	suite.Require().NoError(err)
	suite.Equal(provisioned.ID(), s.ID())
	suite.Equal("Shop A", s.ShopName())
	suite.False(s.IsVerified())
	suite.True(s.IsActive())
	suite.Zero(s.Rating())
	suite.Zero(s.TotalSales())
}

func (suite *UnitOfWorkIntegrationTestSuite) TestApprovalFlow_RollbackDiscardsBoth() {
	ctx := context.Background()
	request := suite.createPendingRequest(ctx)

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))

	suite.Require().NoError(request.Approve())
	suite.Require().NoError(uow.SellerRequestRepository().UpdateFromPending(ctx, request))

	_, err := uow.SellerProvisioner().CreateFromRequest(ctx, request)
	suite.Require().NoError(err)
	suite.Require().NoError(uow.Rollback(ctx))

	check := suite.factory.Create()
	retrieved, err := check.SellerRequestRepository().Get(ctx, request.ID())
	suite.Require().NoError(err)
	suite.Equal(sellerrequest.Pending, retrieved.Status())

	_, err = check.SellerRepository().GetByUser(ctx, request.UserID())
	suite.Require().Error(err)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestCommitWithoutBegin_ReturnsError() {
	ctx := context.Background()
	uow := suite.factory.Create()

	suite.Require().Error(uow.Commit(ctx))
	suite.Require().Error(uow.Rollback(ctx))
}

func (suite *UnitOfWorkIntegrationTestSuite) TestBeginTwice_IsIdempotent() {
	ctx := context.Background()
	uow := suite.factory.Create()

	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.Rollback(ctx))
}

func TestUnitOfWorkIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(UnitOfWorkIntegrationTestSuite))
}
