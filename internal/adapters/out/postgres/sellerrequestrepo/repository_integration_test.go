package sellerrequestrepo_test

import (
	"context"
	"testing"
	"time"

	"marketplace/internal/adapters/out/postgres/sellerrequestrepo"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/sellerrequest"
	"marketplace/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// MockAggregateTracker is a mock implementation of aggregateTracker interface.
type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(id kernel.UUID, aggregate interface{}) {
	m.Called(id, aggregate)
}

// SellerRequestRepositoryIntegrationTestSuite provides integration tests for
// SellerRequestRepository using PostgreSQL containers to verify database
// persistence behavior, including the conditional decision update.
type SellerRequestRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *sellerrequestrepo.GormSellerRequestRepository
	tracker    *MockAggregateTracker
}

func (suite *SellerRequestRepositoryIntegrationTestSuite) SetupSuite() {
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

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{TranslateError: true})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(&sellerrequestrepo.SellerRequestDTO{}))
}

func (suite *SellerRequestRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE seller_requests").Error)

	suite.tracker = new(MockAggregateTracker)
	suite.repository = sellerrequestrepo.NewGormSellerRequestRepository(suite.db, suite.tracker)
}

func (suite *SellerRequestRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *SellerRequestRepositoryIntegrationTestSuite) createTestRequest() *sellerrequest.SellerRequest {
	request, err := sellerrequest.NewSellerRequest(
		kernel.NewUUID(), kernel.NewUUID(),
		"Alice", "alice@example.com",
		"Shop A", "+1-555-0101", "game accounts", "bank transfer", "DE89370400440532013000",
	)
	suite.Require().NoError(err)
	return request
}

func (suite *SellerRequestRepositoryIntegrationTestSuite) TestAdd_ValidRequest_Success() {
	ctx := context.Background()
	request := suite.createTestRequest()

	suite.tracker.On("TrackAggregate", request.ID(), request).Once()

	err := suite.repository.Add(ctx, request)
	suite.Require().NoError(err)

	retrieved, err := suite.repository.Get(ctx, request.ID())
	suite.Require().NoError(err)
	suite.Equal(request.UserID(), retrieved.UserID())
	suite.Equal("Shop A", retrieved.ShopName())
	suite.Equal(sellerrequest.Pending, retrieved.Status())
	suite.Empty(retrieved.RejectionReason())
	suite.Nil(retrieved.RejectedAt())

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *SellerRequestRepositoryIntegrationTestSuite) TestAdd_SameUserTwice_AlreadyApplied() {
	ctx := context.Background()
	first := suite.createTestRequest()

	second, err := sellerrequest.NewSellerRequest(
		kernel.NewUUID(), first.UserID(),
		"Alice", "alice@example.com",
		"Shop B", "", "", "", "",
	)
	suite.Require().NoError(err)

	suite.tracker.On("TrackAggregate", first.ID(), first).Once()
	suite.Require().NoError(suite.repository.Add(ctx, first))

	err = suite.repository.Add(ctx, second)
	suite.Require().Error(err)
	suite.Require().ErrorIs(err, errs.ErrAlreadyApplied)

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *SellerRequestRepositoryIntegrationTestSuite) TestGet_NonExistentRequest_ReturnsNotFoundError() {
	ctx := context.Background()

	retrieved, err := suite.repository.Get(ctx, kernel.NewUUID())
	suite.Nil(retrieved)
	suite.Require().Error(err)

	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *SellerRequestRepositoryIntegrationTestSuite) TestExistsForUser() {
	ctx := context.Background()
	request := suite.createTestRequest()

	exists, err := suite.repository.ExistsForUser(ctx, request.UserID())
	suite.Require().NoError(err)
	suite.False(exists)

	suite.tracker.On("TrackAggregate", request.ID(), request).Once()
	suite.Require().NoError(suite.repository.Add(ctx, request))

	exists, err = suite.repository.ExistsForUser(ctx, request.UserID())
	suite.Require().NoError(err)
	suite.True(exists)
}

func (suite *SellerRequestRepositoryIntegrationTestSuite) TestExistsForUser_RejectedStillCounts() {
	ctx := context.Background()
	request := suite.createTestRequest()

	suite.tracker.On("TrackAggregate", request.ID(), request).Twice()
	suite.Require().NoError(suite.repository.Add(ctx, request))

	suite.Require().NoError(request.Reject("incomplete payout details"))
	suite.Require().NoError(suite.repository.UpdateFromPending(ctx, request))

	exists, err := suite.repository.ExistsForUser(ctx, request.UserID())
	suite.Require().NoError(err)
	suite.True(exists)
}

func (suite *SellerRequestRepositoryIntegrationTestSuite) TestUpdateFromPending_Approve_Success() {
	ctx := context.Background()
	request := suite.createTestRequest()

	suite.tracker.On("TrackAggregate", request.ID(), request).Twice()
	suite.Require().NoError(suite.repository.Add(ctx, request))

	suite.Require().NoError(request.Approve())
	suite.Require().NoError(suite.repository.UpdateFromPending(ctx, request))

	retrieved, err := suite.repository.Get(ctx, request.ID())
	suite.Require().NoError(err)
	suite.Equal(sellerrequest.Approved, retrieved.Status())
	suite.Empty(retrieved.RejectionReason())
	suite.Nil(retrieved.RejectedAt())

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *SellerRequestRepositoryIntegrationTestSuite) TestUpdateFromPending_Reject_PersistsReason() {
	ctx := context.Background()
	request := suite.createTestRequest()

	suite.tracker.On("TrackAggregate", request.ID(), request).Twice()
	suite.Require().NoError(suite.repository.Add(ctx, request))

	suite.Require().NoError(request.Reject("incomplete payout details"))
	suite.Require().NoError(suite.repository.UpdateFromPending(ctx, request))

	retrieved, err := suite.repository.Get(ctx, request.ID())
	suite.Require().NoError(err)
	suite.Equal(sellerrequest.Rejected, retrieved.Status())
	suite.Equal("incomplete payout details", retrieved.RejectionReason())
	suite.NotNil(retrieved.RejectedAt())
}

func (suite *SellerRequestRepositoryIntegrationTestSuite) TestUpdateFromPending_AlreadyDecided_AlreadyProcessed() {
	ctx := context.Background()
	request := suite.createTestRequest()

	suite.tracker.On("TrackAggregate", request.ID(), request).Twice()
	suite.Require().NoError(suite.repository.Add(ctx, request))

	suite.Require().NoError(request.Approve())
	suite.Require().NoError(suite.repository.UpdateFromPending(ctx, request))

	// A second decision lands on a request that is no longer pending.
	stale, err := sellerrequest.RestoreSellerRequest(
		request.ID(), request.UserID(),
		request.UserName(), request.UserEmail(),
		request.ShopName(), request.Phone(),
		request.SellingType(), request.PaymentMethod(), request.PaymentAccount(),
		sellerrequest.Pending, "", nil, request.CreatedAt(),
	)
	suite.Require().NoError(err)
	suite.Require().NoError(stale.Reject("spam"))

	err = suite.repository.UpdateFromPending(ctx, stale)
	suite.Require().Error(err)
	suite.Require().ErrorIs(err, errs.ErrAlreadyProcessed)

	retrieved, err := suite.repository.Get(ctx, request.ID())
	suite.Require().NoError(err)
	suite.Equal(sellerrequest.Approved, retrieved.Status())
}

func (suite *SellerRequestRepositoryIntegrationTestSuite) TestUpdateFromPending_NonExistentRequest_NotFound() {
	ctx := context.Background()
	request := suite.createTestRequest()
	suite.Require().NoError(request.Approve())

	err := suite.repository.UpdateFromPending(ctx, request)
	suite.Require().Error(err)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func TestSellerRequestRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(SellerRequestRepositoryIntegrationTestSuite))
}
