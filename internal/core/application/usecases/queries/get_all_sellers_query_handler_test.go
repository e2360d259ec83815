package queries_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"marketplace/internal/adapters/out/postgres/sellerrepo"
	"marketplace/internal/core/application/usecases/queries"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/seller"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// mockAggregateTracker is a no-op tracker for seeding test data.
type mockAggregateTracker struct{}

func (mockAggregateTracker) TrackAggregate(_ kernel.UUID, _ interface{}) {}

// memoryCache is an in-memory Cache used to observe caching behavior.
type memoryCache struct {
	mu      sync.Mutex
	entries map[string][]byte
	hits    int
	sets    int
}

func newMemoryCache() *memoryCache {
	return &memoryCache{entries: make(map[string][]byte)}
}

func (c *memoryCache) Get(_ context.Context, key string) ([]byte, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	value, ok := c.entries[key]
	if !ok {
		return nil, nil
	}
	c.hits++
	return value, nil
}

func (c *memoryCache) Set(_ context.Context, key string, value []byte, _ time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[key] = value
	c.sets++
	return nil
}

type GetAllSellersQueryHandlerTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	cache     *memoryCache
	handler   queries.GetAllSellersQueryHandler
}

func (suite *GetAllSellersQueryHandlerTestSuite) SetupSuite() {
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

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{TranslateError: true})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(&sellerrepo.SellerDTO{}))
}

func (suite *GetAllSellersQueryHandlerTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *GetAllSellersQueryHandlerTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE sellers CASCADE").Error
	suite.Require().NoError(err)

	suite.cache = newMemoryCache()
	suite.handler = queries.NewGetAllSellersQueryHandler(suite.db, suite.cache)
}

func (suite *GetAllSellersQueryHandlerTestSuite) seedSeller(shopName string, createdAt time.Time) *seller.Seller {
	s, err := seller.RestoreSeller(
		kernel.NewUUID(), kernel.NewUUID(), shopName,
		false, true, 0, 0, 0, createdAt,
	)
	suite.Require().NoError(err)

	repo := sellerrepo.NewGormSellerRepository(suite.db, mockAggregateTracker{})
	suite.Require().NoError(repo.Add(context.Background(), s))
	return s
}

func (suite *GetAllSellersQueryHandlerTestSuite) TestHandle_EmptyDatabase_ReturnsEmptySlice() {
	query := queries.NewGetAllSellersQuery()

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.NotNil(result)
	suite.Empty(result)
}

func (suite *GetAllSellersQueryHandlerTestSuite) TestHandle_ReturnsSellersNewestFirst() {
	base := time.Now().UTC().Truncate(time.Second)
	oldest := suite.seedSeller("Oldest Shop", base.Add(-2*time.Hour))
	middle := suite.seedSeller("Middle Shop", base.Add(-time.Hour))
	newest := suite.seedSeller("Newest Shop", base)

	query := queries.NewGetAllSellersQuery()

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 3)

	suite.Equal(newest.ID(), result[0].ID)
	suite.Equal("Newest Shop", result[0].ShopName)
	suite.Equal(middle.ID(), result[1].ID)
	suite.Equal(oldest.ID(), result[2].ID)

	suite.True(result[0].IsActive)
	suite.False(result[0].IsVerified)
}

func (suite *GetAllSellersQueryHandlerTestSuite) TestHandle_SecondCallServedFromCache() {
	suite.seedSeller("Shop A", time.Now().UTC())

	query := queries.NewGetAllSellersQuery()

	first, err := suite.handler.Handle(context.Background(), query)
	suite.Require().NoError(err)
	suite.Len(first, 1)
	suite.Equal(1, suite.cache.sets)

	second, err := suite.handler.Handle(context.Background(), query)
	suite.Require().NoError(err)
	suite.Equal(first, second)
	suite.Equal(1, suite.cache.hits)
	suite.Equal(1, suite.cache.sets)
}

func (suite *GetAllSellersQueryHandlerTestSuite) TestHandle_NilCache_QueriesDatabase() {
	suite.seedSeller("Shop A", time.Now().UTC())

	handler := queries.NewGetAllSellersQueryHandler(suite.db, nil)
	query := queries.NewGetAllSellersQuery()

	result, err := handler.Handle(context.Background(), query)
	suite.Require().NoError(err)
	suite.Len(result, 1)
}

func (suite *GetAllSellersQueryHandlerTestSuite) TestHandle_InvalidQuery_ReturnsError() {
	invalidQuery := queries.GetAllSellersQuery{}

	result, err := suite.handler.Handle(context.Background(), invalidQuery)

	suite.Require().Error(err)
	suite.Nil(result)
	suite.Contains(err.Error(), "must be created via NewGetAllSellersQuery constructor")
}

func TestGetAllSellersQueryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(GetAllSellersQueryHandlerTestSuite))
}
