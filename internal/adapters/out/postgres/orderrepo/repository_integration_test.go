package orderrepo_test

import (
	"context"
	"testing"
	"time"

	"waiterbot/internal/adapters/out/postgres/orderrepo"
	"waiterbot/internal/core/domain/model/kernel"
	"waiterbot/internal/core/domain/model/order"
	"waiterbot/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// OrderRepositoryIntegrationTestSuite provides integration tests for
// GormOrderRepository using PostgreSQL containers to verify database
// persistence behavior.
type OrderRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *orderrepo.GormOrderRepository
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	// Start PostgreSQL container
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

	// Get connection string and connect to database
	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	// Auto-migrate the schema
	suite.Require().NoError(db.AutoMigrate(&orderrepo.OrderDTO{}))
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupTest() {
	// Clean the database before each test
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE orders").Error)

	suite.repository = orderrepo.NewGormOrderRepository(suite.db)
}

func (suite *OrderRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *OrderRepositoryIntegrationTestSuite) TestSave_NewSlot_Success() {
	ctx := context.Background()

	testOrder := suite.createTestOrder("Pizza", "Burger no pickles")

	err := suite.repository.Save(ctx, testOrder)
	suite.Require().NoError(err)

	suite.assertSlotCount(1)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestSave_ExistingSlot_ReplacesLines() {
	ctx := context.Background()

	testOrder := suite.createTestOrder("Pizza")
	suite.Require().NoError(suite.repository.Save(ctx, testOrder))

	burger, err := order.NewLine("Burger")
	suite.Require().NoError(err)
	suite.Require().NoError(testOrder.Append([]order.Line{burger}))
	suite.Require().NoError(suite.repository.Save(ctx, testOrder))

	suite.assertSlotCount(1)

	restored, err := suite.repository.Get(ctx, testOrder.SessionID())
	suite.Require().NoError(err)
	suite.Equal("Pizza, Burger", restored.Summary())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_ExistingSlot_RestoresLinesInOrder() {
	ctx := context.Background()

	testOrder := suite.createTestOrder("Pizza", "Burger no pickles", "Fries")
	suite.Require().NoError(suite.repository.Save(ctx, testOrder))

	restored, err := suite.repository.Get(ctx, testOrder.SessionID())
	suite.Require().NoError(err)
	suite.True(restored.SessionID().IsEqual(testOrder.SessionID()))
	suite.Equal("Pizza, Burger no pickles, Fries", restored.Summary())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_AbsentSlot_ReturnsObjectNotFound() {
	ctx := context.Background()

	_, err := suite.repository.Get(ctx, kernel.NewUUID())

	suite.Require().Error(err)
	suite.ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestDelete_ExistingSlot_RemovesIt() {
	ctx := context.Background()

	testOrder := suite.createTestOrder("Pizza")
	suite.Require().NoError(suite.repository.Save(ctx, testOrder))

	suite.Require().NoError(suite.repository.Delete(ctx, testOrder.SessionID()))

	suite.assertSlotCount(0)
	_, err := suite.repository.Get(ctx, testOrder.SessionID())
	suite.ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestDelete_AbsentSlot_IsNotAnError() {
	ctx := context.Background()

	suite.Require().NoError(suite.repository.Delete(ctx, kernel.NewUUID()))
}

func (suite *OrderRepositoryIntegrationTestSuite) TestDeleteAbandonedBefore_RemovesOnlyStaleSlots() {
	ctx := context.Background()

	stale := suite.createTestOrder("Pizza")
	fresh := suite.createTestOrder("Burger")
	suite.Require().NoError(suite.repository.Save(ctx, stale))
	suite.Require().NoError(suite.repository.Save(ctx, fresh))

	// Age one slot past the cutoff
	staleTime := time.Now().Add(-2 * time.Hour)
	err := suite.db.Exec(
		"UPDATE orders SET updated_at = ? WHERE session_id = ?",
		staleTime, stale.SessionID().Bytes(),
	).Error
	suite.Require().NoError(err)

	removed, err := suite.repository.DeleteAbandonedBefore(ctx, time.Now().Add(-time.Hour))
	suite.Require().NoError(err)
	suite.Equal(int64(1), removed)

	_, err = suite.repository.Get(ctx, stale.SessionID())
	suite.ErrorIs(err, errs.ErrObjectNotFound)

	_, err = suite.repository.Get(ctx, fresh.SessionID())
	suite.NoError(err)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestSave_RefreshesLastActivity() {
	ctx := context.Background()

	testOrder := suite.createTestOrder("Pizza")
	suite.Require().NoError(suite.repository.Save(ctx, testOrder))

	// Age the slot, then save again and verify the sweep no longer sees it
	staleTime := time.Now().Add(-2 * time.Hour)
	err := suite.db.Exec(
		"UPDATE orders SET updated_at = ? WHERE session_id = ?",
		staleTime, testOrder.SessionID().Bytes(),
	).Error
	suite.Require().NoError(err)

	suite.Require().NoError(suite.repository.Save(ctx, testOrder))

	removed, err := suite.repository.DeleteAbandonedBefore(ctx, time.Now().Add(-time.Hour))
	suite.Require().NoError(err)
	suite.Equal(int64(0), removed)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_InvalidSessionID_ReturnsError() {
	ctx := context.Background()

	_, err := suite.repository.Get(ctx, kernel.UUID{})

	suite.Require().Error(err)
}

func (suite *OrderRepositoryIntegrationTestSuite) createTestOrder(lineValues ...string) *order.Order {
	lines := make([]order.Line, 0, len(lineValues))
	for _, value := range lineValues {
		line, err := order.NewLine(value)
		suite.Require().NoError(err)
		lines = append(lines, line)
	}

	testOrder, err := order.RestoreOrder(kernel.NewUUID(), lines)
	suite.Require().NoError(err)
	return testOrder
}

func (suite *OrderRepositoryIntegrationTestSuite) assertSlotCount(expected int64) {
	var count int64
	suite.Require().NoError(suite.db.Model(&orderrepo.OrderDTO{}).Count(&count).Error)
	suite.Equal(expected, count)
}

// TestOrderRepositoryIntegrationTestSuite runs the integration test suite.
// Requires Docker to be available.
func TestOrderRepositoryIntegrationTestSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration tests in short mode")
	}

	suite.Run(t, new(OrderRepositoryIntegrationTestSuite))
}
