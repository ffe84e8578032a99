package orderrepo_test

import (
	"context"
	"testing"
	"time"

	"dispatch/internal/adapters/out/postgres/orderrepo"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var assignedAt = time.Date(2024, 3, 1, 9, 30, 0, 0, time.UTC)

// OrderRepositoryIntegrationTestSuite tests GormOrderRepository against PostgreSQL.
type OrderRepositoryIntegrationTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	repo      *orderrepo.GormOrderRepository
}

// SetupSuite starts PostgreSQL and migrates the orders table.
func (suite *OrderRepositoryIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2)),
	)
	suite.Require().NoError(err)
	suite.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(dsn), &gorm.Config{TranslateError: true})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(&orderrepo.OrderDTO{}))

	suite.repo = orderrepo.NewGormOrderRepository(db)
}

// SetupTest truncates the orders table.
func (suite *OrderRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE orders").Error)
}

// TearDownSuite stops the PostgreSQL container.
func (suite *OrderRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAdd_ValidOrder_Success() {
	ctx := context.Background()
	o := suite.createTestOrder(10, 0.23, 12, "09:00-18:00", "19:00-20:00")

	suite.Require().NoError(suite.repo.Add(ctx, o))

	var dto orderrepo.OrderDTO
	suite.Require().NoError(suite.db.First(&dto, "id = ?", 10).Error)
	suite.Equal(int64(23), dto.Weight)
	suite.Equal(12, dto.Region)
	suite.Equal([]string{"09:00-18:00", "19:00-20:00"}, []string(dto.DeliveryHours))
	suite.Nil(dto.AssignedTo)
	suite.Nil(dto.AssignTime)
	suite.False(dto.Done)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAdd_DuplicateID_ReturnsConflict() {
	ctx := context.Background()
	suite.Require().NoError(suite.repo.Add(ctx, suite.createTestOrder(10, 1, 1, "09:00-18:00")))

	err := suite.repo.Add(ctx, suite.createTestOrder(10, 2, 2, "09:00-18:00"))

	suite.Require().ErrorIs(err, errs.ErrConflict)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_NonExistentOrder_ReturnsNotFoundError() {
	_, err := suite.repo.Get(context.Background(), 404)

	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_CompletionRoundTrips() {
	ctx := context.Background()
	o := suite.createTestOrder(10, 6, 1, "10:00-12:00")
	suite.Require().NoError(suite.repo.Add(ctx, o))
	suite.Require().NoError(o.Assign(1, assignedAt))
	suite.Require().NoError(o.Complete(1, assignedAt.Add(25*time.Minute)))

	suite.Require().NoError(suite.repo.Update(ctx, o))

	retrieved, err := suite.repo.Get(ctx, 10)
	suite.Require().NoError(err)
	suite.Equal(order.Completed, retrieved.Status())
	suite.True(retrieved.IsAssignedTo(1))
	suite.Equal(assignedAt, *retrieved.AssignTime())
	suite.Equal(assignedAt.Add(25*time.Minute), *retrieved.CompleteTime())
	suite.Equal(time.UTC, retrieved.CompleteTime().Location())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_UnassignClearsFieldsTogether() {
	ctx := context.Background()
	o := suite.createTestOrder(10, 6, 1, "10:00-12:00")
	suite.Require().NoError(suite.repo.Add(ctx, o))
	won, err := suite.repo.ConditionalAssign(ctx, 10, 1, assignedAt)
	suite.Require().NoError(err)
	suite.Require().True(won)

	assigned, err := suite.repo.Get(ctx, 10)
	suite.Require().NoError(err)
	suite.Require().NoError(assigned.Unassign())
	suite.Require().NoError(suite.repo.Update(ctx, assigned))

	var dto orderrepo.OrderDTO
	suite.Require().NoError(suite.db.First(&dto, "id = ?", 10).Error)
	suite.Nil(dto.AssignedTo)
	suite.Nil(dto.AssignTime)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_NonExistentOrder_ReturnsNotFoundError() {
	err := suite.repo.Update(context.Background(), suite.createTestOrder(99, 1, 1, "09:00-18:00"))

	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestListUnassignedByRegion() {
	ctx := context.Background()
	suite.Require().NoError(suite.repo.Add(ctx, suite.createTestOrder(3, 1, 1, "09:00-18:00")))
	suite.Require().NoError(suite.repo.Add(ctx, suite.createTestOrder(1, 1, 2, "09:00-18:00")))
	suite.Require().NoError(suite.repo.Add(ctx, suite.createTestOrder(2, 1, 3, "09:00-18:00")))
	suite.Require().NoError(suite.repo.Add(ctx, suite.createTestOrder(4, 1, 1, "09:00-18:00")))
	_, err := suite.repo.ConditionalAssign(ctx, 4, 1, assignedAt)
	suite.Require().NoError(err)

	pool, err := suite.repo.ListUnassignedByRegion(ctx, []int{1, 2})
	suite.Require().NoError(err)
	suite.Equal([]int{1, 3}, orderIDs(pool))

	none, err := suite.repo.ListUnassignedByRegion(ctx, nil)
	suite.Require().NoError(err)
	suite.Empty(none)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestConditionalAssign_OnlyOnce() {
	ctx := context.Background()
	suite.Require().NoError(suite.repo.Add(ctx, suite.createTestOrder(10, 1, 1, "09:00-18:00")))

	first, err := suite.repo.ConditionalAssign(ctx, 10, 1, assignedAt)
	suite.Require().NoError(err)
	second, err := suite.repo.ConditionalAssign(ctx, 10, 2, assignedAt.Add(time.Minute))
	suite.Require().NoError(err)
	missing, err := suite.repo.ConditionalAssign(ctx, 404, 2, assignedAt)
	suite.Require().NoError(err)

	suite.True(first)
	suite.False(second)
	suite.False(missing)
	retrieved, err := suite.repo.Get(ctx, 10)
	suite.Require().NoError(err)
	suite.True(retrieved.IsAssignedTo(1))
	suite.Equal(assignedAt, *retrieved.AssignTime())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestListAssignedUndoneAndCompleted() {
	ctx := context.Background()
	for id := 1; id <= 4; id++ {
		suite.Require().NoError(suite.repo.Add(ctx, suite.createTestOrder(id, 1, 1, "09:00-18:00")))
		_, err := suite.repo.ConditionalAssign(ctx, id, 7, assignedAt)
		suite.Require().NoError(err)
	}
	for _, step := range []struct {
		id    int
		after time.Duration
	}{{id: 4, after: 10 * time.Minute}, {id: 2, after: 30 * time.Minute}} {
		o, err := suite.repo.Get(ctx, step.id)
		suite.Require().NoError(err)
		suite.Require().NoError(o.Complete(7, assignedAt.Add(step.after)))
		suite.Require().NoError(suite.repo.Update(ctx, o))
	}

	undone, err := suite.repo.ListAssignedUndone(ctx, 7)
	suite.Require().NoError(err)
	suite.Equal([]int{1, 3}, orderIDs(undone))

	completed, err := suite.repo.ListCompleted(ctx, 7)
	suite.Require().NoError(err)
	suite.Equal([]int{4, 2}, orderIDs(completed))

	other, err := suite.repo.ListAssignedUndone(ctx, 8)
	suite.Require().NoError(err)
	suite.Empty(other)
}

func (suite *OrderRepositoryIntegrationTestSuite) createTestOrder(id int, kg float64, region int, hours ...string) *order.Order {
	windows, err := kernel.ParseTimeWindows(hours)
	suite.Require().NoError(err)
	weight, err := kernel.NewOrderWeight(kg)
	suite.Require().NoError(err)
	o, err := order.NewOrder(id, weight, region, windows)
	suite.Require().NoError(err)
	return o
}

func orderIDs(orders []*order.Order) []int {
	ids := make([]int, 0, len(orders))
	for _, o := range orders {
		ids = append(ids, o.ID())
	}
	return ids
}

func TestOrderRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(OrderRepositoryIntegrationTestSuite))
}
