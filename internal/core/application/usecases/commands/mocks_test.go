package commands_test

import (
	"context"
	"testing"
	"time"

	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/domain/model/courier"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/core/ports"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// Mock implementations for testing.
type MockCourierRepository struct{ mock.Mock }

func (m *MockCourierRepository) Add(ctx context.Context, c *courier.Courier) error {
	return m.Called(ctx, c).Error(0)
}

func (m *MockCourierRepository) Update(ctx context.Context, c *courier.Courier) error {
	return m.Called(ctx, c).Error(0)
}

func (m *MockCourierRepository) Get(ctx context.Context, id int) (*courier.Courier, error) {
	args := m.Called(ctx, id)
	c, _ := args.Get(0).(*courier.Courier)
	return c, args.Error(1)
}

func (m *MockCourierRepository) GetForUpdate(ctx context.Context, id int) (*courier.Courier, error) {
	args := m.Called(ctx, id)
	c, _ := args.Get(0).(*courier.Courier)
	return c, args.Error(1)
}

func (m *MockCourierRepository) GetAll(ctx context.Context) ([]*courier.Courier, error) {
	args := m.Called(ctx)
	couriers, _ := args.Get(0).([]*courier.Courier)
	return couriers, args.Error(1)
}

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	return m.Called(ctx, o).Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	return m.Called(ctx, o).Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id int) (*order.Order, error) {
	args := m.Called(ctx, id)
	o, _ := args.Get(0).(*order.Order)
	return o, args.Error(1)
}

func (m *MockOrderRepository) ListUnassignedByRegion(ctx context.Context, regions []int) ([]*order.Order, error) {
	args := m.Called(ctx, regions)
	orders, _ := args.Get(0).([]*order.Order)
	return orders, args.Error(1)
}

func (m *MockOrderRepository) ConditionalAssign(
	ctx context.Context, orderID int, courierID int, assignTime time.Time,
) (bool, error) {
	args := m.Called(ctx, orderID, courierID, assignTime)
	return args.Bool(0), args.Error(1)
}

func (m *MockOrderRepository) ListAssignedUndone(ctx context.Context, courierID int) ([]*order.Order, error) {
	args := m.Called(ctx, courierID)
	orders, _ := args.Get(0).([]*order.Order)
	return orders, args.Error(1)
}

func (m *MockOrderRepository) ListCompleted(ctx context.Context, courierID int) ([]*order.Order, error) {
	args := m.Called(ctx, courierID)
	orders, _ := args.Get(0).([]*order.Order)
	return orders, args.Error(1)
}

type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *MockUoW) CourierRepository() ports.CourierRepository {
	return m.Called().Get(0).(ports.CourierRepository)
}

func (m *MockUoW) OrderRepository() ports.OrderRepository {
	return m.Called().Get(0).(ports.OrderRepository)
}

type MockUoWFactory struct{ mock.Mock }

func (m *MockUoWFactory) Create() commands.UoW {
	return m.Called().Get(0).(commands.UoW)
}

type MockCourierUoWFactory struct{ mock.Mock }

func (m *MockCourierUoWFactory) Create() commands.CourierUoW {
	return m.Called().Get(0).(commands.CourierUoW)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	return m.Called().Get(0).(commands.OrderUoW)
}

type MockStatsCache struct{ mock.Mock }

func (m *MockStatsCache) Get(ctx context.Context, courierID int) ([]byte, bool, error) {
	args := m.Called(ctx, courierID)
	payload, _ := args.Get(0).([]byte)
	return payload, args.Bool(1), args.Error(2)
}

func (m *MockStatsCache) Set(ctx context.Context, courierID int, payload []byte) error {
	return m.Called(ctx, courierID, payload).Error(0)
}

func (m *MockStatsCache) Invalidate(ctx context.Context, courierID int) error {
	return m.Called(ctx, courierID).Error(0)
}

var fixedNow = time.Date(2024, 3, 1, 9, 30, 0, 0, time.UTC)

func fixedClock() ports.Clock {
	return ports.ClockFunc(func() time.Time { return fixedNow })
}

func mustWindows(t *testing.T, values ...string) []kernel.TimeWindow {
	t.Helper()
	windows, err := kernel.ParseTimeWindows(values)
	require.NoError(t, err)
	return windows
}

func mustCourier(t *testing.T, id int, courierType courier.Type, regions []int, hours ...string) *courier.Courier {
	t.Helper()
	c, err := courier.NewCourier(id, courierType, regions, mustWindows(t, hours...))
	require.NoError(t, err)
	return c
}

func mustOrder(t *testing.T, id int, kg float64, region int, delivery ...string) *order.Order {
	t.Helper()
	o, err := order.NewOrder(id, kernel.WeightFromKg(kg), region, mustWindows(t, delivery...))
	require.NoError(t, err)
	return o
}

func mustAssignedOrder(t *testing.T, id int, kg float64, region, courierID int, delivery ...string) *order.Order {
	t.Helper()
	o := mustOrder(t, id, kg, region, delivery...)
	require.NoError(t, o.Assign(courierID, fixedNow))
	return o
}
