package queries_test

import (
	"context"

	"github.com/stretchr/testify/mock"
)

type MockStatsCache struct {
	mock.Mock
}

func (m *MockStatsCache) Get(ctx context.Context, courierID int) ([]byte, bool, error) {
	args := m.Called(ctx, courierID)
	payload, _ := args.Get(0).([]byte)
	return payload, args.Bool(1), args.Error(2)
}

func (m *MockStatsCache) Set(ctx context.Context, courierID int, payload []byte) error {
	args := m.Called(ctx, courierID, payload)
	return args.Error(0)
}

func (m *MockStatsCache) Invalidate(ctx context.Context, courierID int) error {
	args := m.Called(ctx, courierID)
	return args.Error(0)
}
