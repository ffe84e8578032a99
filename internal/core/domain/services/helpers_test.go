package services_test

import (
	"testing"
	"time"

	"dispatch/internal/core/domain/model/courier"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"

	"github.com/stretchr/testify/require"
)

var batchTime = time.Date(2024, 3, 1, 9, 30, 0, 0, time.UTC)

func windows(t *testing.T, values ...string) []kernel.TimeWindow {
	t.Helper()
	ws, err := kernel.ParseTimeWindows(values)
	require.NoError(t, err)
	return ws
}

func newCourier(t *testing.T, id int, courierType courier.Type, regions []int, hours ...string) *courier.Courier {
	t.Helper()
	c, err := courier.NewCourier(id, courierType, regions, windows(t, hours...))
	require.NoError(t, err)
	return c
}

func newOrder(t *testing.T, id int, kg float64, region int, delivery ...string) *order.Order {
	t.Helper()
	o, err := order.NewOrder(id, kernel.WeightFromKg(kg), region, windows(t, delivery...))
	require.NoError(t, err)
	return o
}

func assignedOrder(t *testing.T, id int, kg float64, region int, courierID int, delivery ...string) *order.Order {
	t.Helper()
	o := newOrder(t, id, kg, region, delivery...)
	require.NoError(t, o.Assign(courierID, batchTime))
	return o
}

func ids(orders []*order.Order) []int {
	result := make([]int, 0, len(orders))
	for _, o := range orders {
		result = append(result, o.ID())
	}
	return result
}
