package services_test

import (
	"testing"
	"time"

	"dispatch/internal/core/domain/model/courier"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func completedOrder(t *testing.T, id, region, courierID int, after time.Duration) *order.Order {
	t.Helper()
	o := assignedOrder(t, id, 1, region, courierID, "10:00-12:00")
	require.NoError(t, o.Complete(courierID, batchTime.Add(after)))
	return o
}

func TestRatingCalculator_Rating(t *testing.T) {
	calculator := services.NewRatingCalculator()
	c := newCourier(t, 1, courier.Foot, []int{1, 2}, "09:00-18:00")

	t.Run("should be undefined without completed orders", func(t *testing.T) {
		_, ok := calculator.Rating(c, nil)
		assert.False(t, ok)
	})

	t.Run("should be undefined when completions are outside current regions", func(t *testing.T) {
		_, ok := calculator.Rating(c, []*order.Order{completedOrder(t, 10, 7, 1, 10*time.Minute)})
		assert.False(t, ok)
	})

	t.Run("should use the fastest region mean", func(t *testing.T) {
		completed := []*order.Order{
			// region 1 gaps: 20m, 10m -> mean 15m
			completedOrder(t, 10, 1, 1, 20*time.Minute),
			completedOrder(t, 11, 1, 1, 30*time.Minute),
			// region 2 gap: 40m
			completedOrder(t, 12, 2, 1, 40*time.Minute),
		}

		rating, ok := calculator.Rating(c, completed)

		require.True(t, ok)
		assert.InDelta(t, 3.75, rating, 1e-9)
	})

	t.Run("should floor slow couriers at zero", func(t *testing.T) {
		rating, ok := calculator.Rating(c, []*order.Order{completedOrder(t, 10, 1, 1, 3*time.Hour)})

		require.True(t, ok)
		assert.Zero(t, rating)
	})

	t.Run("should round to two decimals", func(t *testing.T) {
		rating, ok := calculator.Rating(c, []*order.Order{completedOrder(t, 10, 1, 1, 7*time.Minute)})

		require.True(t, ok)
		// (3600 - 420) / 3600 * 5 = 4.4166...
		assert.InDelta(t, 4.42, rating, 1e-9)
	})

	t.Run("should stay within bounds", func(t *testing.T) {
		for _, after := range []time.Duration{0, time.Second, 30 * time.Minute, 59 * time.Minute, 2 * time.Hour} {
			rating, ok := calculator.Rating(c, []*order.Order{completedOrder(t, 10, 1, 1, after)})
			require.True(t, ok)
			assert.GreaterOrEqual(t, rating, 0.0)
			assert.LessOrEqual(t, rating, services.MaxRating)
		}
	})
}
