package courier_test

import (
	"testing"

	"dispatch/internal/core/domain/model/courier"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func windows(t *testing.T, values ...string) []kernel.TimeWindow {
	t.Helper()
	w, err := kernel.ParseTimeWindows(values)
	require.NoError(t, err)
	return w
}

func TestNewCourier(t *testing.T) {
	t.Run("should create valid courier", func(t *testing.T) {
		c, err := courier.NewCourier(1, courier.Bike, []int{3, 1, 3}, windows(t, "09:00-18:00"))

		require.NoError(t, err)
		require.NoError(t, c.Validate())
		assert.Equal(t, 1, c.ID())
		assert.Equal(t, courier.Bike, c.Type())
		assert.Equal(t, []int{1, 3}, c.Regions(), "regions are sorted and deduplicated")
		assert.Equal(t, []string{"09:00-18:00"}, kernel.FormatTimeWindows(c.WorkingHours()))
		assert.Zero(t, c.Earnings())
		assert.Equal(t, kernel.WeightFromKg(15), c.Capacity())
	})

	t.Run("should allow empty regions and hours", func(t *testing.T) {
		c, err := courier.NewCourier(2, courier.Foot, nil, nil)

		require.NoError(t, err)
		assert.Empty(t, c.Regions())
		assert.Empty(t, c.WorkingHours())
	})

	t.Run("should aggregate validation errors", func(t *testing.T) {
		c, err := courier.NewCourier(0, courier.Type("plane"), []int{-1}, nil)

		require.Error(t, err)
		assert.Nil(t, c)
		assert.Contains(t, err.Error(), "courier id")
		assert.Contains(t, err.Error(), `"plane" is not one of foot, bike, car`)
		assert.Contains(t, err.Error(), "-1 is not greater than 0")
	})

	t.Run("should reject zero value windows", func(t *testing.T) {
		_, err := courier.NewCourier(1, courier.Foot, []int{1}, []kernel.TimeWindow{{}})

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should reject overlapping working hours", func(t *testing.T) {
		for _, hours := range [][]string{
			{"09:00-12:00", "11:00-13:00"},
			{"14:00-16:00", "09:00-18:00"},
			{"09:00-12:00", "12:00-14:00"},
		} {
			c, err := courier.NewCourier(1, courier.Foot, []int{1}, windows(t, hours...))

			require.ErrorIs(t, err, errs.ErrValueIsInvalid, hours)
			assert.Contains(t, err.Error(), "overlaps")
			assert.Nil(t, c)
		}
	})
}

func TestRestoreCourier(t *testing.T) {
	t.Run("should keep earnings", func(t *testing.T) {
		c, err := courier.RestoreCourier(5, courier.Car, []int{1}, nil, 4500)

		require.NoError(t, err)
		assert.Equal(t, int64(4500), c.Earnings())
	})

	t.Run("should reject negative earnings", func(t *testing.T) {
		_, err := courier.RestoreCourier(5, courier.Car, []int{1}, nil, -1)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestCourier_Validate(t *testing.T) {
	var nilCourier *courier.Courier
	assert.Equal(t, courier.ErrCourierIsNotConstructed, nilCourier.Validate())

	var zero courier.Courier
	assert.Equal(t, courier.ErrCourierIsNotConstructed, zero.Validate())
}

func TestCourier_CanDeliver(t *testing.T) {
	c, err := courier.NewCourier(1, courier.Foot, []int{1, 4}, windows(t, "09:00-12:00", "16:00-18:00"))
	require.NoError(t, err)

	assert.True(t, c.CanDeliver(4, windows(t, "12:00-13:00")), "touching window counts")
	assert.False(t, c.CanDeliver(2, windows(t, "10:00-11:00")), "region not served")
	assert.False(t, c.CanDeliver(1, windows(t, "12:01-15:59")), "window in the gap")
	assert.True(t, c.ServesRegion(1))
	assert.False(t, c.ServesRegion(3))
}

func TestCourier_ApplyProfile(t *testing.T) {
	newCourier := func(t *testing.T) *courier.Courier {
		c, err := courier.NewCourier(1, courier.Car, []int{1}, windows(t, "09:00-18:00"))
		require.NoError(t, err)
		return c
	}

	t.Run("should update only patched fields", func(t *testing.T) {
		c := newCourier(t)
		foot := courier.Foot

		err := c.ApplyProfile(courier.ProfilePatch{Type: &foot})

		require.NoError(t, err)
		assert.Equal(t, courier.Foot, c.Type())
		assert.Equal(t, []int{1}, c.Regions())
		assert.Len(t, c.WorkingHours(), 1)
	})

	t.Run("should clear list with empty slice", func(t *testing.T) {
		c := newCourier(t)

		err := c.ApplyProfile(courier.ProfilePatch{Regions: []int{}})

		require.NoError(t, err)
		assert.Empty(t, c.Regions())
	})

	t.Run("should reject empty patch", func(t *testing.T) {
		c := newCourier(t)

		err := c.ApplyProfile(courier.ProfilePatch{})

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should leave courier untouched on invalid patch", func(t *testing.T) {
		c := newCourier(t)
		bad := courier.Type("boat")

		err := c.ApplyProfile(courier.ProfilePatch{Type: &bad, Regions: []int{7}})

		require.Error(t, err)
		assert.Equal(t, courier.Car, c.Type())
		assert.Equal(t, []int{1}, c.Regions())
	})

	t.Run("should reject overlapping working hours", func(t *testing.T) {
		c := newCourier(t)

		err := c.ApplyProfile(courier.ProfilePatch{WorkingHours: windows(t, "08:00-10:00", "09:30-11:00")})

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Equal(t, []string{"09:00-18:00"}, kernel.FormatTimeWindows(c.WorkingHours()))
	})
}

func TestCourier_CreditCompletedOrder(t *testing.T) {
	c, err := courier.NewCourier(1, courier.Bike, []int{1}, nil)
	require.NoError(t, err)

	assert.Equal(t, int64(2500), c.CreditCompletedOrder())
	assert.Equal(t, int64(2500), c.CreditCompletedOrder())
	assert.Equal(t, int64(5000), c.Earnings())
}
