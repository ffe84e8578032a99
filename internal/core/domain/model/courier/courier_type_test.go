package courier_test

import (
	"testing"

	"dispatch/internal/core/domain/model/courier"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestType_Table(t *testing.T) {
	tests := []struct {
		courierType courier.Type
		capacityKg  float64
		multiplier  int64
		perOrder    int64
	}{
		{courier.Foot, 10, 2, 1000},
		{courier.Bike, 15, 5, 2500},
		{courier.Car, 50, 9, 4500},
	}
	for _, tt := range tests {
		t.Run(tt.courierType.String(), func(t *testing.T) {
			assert.Equal(t, kernel.WeightFromKg(tt.capacityKg), tt.courierType.Capacity())
			assert.Equal(t, tt.multiplier, tt.courierType.EarningsMultiplier())
			assert.Equal(t, tt.perOrder, tt.courierType.EarningsPerOrder())
		})
	}
}

func TestParseType(t *testing.T) {
	ct, err := courier.ParseType("car")
	require.NoError(t, err)
	assert.Equal(t, courier.Car, ct)

	_, err = courier.ParseType("CAR")
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)

	assert.Zero(t, courier.Type("").Capacity())
}
