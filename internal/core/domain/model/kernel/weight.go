package kernel

import (
	"fmt"
	"math"

	"dispatch/internal/pkg/errs"
)

const (
	// MinOrderWeight is the lightest accepted order, in hundredths of a kilogram.
	MinOrderWeight Weight = 1
	// MaxOrderWeight is the heaviest accepted order, in hundredths of a kilogram.
	MaxOrderWeight Weight = 50 * centsPerKg

	centsPerKg = 100
	// precisionTolerance absorbs binary float noise such as 1.1*100 = 110.00000000000001.
	precisionTolerance = 1e-6
)

// Weight is a mass in hundredths of a kilogram.
// Order weights carry at most two decimals, so integer arithmetic on Weight is exact
// where float sums would drift.
type Weight int64

// WeightFromKg converts kilograms to Weight, rounding to the nearest hundredth.
func WeightFromKg(kg float64) Weight {
	return Weight(math.Round(kg * centsPerKg))
}

// NewOrderWeight validates an order weight: (0, 50] kg with at most two decimals.
func NewOrderWeight(kg float64) (Weight, error) {
	if math.IsNaN(kg) || math.IsInf(kg, 0) {
		return 0, errs.NewValueIsInvalidErrorWithCause("weight", fmt.Errorf("%v is not a number", kg))
	}

	scaled := kg * centsPerKg
	if math.Abs(scaled-math.Round(scaled)) > precisionTolerance {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"weight", fmt.Errorf("%v has more than two decimal places", kg))
	}

	w := WeightFromKg(kg)
	if w < MinOrderWeight || w > MaxOrderWeight {
		return 0, errs.NewValueIsOutOfRangeError("weight", kg, MinOrderWeight.Kg(), MaxOrderWeight.Kg())
	}
	return w, nil
}

// Kg returns the weight in kilograms.
func (w Weight) Kg() float64 {
	return float64(w) / centsPerKg
}

// String formats the weight with two decimals.
func (w Weight) String() string {
	return fmt.Sprintf("%.2fkg", w.Kg())
}
