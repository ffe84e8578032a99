package courier

import (
	"fmt"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"
)

// baseOrderPayment is multiplied by the type multiplier for every completed order.
const baseOrderPayment = 500

// Type is the closed set of courier transport kinds. It fixes capacity and pay rate.
type Type string

const (
	Foot Type = "foot"
	Bike Type = "bike"
	Car  Type = "car"
)

type typeProfile struct {
	capacity   kernel.Weight
	multiplier int64
}

// getTypeProfiles returns the capacity table keyed by courier type.
//
//	type | capacity | multiplier
//	foot |   10 kg  |     2
//	bike |   15 kg  |     5
//	car  |   50 kg  |     9
func getTypeProfiles() map[Type]typeProfile {
	return map[Type]typeProfile{
		Foot: {capacity: kernel.WeightFromKg(10), multiplier: 2},
		Bike: {capacity: kernel.WeightFromKg(15), multiplier: 5},
		Car:  {capacity: kernel.WeightFromKg(50), multiplier: 9},
	}
}

// ParseType converts the wire form ("foot", "bike", "car") into a Type.
func ParseType(s string) (Type, error) {
	t := Type(s)
	if err := t.Validate(); err != nil {
		return "", err
	}
	return t, nil
}

// Validate reports whether t is one of the known courier types.
func (t Type) Validate() error {
	if _, ok := getTypeProfiles()[t]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"courier type",
			fmt.Errorf("%q is not one of foot, bike, car", string(t)),
		)
	}
	return nil
}

// Capacity is the maximum undone load a courier of this type may carry.
// Unknown types have zero capacity.
func (t Type) Capacity() kernel.Weight {
	return getTypeProfiles()[t].capacity
}

// EarningsMultiplier is the per-order pay multiplier of the type.
func (t Type) EarningsMultiplier() int64 {
	return getTypeProfiles()[t].multiplier
}

// EarningsPerOrder is what one completed order pays a courier of this type.
func (t Type) EarningsPerOrder() int64 {
	return baseOrderPayment * t.EarningsMultiplier()
}

// String implements fmt.Stringer.
func (t Type) String() string {
	return string(t)
}
