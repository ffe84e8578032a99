package services

import (
	"cmp"
	"slices"

	"dispatch/internal/core/domain/model/courier"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
)

// Recalculator returns orders to the pool after a courier profile change.
//
// For each undone order carried by the courier:
//  1. the region is no longer served: unassign
//  2. no delivery window meets the new working hours: unassign
//  3. capacity shrank and the load is still over it: shed the lightest orders,
//     higher order id first on equal weight, until the load fits
type Recalculator struct{}

// NewRecalculator creates a new Recalculator instance.
func NewRecalculator() Recalculator {
	return Recalculator{}
}

// Recalculate unassigns the orders that no longer fit updated and returns them.
// previousCapacity is the courier capacity before the profile change.
func (Recalculator) Recalculate(
	updated *courier.Courier,
	previousCapacity kernel.Weight,
	carried []*order.Order,
) ([]*order.Order, error) {
	if err := updated.Validate(); err != nil {
		return nil, err
	}

	var released, kept []*order.Order
	for _, o := range carried {
		if o.IsDone() || !o.IsAssignedTo(updated.ID()) {
			continue
		}
		if !updated.CanDeliver(o.Region(), o.DeliveryWindows()) {
			released = append(released, o)
			continue
		}
		kept = append(kept, o)
	}

	if updated.Capacity() < previousCapacity {
		slices.SortStableFunc(kept, func(a, b *order.Order) int {
			if byWeight := cmp.Compare(a.Weight(), b.Weight()); byWeight != 0 {
				return byWeight
			}
			return cmp.Compare(b.ID(), a.ID())
		})

		load := Load(kept)
		for len(kept) > 0 && load > updated.Capacity() {
			load -= kept[0].Weight()
			released = append(released, kept[0])
			kept = kept[1:]
		}
	}

	for _, o := range released {
		if err := o.Unassign(); err != nil {
			return nil, err
		}
	}
	return released, nil
}
