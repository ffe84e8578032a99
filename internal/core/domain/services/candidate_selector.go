package services

import (
	"cmp"
	"slices"

	"dispatch/internal/core/domain/model/courier"
	"dispatch/internal/core/domain/model/order"
)

// CandidateSelector filters pool orders down to those a courier may carry.
//
// An order is a candidate when it is still in the pool, its region is one of the
// courier's regions and at least one of its delivery windows intersects one of the
// courier's working windows.
type CandidateSelector struct{}

// NewCandidateSelector creates a new CandidateSelector instance.
func NewCandidateSelector() CandidateSelector {
	return CandidateSelector{}
}

// Select returns the eligible orders sorted heaviest first. Equal weights are ordered
// by ascending order id so the result is deterministic.
func (CandidateSelector) Select(c *courier.Courier, pool []*order.Order) []*order.Order {
	candidates := make([]*order.Order, 0, len(pool))
	for _, o := range pool {
		if o.Status() != order.Created {
			continue
		}
		if !c.CanDeliver(o.Region(), o.DeliveryWindows()) {
			continue
		}
		candidates = append(candidates, o)
	}

	slices.SortStableFunc(candidates, func(a, b *order.Order) int {
		if byWeight := cmp.Compare(b.Weight(), a.Weight()); byWeight != 0 {
			return byWeight
		}
		return cmp.Compare(a.ID(), b.ID())
	})

	return candidates
}
