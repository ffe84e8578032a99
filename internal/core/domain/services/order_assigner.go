package services

import (
	"dispatch/internal/core/domain/model/courier"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
)

// OrderAssigner plans which pool orders a single courier takes next.
//
// It combines the CandidateSelector with a Packer. Planning never mutates the
// orders: the caller admits each planned order with a compare-and-set write and
// skips the ones it loses.
//
// Example usage:
//
//	assigner := services.NewOrderAssigner(services.NewGreedyPacker())
//	planned := assigner.Plan(courier, carried, pool)
type OrderAssigner struct {
	selector CandidateSelector
	packer   Packer
}

// NewOrderAssigner creates an OrderAssigner using packer.
func NewOrderAssigner(packer Packer) OrderAssigner {
	if packer == nil {
		packer = NewGreedyPacker()
	}
	return OrderAssigner{
		selector: NewCandidateSelector(),
		packer:   packer,
	}
}

// Plan returns the orders from pool that fit into the courier's remaining capacity.
// carried holds the courier's undone assigned orders.
func (a OrderAssigner) Plan(c *courier.Courier, carried []*order.Order, pool []*order.Order) []*order.Order {
	remaining := c.Capacity() - Load(carried)
	if remaining <= 0 {
		return nil
	}
	return a.packer.Pack(remaining, a.selector.Select(c, pool))
}

// Load sums the weight of the undone orders in orders.
func Load(orders []*order.Order) kernel.Weight {
	var load kernel.Weight
	for _, o := range orders {
		if !o.IsDone() {
			load += o.Weight()
		}
	}
	return load
}
