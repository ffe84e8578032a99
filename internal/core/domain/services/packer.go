package services

import (
	"fmt"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/pkg/errs"
)

// Strategy names a packing algorithm.
type Strategy string

const (
	// StrategyGreedy admits candidates heaviest first and never revisits a rejection.
	StrategyGreedy Strategy = "greedy"

	// StrategyKnapsack maximizes packed mass with a bounded 0/1 knapsack.
	StrategyKnapsack Strategy = "knapsack"
)

// DefaultKnapsackMaxCells bounds the knapsack table size.
const DefaultKnapsackMaxCells = 1_000_000

// ParseStrategy converts a configuration value into a Strategy.
func ParseStrategy(s string) (Strategy, error) {
	switch Strategy(s) {
	case StrategyGreedy, StrategyKnapsack:
		return Strategy(s), nil
	default:
		return "", errs.NewValueIsInvalidErrorWithCause("packing strategy", fmt.Errorf("unknown strategy %q", s))
	}
}

// Packer picks a subset of candidates whose total weight fits into remaining.
//
// Candidates must already be eligible and sorted heaviest first. The returned orders
// keep the candidate order.
type Packer interface {
	Pack(remaining kernel.Weight, candidates []*order.Order) []*order.Order
}

// NewPacker builds the packer for strategy. maxCells only applies to StrategyKnapsack.
func NewPacker(strategy Strategy, maxCells int) (Packer, error) {
	switch strategy {
	case StrategyGreedy:
		return NewGreedyPacker(), nil
	case StrategyKnapsack:
		return NewKnapsackPacker(maxCells)
	default:
		return nil, errs.NewValueIsInvalidErrorWithCause("packing strategy", fmt.Errorf("unknown strategy %q", strategy))
	}
}

// GreedyPacker is the first-fit-decreasing packer.
type GreedyPacker struct{}

// NewGreedyPacker creates a new GreedyPacker instance.
func NewGreedyPacker() GreedyPacker {
	return GreedyPacker{}
}

// Pack admits each candidate whose weight still fits.
func (GreedyPacker) Pack(remaining kernel.Weight, candidates []*order.Order) []*order.Order {
	var (
		packed  []*order.Order
		running kernel.Weight
	)
	for _, o := range candidates {
		if running+o.Weight() <= remaining {
			packed = append(packed, o)
			running += o.Weight()
		}
	}
	return packed
}

// KnapsackPacker solves the 0/1 knapsack over weights in hundredths of a kilogram.
//
// The table has (len(candidates)+1) * (remaining+1) cells. When that exceeds maxCells
// the packer falls back to greedy.
type KnapsackPacker struct {
	maxCells int
	fallback GreedyPacker
}

// NewKnapsackPacker creates a KnapsackPacker bounded by maxCells.
func NewKnapsackPacker(maxCells int) (*KnapsackPacker, error) {
	if maxCells <= 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause("knapsack max cells", fmt.Errorf("%d is not greater than 0", maxCells))
	}
	return &KnapsackPacker{maxCells: maxCells}, nil
}

// Pack returns the subset with the largest total weight not exceeding remaining.
func (p *KnapsackPacker) Pack(remaining kernel.Weight, candidates []*order.Order) []*order.Order {
	if remaining <= 0 || len(candidates) == 0 {
		return nil
	}

	capacity := int(remaining)
	n := len(candidates)
	if int64(n+1)*int64(capacity+1) > int64(p.maxCells) {
		return p.fallback.Pack(remaining, candidates)
	}

	best := make([]int, capacity+1)
	taken := make([][]bool, n)
	for i, o := range candidates {
		taken[i] = make([]bool, capacity+1)
		w := int(o.Weight())
		for c := capacity; c >= w; c-- {
			if best[c-w]+w > best[c] {
				best[c] = best[c-w] + w
				taken[i][c] = true
			}
		}
	}

	picked := make([]bool, n)
	for i, c := n-1, capacity; i >= 0 && c > 0; i-- {
		if taken[i][c] {
			picked[i] = true
			c -= int(candidates[i].Weight())
		}
	}

	var packed []*order.Order
	for i, o := range candidates {
		if picked[i] {
			packed = append(packed, o)
		}
	}
	return packed
}
