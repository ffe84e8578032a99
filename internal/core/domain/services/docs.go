// Package services provides the stateless domain services of the assignment engine.
//
// The package includes:
//   - CandidateSelector: region and window filtering, heaviest first
//   - Packer: GreedyPacker (canonical) and KnapsackPacker (bounded, falls back to greedy)
//   - OrderAssigner: selector and packer combined for one courier
//   - Recalculator: releases orders after a courier profile change
//   - RatingCalculator: courier rating from completed deliveries
//   - ConstraintChecker: capacity and eligibility audit of a courier's load
//
// Services never read the clock and never touch storage. Timestamps and orders are
// passed in by the application layer.
package services
