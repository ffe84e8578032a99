package services

import (
	"cmp"
	"math"
	"slices"

	"dispatch/internal/core/domain/model/courier"
	"dispatch/internal/core/domain/model/order"
)

const (
	// MaxRating is awarded to a courier whose mean delivery gap is zero.
	MaxRating = 5.0

	ratingHorizonSeconds = 3600.0
)

// RatingCalculator derives a courier rating from completed deliveries.
//
// For every region the courier currently serves, completed orders are sorted by
// complete time. The first gap runs from assign to complete time, each later gap
// from the previous completion. The fastest region's mean gap t (seconds) gives
//
//	rating = round((3600 - min(t, 3600)) / 3600 * 5, 2)
type RatingCalculator struct{}

// NewRatingCalculator creates a new RatingCalculator instance.
func NewRatingCalculator() RatingCalculator {
	return RatingCalculator{}
}

// Rating returns the courier rating. ok is false when no completed order falls into
// one of the courier's current regions.
func (RatingCalculator) Rating(c *courier.Courier, completed []*order.Order) (rating float64, ok bool) {
	byRegion := make(map[int][]*order.Order)
	for _, o := range completed {
		if !o.IsDone() || !o.IsAssignedTo(c.ID()) || !c.ServesRegion(o.Region()) {
			continue
		}
		byRegion[o.Region()] = append(byRegion[o.Region()], o)
	}
	if len(byRegion) == 0 {
		return 0, false
	}

	minMean := math.Inf(1)
	for _, orders := range byRegion {
		minMean = math.Min(minMean, meanGapSeconds(orders))
	}

	raw := (ratingHorizonSeconds - math.Min(minMean, ratingHorizonSeconds)) / ratingHorizonSeconds * MaxRating
	return math.Round(raw*100) / 100, true
}

func meanGapSeconds(orders []*order.Order) float64 {
	slices.SortStableFunc(orders, func(a, b *order.Order) int {
		if byTime := a.CompleteTime().Compare(*b.CompleteTime()); byTime != 0 {
			return byTime
		}
		return cmp.Compare(a.ID(), b.ID())
	})

	var total float64
	previous := *orders[0].AssignTime()
	for _, o := range orders {
		done := *o.CompleteTime()
		total += done.Sub(previous).Seconds()
		previous = done
	}
	return total / float64(len(orders))
}
