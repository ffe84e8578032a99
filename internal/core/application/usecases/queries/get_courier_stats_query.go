// Package queries contains read operations that build response models straight
// from the database without going through the unit of work.
package queries

import (
	"errors"
	"fmt"

	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

var ErrGetCourierStatsQueryIsNotConstructed = errors.New(
	"GetCourierStatsQuery must be created via NewGetCourierStatsQuery constructor",
)

// GetCourierStatsQuery reads a courier profile with earnings and rating.
//
// Example:
//
//	query, err := NewGetCourierStatsQuery(2)
//	if err != nil {
//	    return err
//	}
//	stats, err := handler.Handle(ctx, query)
type GetCourierStatsQuery struct {
	courierID int

	guard guard.ConstructorGuard
}

// NewGetCourierStatsQuery creates a stats query for courierID.
func NewGetCourierStatsQuery(courierID int) (GetCourierStatsQuery, error) {
	if courierID <= 0 {
		return GetCourierStatsQuery{}, errs.NewValueIsInvalidErrorWithCause(
			"courier id", fmt.Errorf("%d is not greater than 0", courierID))
	}

	return GetCourierStatsQuery{
		courierID: courierID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetCourierStatsQuery) Validate() error {
	return q.guard.Validate(ErrGetCourierStatsQueryIsNotConstructed)
}

// CourierID returns the courier to report on.
func (q GetCourierStatsQuery) CourierID() int {
	return q.courierID
}

// GetCourierStatsQueryResponse is the courier read model. Rating is nil until the
// courier completes an order in one of its current regions.
type GetCourierStatsQueryResponse struct {
	ID           int      `json:"courier_id"`
	Type         string   `json:"courier_type"`
	Regions      []int    `json:"regions"`
	WorkingHours []string `json:"working_hours"`
	Rating       *float64 `json:"rating,omitempty"`
	Earnings     int64    `json:"earnings"`
}
