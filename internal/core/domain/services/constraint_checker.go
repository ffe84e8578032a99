package services

import (
	"fmt"

	"dispatch/internal/core/domain/model/courier"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/pkg/errs"
)

// Constraint names reported in ConstraintViolationError.
const (
	ConstraintCapacity = "capacity"
	ConstraintRegion   = "region"
	ConstraintHours    = "hours"
)

// ConstraintChecker verifies the assignment invariants of one courier: the undone
// load fits the capacity and every carried order is eligible for the courier.
type ConstraintChecker struct{}

// NewConstraintChecker creates a new ConstraintChecker instance.
func NewConstraintChecker() ConstraintChecker {
	return ConstraintChecker{}
}

// Violations lists the broken invariants. Orders not carried by the courier are ignored.
func (ConstraintChecker) Violations(c *courier.Courier, carried []*order.Order) []*errs.ConstraintViolationError {
	var violations []*errs.ConstraintViolationError
	var mine []*order.Order
	for _, o := range carried {
		if o.IsDone() || !o.IsAssignedTo(c.ID()) {
			continue
		}
		mine = append(mine, o)

		if !c.ServesRegion(o.Region()) {
			violations = append(violations, errs.NewConstraintViolationError(
				ConstraintRegion, c.ID(), o.ID(),
				fmt.Sprintf("region %d is not served", o.Region())))
			continue
		}
		if !c.CanDeliver(o.Region(), o.DeliveryWindows()) {
			violations = append(violations, errs.NewConstraintViolationError(
				ConstraintHours, c.ID(), o.ID(), "no delivery window meets working hours"))
		}
	}

	if load := Load(mine); load > c.Capacity() {
		violations = append(violations, errs.NewConstraintViolationError(
			ConstraintCapacity, c.ID(), 0,
			fmt.Sprintf("load %s exceeds capacity %s", load, c.Capacity())))
	}

	return violations
}
