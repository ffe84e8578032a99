package order

import (
	"errors"
	"fmt"
	"slices"
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")
)

// Order represents a delivery order. It is the aggregate root for the order lifecycle:
// created into the pool, assigned to a courier, possibly returned to the pool, and
// completed exactly once.
//
// Order follows these invariants:
//   - id and region are positive, weight is in (0, 50] kg, delivery windows are non-empty
//   - assign time is set if and only if a courier is assigned
//   - complete time is never before assign time
//   - once completed, assignment fields never change again
//
// The courier is referenced by id only. The order does not own the courier.
type Order struct {
	id              int
	weight          kernel.Weight
	region          int
	deliveryWindows []kernel.TimeWindow

	// courierID is nil while the order is in the pool
	courierID    *int
	assignTime   *time.Time
	completeTime *time.Time

	status        Status
	isConstructed bool
}

// NewOrder creates an unassigned order.
//
// Example:
//
//	w, _ := kernel.NewOrderWeight(2.5)
//	windows, _ := kernel.ParseTimeWindows([]string{"10:00-12:00"})
//	o, err := order.NewOrder(10, w, 1, windows)
func NewOrder(id int, weight kernel.Weight, region int, deliveryWindows []kernel.TimeWindow) (*Order, error) {
	o := &Order{
		status:        Created,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setWeight(weight),
		o.setRegion(region),
		o.setDeliveryWindows(deliveryWindows),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOrder reconstructs an order from persistent storage and checks that the
// stored assignment fields are mutually consistent.
func RestoreOrder(
	id int,
	weight kernel.Weight,
	region int,
	deliveryWindows []kernel.TimeWindow,
	courierID *int,
	assignTime *time.Time,
	completeTime *time.Time,
	done bool,
) (*Order, error) {
	o, err := NewOrder(id, weight, region, deliveryWindows)
	if err != nil {
		return nil, err
	}

	switch {
	case done:
		o.status = Completed
	case courierID != nil:
		o.status = Assigned
	}

	if (courierID == nil) != (assignTime == nil) {
		return nil, errs.NewValueIsInvalidErrorWithCause(
			"order assignment", fmt.Errorf("order %d: courier and assign time must be set together", id))
	}
	if done != (completeTime != nil) {
		return nil, errs.NewValueIsInvalidErrorWithCause(
			"order completion", fmt.Errorf("order %d: done flag and complete time disagree", id))
	}
	if done && courierID == nil {
		return nil, errs.NewValueIsInvalidErrorWithCause(
			"order completion", fmt.Errorf("order %d: completed without a courier", id))
	}
	if done && completeTime.Before(*assignTime) {
		return nil, errs.NewValueIsInvalidErrorWithCause(
			"order completion", fmt.Errorf("order %d: completed before it was assigned", id))
	}

	o.courierID = cloneInt(courierID)
	o.assignTime = cloneTime(assignTime)
	o.completeTime = cloneTime(completeTime)
	return o, nil
}

// Validate ensures the Order instance was properly constructed.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// ID returns the order id.
func (o *Order) ID() int {
	return o.id
}

// Weight returns the order weight.
func (o *Order) Weight() kernel.Weight {
	return o.weight
}

// Region returns the delivery region.
func (o *Order) Region() int {
	return o.region
}

// DeliveryWindows returns a copy of the acceptable delivery windows.
func (o *Order) DeliveryWindows() []kernel.TimeWindow {
	return slices.Clone(o.deliveryWindows)
}

// Status returns the lifecycle state.
func (o *Order) Status() Status {
	return o.status
}

// Courier returns the assigned courier id, or nil while the order is in the pool.
func (o *Order) Courier() *int {
	return cloneInt(o.courierID)
}

// AssignTime returns when the order was assigned, or nil.
func (o *Order) AssignTime() *time.Time {
	return cloneTime(o.assignTime)
}

// CompleteTime returns when the order was delivered, or nil.
func (o *Order) CompleteTime() *time.Time {
	return cloneTime(o.completeTime)
}

// IsDone reports whether the order has been completed.
func (o *Order) IsDone() bool {
	return o.status == Completed
}

// IsAssignedTo reports whether the order is currently linked to courierID.
func (o *Order) IsAssignedTo(courierID int) bool {
	return o.courierID != nil && *o.courierID == courierID
}

// Assign links a pool order to a courier and stamps the batch assign time.
func (o *Order) Assign(courierID int, assignTime time.Time) error {
	if courierID <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("courier id", fmt.Errorf("%d is not greater than 0", courierID))
	}
	if assignTime.IsZero() {
		return errs.NewValueIsRequiredError("assign time")
	}

	newStatus, err := o.status.Assign()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.courierID = &courierID
	o.assignTime = &assignTime
	return nil
}

// Unassign returns the order to the pool, clearing courier and assign time together.
func (o *Order) Unassign() error {
	newStatus, err := o.status.Unassign()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.courierID = nil
	o.assignTime = nil
	return nil
}

// Complete marks the order as delivered by courierID at completeTime.
//
// Returns:
//   - ConflictError if the order is already completed or is not assigned to courierID
//   - ValueIsInvalidError if completeTime precedes the assign time
func (o *Order) Complete(courierID int, completeTime time.Time) error {
	if o.status == Completed {
		return errs.NewConflictError("order", o.id, "order is already completed")
	}
	if !o.IsAssignedTo(courierID) {
		return errs.NewConflictError("order", o.id, fmt.Sprintf("order is not assigned to courier %d", courierID))
	}
	if completeTime.Before(*o.assignTime) {
		return errs.NewValueIsInvalidErrorWithCause(
			"complete time",
			fmt.Errorf("%s is before assign time %s",
				completeTime.UTC().Format(time.RFC3339), o.assignTime.UTC().Format(time.RFC3339)),
		)
	}

	newStatus, err := o.status.Complete()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.completeTime = &completeTime
	return nil
}

func (o *Order) setID(id int) error {
	if id <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("order id", fmt.Errorf("%d is not greater than 0", id))
	}
	o.id = id
	return nil
}

func (o *Order) setWeight(weight kernel.Weight) error {
	if weight < kernel.MinOrderWeight || weight > kernel.MaxOrderWeight {
		return errs.NewValueIsOutOfRangeError("weight", weight.Kg(), kernel.MinOrderWeight.Kg(), kernel.MaxOrderWeight.Kg())
	}
	o.weight = weight
	return nil
}

func (o *Order) setRegion(region int) error {
	if region <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("region", fmt.Errorf("%d is not greater than 0", region))
	}
	o.region = region
	return nil
}

func (o *Order) setDeliveryWindows(windows []kernel.TimeWindow) error {
	if len(windows) == 0 {
		return errs.NewValueIsRequiredError("delivery windows")
	}
	for _, w := range windows {
		if err := w.Validate(); err != nil {
			return err
		}
	}
	o.deliveryWindows = slices.Clone(windows)
	return nil
}

func cloneInt(v *int) *int {
	if v == nil {
		return nil
	}
	c := *v
	return &c
}

func cloneTime(v *time.Time) *time.Time {
	if v == nil {
		return nil
	}
	c := *v
	return &c
}
