package commands

import (
	"errors"
	"fmt"
	"time"

	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

var ErrCompleteOrderCommandIsNotConstructed = errors.New(
	"CompleteOrderCommand must be created via NewCompleteOrderCommand constructor",
)

// CompleteOrderCommand reports that a courier delivered an order.
type CompleteOrderCommand struct { //nolint:recvcheck //using for validation
	orderID      int
	courierID    int
	completeTime time.Time

	guard guard.ConstructorGuard
}

// NewCompleteOrderCommand validates ids and the completion time.
func NewCompleteOrderCommand(orderID, courierID int, completeTime time.Time) (CompleteOrderCommand, error) {
	command := CompleteOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setOrderID(orderID),
		command.setCourierID(courierID),
		command.setCompleteTime(completeTime),
	); err != nil {
		return CompleteOrderCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c CompleteOrderCommand) Validate() error {
	return c.guard.Validate(ErrCompleteOrderCommandIsNotConstructed)
}

// OrderID returns the delivered order.
func (c CompleteOrderCommand) OrderID() int {
	return c.orderID
}

// CourierID returns the courier reporting the delivery.
func (c CompleteOrderCommand) CourierID() int {
	return c.courierID
}

// CompleteTime returns the delivery time in UTC.
func (c CompleteOrderCommand) CompleteTime() time.Time {
	return c.completeTime
}

func (c *CompleteOrderCommand) setOrderID(id int) error {
	if id <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("order id", fmt.Errorf("%d is not greater than 0", id))
	}
	c.orderID = id
	return nil
}

func (c *CompleteOrderCommand) setCourierID(id int) error {
	if id <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("courier id", fmt.Errorf("%d is not greater than 0", id))
	}
	c.courierID = id
	return nil
}

func (c *CompleteOrderCommand) setCompleteTime(t time.Time) error {
	if t.IsZero() {
		return errs.NewValueIsRequiredError("complete time")
	}
	c.completeTime = t.UTC()
	return nil
}
