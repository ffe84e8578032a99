package commands

import (
	"errors"
	"fmt"

	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

var ErrAssignOrdersCommandIsNotConstructed = errors.New(
	"AssignOrdersCommand must be created via NewAssignOrdersCommand constructor",
)

// AssignOrdersCommand asks the engine to fill one courier from the pool.
type AssignOrdersCommand struct { //nolint:recvcheck //using for validation
	courierID int

	guard guard.ConstructorGuard
}

// NewAssignOrdersCommand creates a command for courierID.
func NewAssignOrdersCommand(courierID int) (AssignOrdersCommand, error) {
	if courierID <= 0 {
		return AssignOrdersCommand{}, errs.NewValueIsInvalidErrorWithCause(
			"courier id", fmt.Errorf("%d is not greater than 0", courierID))
	}

	return AssignOrdersCommand{
		courierID: courierID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c AssignOrdersCommand) Validate() error {
	return c.guard.Validate(ErrAssignOrdersCommandIsNotConstructed)
}

// CourierID returns the courier to fill.
func (c AssignOrdersCommand) CourierID() int {
	return c.courierID
}
