package commands

import (
	"errors"
	"fmt"

	"dispatch/internal/core/domain/model/courier"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

var ErrUpdateCourierProfileCommandIsNotConstructed = errors.New(
	"UpdateCourierProfileCommand must be created via NewUpdateCourierProfileCommand constructor",
)

// ProfileChanges is a partial courier profile in wire form. Nil fields are unchanged.
type ProfileChanges struct {
	Type         *string
	Regions      []int
	WorkingHours []string
}

// UpdateCourierProfileCommand patches a courier profile.
type UpdateCourierProfileCommand struct { //nolint:recvcheck //using for validation
	courierID int
	patch     courier.ProfilePatch

	guard guard.ConstructorGuard
}

// NewUpdateCourierProfileCommand validates the patched fields. At least one field is required.
func NewUpdateCourierProfileCommand(courierID int, changes ProfileChanges) (UpdateCourierProfileCommand, error) {
	command := UpdateCourierProfileCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setCourierID(courierID),
		command.setPatch(changes),
	); err != nil {
		return UpdateCourierProfileCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateCourierProfileCommand) Validate() error {
	return c.guard.Validate(ErrUpdateCourierProfileCommandIsNotConstructed)
}

// CourierID returns the courier to update.
func (c UpdateCourierProfileCommand) CourierID() int {
	return c.courierID
}

// Patch returns the validated profile patch.
func (c UpdateCourierProfileCommand) Patch() courier.ProfilePatch {
	return c.patch
}

func (c *UpdateCourierProfileCommand) setCourierID(id int) error {
	if id <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("courier id", fmt.Errorf("%d is not greater than 0", id))
	}
	c.courierID = id
	return nil
}

func (c *UpdateCourierProfileCommand) setPatch(changes ProfileChanges) error {
	if changes.Type == nil && changes.Regions == nil && changes.WorkingHours == nil {
		return courier.ErrEmptyProfilePatch
	}

	var typeErr, regionsErr, hoursErr error
	if changes.Type != nil {
		t, err := courier.ParseType(*changes.Type)
		typeErr = err
		c.patch.Type = &t
	}
	if changes.Regions != nil {
		for _, r := range changes.Regions {
			if r <= 0 {
				regionsErr = errs.NewValueIsInvalidErrorWithCause("regions", fmt.Errorf("%d is not greater than 0", r))
				break
			}
		}
		c.patch.Regions = changes.Regions
	}
	if changes.WorkingHours != nil {
		hours, err := kernel.ParseTimeWindows(changes.WorkingHours)
		if err != nil {
			hoursErr = errs.NewValueIsInvalidErrorWithCause("working_hours", err)
		}
		c.patch.WorkingHours = hours
	}

	return errors.Join(typeErr, regionsErr, hoursErr)
}
