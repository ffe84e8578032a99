package commands

import (
	"errors"
	"fmt"

	"dispatch/internal/core/domain/model/courier"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

var ErrCreateCouriersCommandIsNotConstructed = errors.New(
	"CreateCouriersCommand must be created via NewCreateCouriersCommand constructor",
)

// CourierEntry is one courier of a bulk import, in wire form.
type CourierEntry struct {
	ID           int
	Type         string
	Regions      []int
	WorkingHours []string
}

// CourierDraft is a validated CourierEntry.
type CourierDraft struct {
	ID           int
	Type         courier.Type
	Regions      []int
	WorkingHours []kernel.TimeWindow
}

// CreateCouriersCommand imports a batch of couriers. The batch is all-or-nothing.
//
// Example:
//
//	cmd, err := NewCreateCouriersCommand([]CourierEntry{
//	    {ID: 1, Type: "foot", Regions: []int{1, 12}, WorkingHours: []string{"11:35-14:05"}},
//	})
//	var invalid *InvalidEntriesError
//	if errors.As(err, &invalid) {
//	    fmt.Println(invalid.IDs)
//	}
type CreateCouriersCommand struct { //nolint:recvcheck //using for validation
	couriers []CourierDraft

	guard guard.ConstructorGuard
}

// NewCreateCouriersCommand validates every entry. Failing entries are reported
// together in an InvalidEntriesError.
func NewCreateCouriersCommand(entries []CourierEntry) (CreateCouriersCommand, error) {
	if len(entries) == 0 {
		return CreateCouriersCommand{}, errs.NewValueIsRequiredError("couriers")
	}

	command := CreateCouriersCommand{
		couriers: make([]CourierDraft, 0, len(entries)),
		guard:    guard.NewConstructorGuard(),
	}

	failures := make(map[int]error)
	seen := make(map[int]struct{}, len(entries))
	for _, entry := range entries {
		if _, dup := seen[entry.ID]; dup {
			failures[entry.ID] = errors.Join(failures[entry.ID],
				errs.NewValueIsInvalidErrorWithCause("courier id", fmt.Errorf("%d appears more than once", entry.ID)))
			continue
		}
		seen[entry.ID] = struct{}{}

		draft, err := newCourierDraft(entry)
		if err != nil {
			failures[entry.ID] = err
			continue
		}
		command.couriers = append(command.couriers, draft)
	}

	if len(failures) > 0 {
		return CreateCouriersCommand{}, newInvalidEntriesError("courier", failures)
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateCouriersCommand) Validate() error {
	return c.guard.Validate(ErrCreateCouriersCommandIsNotConstructed)
}

// Couriers returns the validated drafts in input order.
func (c CreateCouriersCommand) Couriers() []CourierDraft {
	return c.couriers
}

func newCourierDraft(entry CourierEntry) (CourierDraft, error) {
	var idErr, regionsErr error
	if entry.ID <= 0 {
		idErr = errs.NewValueIsInvalidErrorWithCause("courier id", fmt.Errorf("%d is not greater than 0", entry.ID))
	}

	courierType, typeErr := courier.ParseType(entry.Type)

	if len(entry.Regions) == 0 {
		regionsErr = errs.NewValueIsRequiredError("regions")
	}
	for _, r := range entry.Regions {
		if r <= 0 {
			regionsErr = errs.NewValueIsInvalidErrorWithCause("regions", fmt.Errorf("%d is not greater than 0", r))
			break
		}
	}

	hours, hoursErr := parseWindows("working_hours", entry.WorkingHours)

	if err := errors.Join(idErr, typeErr, regionsErr, hoursErr); err != nil {
		return CourierDraft{}, err
	}

	return CourierDraft{
		ID:           entry.ID,
		Type:         courierType,
		Regions:      entry.Regions,
		WorkingHours: hours,
	}, nil
}

func parseWindows(name string, values []string) ([]kernel.TimeWindow, error) {
	if len(values) == 0 {
		return nil, errs.NewValueIsRequiredError(name)
	}
	windows, err := kernel.ParseTimeWindows(values)
	if err != nil {
		return nil, errs.NewValueIsInvalidErrorWithCause(name, err)
	}
	return windows, nil
}
