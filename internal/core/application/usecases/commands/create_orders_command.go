package commands

import (
	"errors"
	"fmt"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

var ErrCreateOrdersCommandIsNotConstructed = errors.New(
	"CreateOrdersCommand must be created via NewCreateOrdersCommand constructor",
)

// OrderEntry is one order of a bulk import, in wire form. Weight is in kilograms.
type OrderEntry struct {
	ID            int
	Weight        float64
	Region        int
	DeliveryHours []string
}

// OrderDraft is a validated OrderEntry.
type OrderDraft struct {
	ID              int
	Weight          kernel.Weight
	Region          int
	DeliveryWindows []kernel.TimeWindow
}

// CreateOrdersCommand imports a batch of orders into the pool. The batch is all-or-nothing.
type CreateOrdersCommand struct { //nolint:recvcheck //using for validation
	orders []OrderDraft

	guard guard.ConstructorGuard
}

// NewCreateOrdersCommand validates every entry. Failing entries are reported
// together in an InvalidEntriesError.
func NewCreateOrdersCommand(entries []OrderEntry) (CreateOrdersCommand, error) {
	if len(entries) == 0 {
		return CreateOrdersCommand{}, errs.NewValueIsRequiredError("orders")
	}

	command := CreateOrdersCommand{
		orders: make([]OrderDraft, 0, len(entries)),
		guard:  guard.NewConstructorGuard(),
	}

	failures := make(map[int]error)
	seen := make(map[int]struct{}, len(entries))
	for _, entry := range entries {
		if _, dup := seen[entry.ID]; dup {
			failures[entry.ID] = errors.Join(failures[entry.ID],
				errs.NewValueIsInvalidErrorWithCause("order id", fmt.Errorf("%d appears more than once", entry.ID)))
			continue
		}
		seen[entry.ID] = struct{}{}

		draft, err := newOrderDraft(entry)
		if err != nil {
			failures[entry.ID] = err
			continue
		}
		command.orders = append(command.orders, draft)
	}

	if len(failures) > 0 {
		return CreateOrdersCommand{}, newInvalidEntriesError("order", failures)
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrdersCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrdersCommandIsNotConstructed)
}

// Orders returns the validated drafts in input order.
func (c CreateOrdersCommand) Orders() []OrderDraft {
	return c.orders
}

func newOrderDraft(entry OrderEntry) (OrderDraft, error) {
	var idErr, regionErr error
	if entry.ID <= 0 {
		idErr = errs.NewValueIsInvalidErrorWithCause("order id", fmt.Errorf("%d is not greater than 0", entry.ID))
	}

	weight, weightErr := kernel.NewOrderWeight(entry.Weight)

	if entry.Region <= 0 {
		regionErr = errs.NewValueIsInvalidErrorWithCause("region", fmt.Errorf("%d is not greater than 0", entry.Region))
	}

	windows, windowsErr := parseWindows("delivery_hours", entry.DeliveryHours)

	if err := errors.Join(idErr, weightErr, regionErr, windowsErr); err != nil {
		return OrderDraft{}, err
	}

	return OrderDraft{
		ID:              entry.ID,
		Weight:          weight,
		Region:          entry.Region,
		DeliveryWindows: windows,
	}, nil
}
