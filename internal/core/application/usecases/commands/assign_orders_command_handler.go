package commands

import (
	"context"
	"time"

	"dispatch/internal/core/domain/services"
	"dispatch/internal/core/ports"
)

// AssignOrdersResult lists the orders admitted by one AssignOrders call.
// AssignTime is nil when nothing was admitted.
type AssignOrdersResult struct {
	OrderIDs   []int
	AssignTime *time.Time
}

// AssignOrdersCommandHandler fills a courier with pool orders.
//
// The courier row is locked for the whole transaction, so concurrent calls for the
// same courier are serialized. Each planned order is admitted with a compare-and-set
// write; orders taken by another courier in the meantime are skipped.
//
// Example:
//
//	handler := NewAssignOrdersCommandHandler(uowFactory, services.NewOrderAssigner(packer), ports.SystemClock)
//	cmd, _ := NewAssignOrdersCommand(1)
//	result, err := handler.Handle(ctx, cmd)
//	if errors.Is(err, errs.ErrObjectNotFound) {
//	    // unknown courier
//	}
type AssignOrdersCommandHandler struct {
	uowFactory UoWFactory
	assigner   services.OrderAssigner
	clock      ports.Clock
}

// NewAssignOrdersCommandHandler creates a handler for order assignment.
func NewAssignOrdersCommandHandler(
	uowFactory UoWFactory,
	assigner services.OrderAssigner,
	clock ports.Clock,
) AssignOrdersCommandHandler {
	if clock == nil {
		clock = ports.SystemClock
	}
	return AssignOrdersCommandHandler{
		uowFactory: uowFactory,
		assigner:   assigner,
		clock:      clock,
	}
}

// Handle assigns as many eligible pool orders as fit and returns them with the shared
// batch time. A missing courier is errs.ObjectNotFoundError. Finding nothing to assign
// is not an error.
func (h AssignOrdersCommandHandler) Handle(ctx context.Context, cmd AssignOrdersCommand) (AssignOrdersResult, error) {
	if err := cmd.Validate(); err != nil {
		return AssignOrdersResult{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return AssignOrdersResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	courierRepo := uow.CourierRepository()
	orderRepo := uow.OrderRepository()

	c, err := courierRepo.GetForUpdate(ctx, cmd.CourierID())
	if err != nil {
		return AssignOrdersResult{}, err
	}

	carried, err := orderRepo.ListAssignedUndone(ctx, c.ID())
	if err != nil {
		return AssignOrdersResult{}, err
	}

	pool, err := orderRepo.ListUnassignedByRegion(ctx, c.Regions())
	if err != nil {
		return AssignOrdersResult{}, err
	}

	planned := h.assigner.Plan(c, carried, pool)
	if len(planned) == 0 {
		return AssignOrdersResult{OrderIDs: []int{}}, nil
	}

	batchTime := h.clock.Now().UTC()
	assigned := make([]int, 0, len(planned))
	for _, o := range planned {
		if err = o.Assign(c.ID(), batchTime); err != nil {
			return AssignOrdersResult{}, err
		}

		won, err := orderRepo.ConditionalAssign(ctx, o.ID(), c.ID(), batchTime)
		if err != nil {
			return AssignOrdersResult{}, err
		}
		if won {
			assigned = append(assigned, o.ID())
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return AssignOrdersResult{}, err
	}

	result := AssignOrdersResult{OrderIDs: assigned}
	if len(assigned) > 0 {
		result.AssignTime = &batchTime
	}
	return result, nil
}
