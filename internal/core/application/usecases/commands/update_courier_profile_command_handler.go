package commands

import (
	"context"

	"dispatch/internal/core/domain/model/courier"
	"dispatch/internal/core/domain/services"
	"dispatch/internal/core/ports"
)

// UpdateCourierProfileResult holds the updated courier and the orders returned to the pool.
type UpdateCourierProfileResult struct {
	Courier          *courier.Courier
	ReleasedOrderIDs []int
}

// UpdateCourierProfileCommandHandler applies a profile patch and recalculates the
// courier's load before the transaction commits.
type UpdateCourierProfileCommandHandler struct {
	uowFactory   UoWFactory
	recalculator services.Recalculator
	cache        ports.StatsCache
}

// NewUpdateCourierProfileCommandHandler creates a handler for profile updates.
// cache may be nil.
func NewUpdateCourierProfileCommandHandler(
	uowFactory UoWFactory,
	recalculator services.Recalculator,
	cache ports.StatsCache,
) UpdateCourierProfileCommandHandler {
	return UpdateCourierProfileCommandHandler{
		uowFactory:   uowFactory,
		recalculator: recalculator,
		cache:        cache,
	}
}

// Handle patches the profile, unassigns orders that no longer fit and returns the result.
// A missing courier is errs.ObjectNotFoundError.
func (h UpdateCourierProfileCommandHandler) Handle(
	ctx context.Context,
	cmd UpdateCourierProfileCommand,
) (UpdateCourierProfileResult, error) {
	if err := cmd.Validate(); err != nil {
		return UpdateCourierProfileResult{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return UpdateCourierProfileResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	courierRepo := uow.CourierRepository()
	orderRepo := uow.OrderRepository()

	c, err := courierRepo.GetForUpdate(ctx, cmd.CourierID())
	if err != nil {
		return UpdateCourierProfileResult{}, err
	}

	previousCapacity := c.Capacity()
	if err = c.ApplyProfile(cmd.Patch()); err != nil {
		return UpdateCourierProfileResult{}, err
	}

	carried, err := orderRepo.ListAssignedUndone(ctx, c.ID())
	if err != nil {
		return UpdateCourierProfileResult{}, err
	}

	released, err := h.recalculator.Recalculate(c, previousCapacity, carried)
	if err != nil {
		return UpdateCourierProfileResult{}, err
	}

	releasedIDs := make([]int, 0, len(released))
	for _, o := range released {
		if err = orderRepo.Update(ctx, o); err != nil {
			return UpdateCourierProfileResult{}, err
		}
		releasedIDs = append(releasedIDs, o.ID())
	}

	if err = courierRepo.Update(ctx, c); err != nil {
		return UpdateCourierProfileResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return UpdateCourierProfileResult{}, err
	}

	if h.cache != nil {
		// a failed invalidation leaves the entry to expire with its TTL
		_ = h.cache.Invalidate(ctx, c.ID())
	}

	return UpdateCourierProfileResult{Courier: c, ReleasedOrderIDs: releasedIDs}, nil
}
