package commands

import (
	"context"

	"dispatch/internal/core/ports"
)

// CompleteOrderCommandHandler records a delivery and credits the courier.
//
// The courier row is locked before the order is read, so completions and profile
// updates for one courier never interleave.
type CompleteOrderCommandHandler struct {
	uowFactory UoWFactory
	cache      ports.StatsCache
}

// NewCompleteOrderCommandHandler creates a handler for order completion.
// cache may be nil.
func NewCompleteOrderCommandHandler(uowFactory UoWFactory, cache ports.StatsCache) CompleteOrderCommandHandler {
	return CompleteOrderCommandHandler{
		uowFactory: uowFactory,
		cache:      cache,
	}
}

// Handle completes the order and returns its id.
//
// Returns:
//   - errs.ObjectNotFoundError for an unknown order or courier
//   - errs.ConflictError when the order is assigned elsewhere, unassigned or already completed
func (h CompleteOrderCommandHandler) Handle(ctx context.Context, cmd CompleteOrderCommand) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	courierRepo := uow.CourierRepository()
	orderRepo := uow.OrderRepository()

	c, err := courierRepo.GetForUpdate(ctx, cmd.CourierID())
	if err != nil {
		return 0, err
	}

	o, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return 0, err
	}

	if err = o.Complete(c.ID(), cmd.CompleteTime()); err != nil {
		return 0, err
	}
	c.CreditCompletedOrder()

	if err = orderRepo.Update(ctx, o); err != nil {
		return 0, err
	}
	if err = courierRepo.Update(ctx, c); err != nil {
		return 0, err
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	if h.cache != nil {
		// a failed invalidation leaves the entry to expire with its TTL
		_ = h.cache.Invalidate(ctx, c.ID())
	}

	return o.ID(), nil
}
