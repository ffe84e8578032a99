package commands

import (
	"context"

	"dispatch/internal/core/domain/model/courier"
)

// CreateCouriersCommandHandler persists an imported courier batch in one transaction.
type CreateCouriersCommandHandler struct {
	uowFactory CourierUoWFactory
}

// NewCreateCouriersCommandHandler creates a handler for courier imports.
func NewCreateCouriersCommandHandler(uowFactory CourierUoWFactory) CreateCouriersCommandHandler {
	return CreateCouriersCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle creates every courier of the batch and returns their ids.
// A duplicate id aborts the whole batch with errs.ConflictError.
func (h CreateCouriersCommandHandler) Handle(ctx context.Context, cmd CreateCouriersCommand) ([]int, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	courierRepo := uow.CourierRepository()
	ids := make([]int, 0, len(cmd.Couriers()))
	for _, draft := range cmd.Couriers() {
		c, err := courier.NewCourier(draft.ID, draft.Type, draft.Regions, draft.WorkingHours)
		if err != nil {
			return nil, err
		}
		if err = courierRepo.Add(ctx, c); err != nil {
			return nil, err
		}
		ids = append(ids, c.ID())
	}

	if err := uow.Commit(ctx); err != nil {
		return nil, err
	}

	return ids, nil
}
