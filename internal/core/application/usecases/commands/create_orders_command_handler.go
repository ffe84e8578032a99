package commands

import (
	"context"

	"dispatch/internal/core/domain/model/order"
)

// CreateOrdersCommandHandler puts an imported order batch into the pool in one transaction.
type CreateOrdersCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewCreateOrdersCommandHandler creates a handler for order imports.
func NewCreateOrdersCommandHandler(uowFactory OrderUoWFactory) CreateOrdersCommandHandler {
	return CreateOrdersCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle creates every order of the batch and returns their ids.
// A duplicate id aborts the whole batch with errs.ConflictError.
func (h CreateOrdersCommandHandler) Handle(ctx context.Context, cmd CreateOrdersCommand) ([]int, error) {
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

	orderRepo := uow.OrderRepository()
	ids := make([]int, 0, len(cmd.Orders()))
	for _, draft := range cmd.Orders() {
		o, err := order.NewOrder(draft.ID, draft.Weight, draft.Region, draft.DeliveryWindows)
		if err != nil {
			return nil, err
		}
		if err = orderRepo.Add(ctx, o); err != nil {
			return nil, err
		}
		ids = append(ids, o.ID())
	}

	if err := uow.Commit(ctx); err != nil {
		return nil, err
	}

	return ids, nil
}
