package commands

import (
	"context"
)

type DeleteWorkOrderCommandHandler struct {
	uowFactory WorkOrderUoWFactory
}

func NewDeleteWorkOrderCommandHandler(uowFactory WorkOrderUoWFactory) DeleteWorkOrderCommandHandler {
	return DeleteWorkOrderCommandHandler{uowFactory: uowFactory}
}

// Handle fails with errs.ObjectNotFoundError for an unknown id.
func (h *DeleteWorkOrderCommandHandler) Handle(ctx context.Context, cmd DeleteWorkOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer rollback(ctx, uow)

	repo := uow.WorkOrderRepository()
	if _, err := repo.Get(ctx, cmd.WorkOrderID()); err != nil {
		return err
	}
	if err := repo.Delete(ctx, cmd.WorkOrderID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
