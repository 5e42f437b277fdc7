package commands

import (
	"context"

	"boutique/internal/pkg/errs"
)

// DeleteClientCommandHandler removes clients that own no work orders. A client
// with orders fails with errs.ObjectHasDependentsError.
type DeleteClientCommandHandler struct {
	uowFactory UoWFactory
}

func NewDeleteClientCommandHandler(uowFactory UoWFactory) DeleteClientCommandHandler {
	return DeleteClientCommandHandler{uowFactory: uowFactory}
}

func (h *DeleteClientCommandHandler) Handle(ctx context.Context, cmd DeleteClientCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer rollback(ctx, uow)

	clientRepo := uow.ClientRepository()
	if _, err := clientRepo.Get(ctx, cmd.ClientID()); err != nil {
		return err
	}

	orders, err := uow.WorkOrderRepository().CountByClient(ctx, cmd.ClientID())
	if err != nil {
		return err
	}
	if orders > 0 {
		return errs.NewObjectHasDependentsError("client", cmd.ClientID(), orders)
	}

	if err = clientRepo.Delete(ctx, cmd.ClientID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
