package commands

import (
	"context"
)

type ResetDataResult struct {
	WorkOrdersDeleted int64
	ClientsDeleted    int64
}

// ResetDataCommandHandler deletes work orders before clients so that no
// work order is ever left without its client.
type ResetDataCommandHandler struct {
	uowFactory UoWFactory
}

func NewResetDataCommandHandler(uowFactory UoWFactory) ResetDataCommandHandler {
	return ResetDataCommandHandler{uowFactory: uowFactory}
}

func (h *ResetDataCommandHandler) Handle(ctx context.Context, cmd ResetDataCommand) (ResetDataResult, error) {
	if err := cmd.Validate(); err != nil {
		return ResetDataResult{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return ResetDataResult{}, err
	}
	defer rollback(ctx, uow)

	var (
		result ResetDataResult
		err    error
	)

	result.WorkOrdersDeleted, err = uow.WorkOrderRepository().DeleteAll(ctx)
	if err != nil {
		return ResetDataResult{}, err
	}

	if cmd.Scope() != ResetWorkOrders {
		result.ClientsDeleted, err = uow.ClientRepository().DeleteAll(ctx)
		if err != nil {
			return ResetDataResult{}, err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return ResetDataResult{}, err
	}
	return result, nil
}
