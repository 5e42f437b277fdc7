package queries

import (
	"context"
	"errors"

	"boutique/internal/core/domain/model/workorder"
	"boutique/internal/pkg/errs"
	"boutique/internal/pkg/guard"
)

var ErrGetWorkOrderQueryIsNotConstructed = errors.New(
	"GetWorkOrderQuery must be created via NewGetWorkOrderQuery constructor",
)

type GetWorkOrderQuery struct {
	workOrderID int64

	guard guard.ConstructorGuard
}

func NewGetWorkOrderQuery(workOrderID int64) (GetWorkOrderQuery, error) {
	if workOrderID <= 0 {
		return GetWorkOrderQuery{}, errs.NewValueIsOutOfRangeError("work order id", workOrderID, 1, "+Inf")
	}
	return GetWorkOrderQuery{workOrderID: workOrderID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetWorkOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetWorkOrderQueryIsNotConstructed)
}

func (q GetWorkOrderQuery) WorkOrderID() int64 {
	return q.workOrderID
}

type GetWorkOrderQueryHandler struct {
	orders WorkOrderReader
}

func NewGetWorkOrderQueryHandler(orders WorkOrderReader) GetWorkOrderQueryHandler {
	return GetWorkOrderQueryHandler{orders: orders}
}

func (h GetWorkOrderQueryHandler) Handle(ctx context.Context, query GetWorkOrderQuery) (*workorder.WorkOrder, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}
	return h.orders.Get(ctx, query.WorkOrderID())
}
