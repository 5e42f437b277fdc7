package queries

import (
	"context"
	"errors"

	"boutique/internal/core/domain/model/workorder"
	"boutique/internal/core/ports"
	"boutique/internal/pkg/guard"
)

var ErrListWorkOrdersQueryIsNotConstructed = errors.New(
	"ListWorkOrdersQuery must be created via NewListWorkOrdersQuery constructor",
)

// ListWorkOrdersQuery pages through work orders ordered by id.
type ListWorkOrdersQuery struct {
	page ports.Page

	guard guard.ConstructorGuard
}

func NewListWorkOrdersQuery(offset, limit int) (ListWorkOrdersQuery, error) {
	page, err := newPage(offset, limit)
	if err != nil {
		return ListWorkOrdersQuery{}, err
	}
	return ListWorkOrdersQuery{page: page, guard: guard.NewConstructorGuard()}, nil
}

func (q ListWorkOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListWorkOrdersQueryIsNotConstructed)
}

func (q ListWorkOrdersQuery) Page() ports.Page {
	return q.page
}

type ListWorkOrdersQueryResponse struct {
	WorkOrders []*workorder.WorkOrder
	Total      int64
}

type ListWorkOrdersQueryHandler struct {
	orders WorkOrderReader
}

func NewListWorkOrdersQueryHandler(orders WorkOrderReader) ListWorkOrdersQueryHandler {
	return ListWorkOrdersQueryHandler{orders: orders}
}

func (h ListWorkOrdersQueryHandler) Handle(ctx context.Context, query ListWorkOrdersQuery) (ListWorkOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return ListWorkOrdersQueryResponse{}, err
	}

	orders, err := h.orders.List(ctx, query.Page())
	if err != nil {
		return ListWorkOrdersQueryResponse{}, err
	}
	total, err := h.orders.Count(ctx)
	if err != nil {
		return ListWorkOrdersQueryResponse{}, err
	}

	return ListWorkOrdersQueryResponse{WorkOrders: orders, Total: total}, nil
}
