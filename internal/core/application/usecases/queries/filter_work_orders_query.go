package queries

import (
	"context"
	"errors"

	"boutique/internal/core/domain/model/workorder"
	"boutique/internal/core/domain/services"
	"boutique/internal/pkg/guard"
)

var ErrFilterWorkOrdersQueryIsNotConstructed = errors.New(
	"FilterWorkOrdersQuery must be created via NewFilterWorkOrdersQuery constructor",
)

// FilterWorkOrdersQuery selects work orders matching every given criterion.
type FilterWorkOrdersQuery struct {
	filter services.Filter

	guard guard.ConstructorGuard
}

func NewFilterWorkOrdersQuery(filter services.Filter) (FilterWorkOrdersQuery, error) {
	if err := filter.Validate(); err != nil {
		return FilterWorkOrdersQuery{}, err
	}
	return FilterWorkOrdersQuery{filter: filter, guard: guard.NewConstructorGuard()}, nil
}

func (q FilterWorkOrdersQuery) Validate() error {
	return q.guard.Validate(ErrFilterWorkOrdersQueryIsNotConstructed)
}

func (q FilterWorkOrdersQuery) Filter() services.Filter {
	return q.filter
}

type FilterWorkOrdersQueryHandler struct {
	orders WorkOrderReader
	clock  Clock
}

func NewFilterWorkOrdersQueryHandler(orders WorkOrderReader, clock Clock) FilterWorkOrdersQueryHandler {
	return FilterWorkOrdersQueryHandler{orders: orders, clock: clockOrNow(clock)}
}

func (h FilterWorkOrdersQueryHandler) Handle(ctx context.Context, query FilterWorkOrdersQuery) ([]*workorder.WorkOrder, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	f := query.Filter()
	var (
		orders []*workorder.WorkOrder
		err    error
	)
	if f.ClientID != nil {
		orders, err = h.orders.GetAllByClient(ctx, *f.ClientID)
	} else {
		orders, err = h.orders.GetAll(ctx)
	}
	if err != nil {
		return nil, err
	}

	return f.Apply(orders, h.clock()), nil
}
