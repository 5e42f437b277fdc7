package queries

import (
	"context"
	"errors"

	"boutique/internal/core/domain/model/workorder"
	"boutique/internal/core/domain/services"
	"boutique/internal/pkg/guard"
)

var ErrGetPrioritizedWorkOrdersQueryIsNotConstructed = errors.New(
	"GetPrioritizedWorkOrdersQuery must be created via NewGetPrioritizedWorkOrdersQuery constructor",
)

// GetPrioritizedWorkOrdersQuery lists every work order by expected delivery
// date.
type GetPrioritizedWorkOrdersQuery struct {
	direction services.SortDirection

	guard guard.ConstructorGuard
}

// NewGetPrioritizedWorkOrdersQuery accepts "asc", "desc" or "" (ascending).
func NewGetPrioritizedWorkOrdersQuery(sortOrder string) (GetPrioritizedWorkOrdersQuery, error) {
	dir, err := services.ParseSortDirection(sortOrder)
	if err != nil {
		return GetPrioritizedWorkOrdersQuery{}, err
	}
	return GetPrioritizedWorkOrdersQuery{direction: dir, guard: guard.NewConstructorGuard()}, nil
}

func (q GetPrioritizedWorkOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetPrioritizedWorkOrdersQueryIsNotConstructed)
}

func (q GetPrioritizedWorkOrdersQuery) Direction() services.SortDirection {
	return q.direction
}

type GetPrioritizedWorkOrdersQueryHandler struct {
	orders WorkOrderReader
}

func NewGetPrioritizedWorkOrdersQueryHandler(orders WorkOrderReader) GetPrioritizedWorkOrdersQueryHandler {
	return GetPrioritizedWorkOrdersQueryHandler{orders: orders}
}

func (h GetPrioritizedWorkOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetPrioritizedWorkOrdersQuery,
) ([]*workorder.WorkOrder, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders, err := h.orders.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	return services.PriorityList(orders, query.Direction()), nil
}
