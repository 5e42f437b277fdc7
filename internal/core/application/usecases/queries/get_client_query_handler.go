package queries

import (
	"context"

	"boutique/internal/core/domain/model/client"
	"boutique/internal/core/domain/model/workorder"
	"boutique/internal/core/domain/services"
)

type GetClientQueryHandler struct {
	clients ClientReader
}

func NewGetClientQueryHandler(clients ClientReader) GetClientQueryHandler {
	return GetClientQueryHandler{clients: clients}
}

func (h GetClientQueryHandler) Handle(ctx context.Context, query GetClientQuery) (*client.Client, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}
	return findClient(ctx, h.clients, query)
}

// GetClientWorkOrdersQueryHandler lists the work orders of an existing client.
type GetClientWorkOrdersQueryHandler struct {
	clients ClientReader
	orders  WorkOrderReader
}

func NewGetClientWorkOrdersQueryHandler(clients ClientReader, orders WorkOrderReader) GetClientWorkOrdersQueryHandler {
	return GetClientWorkOrdersQueryHandler{clients: clients, orders: orders}
}

func (h GetClientWorkOrdersQueryHandler) Handle(ctx context.Context, query GetClientQuery) ([]*workorder.WorkOrder, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	c, err := findClient(ctx, h.clients, query)
	if err != nil {
		return nil, err
	}
	return h.orders.GetAllByClient(ctx, c.ID())
}

// GetClientSummaryQueryHandler returns a client with its orders and counters.
type GetClientSummaryQueryHandler struct {
	clients ClientReader
	orders  WorkOrderReader
}

func NewGetClientSummaryQueryHandler(clients ClientReader, orders WorkOrderReader) GetClientSummaryQueryHandler {
	return GetClientSummaryQueryHandler{clients: clients, orders: orders}
}

func (h GetClientSummaryQueryHandler) Handle(ctx context.Context, query GetClientQuery) (services.ClientSummary, error) {
	if err := query.Validate(); err != nil {
		return services.ClientSummary{}, err
	}

	c, err := findClient(ctx, h.clients, query)
	if err != nil {
		return services.ClientSummary{}, err
	}

	orders, err := h.orders.GetAllByClient(ctx, c.ID())
	if err != nil {
		return services.ClientSummary{}, err
	}
	return services.SummarizeClient(c, orders), nil
}

func findClient(ctx context.Context, clients ClientReader, query GetClientQuery) (*client.Client, error) {
	if m := query.Mobile(); m != nil {
		return clients.GetByMobile(ctx, *m)
	}
	return clients.Get(ctx, query.ClientID())
}
