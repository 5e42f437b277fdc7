package queries

import (
	"context"

	"boutique/internal/core/domain/model/client"
)

type ListClientsQueryResponse struct {
	Clients []*client.Client
	Total   int64
}

type ListClientsQueryHandler struct {
	clients ClientReader
}

func NewListClientsQueryHandler(clients ClientReader) ListClientsQueryHandler {
	return ListClientsQueryHandler{clients: clients}
}

func (h ListClientsQueryHandler) Handle(ctx context.Context, query ListClientsQuery) (ListClientsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return ListClientsQueryResponse{}, err
	}

	clients, err := h.clients.List(ctx, query.Page())
	if err != nil {
		return ListClientsQueryResponse{}, err
	}
	total, err := h.clients.Count(ctx)
	if err != nil {
		return ListClientsQueryResponse{}, err
	}

	return ListClientsQueryResponse{Clients: clients, Total: total}, nil
}
