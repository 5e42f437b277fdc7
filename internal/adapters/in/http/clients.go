package http

import (
	"net/http"

	"boutique/internal/core/application/usecases/commands"
	"boutique/internal/core/application/usecases/queries"
	"boutique/internal/generated/servers"

	"github.com/labstack/echo/v4"
)

// ListClients handles GET /api/v1/clients.
func (s *Server) ListClients(ctx echo.Context, params servers.ListClientsParams) error {
	query, err := queries.NewListClientsQuery(
		valueOr(params.Offset, 0),
		valueOr(params.Limit, queries.DefaultPageLimit),
	)
	if err != nil {
		return s.errorResponse(ctx, err)
	}

	resp, err := s.h.ListClients.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, servers.ClientList{
		Items: toClients(resp.Clients),
		Total: resp.Total,
	})
}

// CreateClient handles POST /api/v1/clients.
func (s *Server) CreateClient(ctx echo.Context) error {
	var body servers.CreateClientJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewCreateClientCommand(
		body.Name,
		body.MobileNumber,
		valueOr(body.Email, ""),
		valueOr(body.Address, ""),
	)
	if err != nil {
		return s.errorResponse(ctx, err)
	}

	c, err := s.h.CreateClient.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, toClient(c))
}

// GetClient handles GET /api/v1/clients/{clientId}.
func (s *Server) GetClient(ctx echo.Context, clientID servers.ClientId) error {
	query, err := queries.NewGetClientQuery(clientID)
	if err != nil {
		return s.errorResponse(ctx, err)
	}
	return s.getClient(ctx, query)
}

// GetClientByMobile handles GET /api/v1/clients/mobile/{mobileNumber}.
func (s *Server) GetClientByMobile(ctx echo.Context, mobileNumber servers.MobileNumber) error {
	query, err := queries.NewGetClientByMobileQuery(mobileNumber)
	if err != nil {
		return s.errorResponse(ctx, err)
	}
	return s.getClient(ctx, query)
}

func (s *Server) getClient(ctx echo.Context, query queries.GetClientQuery) error {
	c, err := s.h.GetClient.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.errorResponse(ctx, err)
	}
	return ctx.JSON(http.StatusOK, toClient(c))
}

// UpdateClient handles PUT /api/v1/clients/{clientId}.
func (s *Server) UpdateClient(ctx echo.Context, clientID servers.ClientId) error {
	var body servers.UpdateClientJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewUpdateClientCommand(clientID, body.Name, body.MobileNumber, body.Email, body.Address)
	if err != nil {
		return s.errorResponse(ctx, err)
	}

	c, err := s.h.UpdateClient.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toClient(c))
}

// DeleteClient handles DELETE /api/v1/clients/{clientId}. Clients with work
// orders are not deleted.
func (s *Server) DeleteClient(ctx echo.Context, clientID servers.ClientId) error {
	cmd, err := commands.NewDeleteClientCommand(clientID)
	if err != nil {
		return s.errorResponse(ctx, err)
	}

	if err = s.h.DeleteClient.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.errorResponse(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetClientWorkOrders handles GET /api/v1/clients/{clientId}/work-orders.
func (s *Server) GetClientWorkOrders(ctx echo.Context, clientID servers.ClientId) error {
	query, err := queries.NewGetClientQuery(clientID)
	if err != nil {
		return s.errorResponse(ctx, err)
	}

	orders, err := s.h.GetClientWorkOrders.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toWorkOrders(orders, s.clock()))
}

// GetClientSummary handles GET /api/v1/clients/{clientId}/summary.
func (s *Server) GetClientSummary(ctx echo.Context, clientID servers.ClientId) error {
	query, err := queries.NewGetClientQuery(clientID)
	if err != nil {
		return s.errorResponse(ctx, err)
	}
	return s.getClientSummary(ctx, query)
}

// GetClientSummaryByMobile handles GET /api/v1/clients/mobile/{mobileNumber}/summary.
func (s *Server) GetClientSummaryByMobile(ctx echo.Context, mobileNumber servers.MobileNumber) error {
	query, err := queries.NewGetClientByMobileQuery(mobileNumber)
	if err != nil {
		return s.errorResponse(ctx, err)
	}
	return s.getClientSummary(ctx, query)
}

func (s *Server) getClientSummary(ctx echo.Context, query queries.GetClientQuery) error {
	summary, err := s.h.GetClientSummary.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.errorResponse(ctx, err)
	}
	return ctx.JSON(http.StatusOK, toClientSummary(summary, s.clock()))
}
