package http

import (
	"net/http"

	"boutique/internal/core/application/usecases/commands"
	"boutique/internal/core/application/usecases/queries"
	"boutique/internal/generated/servers"

	"github.com/labstack/echo/v4"
)

// GetAdminStats handles GET /api/v1/admin/stats.
func (s *Server) GetAdminStats(ctx echo.Context) error {
	stats, err := s.h.AdminStats.Handle(ctx.Request().Context(), queries.NewGetAdminStatsQuery())
	if err != nil {
		return s.errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, servers.AdminStats{
		TotalClients:    stats.TotalClients,
		TotalWorkOrders: stats.TotalWorkOrders,
		StatusBreakdown: toStatusCounts(stats.StatusBreakdown),
	})
}

// DeleteAllWorkOrders handles DELETE /api/v1/admin/work-orders.
func (s *Server) DeleteAllWorkOrders(ctx echo.Context) error {
	return s.reset(ctx, commands.ResetWorkOrders)
}

// DeleteAllClients handles DELETE /api/v1/admin/clients.
func (s *Server) DeleteAllClients(ctx echo.Context) error {
	return s.reset(ctx, commands.ResetClients)
}

// DeleteAllData handles DELETE /api/v1/admin/data.
func (s *Server) DeleteAllData(ctx echo.Context) error {
	return s.reset(ctx, commands.ResetAll)
}

func (s *Server) reset(ctx echo.Context, scope commands.ResetScope) error {
	cmd, err := commands.NewResetDataCommand(scope)
	if err != nil {
		return s.errorResponse(ctx, err)
	}

	result, err := s.h.ResetData.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.errorResponse(ctx, err)
	}

	s.logger.WarnContext(ctx.Request().Context(), "stored data removed",
		"scope", scope.String(),
		"work_orders_deleted", result.WorkOrdersDeleted,
		"clients_deleted", result.ClientsDeleted,
	)

	return ctx.JSON(http.StatusOK, servers.ResetResult{
		WorkOrdersDeleted: result.WorkOrdersDeleted,
		ClientsDeleted:    result.ClientsDeleted,
	})
}
