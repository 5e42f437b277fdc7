package http

import (
	"net/http"

	"boutique/internal/core/application/usecases/queries"
	"boutique/internal/generated/servers"

	"github.com/labstack/echo/v4"
)

func (s *Server) dashboard(ctx echo.Context) (queries.GetDashboardSummaryQueryResponse, error) {
	return s.h.DashboardSummary.Handle(ctx.Request().Context(), queries.NewGetDashboardSummaryQuery())
}

// GetDashboardSummary handles GET /api/v1/dashboard/summary.
func (s *Server) GetDashboardSummary(ctx echo.Context) error {
	resp, err := s.dashboard(ctx)
	if err != nil {
		return s.errorResponse(ctx, err)
	}
	return ctx.JSON(http.StatusOK, toDashboardSummary(resp.Summary))
}

// GetRevenueMetrics handles GET /api/v1/dashboard/metrics/revenue.
func (s *Server) GetRevenueMetrics(ctx echo.Context) error {
	resp, err := s.dashboard(ctx)
	if err != nil {
		return s.errorResponse(ctx, err)
	}
	return ctx.JSON(http.StatusOK, toRevenueMetrics(resp.Revenue))
}

// GetOrderMetrics handles GET /api/v1/dashboard/metrics/orders.
func (s *Server) GetOrderMetrics(ctx echo.Context) error {
	resp, err := s.dashboard(ctx)
	if err != nil {
		return s.errorResponse(ctx, err)
	}
	return ctx.JSON(http.StatusOK, toOrderMetrics(resp.Orders))
}

// GetAlerts handles GET /api/v1/dashboard/alerts.
func (s *Server) GetAlerts(ctx echo.Context) error {
	resp, err := s.dashboard(ctx)
	if err != nil {
		return s.errorResponse(ctx, err)
	}
	return ctx.JSON(http.StatusOK, toAlertReport(resp.Alerts))
}

// GetRecentActivity handles GET /api/v1/dashboard/recent-activity.
func (s *Server) GetRecentActivity(ctx echo.Context) error {
	resp, err := s.h.RecentActivity.Handle(ctx.Request().Context(), queries.NewGetRecentActivityQuery())
	if err != nil {
		return s.errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, servers.RecentActivity{
		WorkOrders: toWorkOrdersWithClient(resp.WorkOrders, s.clock()),
		Clients:    toClients(resp.Clients),
	})
}

// GetRecentWorkOrders handles GET /api/v1/dashboard/recent-work-orders.
func (s *Server) GetRecentWorkOrders(ctx echo.Context, params servers.GetRecentWorkOrdersParams) error {
	query, err := queries.NewGetRecentWorkOrdersQuery(valueOr(params.Days, 0), valueOr(params.Limit, 0))
	if err != nil {
		return s.errorResponse(ctx, err)
	}

	results, err := s.h.RecentWorkOrders.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toWorkOrdersWithClient(results, s.clock()))
}

// ListStatuses handles GET /api/v1/statuses.
func (s *Server) ListStatuses(ctx echo.Context) error {
	catalogue := queries.StatusCatalogue()
	resp := make([]servers.StatusInfo, 0, len(catalogue))
	for _, info := range catalogue {
		resp = append(resp, toStatusInfo(info))
	}
	return ctx.JSON(http.StatusOK, resp)
}

// GetStatusInfo handles GET /api/v1/statuses/{status}.
func (s *Server) GetStatusInfo(ctx echo.Context, status string) error {
	query, err := queries.NewGetStatusInfoQuery(status)
	if err != nil {
		return s.errorResponse(ctx, err)
	}

	info, err := s.h.StatusInfo.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toStatusInfo(info))
}

// SearchWorkOrders handles GET /api/v1/search/work-orders.
func (s *Server) SearchWorkOrders(ctx echo.Context, params servers.SearchWorkOrdersParams) error {
	query, err := queries.NewSearchWorkOrdersQuery(
		params.Query,
		string(valueOr(params.Status, "")),
		valueOr(params.Limit, 0),
	)
	if err != nil {
		return s.errorResponse(ctx, err)
	}

	results, err := s.h.SearchWorkOrders.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toWorkOrdersWithClient(results, s.clock()))
}

// SearchClients handles GET /api/v1/search/clients.
func (s *Server) SearchClients(ctx echo.Context, params servers.SearchClientsParams) error {
	query, err := queries.NewSearchClientsQuery(params.Query, valueOr(params.Limit, 0))
	if err != nil {
		return s.errorResponse(ctx, err)
	}

	results, err := s.h.SearchClients.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.errorResponse(ctx, err)
	}

	resp := make([]servers.ClientWithOrderCounts, 0, len(results))
	for _, r := range results {
		resp = append(resp, servers.ClientWithOrderCounts{
			Client:       toClient(r.Client),
			TotalOrders:  r.TotalOrders,
			ActiveOrders: r.ActiveOrders,
		})
	}
	return ctx.JSON(http.StatusOK, resp)
}
