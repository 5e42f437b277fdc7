package queries

import (
	"context"
	"errors"

	"boutique/internal/core/domain/services"
	"boutique/internal/pkg/guard"
)

var ErrGetDashboardSummaryQueryIsNotConstructed = errors.New(
	"GetDashboardSummaryQuery must be created via NewGetDashboardSummaryQuery constructor",
)

type GetDashboardSummaryQuery struct {
	guard guard.ConstructorGuard
}

func NewGetDashboardSummaryQuery() GetDashboardSummaryQuery {
	return GetDashboardSummaryQuery{guard: guard.NewConstructorGuard()}
}

func (q GetDashboardSummaryQuery) Validate() error {
	return q.guard.Validate(ErrGetDashboardSummaryQueryIsNotConstructed)
}

// GetDashboardSummaryQueryResponse carries the summary and everything the
// dashboard derives from it.
type GetDashboardSummaryQueryResponse struct {
	Summary services.DashboardSummary
	Revenue services.RevenueMetrics
	Orders  services.OrderMetrics
	Alerts  services.AlertReport
}

type GetDashboardSummaryQueryHandler struct {
	orders WorkOrderReader
	clock  Clock
}

func NewGetDashboardSummaryQueryHandler(orders WorkOrderReader, clock Clock) GetDashboardSummaryQueryHandler {
	return GetDashboardSummaryQueryHandler{orders: orders, clock: clockOrNow(clock)}
}

func (h GetDashboardSummaryQueryHandler) Handle(
	ctx context.Context,
	query GetDashboardSummaryQuery,
) (GetDashboardSummaryQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetDashboardSummaryQueryResponse{}, err
	}

	orders, err := h.orders.GetAll(ctx)
	if err != nil {
		return GetDashboardSummaryQueryResponse{}, err
	}

	summary := services.SummarizeDashboard(orders, h.clock())
	return GetDashboardSummaryQueryResponse{
		Summary: summary,
		Revenue: services.ComputeRevenueMetrics(summary),
		Orders:  services.ComputeOrderMetrics(summary),
		Alerts:  services.BuildAlerts(summary),
	}, nil
}
