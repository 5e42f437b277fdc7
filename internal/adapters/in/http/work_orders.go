package http

import (
	"net/http"

	"boutique/internal/core/application/usecases/commands"
	"boutique/internal/core/application/usecases/queries"
	"boutique/internal/core/domain/model/workorder"
	"boutique/internal/core/domain/services"
	"boutique/internal/generated/servers"

	"github.com/labstack/echo/v4"
)

// ListWorkOrders handles GET /api/v1/work-orders.
func (s *Server) ListWorkOrders(ctx echo.Context, params servers.ListWorkOrdersParams) error {
	query, err := queries.NewListWorkOrdersQuery(
		valueOr(params.Offset, 0),
		valueOr(params.Limit, queries.DefaultPageLimit),
	)
	if err != nil {
		return s.errorResponse(ctx, err)
	}

	resp, err := s.h.ListWorkOrders.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, servers.WorkOrderList{
		Items: toWorkOrders(resp.WorkOrders, s.clock()),
		Total: resp.Total,
	})
}

// CreateWorkOrder handles POST /api/v1/work-orders. An unknown client is
// registered from the client details of the body.
func (s *Server) CreateWorkOrder(ctx echo.Context) error {
	var body servers.CreateWorkOrderJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewCreateWorkOrderCommand(commands.CreateWorkOrderParams{
		ClientID:             body.ClientId,
		ClientName:           valueOr(body.ClientName, ""),
		ClientMobile:         valueOr(body.ClientMobile, ""),
		ClientEmail:          valueOr(body.ClientEmail, ""),
		ClientAddress:        valueOr(body.ClientAddress, ""),
		ExpectedDeliveryDate: body.ExpectedDeliveryDate,
		Description:          valueOr(body.Description, ""),
		Notes:                valueOr(body.Notes, ""),
		Status:               string(valueOr(body.Status, "")),
		AdvancePaid:          valueOr(body.AdvancePaid, 0),
		TotalEstimate:        valueOr(body.TotalEstimate, 0),
		ActualAmount:         valueOr(body.ActualAmount, 0),
		DueCleared:           valueOr(body.DueCleared, false),
	})
	if err != nil {
		return s.errorResponse(ctx, err)
	}

	result, err := s.h.CreateWorkOrder.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.errorResponse(ctx, err)
	}

	if result.ClientCreated {
		s.logger.InfoContext(ctx.Request().Context(), "client registered with work order",
			"client_id", result.Client.ID(),
			"work_order_id", result.WorkOrder.ID(),
		)
	}

	return ctx.JSON(http.StatusCreated, toWorkOrder(result.WorkOrder, s.clock()))
}

// GetWorkOrder handles GET /api/v1/work-orders/{orderId}.
func (s *Server) GetWorkOrder(ctx echo.Context, orderID servers.OrderId) error {
	query, err := queries.NewGetWorkOrderQuery(orderID)
	if err != nil {
		return s.errorResponse(ctx, err)
	}

	w, err := s.h.GetWorkOrder.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toWorkOrder(w, s.clock()))
}

// UpdateWorkOrder handles PUT /api/v1/work-orders/{orderId}. Only the fields
// present in the body change.
func (s *Server) UpdateWorkOrder(ctx echo.Context, orderID servers.OrderId) error {
	var body servers.UpdateWorkOrderJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	var status *string
	if body.Status != nil {
		v := string(*body.Status)
		status = &v
	}

	cmd, err := commands.NewUpdateWorkOrderCommand(orderID, commands.UpdateWorkOrderParams{
		ExpectedDeliveryDate: body.ExpectedDeliveryDate,
		ActualDeliveryDate:   body.ActualDeliveryDate,
		Description:          body.Description,
		Notes:                body.Notes,
		Status:               status,
		AdvancePaid:          body.AdvancePaid,
		TotalEstimate:        body.TotalEstimate,
		ActualAmount:         body.ActualAmount,
		DueCleared:           body.DueCleared,
	})
	if err != nil {
		return s.errorResponse(ctx, err)
	}

	w, err := s.h.UpdateWorkOrder.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toWorkOrder(w, s.clock()))
}

// DeleteWorkOrder handles DELETE /api/v1/work-orders/{orderId}.
func (s *Server) DeleteWorkOrder(ctx echo.Context, orderID servers.OrderId) error {
	cmd, err := commands.NewDeleteWorkOrderCommand(orderID)
	if err != nil {
		return s.errorResponse(ctx, err)
	}

	if err = s.h.DeleteWorkOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.errorResponse(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetPrioritizedWorkOrders handles GET /api/v1/work-orders/priority.
func (s *Server) GetPrioritizedWorkOrders(ctx echo.Context, params servers.GetPrioritizedWorkOrdersParams) error {
	query, err := queries.NewGetPrioritizedWorkOrdersQuery(string(valueOr(params.SortOrder, servers.Asc)))
	if err != nil {
		return s.errorResponse(ctx, err)
	}

	orders, err := s.h.PrioritizedOrders.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toWorkOrders(orders, s.clock()))
}

// FilterWorkOrders handles GET /api/v1/work-orders/filter. A window end given
// as a bare date includes that whole day.
func (s *Server) FilterWorkOrders(ctx echo.Context, params servers.FilterWorkOrdersParams) error {
	filter, err := filterFromParams(params)
	if err != nil {
		return s.errorResponse(ctx, err)
	}

	query, err := queries.NewFilterWorkOrdersQuery(filter)
	if err != nil {
		return s.errorResponse(ctx, err)
	}

	orders, err := s.h.FilterWorkOrders.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toWorkOrders(orders, s.clock()))
}

func filterFromParams(params servers.FilterWorkOrdersParams) (services.Filter, error) {
	f := services.Filter{
		OverdueOnly: valueOr(params.OverdueOnly, false),
		ClientID:    params.ClientId,
	}

	var err error
	if f.DeliveryDate, _, err = optionalTime("delivery_date", params.DeliveryDate); err != nil {
		return services.Filter{}, err
	}
	if f.WindowStart, _, err = optionalTime("window_start", params.WindowStart); err != nil {
		return services.Filter{}, err
	}
	var endIsDate bool
	if f.WindowEnd, endIsDate, err = optionalTime("window_end", params.WindowEnd); err != nil {
		return services.Filter{}, err
	}
	if endIsDate {
		end := endOfDay(*f.WindowEnd)
		f.WindowEnd = &end
	}

	if params.Status != nil {
		status, parseErr := workorder.ParseStatus(string(*params.Status))
		if parseErr != nil {
			return services.Filter{}, parseErr
		}
		f.Status = &status
	}

	return f, nil
}

// GetOverdueWorkOrders handles GET /api/v1/work-orders/overdue.
func (s *Server) GetOverdueWorkOrders(ctx echo.Context) error {
	return s.bucket(ctx, queries.BucketOverdue)
}

// GetDueSoonWorkOrders handles GET /api/v1/work-orders/due-soon.
func (s *Server) GetDueSoonWorkOrders(ctx echo.Context) error {
	return s.bucket(ctx, queries.BucketDueSoon)
}

// GetActiveWorkOrders handles GET /api/v1/work-orders/active.
func (s *Server) GetActiveWorkOrders(ctx echo.Context) error {
	return s.bucket(ctx, queries.BucketActive)
}

func (s *Server) bucket(ctx echo.Context, bucket queries.Bucket) error {
	query, err := queries.NewGetWorkOrderBucketQuery(bucket)
	if err != nil {
		return s.errorResponse(ctx, err)
	}

	orders, err := s.h.WorkOrderBucket.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toWorkOrders(orders, s.clock()))
}
