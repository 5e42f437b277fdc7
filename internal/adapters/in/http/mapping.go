package http

import (
	"time"

	"boutique/internal/core/application/usecases/queries"
	"boutique/internal/core/domain/model/client"
	"boutique/internal/core/domain/model/workorder"
	"boutique/internal/core/domain/services"
	"boutique/internal/generated/servers"
)

func toClient(c *client.Client) servers.Client {
	resp := servers.Client{
		Id:           c.ID(),
		Name:         c.Name(),
		MobileNumber: c.Mobile().String(),
		CreatedAt:    c.CreatedAt(),
		UpdatedAt:    c.UpdatedAt(),
	}
	if e := c.Email(); e.IsPresent() {
		v := e.String()
		resp.Email = &v
	}
	if a := c.Address(); a != "" {
		resp.Address = &a
	}
	return resp
}

func toClients(cs []*client.Client) []servers.Client {
	resp := make([]servers.Client, 0, len(cs))
	for _, c := range cs {
		resp = append(resp, toClient(c))
	}
	return resp
}

func toStatus(s workorder.Status) servers.Status {
	return servers.Status(s.String())
}

func toStatuses(ss []workorder.Status) []servers.Status {
	resp := make([]servers.Status, 0, len(ss))
	for _, s := range ss {
		resp = append(resp, toStatus(s))
	}
	return resp
}

func toWorkOrder(w *workorder.WorkOrder, now time.Time) servers.WorkOrder {
	b := w.Billing()
	return servers.WorkOrder{
		Id:                   w.ID(),
		ClientId:             w.ClientID(),
		OrderDate:            w.OrderDate(),
		ExpectedDeliveryDate: w.ExpectedDeliveryDate(),
		ActualDeliveryDate:   w.ActualDeliveryDate(),
		Description:          w.Description(),
		Notes:                w.Notes(),
		Status:               toStatus(w.Status()),
		AdvancePaid:          b.AdvancePaid.Amount(),
		TotalEstimate:        b.TotalEstimate.Amount(),
		ActualAmount:         b.ActualAmount.Amount(),
		AmountDue:            w.AmountDue().Amount(),
		DueCleared:           w.DueCleared(),
		IsOverdue:            w.IsOverdue(now),
		CreatedAt:            w.CreatedAt(),
		UpdatedAt:            w.UpdatedAt(),
	}
}

func toWorkOrders(ws []*workorder.WorkOrder, now time.Time) []servers.WorkOrder {
	resp := make([]servers.WorkOrder, 0, len(ws))
	for _, w := range ws {
		resp = append(resp, toWorkOrder(w, now))
	}
	return resp
}

func toWorkOrdersWithClient(rs []queries.WorkOrderWithClient, now time.Time) []servers.WorkOrderWithClient {
	resp := make([]servers.WorkOrderWithClient, 0, len(rs))
	for _, r := range rs {
		resp = append(resp, servers.WorkOrderWithClient{
			WorkOrder:    toWorkOrder(r.WorkOrder, now),
			ClientName:   r.ClientName,
			ClientMobile: r.ClientMobile,
		})
	}
	return resp
}

func toClientSummary(s services.ClientSummary, now time.Time) servers.ClientSummary {
	return servers.ClientSummary{
		Client:          toClient(s.Client),
		WorkOrders:      toWorkOrders(s.Orders, now),
		TotalOrders:     s.TotalOrders,
		ActiveOrders:    s.ActiveOrders,
		CompletedOrders: s.CompletedOrders,
		TotalDue:        s.TotalDue.Amount(),
	}
}

func toDashboardSummary(s services.DashboardSummary) servers.DashboardSummary {
	return servers.DashboardSummary{
		TotalWorkOrders:   s.TotalWorkOrders,
		ActiveWorkOrders:  s.ActiveWorkOrders,
		OverdueWorkOrders: s.OverdueWorkOrders,
		DueWithinDay:      s.DueWithinDay,
		CompletedOrders:   s.CompletedOrders,
		TotalRevenue:      s.TotalRevenue.Amount(),
		PendingPayments:   s.PendingPayments.Amount(),
	}
}

func toRevenueMetrics(m services.RevenueMetrics) servers.RevenueMetrics {
	return servers.RevenueMetrics{
		TotalRevenue:          m.TotalRevenue,
		PendingPayments:       m.PendingPayments,
		ExpectedRevenue:       m.TotalExpectedRevenue,
		AverageOrderValue:     m.AverageOrderValue,
		PaymentCompletionRate: m.PaymentCompletionRate,
	}
}

func toOrderMetrics(m services.OrderMetrics) servers.OrderMetrics {
	return servers.OrderMetrics{
		TotalOrders:     m.TotalOrders,
		ActiveOrders:    m.ActiveOrders,
		CompletedOrders: m.CompletedOrders,
		OverdueOrders:   m.OverdueOrders,
		DueSoonOrders:   m.OrdersDueToday,
		CompletionRate:  m.CompletionRate,
		OverdueRate:     m.OverdueRate,
		OnTimeRate:      m.OnTimeDeliveryRate,
	}
}

func toAlertReport(r services.AlertReport) servers.AlertReport {
	alerts := make([]servers.Alert, 0, len(r.Alerts))
	for _, a := range r.Alerts {
		alerts = append(alerts, servers.Alert{
			Type:    servers.AlertType(a.Type),
			Title:   a.Title,
			Message: a.Message,
			Count:   a.Count,
			Action:  a.Action,
		})
	}
	return servers.AlertReport{
		Alerts:        alerts,
		TotalAlerts:   r.TotalAlerts,
		CriticalCount: r.CriticalCount,
		WarningCount:  r.WarningCount,
	}
}

func toStatusInfo(i queries.StatusInfo) servers.StatusInfo {
	return servers.StatusInfo{
		Status:       toStatus(i.Status),
		Stage:        i.Stage,
		Description:  i.Description,
		IsFinal:      i.IsFinal,
		IsActive:     i.IsActive,
		NextStatuses: toStatuses(i.Next),
	}
}

func toStatusCounts(cs []services.StatusCount) []servers.StatusCount {
	resp := make([]servers.StatusCount, 0, len(cs))
	for _, c := range cs {
		resp = append(resp, servers.StatusCount{Status: toStatus(c.Status), Count: c.Count})
	}
	return resp
}
