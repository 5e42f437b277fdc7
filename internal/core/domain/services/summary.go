package services

import (
	"time"

	"boutique/internal/core/domain/model/client"
	"boutique/internal/core/domain/model/kernel"
	"boutique/internal/core/domain/model/workorder"
)

// ClientSummary is a client with all of its orders and their totals.
type ClientSummary struct {
	Client          *client.Client
	Orders          []*workorder.WorkOrder
	TotalOrders     int
	ActiveOrders    int
	CompletedOrders int
	// TotalDue is the sum of AmountDue over orders whose dues are not cleared.
	TotalDue kernel.Money
}

// SummarizeClient counts the given orders, which must all belong to c.
func SummarizeClient(c *client.Client, orders []*workorder.WorkOrder) ClientSummary {
	s := ClientSummary{
		Client:      c,
		Orders:      byID(append([]*workorder.WorkOrder(nil), orders...)),
		TotalOrders: len(orders),
	}
	for _, w := range orders {
		if w.IsActive() {
			s.ActiveOrders++
		} else {
			s.CompletedOrders++
		}
		s.TotalDue = s.TotalDue.Add(outstanding(w))
	}
	return s
}

// DashboardSummary holds fleet wide counts and money totals.
type DashboardSummary struct {
	TotalWorkOrders   int
	ActiveWorkOrders  int
	OverdueWorkOrders int
	DueWithinDay      int
	CompletedOrders   int
	// TotalRevenue sums the actual amount of delivered orders.
	TotalRevenue kernel.Money
	// PendingPayments sums AmountDue over orders whose dues are not cleared.
	PendingPayments kernel.Money
}

func SummarizeDashboard(orders []*workorder.WorkOrder, now time.Time) DashboardSummary {
	var s DashboardSummary
	for _, w := range orders {
		s.TotalWorkOrders++
		if w.IsActive() {
			s.ActiveWorkOrders++
		} else {
			s.CompletedOrders++
			s.TotalRevenue = s.TotalRevenue.Add(w.Billing().ActualAmount)
		}
		if w.IsOverdue(now) {
			s.OverdueWorkOrders++
		}
		if w.IsDueWithinDay(now) {
			s.DueWithinDay++
		}
		s.PendingPayments = s.PendingPayments.Add(outstanding(w))
	}
	return s
}

func outstanding(w *workorder.WorkOrder) kernel.Money {
	if w.DueCleared() {
		return kernel.Money{}
	}
	return w.AmountDue()
}
