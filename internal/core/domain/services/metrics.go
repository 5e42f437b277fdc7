package services

import (
	"fmt"
	"math"

	"boutique/internal/core/domain/model/workorder"

	"github.com/shopspring/decimal"
)

// RevenueMetrics derives payment ratios from a DashboardSummary. Rates are
// percentages; every value is rounded to two decimals.
type RevenueMetrics struct {
	TotalRevenue          float64
	PendingPayments       float64
	AverageOrderValue     float64
	PaymentCompletionRate float64
	TotalExpectedRevenue  float64
}

func ComputeRevenueMetrics(d DashboardSummary) RevenueMetrics {
	revenue := d.TotalRevenue.Decimal()
	pending := d.PendingPayments.Decimal()
	expected := revenue.Add(pending)
	hundred := decimal.NewFromInt(100)

	return RevenueMetrics{
		TotalRevenue:          revenue.Round(2).InexactFloat64(),
		PendingPayments:       pending.Round(2).InexactFloat64(),
		AverageOrderValue:     decimalRatio(revenue, decimal.NewFromInt(int64(d.TotalWorkOrders))).Round(2).InexactFloat64(),
		PaymentCompletionRate: hundred.Mul(decimalRatio(revenue, expected)).Round(2).InexactFloat64(),
		TotalExpectedRevenue:  expected.Round(2).InexactFloat64(),
	}
}

// OrderMetrics derives completion and punctuality rates from a DashboardSummary.
type OrderMetrics struct {
	TotalOrders        int
	ActiveOrders       int
	CompletedOrders    int
	OverdueOrders      int
	OrdersDueToday     int
	CompletionRate     float64
	OverdueRate        float64
	OnTimeDeliveryRate float64
}

func ComputeOrderMetrics(d DashboardSummary) OrderMetrics {
	total := float64(d.TotalWorkOrders)
	overdueRate := 100 * ratio(float64(d.OverdueWorkOrders), total)

	return OrderMetrics{
		TotalOrders:        d.TotalWorkOrders,
		ActiveOrders:       d.ActiveWorkOrders,
		CompletedOrders:    d.CompletedOrders,
		OverdueOrders:      d.OverdueWorkOrders,
		OrdersDueToday:     d.DueWithinDay,
		CompletionRate:     round2(100 * ratio(float64(d.CompletedOrders), total)),
		OverdueRate:        round2(overdueRate),
		OnTimeDeliveryRate: round2(100 - overdueRate),
	}
}

type AlertType string

const (
	AlertCritical AlertType = "critical"
	AlertWarning  AlertType = "warning"
	AlertInfo     AlertType = "info"
)

type Alert struct {
	Type    AlertType
	Title   string
	Message string
	Count   int
	Action  string
}

// AlertReport lists alerts for the dashboard. TotalAlerts counts only
// critical and warning alerts.
type AlertReport struct {
	Alerts        []Alert
	TotalAlerts   int
	CriticalCount int
	WarningCount  int
}

// BuildAlerts raises a critical alert for overdue orders, a warning for
// orders due within a day, and a single info alert when neither exists.
func BuildAlerts(d DashboardSummary) AlertReport {
	var r AlertReport

	if n := d.OverdueWorkOrders; n > 0 {
		r.Alerts = append(r.Alerts, Alert{
			Type:    AlertCritical,
			Title:   fmt.Sprintf("%d Overdue Orders", n),
			Message: fmt.Sprintf("You have %d orders that are past their delivery date", n),
			Count:   n,
			Action:  "Review overdue orders immediately",
		})
		r.CriticalCount++
	}
	if n := d.DueWithinDay; n > 0 {
		r.Alerts = append(r.Alerts, Alert{
			Type:    AlertWarning,
			Title:   fmt.Sprintf("%d Orders Due Today", n),
			Message: fmt.Sprintf("You have %d orders due within 24 hours", n),
			Count:   n,
			Action:  "Prepare for delivery",
		})
		r.WarningCount++
	}
	if len(r.Alerts) == 0 {
		r.Alerts = append(r.Alerts, Alert{
			Type:    AlertInfo,
			Title:   "All Orders On Track",
			Message: "No overdue orders or urgent deliveries",
			Action:  "Continue normal operations",
		})
	}

	r.TotalAlerts = r.CriticalCount + r.WarningCount
	return r
}

type StatusCount struct {
	Status workorder.Status
	Count  int
}

// StatusBreakdown counts orders per status. Every valid status is present,
// in workflow order.
func StatusBreakdown(orders []*workorder.WorkOrder) []StatusCount {
	counts := make(map[workorder.Status]int, len(orders))
	for _, w := range orders {
		counts[w.Status()]++
	}

	all := workorder.AllStatuses()
	out := make([]StatusCount, 0, len(all))
	for _, s := range all {
		out = append(out, StatusCount{Status: s, Count: counts[s]})
	}
	return out
}

func ratio(a, b float64) float64 {
	if b == 0 {
		return 0
	}
	return a / b
}

func decimalRatio(a, b decimal.Decimal) decimal.Decimal {
	if b.IsZero() {
		return decimal.Zero
	}
	return a.Div(b)
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
