package services

import (
	"fmt"
	"time"

	"boutique/internal/core/domain/model/workorder"
	"boutique/internal/pkg/errs"
)

// Filter selects work orders. Every set criterion must hold; the zero Filter
// matches everything.
type Filter struct {
	// DeliveryDate matches orders expected on the same calendar day, in the
	// location of DeliveryDate.
	DeliveryDate *time.Time
	// WindowStart and WindowEnd bound the expected delivery date, inclusive.
	WindowStart *time.Time
	WindowEnd   *time.Time
	OverdueOnly bool
	Status      *workorder.Status
	ClientID    *int64
}

func (f Filter) IsEmpty() bool {
	return f.DeliveryDate == nil && f.WindowStart == nil && f.WindowEnd == nil &&
		!f.OverdueOnly && f.Status == nil && f.ClientID == nil
}

// Validate rejects a window whose start is after its end and an unknown status.
func (f Filter) Validate() error {
	if f.WindowStart != nil && f.WindowEnd != nil && f.WindowStart.After(*f.WindowEnd) {
		return errs.NewValueIsInvalidErrorWithCause("delivery window",
			fmt.Errorf("start %s is after end %s", f.WindowStart.Format(time.RFC3339), f.WindowEnd.Format(time.RFC3339)))
	}
	if f.Status != nil {
		return f.Status.Validate()
	}
	return nil
}

// Matches reports whether w satisfies every criterion at now.
func (f Filter) Matches(w *workorder.WorkOrder, now time.Time) bool {
	expected := w.ExpectedDeliveryDate()

	if f.DeliveryDate != nil && !sameDay(expected, *f.DeliveryDate) {
		return false
	}
	if f.WindowStart != nil && expected.Before(*f.WindowStart) {
		return false
	}
	if f.WindowEnd != nil && expected.After(*f.WindowEnd) {
		return false
	}
	if f.OverdueOnly && !w.IsOverdue(now) {
		return false
	}
	if f.Status != nil && w.Status() != *f.Status {
		return false
	}
	if f.ClientID != nil && w.ClientID() != *f.ClientID {
		return false
	}
	return true
}

// Apply returns the matching orders ordered by id.
func (f Filter) Apply(orders []*workorder.WorkOrder, now time.Time) []*workorder.WorkOrder {
	out := make([]*workorder.WorkOrder, 0, len(orders))
	for _, w := range orders {
		if f.Matches(w, now) {
			out = append(out, w)
		}
	}
	return byID(out)
}

// Overdue returns active orders whose expected delivery date is before now.
func Overdue(orders []*workorder.WorkOrder, now time.Time) []*workorder.WorkOrder {
	return Filter{OverdueOnly: true}.Apply(orders, now)
}

// DueWithinDay returns active orders expected within the next day.
func DueWithinDay(orders []*workorder.WorkOrder, now time.Time) []*workorder.WorkOrder {
	return selectOrders(orders, func(w *workorder.WorkOrder) bool { return w.IsDueWithinDay(now) })
}

// Active returns orders that are not delivered yet.
func Active(orders []*workorder.WorkOrder) []*workorder.WorkOrder {
	return selectOrders(orders, (*workorder.WorkOrder).IsActive)
}

func selectOrders(orders []*workorder.WorkOrder, keep func(*workorder.WorkOrder) bool) []*workorder.WorkOrder {
	out := make([]*workorder.WorkOrder, 0, len(orders))
	for _, w := range orders {
		if keep(w) {
			out = append(out, w)
		}
	}
	return byID(out)
}

func sameDay(t, day time.Time) bool {
	t = t.In(day.Location())
	y1, m1, d1 := t.Date()
	y2, m2, d2 := day.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}
