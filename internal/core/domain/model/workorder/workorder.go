package workorder

import (
	"errors"
	"fmt"
	"time"
	"unicode/utf8"

	"boutique/internal/core/domain/model/kernel"
	"boutique/internal/pkg/errs"
	"boutique/internal/pkg/guard"

	"github.com/google/uuid"
)

const MaxTextLength = 1000

// DueSoonWindow is how far ahead an order counts as due soon.
const DueSoonWindow = 24 * time.Hour

// ErrWorkOrderIsNotConstructed is returned when a WorkOrder was not created
// through NewWorkOrder or RestoreWorkOrder.
var ErrWorkOrderIsNotConstructed = errors.New("WorkOrder must be created via NewWorkOrder constructor")

// Billing groups the three recorded amounts of a work order.
type Billing struct {
	AdvancePaid   kernel.Money
	TotalEstimate kernel.Money
	ActualAmount  kernel.Money
}

// BillingChanges is a partial billing update. Nil fields are left untouched.
type BillingChanges struct {
	AdvancePaid   *kernel.Money
	TotalEstimate *kernel.Money
	ActualAmount  *kernel.Money
}

func (b BillingChanges) IsEmpty() bool {
	return b.AdvancePaid == nil && b.TotalEstimate == nil && b.ActualAmount == nil
}

// WorkOrder is the aggregate root for a single boutique job.
//
// Invariants:
//   - belongs to exactly one client (clientID > 0)
//   - orderDate is set once at creation
//   - billing amounts are never negative, so AmountDue is never negative
//   - actualDeliveryDate is only set once the status is delivered
//   - dueCleared is true exactly when the status is Delivered - Fully Paid
//     and nothing is due
type WorkOrder struct {
	id                   int64
	clientID             int64
	orderDate            time.Time
	expectedDeliveryDate time.Time
	actualDeliveryDate   *time.Time
	description          string
	notes                string
	status               Status
	billing              Billing
	dueCleared           bool
	createdAt            time.Time
	updatedAt            time.Time

	domainEvents []StatusChanged
	guard        guard.ConstructorGuard
}

// NewWorkOrder validates the inputs and returns a work order placed at now.
// An order created directly in a delivered status gets now as its actual
// delivery date.
func NewWorkOrder(
	clientID int64,
	expectedDeliveryDate time.Time,
	description, notes string,
	status Status,
	billing Billing,
	now time.Time,
) (*WorkOrder, error) {
	now = now.UTC()
	w := &WorkOrder{
		orderDate: now,
		billing:   billing,
		createdAt: now,
		updatedAt: now,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		w.setClientID(clientID),
		w.setExpectedDeliveryDate(expectedDeliveryDate),
		w.setText("description", &w.description, description),
		w.setText("notes", &w.notes, notes),
		status.Validate(),
	); err != nil {
		return nil, err
	}

	w.status = status
	if status.IsDelivered() {
		w.actualDeliveryDate = &now
	}
	w.recomputeDueCleared()

	return w, nil
}

// Snapshot is the persisted state of a work order.
type Snapshot struct {
	ID                   int64
	ClientID             int64
	OrderDate            time.Time
	ExpectedDeliveryDate time.Time
	ActualDeliveryDate   *time.Time
	Description          string
	Notes                string
	Status               Status
	Billing              Billing
	DueCleared           bool
	CreatedAt            time.Time
	UpdatedAt            time.Time
}

// RestoreWorkOrder rebuilds a work order from storage. Stored values are
// taken as they are, apart from basic shape checks. DueCleared is derived
// from the restored status and billing, never trusted from the snapshot.
func RestoreWorkOrder(s Snapshot) (*WorkOrder, error) {
	w := &WorkOrder{
		orderDate:   s.OrderDate.UTC(),
		description: s.Description,
		notes:       s.Notes,
		billing:     s.Billing,
		createdAt:   s.CreatedAt.UTC(),
		updatedAt:   s.UpdatedAt.UTC(),
		guard:       guard.NewConstructorGuard(),
	}
	if s.ActualDeliveryDate != nil {
		actual := s.ActualDeliveryDate.UTC()
		w.actualDeliveryDate = &actual
	}

	if err := errors.Join(
		w.AssignID(s.ID),
		w.setClientID(s.ClientID),
		w.setExpectedDeliveryDate(s.ExpectedDeliveryDate),
		s.Status.Validate(),
	); err != nil {
		return nil, err
	}
	w.status = s.Status
	w.recomputeDueCleared()

	return w, nil
}

// Snapshot returns the current state for persistence.
func (w *WorkOrder) Snapshot() Snapshot {
	s := Snapshot{
		ID:                   w.id,
		ClientID:             w.clientID,
		OrderDate:            w.orderDate,
		ExpectedDeliveryDate: w.expectedDeliveryDate,
		Description:          w.description,
		Notes:                w.notes,
		Status:               w.status,
		Billing:              w.billing,
		DueCleared:           w.dueCleared,
		CreatedAt:            w.createdAt,
		UpdatedAt:            w.updatedAt,
	}
	if w.actualDeliveryDate != nil {
		actual := *w.actualDeliveryDate
		s.ActualDeliveryDate = &actual
	}
	return s
}

func (w *WorkOrder) Validate() error {
	if w == nil {
		return ErrWorkOrderIsNotConstructed
	}
	return w.guard.Validate(ErrWorkOrderIsNotConstructed)
}

// AssignID sets the storage generated identifier.
func (w *WorkOrder) AssignID(id int64) error {
	if id <= 0 {
		return errs.NewValueIsOutOfRangeError("work order id", id, 1, "+Inf")
	}
	w.id = id
	return nil
}

func (w *WorkOrder) ID() int64 { return w.id }
func (w *WorkOrder) ClientID() int64 { return w.clientID }
func (w *WorkOrder) OrderDate() time.Time { return w.orderDate }
func (w *WorkOrder) ExpectedDeliveryDate() time.Time { return w.expectedDeliveryDate }
func (w *WorkOrder) Description() string { return w.description }
func (w *WorkOrder) Notes() string { return w.notes }
func (w *WorkOrder) Status() Status { return w.status }
func (w *WorkOrder) Billing() Billing { return w.billing }
func (w *WorkOrder) DueCleared() bool { return w.dueCleared }
func (w *WorkOrder) CreatedAt() time.Time { return w.createdAt }
func (w *WorkOrder) UpdatedAt() time.Time { return w.updatedAt }

// ActualDeliveryDate returns nil until the order is delivered.
func (w *WorkOrder) ActualDeliveryDate() *time.Time {
	if w.actualDeliveryDate == nil {
		return nil
	}
	actual := *w.actualDeliveryDate
	return &actual
}

// BillableAmount is the actual amount once known, otherwise the estimate.
func (w *WorkOrder) BillableAmount() kernel.Money {
	if !w.billing.ActualAmount.IsZero() {
		return w.billing.ActualAmount
	}
	return w.billing.TotalEstimate
}

// AmountDue is the outstanding balance, floored at zero.
func (w *WorkOrder) AmountDue() kernel.Money {
	return w.BillableAmount().SubFloor(w.billing.AdvancePaid)
}

// IsActive reports whether the order is still in production.
func (w *WorkOrder) IsActive() bool {
	return !w.status.IsDelivered()
}

// IsOverdue reports whether the expected delivery date has passed at now
// without the order being delivered.
func (w *WorkOrder) IsOverdue(now time.Time) bool {
	return w.IsActive() && w.expectedDeliveryDate.Before(now)
}

// IsDueWithinDay reports whether an active order is expected within the next
// DueSoonWindow after now, bounds included.
func (w *WorkOrder) IsDueWithinDay(now time.Time) bool {
	if !w.IsActive() {
		return false
	}
	return !w.expectedDeliveryDate.Before(now) && !w.expectedDeliveryDate.After(now.Add(DueSoonWindow))
}

// ChangeStatus moves the order to next.
//
// actualDelivery may only be given when next is a delivered status different
// from the current one. When the order enters a delivered status from an
// active one without actualDelivery, now is used.
//
// Returns errs.StatusIsInvalidError for an unknown next,
// errs.StatusTransitionIsInvalidError when a delivered order would go
// anywhere but forward to Fully Paid, and a validation error for a misplaced
// or zero actualDelivery. Nothing changes on error.
func (w *WorkOrder) ChangeStatus(next Status, actualDelivery *time.Time, now time.Time) error {
	prev := w.status
	if !prev.CanTransitionTo(next) {
		return prev.transitionError(next)
	}

	if actualDelivery != nil {
		if !next.IsDelivered() || next == prev {
			return errs.NewValueIsInvalidErrorWithCause(
				"actual delivery date",
				fmt.Errorf("can only be set when the order becomes delivered, not on %s -> %s", prev, next),
			)
		}
		if actualDelivery.IsZero() {
			return errs.NewValueIsRequiredError("actual delivery date")
		}
	}

	now = now.UTC()
	switch {
	case actualDelivery != nil:
		actual := actualDelivery.UTC()
		w.actualDeliveryDate = &actual
	case next.IsDelivered() && !prev.IsDelivered():
		actual := now
		w.actualDeliveryDate = &actual
	}

	w.status = next
	w.recomputeDueCleared()
	w.updatedAt = now

	if next != prev {
		w.raise(prev, next, now)
	}
	return nil
}

// UpdateBilling applies the given amounts and recomputes the due cleared flag.
func (w *WorkOrder) UpdateBilling(ch BillingChanges, now time.Time) {
	if ch.IsEmpty() {
		return
	}
	if ch.AdvancePaid != nil {
		w.billing.AdvancePaid = *ch.AdvancePaid
	}
	if ch.TotalEstimate != nil {
		w.billing.TotalEstimate = *ch.TotalEstimate
	}
	if ch.ActualAmount != nil {
		w.billing.ActualAmount = *ch.ActualAmount
	}
	w.recomputeDueCleared()
	w.updatedAt = now.UTC()
}

// ClearDues records full settlement: the advance becomes the billable amount
// and a Payment Pending order becomes Fully Paid.
func (w *WorkOrder) ClearDues(now time.Time) {
	now = now.UTC()
	w.billing.AdvancePaid = w.BillableAmount()
	if w.status == DeliveredPaymentPending {
		w.status = DeliveredPaid
		w.raise(DeliveredPaymentPending, DeliveredPaid, now)
	}
	w.recomputeDueCleared()
	w.updatedAt = now
}

// Reschedule changes the expected delivery date.
func (w *WorkOrder) Reschedule(expected time.Time, now time.Time) error {
	if err := w.setExpectedDeliveryDate(expected); err != nil {
		return err
	}
	w.updatedAt = now.UTC()
	return nil
}

// Describe replaces the description and/or notes. Nil values are kept.
func (w *WorkOrder) Describe(description, notes *string, now time.Time) error {
	d, n := w.description, w.notes
	var validation []error
	if description != nil {
		validation = append(validation, w.setText("description", &d, *description))
	}
	if notes != nil {
		validation = append(validation, w.setText("notes", &n, *notes))
	}
	if err := errors.Join(validation...); err != nil {
		return err
	}
	if description == nil && notes == nil {
		return nil
	}
	w.description, w.notes = d, n
	w.updatedAt = now.UTC()
	return nil
}

// DomainEvents returns the events recorded since the last ClearDomainEvents.
// Events recorded before the order had an id carry its id once assigned.
func (w *WorkOrder) DomainEvents() []StatusChanged {
	events := make([]StatusChanged, len(w.domainEvents))
	for i, e := range w.domainEvents {
		e.WorkOrderID = w.id
		events[i] = e
	}
	return events
}

func (w *WorkOrder) ClearDomainEvents() {
	w.domainEvents = nil
}

func (w *WorkOrder) raise(from, to Status, at time.Time) {
	w.domainEvents = append(w.domainEvents, StatusChanged{
		EventID:     uuid.New(),
		WorkOrderID: w.id,
		ClientID:    w.clientID,
		From:        from,
		To:          to,
		OccurredAt:  at,
	})
}

func (w *WorkOrder) recomputeDueCleared() {
	w.dueCleared = w.status == DeliveredPaid && w.AmountDue().IsZero()
}

func (w *WorkOrder) setClientID(id int64) error {
	if id <= 0 {
		return errs.NewValueIsOutOfRangeError("client id", id, 1, "+Inf")
	}
	w.clientID = id
	return nil
}

func (w *WorkOrder) setExpectedDeliveryDate(t time.Time) error {
	if t.IsZero() {
		return errs.NewValueIsRequiredError("expected delivery date")
	}
	w.expectedDeliveryDate = t.UTC()
	return nil
}

func (w *WorkOrder) setText(paramName string, dst *string, value string) error {
	if n := utf8.RuneCountInString(value); n > MaxTextLength {
		return errs.NewValueIsOutOfRangeError(paramName+" length", n, 0, MaxTextLength)
	}
	*dst = value
	return nil
}
