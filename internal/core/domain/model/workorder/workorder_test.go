package workorder_test

import (
	"strings"
	"testing"
	"time"

	"boutique/internal/core/domain/model/kernel"
	"boutique/internal/core/domain/model/workorder"
	"boutique/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)

func billing(advance, estimate, actual float64) workorder.Billing {
	return workorder.Billing{
		AdvancePaid:   kernel.MustMoney(advance),
		TotalEstimate: kernel.MustMoney(estimate),
		ActualAmount:  kernel.MustMoney(actual),
	}
}

func newOrder(t *testing.T, status workorder.Status, b workorder.Billing) *workorder.WorkOrder {
	t.Helper()
	w, err := workorder.NewWorkOrder(1, now.Add(48*time.Hour), "Silk saree blouse", "", status, b, now)
	require.NoError(t, err)
	require.NoError(t, w.AssignID(10))
	return w
}

func TestNewWorkOrder(t *testing.T) {
	t.Run("should create a placed order", func(t *testing.T) {
		expected := now.Add(72 * time.Hour)

		w, err := workorder.NewWorkOrder(3, expected, "Lehenga", "urgent", workorder.Placed, billing(500, 2000, 0), now)

		require.NoError(t, err)
		require.NoError(t, w.Validate())
		assert.EqualValues(t, 3, w.ClientID())
		assert.Equal(t, now, w.OrderDate())
		assert.Equal(t, expected, w.ExpectedDeliveryDate())
		assert.Equal(t, "Lehenga", w.Description())
		assert.Equal(t, "urgent", w.Notes())
		assert.Equal(t, workorder.Placed, w.Status())
		assert.Nil(t, w.ActualDeliveryDate())
		assert.False(t, w.DueCleared())
		assert.InDelta(t, 1500.0, w.AmountDue().Amount(), 1e-9)
		assert.Empty(t, w.DomainEvents())
	})

	t.Run("should stamp delivery when created delivered", func(t *testing.T) {
		w, err := workorder.NewWorkOrder(3, now, "", "", workorder.DeliveredPaid, billing(1000, 1000, 0), now)

		require.NoError(t, err)
		require.NotNil(t, w.ActualDeliveryDate())
		assert.Equal(t, now, *w.ActualDeliveryDate())
		assert.True(t, w.DueCleared())
	})

	t.Run("should collect all field errors", func(t *testing.T) {
		w, err := workorder.NewWorkOrder(0, time.Time{}, strings.Repeat("x", workorder.MaxTextLength+1), "", workorder.Unknown, workorder.Billing{}, now)

		require.Error(t, err)
		assert.Nil(t, w)
		assert.Contains(t, err.Error(), "client id")
		assert.Contains(t, err.Error(), "expected delivery date")
		assert.Contains(t, err.Error(), "description length")
		assert.ErrorIs(t, err, errs.ErrStatusIsInvalid)
	})
}

func TestWorkOrder_ZeroValue(t *testing.T) {
	var w workorder.WorkOrder
	assert.ErrorIs(t, w.Validate(), workorder.ErrWorkOrderIsNotConstructed)
}

func TestWorkOrder_AmountDue(t *testing.T) {
	tests := []struct {
		name                      string
		advance, estimate, actual float64
		want                      float64
	}{
		{"estimate when actual unset", 200, 1000, 0, 800},
		{"actual overrides estimate", 200, 1000, 1500, 1300},
		{"floored at zero", 2000, 1000, 0, 0},
		{"overpaid against actual", 900, 5000, 800, 0},
		{"nothing billed", 0, 0, 0, 0},
		{"fractional", 0.25, 10.5, 0, 10.25},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := newOrder(t, workorder.Started, billing(tt.advance, tt.estimate, tt.actual))

			due := w.AmountDue().Amount()

			assert.InDelta(t, tt.want, due, 1e-9)
			assert.GreaterOrEqual(t, due, 0.0)
		})
	}
}

func TestWorkOrder_Overdue(t *testing.T) {
	w, err := workorder.NewWorkOrder(1, now.Add(-24*time.Hour), "", "", workorder.Started, billing(0, 100, 0), now.Add(-72*time.Hour))
	require.NoError(t, err)

	assert.True(t, w.IsOverdue(now))
	assert.True(t, w.IsActive())

	require.NoError(t, w.ChangeStatus(workorder.DeliveredPaid, nil, now))

	assert.False(t, w.IsOverdue(now))
	assert.False(t, w.IsActive())
}

func TestWorkOrder_IsDueWithinDay(t *testing.T) {
	tests := []struct {
		name     string
		expected time.Time
		status   workorder.Status
		want     bool
	}{
		{"in twelve hours", now.Add(12 * time.Hour), workorder.Started, true},
		{"exactly now", now, workorder.Finished, true},
		{"exactly one day ahead", now.Add(24 * time.Hour), workorder.Placed, true},
		{"just over a day", now.Add(24*time.Hour + time.Second), workorder.Placed, false},
		{"already past", now.Add(-time.Minute), workorder.Started, false},
		{"delivered", now.Add(time.Hour), workorder.DeliveredPaymentPending, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, err := workorder.NewWorkOrder(1, tt.expected, "", "", tt.status, workorder.Billing{}, now.Add(-time.Hour))
			require.NoError(t, err)

			assert.Equal(t, tt.want, w.IsDueWithinDay(now))
		})
	}
}

func TestWorkOrder_ChangeStatus(t *testing.T) {
	later := now.Add(time.Hour)

	t.Run("should accept backward moves while active", func(t *testing.T) {
		w := newOrder(t, workorder.Finished, billing(0, 100, 0))

		require.NoError(t, w.ChangeStatus(workorder.Placed, nil, later))

		assert.Equal(t, workorder.Placed, w.Status())
		assert.Equal(t, later, w.UpdatedAt())
	})

	t.Run("should default actual delivery to now", func(t *testing.T) {
		w := newOrder(t, workorder.Finished, billing(100, 500, 0))

		require.NoError(t, w.ChangeStatus(workorder.DeliveredPaymentPending, nil, later))

		require.NotNil(t, w.ActualDeliveryDate())
		assert.Equal(t, later, *w.ActualDeliveryDate())
		assert.False(t, w.DueCleared())
	})

	t.Run("should keep caller supplied delivery date", func(t *testing.T) {
		w := newOrder(t, workorder.Finished, billing(500, 500, 0))
		delivered := time.Date(2024, 2, 29, 18, 30, 0, 0, time.FixedZone("IST", 5*3600+1800))

		require.NoError(t, w.ChangeStatus(workorder.DeliveredPaid, &delivered, later))

		assert.True(t, delivered.Equal(*w.ActualDeliveryDate()))
		assert.Equal(t, time.UTC, w.ActualDeliveryDate().Location())
		assert.True(t, w.DueCleared())
	})

	t.Run("should reject delivery date outside a delivery transition", func(t *testing.T) {
		w := newOrder(t, workorder.Placed, billing(0, 100, 0))
		delivered := later

		err := w.ChangeStatus(workorder.Started, &delivered, later)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Equal(t, workorder.Placed, w.Status())
		assert.Nil(t, w.ActualDeliveryDate())
	})

	t.Run("should promote payment pending to fully paid", func(t *testing.T) {
		w := newOrder(t, workorder.DeliveredPaymentPending, billing(500, 500, 0))
		firstDelivery := *w.ActualDeliveryDate()

		require.NoError(t, w.ChangeStatus(workorder.DeliveredPaid, nil, later))

		assert.True(t, w.DueCleared())
		assert.Equal(t, firstDelivery, *w.ActualDeliveryDate())
	})

	t.Run("fully paid with an outstanding balance is not cleared", func(t *testing.T) {
		w := newOrder(t, workorder.Finished, billing(100, 500, 0))

		require.NoError(t, w.ChangeStatus(workorder.DeliveredPaid, nil, later))

		assert.False(t, w.DueCleared())
	})

	t.Run("payment pending moves to fully paid while money is still owed", func(t *testing.T) {
		w := newOrder(t, workorder.DeliveredPaymentPending, billing(100, 500, 0))

		require.NoError(t, w.ChangeStatus(workorder.DeliveredPaid, nil, later))

		assert.Equal(t, workorder.DeliveredPaid, w.Status())
		assert.InDelta(t, 400.0, w.AmountDue().Amount(), 1e-9)
		assert.False(t, w.DueCleared())
	})

	t.Run("should reject leaving a delivered status", func(t *testing.T) {
		for _, from := range []workorder.Status{workorder.DeliveredPaid, workorder.DeliveredPaymentPending} {
			w := newOrder(t, from, billing(0, 0, 0))

			err := w.ChangeStatus(workorder.Started, nil, later)

			require.Error(t, err)
			assert.ErrorIs(t, err, errs.ErrStatusTransitionIsInvalid)
			assert.True(t, errs.IsInvalidStatus(err))
			assert.Equal(t, from, w.Status())
		}

		w := newOrder(t, workorder.DeliveredPaid, billing(0, 0, 0))
		assert.ErrorIs(t, w.ChangeStatus(workorder.DeliveredPaymentPending, nil, later), errs.ErrStatusTransitionIsInvalid)
	})

	t.Run("should reject unknown status", func(t *testing.T) {
		w := newOrder(t, workorder.Placed, billing(0, 0, 0))

		err := w.ChangeStatus(workorder.Status(17), nil, later)

		assert.ErrorIs(t, err, errs.ErrStatusIsInvalid)
	})

	t.Run("should record one event per actual change", func(t *testing.T) {
		w := newOrder(t, workorder.Placed, billing(0, 0, 0))

		require.NoError(t, w.ChangeStatus(workorder.Placed, nil, later))
		require.NoError(t, w.ChangeStatus(workorder.Started, nil, later))

		events := w.DomainEvents()
		require.Len(t, events, 1)
		assert.EqualValues(t, 10, events[0].WorkOrderID)
		assert.EqualValues(t, 1, events[0].ClientID)
		assert.Equal(t, workorder.Placed, events[0].From)
		assert.Equal(t, workorder.Started, events[0].To)
		assert.Equal(t, later, events[0].OccurredAt)
		assert.NotEmpty(t, events[0].EventID)

		w.ClearDomainEvents()
		assert.Empty(t, w.DomainEvents())
	})
}

func TestWorkOrder_UpdateBilling(t *testing.T) {
	w := newOrder(t, workorder.DeliveredPaid, billing(200, 1000, 0))
	require.False(t, w.DueCleared())

	advance := kernel.MustMoney(1000)
	w.UpdateBilling(workorder.BillingChanges{AdvancePaid: &advance}, now.Add(time.Hour))

	assert.True(t, w.DueCleared())
	assert.True(t, w.AmountDue().IsZero())

	actual := kernel.MustMoney(1200)
	w.UpdateBilling(workorder.BillingChanges{ActualAmount: &actual}, now.Add(2*time.Hour))

	assert.False(t, w.DueCleared())
	assert.InDelta(t, 200.0, w.AmountDue().Amount(), 1e-9)
	assert.Equal(t, now.Add(2*time.Hour), w.UpdatedAt())
}

func TestWorkOrder_AmountDueIsExact(t *testing.T) {
	w := newOrder(t, workorder.DeliveredPaymentPending, billing(1000.1, 1000.3, 0))

	assert.Equal(t, "0.20", w.AmountDue().String())
	assert.Equal(t, 0.2, w.AmountDue().Amount())
}

func TestWorkOrder_ClearDues(t *testing.T) {
	t.Run("pending payment becomes fully paid", func(t *testing.T) {
		w := newOrder(t, workorder.DeliveredPaymentPending, billing(100, 800, 900))

		w.ClearDues(now.Add(time.Hour))

		assert.Equal(t, workorder.DeliveredPaid, w.Status())
		assert.True(t, w.DueCleared())
		assert.InDelta(t, 900.0, w.Billing().AdvancePaid.Amount(), 1e-9)
		require.Len(t, w.DomainEvents(), 1)
	})

	t.Run("active order settles without being cleared", func(t *testing.T) {
		w := newOrder(t, workorder.Started, billing(100, 800, 0))

		w.ClearDues(now.Add(time.Hour))

		assert.Equal(t, workorder.Started, w.Status())
		assert.True(t, w.AmountDue().IsZero())
		assert.False(t, w.DueCleared())
		assert.Empty(t, w.DomainEvents())
	})
}

func TestWorkOrder_RescheduleAndDescribe(t *testing.T) {
	w := newOrder(t, workorder.Placed, workorder.Billing{})
	later := now.Add(time.Hour)

	require.NoError(t, w.Reschedule(now.Add(96*time.Hour), later))
	assert.Equal(t, now.Add(96*time.Hour), w.ExpectedDeliveryDate())
	assert.ErrorIs(t, w.Reschedule(time.Time{}, later), errs.ErrValueIsRequired)

	notes := "add lining"
	require.NoError(t, w.Describe(nil, &notes, later))
	assert.Equal(t, "Silk saree blouse", w.Description())
	assert.Equal(t, "add lining", w.Notes())

	long := strings.Repeat("n", workorder.MaxTextLength+1)
	desc := "changed"
	err := w.Describe(&desc, &long, later)
	require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	assert.Equal(t, "Silk saree blouse", w.Description())
}

func TestRestoreWorkOrder(t *testing.T) {
	original := newOrder(t, workorder.DeliveredPaid, billing(300, 300, 0))

	restored, err := workorder.RestoreWorkOrder(original.Snapshot())

	require.NoError(t, err)
	assert.Equal(t, original.Snapshot(), restored.Snapshot())

	s := original.Snapshot()
	s.ID = 0
	s.Status = workorder.Unknown
	_, err = workorder.RestoreWorkOrder(s)
	assert.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	assert.ErrorIs(t, err, errs.ErrStatusIsInvalid)
}

func TestRestoreWorkOrder_DerivesDueCleared(t *testing.T) {
	s := newOrder(t, workorder.Started, billing(0, 300, 0)).Snapshot()
	s.DueCleared = true

	w, err := workorder.RestoreWorkOrder(s)

	require.NoError(t, err)
	assert.False(t, w.DueCleared())
	assert.InDelta(t, 300.0, w.AmountDue().Amount(), 1e-9)

	s.Status = workorder.DeliveredPaid
	s.Billing = billing(300, 300, 0)
	s.DueCleared = false

	w, err = workorder.RestoreWorkOrder(s)

	require.NoError(t, err)
	assert.True(t, w.DueCleared())
}
