package commands

import (
	"errors"
	"time"

	"boutique/internal/core/domain/model/kernel"
	"boutique/internal/core/domain/model/workorder"
	"boutique/internal/pkg/errs"
	"boutique/internal/pkg/guard"
)

var ErrUpdateWorkOrderCommandIsNotConstructed = errors.New(
	"UpdateWorkOrderCommand must be created via NewUpdateWorkOrderCommand constructor",
)

// UpdateWorkOrderParams is a partial update. Nil fields are left untouched.
type UpdateWorkOrderParams struct {
	ExpectedDeliveryDate *time.Time
	ActualDeliveryDate   *time.Time
	Description          *string
	Notes                *string
	Status               *string
	AdvancePaid          *float64
	TotalEstimate        *float64
	ActualAmount         *float64
	DueCleared           *bool
}

type UpdateWorkOrderCommand struct { //nolint:recvcheck //using for validation
	workOrderID          int64
	expectedDeliveryDate *time.Time
	actualDeliveryDate   *time.Time
	description          *string
	notes                *string
	status               *workorder.Status
	billing              workorder.BillingChanges
	dueCleared           *bool

	guard guard.ConstructorGuard
}

func NewUpdateWorkOrderCommand(workOrderID int64, p UpdateWorkOrderParams) (UpdateWorkOrderCommand, error) {
	cmd := UpdateWorkOrderCommand{
		expectedDeliveryDate: p.ExpectedDeliveryDate,
		actualDeliveryDate:   p.ActualDeliveryDate,
		description:          p.Description,
		notes:                p.Notes,
		dueCleared:           p.DueCleared,
		guard:                guard.NewConstructorGuard(),
	}

	var errA, errE, errX error
	cmd.billing.AdvancePaid, errA = optionalMoney("advance paid", p.AdvancePaid)
	cmd.billing.TotalEstimate, errE = optionalMoney("total estimate", p.TotalEstimate)
	cmd.billing.ActualAmount, errX = optionalMoney("actual amount", p.ActualAmount)

	if err := errors.Join(
		cmd.setWorkOrderID(workOrderID),
		cmd.setStatus(p.Status),
		errA, errE, errX,
	); err != nil {
		return UpdateWorkOrderCommand{}, err
	}

	return cmd, nil
}

func (c UpdateWorkOrderCommand) Validate() error {
	return c.guard.Validate(ErrUpdateWorkOrderCommandIsNotConstructed)
}

func (c UpdateWorkOrderCommand) WorkOrderID() int64 { return c.workOrderID }
func (c UpdateWorkOrderCommand) ExpectedDeliveryDate() *time.Time { return c.expectedDeliveryDate }
func (c UpdateWorkOrderCommand) ActualDeliveryDate() *time.Time { return c.actualDeliveryDate }
func (c UpdateWorkOrderCommand) Description() *string { return c.description }
func (c UpdateWorkOrderCommand) Notes() *string { return c.notes }
func (c UpdateWorkOrderCommand) Status() *workorder.Status { return c.status }
func (c UpdateWorkOrderCommand) Billing() workorder.BillingChanges { return c.billing }
func (c UpdateWorkOrderCommand) DueCleared() *bool { return c.dueCleared }

func (c *UpdateWorkOrderCommand) setWorkOrderID(id int64) error {
	if id <= 0 {
		return errs.NewValueIsOutOfRangeError("work order id", id, 1, "+Inf")
	}
	c.workOrderID = id
	return nil
}

func (c *UpdateWorkOrderCommand) setStatus(s *string) error {
	if s == nil {
		return nil
	}
	status, err := workorder.ParseStatus(*s)
	if err != nil {
		return err
	}
	c.status = &status
	return nil
}

func optionalMoney(paramName string, v *float64) (*kernel.Money, error) {
	if v == nil {
		return nil, nil
	}
	m, err := kernel.NewMoney(paramName, *v)
	if err != nil {
		return nil, err
	}
	return &m, nil
}
