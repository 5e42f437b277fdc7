package commands

import (
	"context"
	"errors"
	"time"

	"boutique/internal/core/domain/model/workorder"
	"boutique/internal/pkg/errs"
)

// UpdateWorkOrderCommandHandler applies partial updates in a fixed order:
// schedule and text, billing, status, then due clearance. The due cleared
// flag is derived, so the only accepted explicit value is true (settle
// now) or false while the order is not cleared.
type UpdateWorkOrderCommandHandler struct {
	uowFactory WorkOrderUoWFactory
	clock      Clock
}

func NewUpdateWorkOrderCommandHandler(uowFactory WorkOrderUoWFactory, clock Clock) UpdateWorkOrderCommandHandler {
	return UpdateWorkOrderCommandHandler{
		uowFactory: uowFactory,
		clock:      clockOrNow(clock),
	}
}

func (h *UpdateWorkOrderCommandHandler) Handle(ctx context.Context, cmd UpdateWorkOrderCommand) (*workorder.WorkOrder, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}
	now := h.clock()

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer rollback(ctx, uow)

	repo := uow.WorkOrderRepository()
	w, err := repo.Get(ctx, cmd.WorkOrderID())
	if err != nil {
		return nil, err
	}

	if err = apply(w, cmd, now); err != nil {
		return nil, err
	}

	if err = repo.Update(ctx, w); err != nil {
		return nil, err
	}
	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}
	return w, nil
}

func apply(w *workorder.WorkOrder, cmd UpdateWorkOrderCommand, now time.Time) error {
	if d := cmd.ExpectedDeliveryDate(); d != nil {
		if err := w.Reschedule(*d, now); err != nil {
			return err
		}
	}
	if err := w.Describe(cmd.Description(), cmd.Notes(), now); err != nil {
		return err
	}

	w.UpdateBilling(cmd.Billing(), now)

	switch {
	case cmd.Status() != nil:
		if err := w.ChangeStatus(*cmd.Status(), cmd.ActualDeliveryDate(), now); err != nil {
			return err
		}
	case cmd.ActualDeliveryDate() != nil:
		return errs.NewValueIsInvalidErrorWithCause(
			"actual delivery date",
			errors.New("can only be set together with a delivered status"),
		)
	}

	if cleared := cmd.DueCleared(); cleared != nil {
		switch {
		case *cleared:
			w.ClearDues(now)
		case w.DueCleared():
			return errs.NewValueIsInvalidErrorWithCause(
				"due cleared",
				errors.New("a fully paid order with nothing due is always cleared"),
			)
		}
	}
	return nil
}
