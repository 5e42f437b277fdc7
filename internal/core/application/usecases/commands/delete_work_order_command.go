package commands

import (
	"errors"

	"boutique/internal/pkg/errs"
	"boutique/internal/pkg/guard"
)

var ErrDeleteWorkOrderCommandIsNotConstructed = errors.New(
	"DeleteWorkOrderCommand must be created via NewDeleteWorkOrderCommand constructor",
)

type DeleteWorkOrderCommand struct { //nolint:recvcheck //using for validation
	workOrderID int64

	guard guard.ConstructorGuard
}

func NewDeleteWorkOrderCommand(workOrderID int64) (DeleteWorkOrderCommand, error) {
	if workOrderID <= 0 {
		return DeleteWorkOrderCommand{}, errs.NewValueIsOutOfRangeError("work order id", workOrderID, 1, "+Inf")
	}
	return DeleteWorkOrderCommand{workOrderID: workOrderID, guard: guard.NewConstructorGuard()}, nil
}

func (c DeleteWorkOrderCommand) Validate() error {
	return c.guard.Validate(ErrDeleteWorkOrderCommandIsNotConstructed)
}

func (c DeleteWorkOrderCommand) WorkOrderID() int64 {
	return c.workOrderID
}
