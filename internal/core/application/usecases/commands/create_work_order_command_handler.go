package commands

import (
	"context"
	"time"

	"boutique/internal/core/domain/model/client"
	"boutique/internal/core/domain/model/workorder"
	"boutique/internal/core/ports"
	"boutique/internal/pkg/errs"
)

// CreateWorkOrderResult is the stored work order and the client it belongs to.
type CreateWorkOrderResult struct {
	WorkOrder     *workorder.WorkOrder
	Client        *client.Client
	ClientCreated bool
}

// CreateWorkOrderCommandHandler creates work orders, registering the client
// in the same unit of work when needed. If the work order cannot be stored,
// the client registration is rolled back with it.
type CreateWorkOrderCommandHandler struct {
	uowFactory UoWFactory
	clock      Clock
}

func NewCreateWorkOrderCommandHandler(uowFactory UoWFactory, clock Clock) CreateWorkOrderCommandHandler {
	return CreateWorkOrderCommandHandler{
		uowFactory: uowFactory,
		clock:      clockOrNow(clock),
	}
}

func (h *CreateWorkOrderCommandHandler) Handle(ctx context.Context, cmd CreateWorkOrderCommand) (CreateWorkOrderResult, error) {
	if err := cmd.Validate(); err != nil {
		return CreateWorkOrderResult{}, err
	}
	now := h.clock()

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return CreateWorkOrderResult{}, err
	}
	defer rollback(ctx, uow)

	c, created, err := resolveClient(ctx, uow.ClientRepository(), cmd, now)
	if err != nil {
		return CreateWorkOrderResult{}, err
	}

	w, err := workorder.NewWorkOrder(
		c.ID(),
		cmd.ExpectedDeliveryDate(),
		cmd.Description(),
		cmd.Notes(),
		cmd.Status(),
		cmd.Billing(),
		now,
	)
	if err != nil {
		return CreateWorkOrderResult{}, err
	}
	if cmd.DueCleared() {
		w.ClearDues(now)
	}

	if err = uow.WorkOrderRepository().Add(ctx, w); err != nil {
		return CreateWorkOrderResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return CreateWorkOrderResult{}, err
	}

	return CreateWorkOrderResult{WorkOrder: w, Client: c, ClientCreated: created}, nil
}

// resolveClient returns the client named by cmd: by id first, then by
// mobile number, registering a new client as the last resort.
func resolveClient(
	ctx context.Context,
	repo ports.ClientRepository,
	cmd CreateWorkOrderCommand,
	now time.Time,
) (*client.Client, bool, error) {
	if id := cmd.ClientID(); id != nil {
		c, err := repo.Get(ctx, *id)
		if err == nil {
			return c, false, nil
		}
		if !errs.IsNotFound(err) || !cmd.HasClientDetails() {
			return nil, false, err
		}
	}

	c, err := repo.GetByMobile(ctx, cmd.ClientMobile())
	if err == nil {
		return c, false, nil
	}
	if !errs.IsNotFound(err) {
		return nil, false, err
	}

	c, err = client.NewClient(cmd.ClientName(), cmd.ClientMobile(), cmd.ClientEmail(), cmd.ClientAddress(), now)
	if err != nil {
		return nil, false, err
	}
	if err = repo.Add(ctx, c); err != nil {
		return nil, false, err
	}
	return c, true, nil
}
