package commands

import (
	"context"

	"boutique/internal/core/domain/model/client"
)

type UpdateClientCommandHandler struct {
	uowFactory ClientUoWFactory
	clock      Clock
}

func NewUpdateClientCommandHandler(uowFactory ClientUoWFactory, clock Clock) UpdateClientCommandHandler {
	return UpdateClientCommandHandler{
		uowFactory: uowFactory,
		clock:      clockOrNow(clock),
	}
}

// Handle loads the client, applies the changes and saves it. Taking another
// client's mobile number fails with errs.ObjectAlreadyExistsError.
func (h *UpdateClientCommandHandler) Handle(ctx context.Context, cmd UpdateClientCommand) (*client.Client, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer rollback(ctx, uow)

	repo := uow.ClientRepository()
	c, err := repo.Get(ctx, cmd.ClientID())
	if err != nil {
		return nil, err
	}

	changes := cmd.Changes()
	if changes.IsEmpty() {
		return c, nil
	}
	if changes.Mobile != nil && !changes.Mobile.IsEqual(c.Mobile()) {
		if err = ensureMobileIsFree(ctx, repo, *changes.Mobile, c.ID()); err != nil {
			return nil, err
		}
	}

	if err = c.Update(changes, h.clock()); err != nil {
		return nil, err
	}
	if err = repo.Update(ctx, c); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}
	return c, nil
}
