package commands

import (
	"context"

	"boutique/internal/core/domain/model/client"
	"boutique/internal/core/domain/model/kernel"
	"boutique/internal/core/ports"
	"boutique/internal/pkg/errs"
)

// CreateClientCommandHandler registers clients. A mobile number that is
// already registered fails with errs.ObjectAlreadyExistsError and nothing is
// written.
type CreateClientCommandHandler struct {
	uowFactory ClientUoWFactory
	clock      Clock
}

func NewCreateClientCommandHandler(uowFactory ClientUoWFactory, clock Clock) CreateClientCommandHandler {
	return CreateClientCommandHandler{
		uowFactory: uowFactory,
		clock:      clockOrNow(clock),
	}
}

func (h *CreateClientCommandHandler) Handle(ctx context.Context, cmd CreateClientCommand) (*client.Client, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	c, err := client.NewClient(cmd.Name(), cmd.Mobile(), cmd.Email(), cmd.Address(), h.clock())
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer rollback(ctx, uow)

	repo := uow.ClientRepository()
	if err = ensureMobileIsFree(ctx, repo, cmd.Mobile(), 0); err != nil {
		return nil, err
	}

	if err = repo.Add(ctx, c); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return c, nil
}

// ensureMobileIsFree fails unless mobile is unused or owned by ownerID.
func ensureMobileIsFree(ctx context.Context, repo ports.ClientRepository, mobile kernel.Mobile, ownerID int64) error {
	existing, err := repo.GetByMobile(ctx, mobile)
	switch {
	case errs.IsNotFound(err):
		return nil
	case err != nil:
		return err
	case existing.ID() == ownerID:
		return nil
	default:
		return errs.NewObjectAlreadyExistsError("mobile number", mobile.String())
	}
}
