package commands

import (
	"errors"

	"boutique/internal/core/domain/model/client"
	"boutique/internal/core/domain/model/kernel"
	"boutique/internal/pkg/errs"
	"boutique/internal/pkg/guard"
)

var ErrUpdateClientCommandIsNotConstructed = errors.New(
	"UpdateClientCommand must be created via NewUpdateClientCommand constructor",
)

// UpdateClientCommand changes the fields of an existing client. Nil inputs
// are left as they are; an empty email removes it.
type UpdateClientCommand struct { //nolint:recvcheck //using for validation
	clientID int64
	changes  client.Changes

	guard guard.ConstructorGuard
}

func NewUpdateClientCommand(clientID int64, name, mobile, email, address *string) (UpdateClientCommand, error) {
	cmd := UpdateClientCommand{
		guard: guard.NewConstructorGuard(),
	}
	cmd.changes.Name = name
	cmd.changes.Address = address

	if err := errors.Join(
		cmd.setClientID(clientID),
		cmd.setMobile(mobile),
		cmd.setEmail(email),
	); err != nil {
		return UpdateClientCommand{}, err
	}

	return cmd, nil
}

func (c UpdateClientCommand) Validate() error {
	return c.guard.Validate(ErrUpdateClientCommandIsNotConstructed)
}

func (c UpdateClientCommand) ClientID() int64 { return c.clientID }
func (c UpdateClientCommand) Changes() client.Changes { return c.changes }

func (c *UpdateClientCommand) setClientID(id int64) error {
	if id <= 0 {
		return errs.NewValueIsOutOfRangeError("client id", id, 1, "+Inf")
	}
	c.clientID = id
	return nil
}

func (c *UpdateClientCommand) setMobile(s *string) error {
	if s == nil {
		return nil
	}
	m, err := kernel.NewMobile(*s)
	if err != nil {
		return err
	}
	c.changes.Mobile = &m
	return nil
}

func (c *UpdateClientCommand) setEmail(s *string) error {
	if s == nil {
		return nil
	}
	e, err := kernel.NewEmail(*s)
	if err != nil {
		return err
	}
	c.changes.Email = &e
	return nil
}
