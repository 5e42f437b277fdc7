package commands

import (
	"errors"

	"boutique/internal/core/domain/model/kernel"
	"boutique/internal/pkg/guard"
)

var ErrCreateClientCommandIsNotConstructed = errors.New(
	"CreateClientCommand must be created via NewCreateClientCommand constructor",
)

// CreateClientCommand registers a new client.
//
// Example:
//
//	cmd, err := NewCreateClientCommand("Priya Sharma", "9876543210", "priya@example.com", "")
//	if err != nil {
//	    return err
//	}
//	created, err := handler.Handle(ctx, cmd)
type CreateClientCommand struct { //nolint:recvcheck //using for validation
	name    string
	mobile  kernel.Mobile
	email   kernel.Email
	address string

	guard guard.ConstructorGuard
}

// NewCreateClientCommand parses the mobile number and email. Name and address
// are checked by the Client aggregate.
func NewCreateClientCommand(name, mobile, email, address string) (CreateClientCommand, error) {
	cmd := CreateClientCommand{
		name:    name,
		address: address,
		guard:   guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setMobile(mobile),
		cmd.setEmail(email),
	); err != nil {
		return CreateClientCommand{}, err
	}

	return cmd, nil
}

func (c CreateClientCommand) Validate() error {
	return c.guard.Validate(ErrCreateClientCommandIsNotConstructed)
}

func (c CreateClientCommand) Name() string { return c.name }
func (c CreateClientCommand) Mobile() kernel.Mobile { return c.mobile }
func (c CreateClientCommand) Email() kernel.Email { return c.email }
func (c CreateClientCommand) Address() string { return c.address }

func (c *CreateClientCommand) setMobile(s string) error {
	m, err := kernel.NewMobile(s)
	if err != nil {
		return err
	}
	c.mobile = m
	return nil
}

func (c *CreateClientCommand) setEmail(s string) error {
	e, err := kernel.NewEmail(s)
	if err != nil {
		return err
	}
	c.email = e
	return nil
}
