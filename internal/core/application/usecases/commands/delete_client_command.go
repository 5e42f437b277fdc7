package commands

import (
	"errors"

	"boutique/internal/pkg/errs"
	"boutique/internal/pkg/guard"
)

var ErrDeleteClientCommandIsNotConstructed = errors.New(
	"DeleteClientCommand must be created via NewDeleteClientCommand constructor",
)

type DeleteClientCommand struct { //nolint:recvcheck //using for validation
	clientID int64

	guard guard.ConstructorGuard
}

func NewDeleteClientCommand(clientID int64) (DeleteClientCommand, error) {
	if clientID <= 0 {
		return DeleteClientCommand{}, errs.NewValueIsOutOfRangeError("client id", clientID, 1, "+Inf")
	}
	return DeleteClientCommand{clientID: clientID, guard: guard.NewConstructorGuard()}, nil
}

func (c DeleteClientCommand) Validate() error {
	return c.guard.Validate(ErrDeleteClientCommandIsNotConstructed)
}

func (c DeleteClientCommand) ClientID() int64 {
	return c.clientID
}
