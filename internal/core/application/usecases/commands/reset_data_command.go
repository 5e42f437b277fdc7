package commands

import (
	"errors"
	"fmt"

	"boutique/internal/pkg/errs"
	"boutique/internal/pkg/guard"
)

var ErrResetDataCommandIsNotConstructed = errors.New(
	"ResetDataCommand must be created via NewResetDataCommand constructor",
)

// ResetScope selects what a ResetDataCommand removes.
type ResetScope int

const (
	ResetWorkOrders ResetScope = iota + 1
	// ResetClients removes every client together with its work orders.
	ResetClients
	ResetAll
)

func (s ResetScope) String() string {
	switch s {
	case ResetWorkOrders:
		return "work orders"
	case ResetClients:
		return "clients"
	case ResetAll:
		return "all"
	default:
		return fmt.Sprintf("ResetScope(%d)", int(s))
	}
}

// ResetDataCommand bulk deletes stored data for administration.
type ResetDataCommand struct { //nolint:recvcheck //using for validation
	scope ResetScope

	guard guard.ConstructorGuard
}

func NewResetDataCommand(scope ResetScope) (ResetDataCommand, error) {
	if scope < ResetWorkOrders || scope > ResetAll {
		return ResetDataCommand{}, errs.NewValueIsOutOfRangeError("reset scope", int(scope), int(ResetWorkOrders), int(ResetAll))
	}
	return ResetDataCommand{scope: scope, guard: guard.NewConstructorGuard()}, nil
}

func (c ResetDataCommand) Validate() error {
	return c.guard.Validate(ErrResetDataCommandIsNotConstructed)
}

func (c ResetDataCommand) Scope() ResetScope {
	return c.scope
}
