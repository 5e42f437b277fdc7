// Package commands contains the operations that modify clients and work
// orders. Every handler validates its command, opens a unit of work, applies
// the change through the domain model and commits.
package commands

import (
	"context"
	"time"

	"boutique/internal/core/ports"
)

// Unit of work views narrowed to what each handler touches.
type (
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	ClientRepoFactory interface {
		ClientRepository() ports.ClientRepository
	}

	WorkOrderRepoFactory interface {
		WorkOrderRepository() ports.WorkOrderRepository
	}

	// ClientUoW is used by commands that only write clients.
	ClientUoW interface {
		TxManager
		ClientRepoFactory
	}

	ClientUoWFactory interface {
		Create() ClientUoW
	}

	// WorkOrderUoW is used by commands that only write work orders.
	WorkOrderUoW interface {
		TxManager
		WorkOrderRepoFactory
	}

	WorkOrderUoWFactory interface {
		Create() WorkOrderUoW
	}

	// UoW spans both aggregates, e.g. creating a client together with its
	// first work order.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   clientRepo := uow.ClientRepository()
	//   orderRepo := uow.WorkOrderRepository()
	//   // ... perform operations
	//
	//   err = uow.Commit(ctx)
	UoW interface {
		TxManager
		ClientRepoFactory
		WorkOrderRepoFactory
	}

	UoWFactory interface {
		Create() UoW
	}
)

// Clock returns the current time. Handlers default to time.Now.
type Clock func() time.Time

func clockOrNow(c Clock) Clock {
	if c == nil {
		return time.Now
	}
	return c
}

func rollback(ctx context.Context, tx TxManager) {
	_ = tx.Rollback(ctx)
}
