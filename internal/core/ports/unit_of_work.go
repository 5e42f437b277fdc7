package ports

import (
	"context"
)

// UnitOfWorkFactory creates a new UnitOfWork for each command.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork is a business transaction boundary. Domain events of the
// aggregates written through its repositories are published after Commit.
//
// Example:
//
//	uow := factory.Create()
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//	defer func() { _ = uow.Rollback(ctx) }()
//
//	// client and work order writes
//
//	return uow.Commit(ctx)
type UnitOfWork interface {
	Begin(ctx context.Context) error

	// Commit commits the transaction and then publishes collected events.
	Commit(ctx context.Context) error

	// Rollback discards the transaction. Calling it after Commit is a no-op
	// that returns an error, so it is safe to defer.
	Rollback(ctx context.Context) error

	ClientRepository() ClientRepository
	WorkOrderRepository() WorkOrderRepository
}
