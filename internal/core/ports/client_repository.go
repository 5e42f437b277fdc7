// Package ports defines the contracts between the application core and its
// adapters: repositories, the unit of work and event publishing.
package ports

import (
	"context"

	"boutique/internal/core/domain/model/client"
	"boutique/internal/core/domain/model/kernel"
)

// Page selects a slice of a listing ordered by id.
type Page struct {
	Offset int
	Limit  int
}

// ClientRepository defines the persistence contract for client aggregates.
type ClientRepository interface {
	// Add persists a new client and assigns its id. A duplicate mobile number
	// fails with errs.ObjectAlreadyExistsError.
	Add(ctx context.Context, aggregate *client.Client) error

	// Update persists changes to an existing client. Moving to a mobile number
	// owned by another client fails with errs.ObjectAlreadyExistsError.
	Update(ctx context.Context, aggregate *client.Client) error

	// Delete removes a client. It does not check for work orders.
	Delete(ctx context.Context, id int64) error

	// Get returns errs.ObjectNotFoundError when no client has the id.
	Get(ctx context.Context, id int64) (*client.Client, error)

	// GetByMobile returns errs.ObjectNotFoundError when the number is unknown.
	GetByMobile(ctx context.Context, mobile kernel.Mobile) (*client.Client, error)

	List(ctx context.Context, page Page) ([]*client.Client, error)
	Count(ctx context.Context) (int64, error)

	// DeleteAll removes every client and returns how many were removed.
	DeleteAll(ctx context.Context) (int64, error)
}
