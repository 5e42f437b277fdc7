package ports

import (
	"context"

	"boutique/internal/core/domain/model/workorder"
)

// WorkOrderRepository defines the persistence contract for work order
// aggregates. Listings are ordered by id unless stated otherwise.
type WorkOrderRepository interface {
	// Add persists a new work order and assigns its id.
	Add(ctx context.Context, aggregate *workorder.WorkOrder) error

	// Update persists changes to an existing work order.
	Update(ctx context.Context, aggregate *workorder.WorkOrder) error

	Delete(ctx context.Context, id int64) error

	// Get returns errs.ObjectNotFoundError when no work order has the id.
	Get(ctx context.Context, id int64) (*workorder.WorkOrder, error)

	List(ctx context.Context, page Page) ([]*workorder.WorkOrder, error)
	GetAll(ctx context.Context) ([]*workorder.WorkOrder, error)
	GetAllByClient(ctx context.Context, clientID int64) ([]*workorder.WorkOrder, error)
	CountByClient(ctx context.Context, clientID int64) (int64, error)
	Count(ctx context.Context) (int64, error)

	// DeleteAll removes every work order and returns how many were removed.
	DeleteAll(ctx context.Context) (int64, error)
}
