package queries

import (
	"context"
	"errors"
	"fmt"

	"boutique/internal/core/domain/model/workorder"
	"boutique/internal/core/domain/services"
	"boutique/internal/pkg/errs"
	"boutique/internal/pkg/guard"
)

var ErrGetWorkOrderBucketQueryIsNotConstructed = errors.New(
	"GetWorkOrderBucketQuery must be created via NewGetWorkOrderBucketQuery constructor",
)

// Bucket is a predefined selection of work orders.
type Bucket int

const (
	BucketOverdue Bucket = iota + 1
	// BucketDueSoon holds active orders expected within the next 24 hours.
	BucketDueSoon
	BucketActive
)

func (b Bucket) String() string {
	switch b {
	case BucketOverdue:
		return "overdue"
	case BucketDueSoon:
		return "due-soon"
	case BucketActive:
		return "active"
	default:
		return fmt.Sprintf("Bucket(%d)", int(b))
	}
}

type GetWorkOrderBucketQuery struct {
	bucket Bucket

	guard guard.ConstructorGuard
}

func NewGetWorkOrderBucketQuery(bucket Bucket) (GetWorkOrderBucketQuery, error) {
	if bucket < BucketOverdue || bucket > BucketActive {
		return GetWorkOrderBucketQuery{}, errs.NewValueIsOutOfRangeError("bucket", int(bucket), int(BucketOverdue), int(BucketActive))
	}
	return GetWorkOrderBucketQuery{bucket: bucket, guard: guard.NewConstructorGuard()}, nil
}

func (q GetWorkOrderBucketQuery) Validate() error {
	return q.guard.Validate(ErrGetWorkOrderBucketQueryIsNotConstructed)
}

func (q GetWorkOrderBucketQuery) Bucket() Bucket {
	return q.bucket
}

// GetWorkOrderBucketQueryHandler returns the orders of a bucket ordered by id.
type GetWorkOrderBucketQueryHandler struct {
	orders WorkOrderReader
	clock  Clock
}

func NewGetWorkOrderBucketQueryHandler(orders WorkOrderReader, clock Clock) GetWorkOrderBucketQueryHandler {
	return GetWorkOrderBucketQueryHandler{orders: orders, clock: clockOrNow(clock)}
}

func (h GetWorkOrderBucketQueryHandler) Handle(ctx context.Context, query GetWorkOrderBucketQuery) ([]*workorder.WorkOrder, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders, err := h.orders.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	now := h.clock()
	switch query.Bucket() {
	case BucketOverdue:
		return services.Overdue(orders, now), nil
	case BucketDueSoon:
		return services.DueWithinDay(orders, now), nil
	default:
		return services.Active(orders), nil
	}
}
