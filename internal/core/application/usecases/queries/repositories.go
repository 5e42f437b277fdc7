// Package queries contains the read side of the service. Handlers built on
// repositories derive their answers through the domain services; handlers
// built on *gorm.DB read denormalised rows with plain SQL.
package queries

import (
	"context"
	"time"

	"boutique/internal/core/domain/model/client"
	"boutique/internal/core/domain/model/kernel"
	"boutique/internal/core/domain/model/workorder"
	"boutique/internal/core/ports"
	"boutique/internal/pkg/errs"
)

// Read-only repository views.
type (
	ClientReader interface {
		Get(ctx context.Context, id int64) (*client.Client, error)
		GetByMobile(ctx context.Context, mobile kernel.Mobile) (*client.Client, error)
		List(ctx context.Context, page ports.Page) ([]*client.Client, error)
		Count(ctx context.Context) (int64, error)
	}

	WorkOrderReader interface {
		Get(ctx context.Context, id int64) (*workorder.WorkOrder, error)
		List(ctx context.Context, page ports.Page) ([]*workorder.WorkOrder, error)
		GetAll(ctx context.Context) ([]*workorder.WorkOrder, error)
		GetAllByClient(ctx context.Context, clientID int64) ([]*workorder.WorkOrder, error)
		Count(ctx context.Context) (int64, error)
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

const (
	DefaultPageLimit = 100
	MaxPageLimit     = 1000
)

func newPage(offset, limit int) (ports.Page, error) {
	if offset < 0 {
		return ports.Page{}, errs.NewValueIsOutOfRangeError("offset", offset, 0, "+Inf")
	}
	if limit < 1 || limit > MaxPageLimit {
		return ports.Page{}, errs.NewValueIsOutOfRangeError("limit", limit, 1, MaxPageLimit)
	}
	return ports.Page{Offset: offset, Limit: limit}, nil
}
