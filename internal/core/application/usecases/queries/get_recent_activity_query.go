package queries

import (
	"context"
	"errors"
	"time"

	"boutique/internal/core/domain/model/client"
	"boutique/internal/pkg/errs"
	"boutique/internal/pkg/guard"

	"gorm.io/gorm"
)

var (
	ErrGetRecentActivityQueryIsNotConstructed = errors.New(
		"GetRecentActivityQuery must be created via NewGetRecentActivityQuery constructor",
	)
	ErrGetRecentWorkOrdersQueryIsNotConstructed = errors.New(
		"GetRecentWorkOrdersQuery must be created via NewGetRecentWorkOrdersQuery constructor",
	)
)

const (
	RecentActivityWorkOrders = 10
	RecentActivityClients    = 5

	DefaultRecentDays  = 7
	DefaultRecentLimit = 50
	MaxRecentDays      = 365
)

type GetRecentActivityQuery struct {
	guard guard.ConstructorGuard
}

func NewGetRecentActivityQuery() GetRecentActivityQuery {
	return GetRecentActivityQuery{guard: guard.NewConstructorGuard()}
}

func (q GetRecentActivityQuery) Validate() error {
	return q.guard.Validate(ErrGetRecentActivityQueryIsNotConstructed)
}

type GetRecentActivityQueryResponse struct {
	WorkOrders []WorkOrderWithClient
	Clients    []*client.Client
}

// GetRecentActivityQueryHandler returns the newest work orders and clients
// by creation time.
type GetRecentActivityQueryHandler struct {
	db *gorm.DB
}

func NewGetRecentActivityQueryHandler(db *gorm.DB) GetRecentActivityQueryHandler {
	return GetRecentActivityQueryHandler{db: db}
}

func (h GetRecentActivityQueryHandler) Handle(
	ctx context.Context,
	query GetRecentActivityQuery,
) (GetRecentActivityQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetRecentActivityQueryResponse{}, err
	}

	orders, err := queryWorkOrdersWithClient(ctx, h.db, `
		SELECT `+workOrderColumns+`, c.name, c.mobile_number
		FROM work_orders w
		JOIN clients c ON c.id = w.client_id
		ORDER BY w.created_at DESC, w.id DESC
		LIMIT ?
	`, RecentActivityWorkOrders)
	if err != nil {
		return GetRecentActivityQueryResponse{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT `+clientColumns+`
		FROM clients c
		ORDER BY c.created_at DESC, c.id DESC
		LIMIT ?
	`, RecentActivityClients).Rows()
	if err != nil {
		return GetRecentActivityQueryResponse{}, err
	}
	defer rows.Close()

	clients := make([]*client.Client, 0, RecentActivityClients)
	for rows.Next() {
		c, scanErr := scanClient(rows)
		if scanErr != nil {
			return GetRecentActivityQueryResponse{}, scanErr
		}
		clients = append(clients, c)
	}
	if err = rows.Err(); err != nil {
		return GetRecentActivityQueryResponse{}, err
	}

	return GetRecentActivityQueryResponse{WorkOrders: orders, Clients: clients}, nil
}

// GetRecentWorkOrdersQuery lists work orders created within the last days.
type GetRecentWorkOrdersQuery struct {
	days  int
	limit int

	guard guard.ConstructorGuard
}

// NewGetRecentWorkOrdersQuery treats zero days and zero limit as
// DefaultRecentDays and DefaultRecentLimit.
func NewGetRecentWorkOrdersQuery(days, limit int) (GetRecentWorkOrdersQuery, error) {
	if days == 0 {
		days = DefaultRecentDays
	}
	if limit == 0 {
		limit = DefaultRecentLimit
	}
	if days < 1 || days > MaxRecentDays {
		return GetRecentWorkOrdersQuery{}, errs.NewValueIsOutOfRangeError("days", days, 1, MaxRecentDays)
	}
	if limit < 1 || limit > MaxPageLimit {
		return GetRecentWorkOrdersQuery{}, errs.NewValueIsOutOfRangeError("limit", limit, 1, MaxPageLimit)
	}

	return GetRecentWorkOrdersQuery{days: days, limit: limit, guard: guard.NewConstructorGuard()}, nil
}

func (q GetRecentWorkOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetRecentWorkOrdersQueryIsNotConstructed)
}

func (q GetRecentWorkOrdersQuery) Days() int { return q.days }
func (q GetRecentWorkOrdersQuery) Limit() int { return q.limit }

type GetRecentWorkOrdersQueryHandler struct {
	db    *gorm.DB
	clock Clock
}

func NewGetRecentWorkOrdersQueryHandler(db *gorm.DB, clock Clock) GetRecentWorkOrdersQueryHandler {
	return GetRecentWorkOrdersQueryHandler{db: db, clock: clockOrNow(clock)}
}

func (h GetRecentWorkOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetRecentWorkOrdersQuery,
) ([]WorkOrderWithClient, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	since := h.clock().UTC().Add(-time.Duration(query.Days()) * 24 * time.Hour)
	return queryWorkOrdersWithClient(ctx, h.db, `
		SELECT `+workOrderColumns+`, c.name, c.mobile_number
		FROM work_orders w
		JOIN clients c ON c.id = w.client_id
		WHERE w.created_at >= ?
		ORDER BY w.created_at DESC, w.id DESC
		LIMIT ?
	`, since, query.Limit())
}
