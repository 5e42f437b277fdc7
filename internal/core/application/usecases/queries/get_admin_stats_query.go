package queries

import (
	"context"
	"errors"

	"boutique/internal/core/domain/model/workorder"
	"boutique/internal/core/domain/services"
	"boutique/internal/pkg/guard"

	"gorm.io/gorm"
)

var ErrGetAdminStatsQueryIsNotConstructed = errors.New(
	"GetAdminStatsQuery must be created via NewGetAdminStatsQuery constructor",
)

type GetAdminStatsQuery struct {
	guard guard.ConstructorGuard
}

func NewGetAdminStatsQuery() GetAdminStatsQuery {
	return GetAdminStatsQuery{guard: guard.NewConstructorGuard()}
}

func (q GetAdminStatsQuery) Validate() error {
	return q.guard.Validate(ErrGetAdminStatsQueryIsNotConstructed)
}

// GetAdminStatsQueryResponse holds table sizes and the number of work orders
// per status. Every status is present, in workflow order.
type GetAdminStatsQueryResponse struct {
	TotalClients    int64
	TotalWorkOrders int64
	StatusBreakdown []services.StatusCount
}

type GetAdminStatsQueryHandler struct {
	db *gorm.DB
}

func NewGetAdminStatsQueryHandler(db *gorm.DB) GetAdminStatsQueryHandler {
	return GetAdminStatsQueryHandler{db: db}
}

func (h GetAdminStatsQueryHandler) Handle(ctx context.Context, query GetAdminStatsQuery) (GetAdminStatsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetAdminStatsQueryResponse{}, err
	}

	var resp GetAdminStatsQueryResponse
	db := h.db.WithContext(ctx)
	if err := db.Raw(`SELECT COUNT(*) FROM clients`).Scan(&resp.TotalClients).Error; err != nil {
		return GetAdminStatsQueryResponse{}, err
	}
	if err := db.Raw(`SELECT COUNT(*) FROM work_orders`).Scan(&resp.TotalWorkOrders).Error; err != nil {
		return GetAdminStatsQueryResponse{}, err
	}

	rows, err := db.Raw(`
		SELECT status, COUNT(*)
		FROM work_orders
		GROUP BY status
	`).Rows()
	if err != nil {
		return GetAdminStatsQueryResponse{}, err
	}
	defer rows.Close()

	counts := make(map[workorder.Status]int)
	for rows.Next() {
		var (
			status string
			count  int
		)
		if err = rows.Scan(&status, &count); err != nil {
			return GetAdminStatsQueryResponse{}, err
		}
		s, parseErr := workorder.ParseStatus(status)
		if parseErr != nil {
			return GetAdminStatsQueryResponse{}, parseErr
		}
		counts[s] = count
	}
	if err = rows.Err(); err != nil {
		return GetAdminStatsQueryResponse{}, err
	}

	for _, s := range workorder.AllStatuses() {
		resp.StatusBreakdown = append(resp.StatusBreakdown, services.StatusCount{Status: s, Count: counts[s]})
	}
	return resp, nil
}
