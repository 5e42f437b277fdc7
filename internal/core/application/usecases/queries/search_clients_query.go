package queries

import (
	"context"
	"errors"

	"boutique/internal/core/domain/model/client"
	"boutique/internal/core/domain/model/workorder"
	"boutique/internal/pkg/guard"

	"gorm.io/gorm"
)

var ErrSearchClientsQueryIsNotConstructed = errors.New(
	"SearchClientsQuery must be created via NewSearchClientsQuery constructor",
)

// SearchClientsQuery finds clients whose name, mobile, email or address
// contain the term.
type SearchClientsQuery struct {
	term  string
	limit int

	guard guard.ConstructorGuard
}

func NewSearchClientsQuery(term string, limit int) (SearchClientsQuery, error) {
	q := SearchClientsQuery{guard: guard.NewConstructorGuard()}

	var err error
	if q.term, err = searchTerm(term); err != nil {
		return SearchClientsQuery{}, err
	}
	if q.limit, err = searchLimit(limit); err != nil {
		return SearchClientsQuery{}, err
	}

	return q, nil
}

func (q SearchClientsQuery) Validate() error {
	return q.guard.Validate(ErrSearchClientsQueryIsNotConstructed)
}

func (q SearchClientsQuery) Term() string { return q.term }
func (q SearchClientsQuery) Limit() int { return q.limit }

// ClientWithOrderCounts is a client with the number of its orders and how
// many of them are not delivered yet.
type ClientWithOrderCounts struct {
	Client       *client.Client
	TotalOrders  int64
	ActiveOrders int64
}

type SearchClientsQueryHandler struct {
	db *gorm.DB
}

func NewSearchClientsQueryHandler(db *gorm.DB) SearchClientsQueryHandler {
	return SearchClientsQueryHandler{db: db}
}

func (h SearchClientsQueryHandler) Handle(ctx context.Context, query SearchClientsQuery) ([]ClientWithOrderCounts, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	pattern := containsPattern(query.Term())
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT `+clientColumns+`,
			COUNT(w.id),
			COALESCE(SUM(CASE WHEN w.id IS NOT NULL AND w.status NOT IN (?, ?) THEN 1 ELSE 0 END), 0)
		FROM clients c
		LEFT JOIN work_orders w ON w.client_id = c.id
		WHERE LOWER(c.name) LIKE ? ESCAPE '\'
			OR c.mobile_number LIKE ? ESCAPE '\'
			OR LOWER(COALESCE(c.email, '')) LIKE ? ESCAPE '\'
			OR LOWER(COALESCE(c.address, '')) LIKE ? ESCAPE '\'
		GROUP BY c.id, c.name, c.mobile_number, c.email, c.address, c.created_at, c.updated_at
		ORDER BY c.id
		LIMIT ?
	`,
		workorder.DeliveredPaid.String(), workorder.DeliveredPaymentPending.String(),
		pattern, pattern, pattern, pattern,
		query.Limit(),
	).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	results := make([]ClientWithOrderCounts, 0)
	for rows.Next() {
		var r ClientWithOrderCounts
		if r.Client, err = scanClient(rows, &r.TotalOrders, &r.ActiveOrders); err != nil {
			return nil, err
		}
		results = append(results, r)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}
	return results, nil
}
