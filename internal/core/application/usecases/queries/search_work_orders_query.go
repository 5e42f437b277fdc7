package queries

import (
	"context"
	"errors"
	"strings"

	"boutique/internal/core/domain/model/workorder"
	"boutique/internal/pkg/errs"
	"boutique/internal/pkg/guard"

	"gorm.io/gorm"
)

var ErrSearchWorkOrdersQueryIsNotConstructed = errors.New(
	"SearchWorkOrdersQuery must be created via NewSearchWorkOrdersQuery constructor",
)

const (
	DefaultSearchLimit = 20
	MaxSearchLimit     = 100
)

// SearchWorkOrdersQuery finds work orders whose client name, client mobile,
// description or notes contain the term, newest first.
type SearchWorkOrdersQuery struct {
	term   string
	status *workorder.Status
	limit  int

	guard guard.ConstructorGuard
}

// NewSearchWorkOrdersQuery requires a non-blank term. An empty status means
// any status; a zero limit means DefaultSearchLimit.
func NewSearchWorkOrdersQuery(term, status string, limit int) (SearchWorkOrdersQuery, error) {
	q := SearchWorkOrdersQuery{guard: guard.NewConstructorGuard()}

	var err error
	if q.term, err = searchTerm(term); err != nil {
		return SearchWorkOrdersQuery{}, err
	}
	if q.limit, err = searchLimit(limit); err != nil {
		return SearchWorkOrdersQuery{}, err
	}
	if status != "" {
		s, parseErr := workorder.ParseStatus(status)
		if parseErr != nil {
			return SearchWorkOrdersQuery{}, parseErr
		}
		q.status = &s
	}

	return q, nil
}

func (q SearchWorkOrdersQuery) Validate() error {
	return q.guard.Validate(ErrSearchWorkOrdersQueryIsNotConstructed)
}

func (q SearchWorkOrdersQuery) Term() string { return q.term }
func (q SearchWorkOrdersQuery) Status() *workorder.Status { return q.status }
func (q SearchWorkOrdersQuery) Limit() int { return q.limit }

func searchTerm(term string) (string, error) {
	term = strings.TrimSpace(term)
	if term == "" {
		return "", errs.NewValueIsRequiredError("query")
	}
	return term, nil
}

func searchLimit(limit int) (int, error) {
	if limit == 0 {
		return DefaultSearchLimit, nil
	}
	if limit < 1 || limit > MaxSearchLimit {
		return 0, errs.NewValueIsOutOfRangeError("limit", limit, 1, MaxSearchLimit)
	}
	return limit, nil
}

// WorkOrderWithClient is a work order together with its client's contact
// details.
type WorkOrderWithClient struct {
	WorkOrder    *workorder.WorkOrder
	ClientName   string
	ClientMobile string
}

type SearchWorkOrdersQueryHandler struct {
	db *gorm.DB
}

func NewSearchWorkOrdersQueryHandler(db *gorm.DB) SearchWorkOrdersQueryHandler {
	return SearchWorkOrdersQueryHandler{db: db}
}

func (h SearchWorkOrdersQueryHandler) Handle(ctx context.Context, query SearchWorkOrdersQuery) ([]WorkOrderWithClient, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	pattern := containsPattern(query.Term())
	var sb strings.Builder
	sb.WriteString(`
		SELECT ` + workOrderColumns + `, c.name, c.mobile_number
		FROM work_orders w
		JOIN clients c ON c.id = w.client_id
		WHERE (
			LOWER(c.name) LIKE ? ESCAPE '\'
			OR c.mobile_number LIKE ? ESCAPE '\'
			OR LOWER(w.description) LIKE ? ESCAPE '\'
			OR LOWER(w.notes) LIKE ? ESCAPE '\'
		)`)
	args := []any{pattern, pattern, pattern, pattern}
	if s := query.Status(); s != nil {
		sb.WriteString(` AND w.status = ?`)
		args = append(args, s.String())
	}
	sb.WriteString(` ORDER BY w.created_at DESC, w.id DESC LIMIT ?`)
	args = append(args, query.Limit())

	return queryWorkOrdersWithClient(ctx, h.db, sb.String(), args...)
}

func queryWorkOrdersWithClient(ctx context.Context, db *gorm.DB, query string, args ...any) ([]WorkOrderWithClient, error) {
	rows, err := db.WithContext(ctx).Raw(query, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	results := make([]WorkOrderWithClient, 0)
	for rows.Next() {
		var r WorkOrderWithClient
		if r.WorkOrder, err = scanWorkOrder(rows, &r.ClientName, &r.ClientMobile); err != nil {
			return nil, err
		}
		results = append(results, r)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}
	return results, nil
}
