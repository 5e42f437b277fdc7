package queries

import (
	"database/sql"
	"errors"
	"strings"

	"boutique/internal/core/domain/model/client"
	"boutique/internal/core/domain/model/kernel"
	"boutique/internal/core/domain/model/workorder"

	"github.com/shopspring/decimal"
)

const workOrderColumns = `
	w.id, w.client_id, w.order_date, w.expected_delivery_date, w.actual_delivery_date,
	w.description, w.notes, w.status,
	w.advance_paid, w.total_estimate, w.actual_amount, w.due_cleared,
	w.created_at, w.updated_at`

const clientColumns = `
	c.id, c.name, c.mobile_number, c.email, c.address, c.created_at, c.updated_at`

// scanWorkOrder reads workOrderColumns followed by extra destinations.
func scanWorkOrder(rows *sql.Rows, extra ...any) (*workorder.WorkOrder, error) {
	var (
		s                         workorder.Snapshot
		actualDelivery            sql.NullTime
		status                    string
		advance, estimate, actual decimal.Decimal
	)

	dest := append([]any{
		&s.ID, &s.ClientID, &s.OrderDate, &s.ExpectedDeliveryDate, &actualDelivery,
		&s.Description, &s.Notes, &status,
		&advance, &estimate, &actual, &s.DueCleared,
		&s.CreatedAt, &s.UpdatedAt,
	}, extra...)
	if err := rows.Scan(dest...); err != nil {
		return nil, err
	}

	var err error
	if s.Status, err = workorder.ParseStatus(status); err != nil {
		return nil, err
	}
	if actualDelivery.Valid {
		s.ActualDeliveryDate = &actualDelivery.Time
	}

	var errA, errE, errX error
	s.Billing.AdvancePaid, errA = kernel.NewMoneyFromDecimal("advance paid", advance)
	s.Billing.TotalEstimate, errE = kernel.NewMoneyFromDecimal("total estimate", estimate)
	s.Billing.ActualAmount, errX = kernel.NewMoneyFromDecimal("actual amount", actual)
	if err = errors.Join(errA, errE, errX); err != nil {
		return nil, err
	}

	return workorder.RestoreWorkOrder(s)
}

// scanClient reads clientColumns followed by extra destinations.
func scanClient(rows *sql.Rows, extra ...any) (*client.Client, error) {
	var (
		id                   int64
		name, mobileNumber   string
		email, address       sql.NullString
		createdAt, updatedAt sql.NullTime
	)

	dest := append([]any{&id, &name, &mobileNumber, &email, &address, &createdAt, &updatedAt}, extra...)
	if err := rows.Scan(dest...); err != nil {
		return nil, err
	}

	mobile, err := kernel.NewMobile(mobileNumber)
	if err != nil {
		return nil, err
	}
	var e kernel.Email
	if email.Valid {
		if e, err = kernel.NewEmail(email.String); err != nil {
			return nil, err
		}
	}

	return client.RestoreClient(id, name, mobile, e, address.String, createdAt.Time, updatedAt.Time)
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// containsPattern returns a case-insensitive LIKE pattern matching term
// anywhere. Use it with ESCAPE '\' and LOWER(column).
func containsPattern(term string) string {
	return "%" + likeEscaper.Replace(strings.ToLower(term)) + "%"
}
