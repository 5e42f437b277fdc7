package services

import (
	"cmp"
	"fmt"
	"slices"
	"strings"

	"boutique/internal/core/domain/model/workorder"
	"boutique/internal/pkg/errs"
)

// SortDirection orders work orders by expected delivery date.
type SortDirection int

const (
	Ascending SortDirection = iota
	Descending
)

// ParseSortDirection accepts "asc", "desc" or an empty string (ascending),
// case-insensitively.
func ParseSortDirection(s string) (SortDirection, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "asc":
		return Ascending, nil
	case "desc":
		return Descending, nil
	default:
		return Ascending, errs.NewValueIsInvalidErrorWithCause(
			"sort order", fmt.Errorf("%q is neither asc nor desc", s))
	}
}

func (d SortDirection) String() string {
	if d == Descending {
		return "desc"
	}
	return "asc"
}

// PriorityList returns a new slice of orders sorted by expected delivery date
// in the given direction. Orders with the same date are always ordered by id
// ascending.
func PriorityList(orders []*workorder.WorkOrder, dir SortDirection) []*workorder.WorkOrder {
	sorted := slices.Clone(orders)
	slices.SortStableFunc(sorted, func(a, b *workorder.WorkOrder) int {
		c := a.ExpectedDeliveryDate().Compare(b.ExpectedDeliveryDate())
		if dir == Descending {
			c = -c
		}
		if c != 0 {
			return c
		}
		return cmp.Compare(a.ID(), b.ID())
	})
	return sorted
}

func byID(orders []*workorder.WorkOrder) []*workorder.WorkOrder {
	slices.SortStableFunc(orders, func(a, b *workorder.WorkOrder) int {
		return cmp.Compare(a.ID(), b.ID())
	})
	return orders
}
