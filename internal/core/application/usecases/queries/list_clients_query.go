package queries

import (
	"errors"

	"boutique/internal/core/ports"
	"boutique/internal/pkg/guard"
)

var ErrListClientsQueryIsNotConstructed = errors.New(
	"ListClientsQuery must be created via NewListClientsQuery constructor",
)

// ListClientsQuery pages through clients ordered by id.
type ListClientsQuery struct {
	page ports.Page

	guard guard.ConstructorGuard
}

// NewListClientsQuery accepts offset >= 0 and 1 <= limit <= MaxPageLimit.
func NewListClientsQuery(offset, limit int) (ListClientsQuery, error) {
	page, err := newPage(offset, limit)
	if err != nil {
		return ListClientsQuery{}, err
	}
	return ListClientsQuery{page: page, guard: guard.NewConstructorGuard()}, nil
}

func (q ListClientsQuery) Validate() error {
	return q.guard.Validate(ErrListClientsQueryIsNotConstructed)
}

func (q ListClientsQuery) Page() ports.Page {
	return q.page
}
