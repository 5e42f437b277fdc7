package queries

import (
	"errors"

	"boutique/internal/core/domain/model/kernel"
	"boutique/internal/pkg/errs"
	"boutique/internal/pkg/guard"
)

var ErrGetClientQueryIsNotConstructed = errors.New(
	"GetClientQuery must be created via NewGetClientQuery or NewGetClientByMobileQuery constructor",
)

// GetClientQuery identifies one client by id or by mobile number. It is
// shared by the client, client summary and client work orders handlers.
type GetClientQuery struct {
	clientID int64
	mobile   *kernel.Mobile

	guard guard.ConstructorGuard
}

func NewGetClientQuery(clientID int64) (GetClientQuery, error) {
	if clientID <= 0 {
		return GetClientQuery{}, errs.NewValueIsOutOfRangeError("client id", clientID, 1, "+Inf")
	}
	return GetClientQuery{clientID: clientID, guard: guard.NewConstructorGuard()}, nil
}

func NewGetClientByMobileQuery(mobile string) (GetClientQuery, error) {
	m, err := kernel.NewMobile(mobile)
	if err != nil {
		return GetClientQuery{}, err
	}
	return GetClientQuery{mobile: &m, guard: guard.NewConstructorGuard()}, nil
}

func (q GetClientQuery) Validate() error {
	return q.guard.Validate(ErrGetClientQueryIsNotConstructed)
}

// ClientID is zero when the query is by mobile number.
func (q GetClientQuery) ClientID() int64 {
	return q.clientID
}

// Mobile is nil when the query is by id.
func (q GetClientQuery) Mobile() *kernel.Mobile {
	return q.mobile
}
