package queries

import (
	"context"
	"errors"

	"boutique/internal/core/domain/model/workorder"
	"boutique/internal/pkg/guard"
)

var ErrGetStatusInfoQueryIsNotConstructed = errors.New(
	"GetStatusInfoQuery must be created via NewGetStatusInfoQuery constructor",
)

// StatusInfo describes one status of the work order lifecycle.
type StatusInfo struct {
	Status      workorder.Status
	Stage       int
	Description string
	IsFinal     bool
	IsActive    bool
	Next        []workorder.Status
}

func describeStatus(s workorder.Status) StatusInfo {
	return StatusInfo{
		Status:      s,
		Stage:       s.Stage(),
		Description: s.Description(),
		IsFinal:     s.IsFinal(),
		IsActive:    !s.IsDelivered(),
		Next:        s.NextStatuses(),
	}
}

// StatusCatalogue returns every status in workflow order.
func StatusCatalogue() []StatusInfo {
	all := workorder.AllStatuses()
	out := make([]StatusInfo, 0, len(all))
	for _, s := range all {
		out = append(out, describeStatus(s))
	}
	return out
}

type GetStatusInfoQuery struct {
	status workorder.Status

	guard guard.ConstructorGuard
}

// NewGetStatusInfoQuery fails with errs.StatusIsInvalidError for an unknown
// status name.
func NewGetStatusInfoQuery(status string) (GetStatusInfoQuery, error) {
	s, err := workorder.ParseStatus(status)
	if err != nil {
		return GetStatusInfoQuery{}, err
	}
	return GetStatusInfoQuery{status: s, guard: guard.NewConstructorGuard()}, nil
}

func (q GetStatusInfoQuery) Validate() error {
	return q.guard.Validate(ErrGetStatusInfoQueryIsNotConstructed)
}

func (q GetStatusInfoQuery) Status() workorder.Status {
	return q.status
}

type GetStatusInfoQueryHandler struct{}

func NewGetStatusInfoQueryHandler() GetStatusInfoQueryHandler {
	return GetStatusInfoQueryHandler{}
}

func (h GetStatusInfoQueryHandler) Handle(_ context.Context, query GetStatusInfoQuery) (StatusInfo, error) {
	if err := query.Validate(); err != nil {
		return StatusInfo{}, err
	}
	return describeStatus(query.Status()), nil
}
