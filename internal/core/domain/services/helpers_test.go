package services_test

import (
	"testing"
	"time"

	"boutique/internal/core/domain/model/kernel"
	"boutique/internal/core/domain/model/workorder"

	"github.com/stretchr/testify/require"
)

var now = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

type orderSpec struct {
	id       int64
	clientID int64
	expected time.Time
	status   workorder.Status
	advance  float64
	estimate float64
	actual   float64
}

func build(t *testing.T, specs ...orderSpec) []*workorder.WorkOrder {
	t.Helper()
	orders := make([]*workorder.WorkOrder, 0, len(specs))
	for _, s := range specs {
		clientID := s.clientID
		if clientID == 0 {
			clientID = 1
		}
		status := s.status
		if status == workorder.Unknown {
			status = workorder.Placed
		}
		w, err := workorder.NewWorkOrder(clientID, s.expected, "", "", status, workorder.Billing{
			AdvancePaid:   kernel.MustMoney(s.advance),
			TotalEstimate: kernel.MustMoney(s.estimate),
			ActualAmount:  kernel.MustMoney(s.actual),
		}, now.AddDate(0, -3, 0))
		require.NoError(t, err)
		require.NoError(t, w.AssignID(s.id))
		orders = append(orders, w)
	}
	return orders
}

func ids(orders []*workorder.WorkOrder) []int64 {
	out := make([]int64, 0, len(orders))
	for _, w := range orders {
		out = append(out, w.ID())
	}
	return out
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
