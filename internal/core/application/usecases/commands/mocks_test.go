package commands_test

import (
	"context"
	"time"

	"boutique/internal/core/application/usecases/commands"
	"boutique/internal/core/domain/model/client"
	"boutique/internal/core/domain/model/kernel"
	"boutique/internal/core/domain/model/workorder"
	"boutique/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

var fixedNow = time.Date(2024, 3, 1, 9, 30, 0, 0, time.UTC)

func clock() time.Time { return fixedNow }

type MockClientRepository struct{ mock.Mock }

func (m *MockClientRepository) Add(ctx context.Context, c *client.Client) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}
func (m *MockClientRepository) Update(ctx context.Context, c *client.Client) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}
func (m *MockClientRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
func (m *MockClientRepository) Get(ctx context.Context, id int64) (*client.Client, error) {
	args := m.Called(ctx, id)
	c, _ := args.Get(0).(*client.Client)
	return c, args.Error(1)
}
func (m *MockClientRepository) GetByMobile(ctx context.Context, mobile kernel.Mobile) (*client.Client, error) {
	args := m.Called(ctx, mobile)
	c, _ := args.Get(0).(*client.Client)
	return c, args.Error(1)
}
func (m *MockClientRepository) List(ctx context.Context, page ports.Page) ([]*client.Client, error) {
	args := m.Called(ctx, page)
	c, _ := args.Get(0).([]*client.Client)
	return c, args.Error(1)
}
func (m *MockClientRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}
func (m *MockClientRepository) DeleteAll(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

type MockWorkOrderRepository struct{ mock.Mock }

func (m *MockWorkOrderRepository) Add(ctx context.Context, w *workorder.WorkOrder) error {
	args := m.Called(ctx, w)
	return args.Error(0)
}
func (m *MockWorkOrderRepository) Update(ctx context.Context, w *workorder.WorkOrder) error {
	args := m.Called(ctx, w)
	return args.Error(0)
}
func (m *MockWorkOrderRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
func (m *MockWorkOrderRepository) Get(ctx context.Context, id int64) (*workorder.WorkOrder, error) {
	args := m.Called(ctx, id)
	w, _ := args.Get(0).(*workorder.WorkOrder)
	return w, args.Error(1)
}
func (m *MockWorkOrderRepository) List(ctx context.Context, page ports.Page) ([]*workorder.WorkOrder, error) {
	args := m.Called(ctx, page)
	w, _ := args.Get(0).([]*workorder.WorkOrder)
	return w, args.Error(1)
}
func (m *MockWorkOrderRepository) GetAll(ctx context.Context) ([]*workorder.WorkOrder, error) {
	args := m.Called(ctx)
	w, _ := args.Get(0).([]*workorder.WorkOrder)
	return w, args.Error(1)
}
func (m *MockWorkOrderRepository) GetAllByClient(ctx context.Context, clientID int64) ([]*workorder.WorkOrder, error) {
	args := m.Called(ctx, clientID)
	w, _ := args.Get(0).([]*workorder.WorkOrder)
	return w, args.Error(1)
}
func (m *MockWorkOrderRepository) CountByClient(ctx context.Context, clientID int64) (int64, error) {
	args := m.Called(ctx, clientID)
	return args.Get(0).(int64), args.Error(1)
}
func (m *MockWorkOrderRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}
func (m *MockWorkOrderRepository) DeleteAll(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

// MockUoW satisfies every unit of work view used by the handlers.
type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockUoW) ClientRepository() ports.ClientRepository {
	args := m.Called()
	return args.Get(0).(ports.ClientRepository)
}
func (m *MockUoW) WorkOrderRepository() ports.WorkOrderRepository {
	args := m.Called()
	return args.Get(0).(ports.WorkOrderRepository)
}

type MockUoWFactory struct{ mock.Mock }

func (m *MockUoWFactory) Create() commands.UoW {
	args := m.Called()
	return args.Get(0).(commands.UoW)
}

type MockClientUoWFactory struct{ mock.Mock }

func (m *MockClientUoWFactory) Create() commands.ClientUoW {
	args := m.Called()
	return args.Get(0).(commands.ClientUoW)
}

type MockWorkOrderUoWFactory struct{ mock.Mock }

func (m *MockWorkOrderUoWFactory) Create() commands.WorkOrderUoW {
	args := m.Called()
	return args.Get(0).(commands.WorkOrderUoW)
}

// assignClientID and assignWorkOrderID mimic storage assigning ids on Add.
func assignClientID(id int64) func(mock.Arguments) {
	return func(args mock.Arguments) {
		_ = args.Get(1).(*client.Client).AssignID(id)
	}
}

func assignWorkOrderID(id int64) func(mock.Arguments) {
	return func(args mock.Arguments) {
		_ = args.Get(1).(*workorder.WorkOrder).AssignID(id)
	}
}

func existingClient(id int64, mobile string) *client.Client {
	m, err := kernel.NewMobile(mobile)
	if err != nil {
		panic(err)
	}
	c, err := client.RestoreClient(id, "Existing Client", m, kernel.Email{}, "", fixedNow, fixedNow)
	if err != nil {
		panic(err)
	}
	return c
}

func existingWorkOrder(id int64, status workorder.Status, advance, estimate, actual float64) *workorder.WorkOrder {
	var delivered *time.Time
	if status.IsDelivered() {
		d := fixedNow.Add(-time.Hour)
		delivered = &d
	}
	w, err := workorder.RestoreWorkOrder(workorder.Snapshot{
		ID:                   id,
		ClientID:             1,
		OrderDate:            fixedNow.AddDate(0, 0, -7),
		ExpectedDeliveryDate: fixedNow.AddDate(0, 0, 2),
		ActualDeliveryDate:   delivered,
		Status:               status,
		Billing: workorder.Billing{
			AdvancePaid:   kernel.MustMoney(advance),
			TotalEstimate: kernel.MustMoney(estimate),
			ActualAmount:  kernel.MustMoney(actual),
		},
		CreatedAt: fixedNow.AddDate(0, 0, -7),
		UpdatedAt: fixedNow.AddDate(0, 0, -7),
	})
	if err != nil {
		panic(err)
	}
	return w
}
