package commands_test

import (
	"errors"
	"testing"

	"boutique/internal/core/application/usecases/commands"
	"boutique/internal/core/domain/model/kernel"
	"boutique/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestNewCreateClientCommand(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		cmd, err := commands.NewCreateClientCommand("Priya", "9876543210", "priya@example.com", "Pune")

		require.NoError(t, err)
		require.NoError(t, cmd.Validate())
		assert.Equal(t, "9876543210", cmd.Mobile().String())
		assert.Equal(t, "priya@example.com", cmd.Email().String())
	})

	t.Run("invalid mobile and email", func(t *testing.T) {
		_, err := commands.NewCreateClientCommand("Priya", "98765", "not-an-email", "")

		require.Error(t, err)
		assert.True(t, errs.IsValidation(err))
		assert.Contains(t, err.Error(), "mobile number")
		assert.Contains(t, err.Error(), "email")
	})

	t.Run("zero value", func(t *testing.T) {
		assert.ErrorIs(t, commands.CreateClientCommand{}.Validate(), commands.ErrCreateClientCommandIsNotConstructed)
	})
}

func TestCreateClientCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewCreateClientCommand("Priya", "9876543210", "", "")

	repo := new(MockClientRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ClientRepository").Return(repo).Once(),
		repo.On("GetByMobile", ctx, cmd.Mobile()).Return(nil, errs.NewObjectNotFoundError("client", "9876543210")).Once(),
		repo.On("Add", ctx, mock.AnythingOfType("*client.Client")).Run(assignClientID(5)).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)
	factory := new(MockClientUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateClientCommandHandler(factory, clock)
	c, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.EqualValues(t, 5, c.ID())
	assert.Equal(t, "Priya", c.Name())
	assert.Equal(t, fixedNow, c.CreatedAt())
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestCreateClientCommandHandler_Handle_DuplicateMobile(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewCreateClientCommand("Priya", "9876543210", "", "")

	repo := new(MockClientRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ClientRepository").Return(repo).Once(),
		repo.On("GetByMobile", ctx, cmd.Mobile()).Return(existingClient(2, "9876543210"), nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)
	factory := new(MockClientUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateClientCommandHandler(factory, clock)
	c, err := h.Handle(ctx, cmd)

	require.Error(t, err)
	assert.Nil(t, c)
	assert.True(t, errs.IsConflict(err))
	assert.ErrorIs(t, err, errs.ErrObjectAlreadyExists)
	repo.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
	uow.AssertExpectations(t)
}

func TestCreateClientCommandHandler_Handle_AddError(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewCreateClientCommand("Priya", "9876543210", "", "")

	repo := new(MockClientRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ClientRepository").Return(repo).Once(),
		repo.On("GetByMobile", ctx, cmd.Mobile()).Return(nil, errs.NewObjectNotFoundError("client", "9876543210")).Once(),
		repo.On("Add", ctx, mock.Anything).Return(errors.New("disk full")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)
	factory := new(MockClientUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateClientCommandHandler(factory, clock)
	_, err := h.Handle(ctx, cmd)

	require.EqualError(t, err, "disk full")
	uow.AssertExpectations(t)
}

func TestCreateClientCommandHandler_Handle_InvalidName(t *testing.T) {
	cmd, _ := commands.NewCreateClientCommand("   ", "9876543210", "", "")
	factory := new(MockClientUoWFactory)

	h := commands.NewCreateClientCommandHandler(factory, clock)
	_, err := h.Handle(t.Context(), cmd)

	require.ErrorIs(t, err, errs.ErrValueIsRequired)
	factory.AssertNotCalled(t, "Create")
}

func TestCreateClientCommandHandler_Handle_BeginError(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewCreateClientCommand("Priya", "9876543210", "", "")

	uow := new(MockUoW)
	factory := new(MockClientUoWFactory)
	mock.InOrder(
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(errors.New("begin error")).Once(),
	)

	h := commands.NewCreateClientCommandHandler(factory, clock)
	_, err := h.Handle(ctx, cmd)

	require.Error(t, err)
}

func TestUpdateClientCommandHandler_Handle(t *testing.T) {
	name := "Priya Sharma"
	newMobile := "9000000001"

	t.Run("updates name and mobile", func(t *testing.T) {
		ctx := t.Context()
		cmd, err := commands.NewUpdateClientCommand(2, &name, &newMobile, nil, nil)
		require.NoError(t, err)
		existing := existingClient(2, "9876543210")

		repo := new(MockClientRepository)
		uow := new(MockUoW)
		mock.InOrder(
			uow.On("Begin", ctx).Return(nil).Once(),
			uow.On("ClientRepository").Return(repo).Once(),
			repo.On("Get", ctx, int64(2)).Return(existing, nil).Once(),
			repo.On("GetByMobile", ctx, *cmd.Changes().Mobile).Return(nil, errs.NewObjectNotFoundError("client", newMobile)).Once(),
			repo.On("Update", ctx, existing).Return(nil).Once(),
			uow.On("Commit", ctx).Return(nil).Once(),
			uow.On("Rollback", ctx).Return(nil).Once(),
		)
		factory := new(MockClientUoWFactory)
		factory.On("Create").Return(uow).Once()

		h := commands.NewUpdateClientCommandHandler(factory, clock)
		c, err := h.Handle(ctx, cmd)

		require.NoError(t, err)
		assert.Equal(t, "Priya Sharma", c.Name())
		assert.Equal(t, newMobile, c.Mobile().String())
		repo.AssertExpectations(t)
		uow.AssertExpectations(t)
	})

	t.Run("mobile taken by another client", func(t *testing.T) {
		ctx := t.Context()
		cmd, _ := commands.NewUpdateClientCommand(2, nil, &newMobile, nil, nil)

		repo := new(MockClientRepository)
		uow := new(MockUoW)
		uow.On("Begin", ctx).Return(nil).Once()
		uow.On("ClientRepository").Return(repo).Once()
		repo.On("Get", ctx, int64(2)).Return(existingClient(2, "9876543210"), nil).Once()
		repo.On("GetByMobile", ctx, mock.Anything).Return(existingClient(3, newMobile), nil).Once()
		uow.On("Rollback", ctx).Return(nil).Once()
		factory := new(MockClientUoWFactory)
		factory.On("Create").Return(uow).Once()

		h := commands.NewUpdateClientCommandHandler(factory, clock)
		_, err := h.Handle(ctx, cmd)

		assert.True(t, errs.IsConflict(err))
		repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})

	t.Run("unknown client", func(t *testing.T) {
		ctx := t.Context()
		cmd, _ := commands.NewUpdateClientCommand(99, &name, nil, nil, nil)

		repo := new(MockClientRepository)
		uow := new(MockUoW)
		uow.On("Begin", ctx).Return(nil).Once()
		uow.On("ClientRepository").Return(repo).Once()
		repo.On("Get", ctx, int64(99)).Return(nil, errs.NewObjectNotFoundError("client", 99)).Once()
		uow.On("Rollback", ctx).Return(nil).Once()
		factory := new(MockClientUoWFactory)
		factory.On("Create").Return(uow).Once()

		h := commands.NewUpdateClientCommandHandler(factory, clock)
		_, err := h.Handle(ctx, cmd)

		assert.True(t, errs.IsNotFound(err))
	})

	t.Run("invalid input", func(t *testing.T) {
		bad := "12"
		_, err := commands.NewUpdateClientCommand(0, nil, &bad, nil, nil)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestDeleteClientCommandHandler_Handle(t *testing.T) {
	setup := func(ctx any, orders int64) (*MockClientRepository, *MockWorkOrderRepository, *MockUoW, *MockUoWFactory) {
		clients := new(MockClientRepository)
		workOrders := new(MockWorkOrderRepository)
		uow := new(MockUoW)
		uow.On("Begin", ctx).Return(nil).Once()
		uow.On("ClientRepository").Return(clients).Once()
		uow.On("WorkOrderRepository").Return(workOrders).Once()
		uow.On("Rollback", ctx).Return(nil).Once()
		clients.On("Get", ctx, int64(4)).Return(existingClient(4, "9123456789"), nil).Once()
		workOrders.On("CountByClient", ctx, int64(4)).Return(orders, nil).Once()
		factory := new(MockUoWFactory)
		factory.On("Create").Return(uow).Once()
		return clients, workOrders, uow, factory
	}

	t.Run("client without orders is removed", func(t *testing.T) {
		ctx := t.Context()
		clients, _, uow, factory := setup(ctx, 0)
		clients.On("Delete", ctx, int64(4)).Return(nil).Once()
		uow.On("Commit", ctx).Return(nil).Once()
		cmd, _ := commands.NewDeleteClientCommand(4)

		h := commands.NewDeleteClientCommandHandler(factory)
		err := h.Handle(ctx, cmd)

		require.NoError(t, err)
		clients.AssertExpectations(t)
		uow.AssertExpectations(t)
	})

	t.Run("client with orders is kept", func(t *testing.T) {
		ctx := t.Context()
		clients, _, uow, factory := setup(ctx, 2)
		cmd, _ := commands.NewDeleteClientCommand(4)

		h := commands.NewDeleteClientCommandHandler(factory)
		err := h.Handle(ctx, cmd)

		require.Error(t, err)
		assert.True(t, errs.IsConflict(err))
		assert.Contains(t, err.Error(), "referenced by 2 record(s)")
		clients.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
		uow.AssertNotCalled(t, "Commit", mock.Anything)
	})

	t.Run("invalid id", func(t *testing.T) {
		_, err := commands.NewDeleteClientCommand(0)
		assert.True(t, errs.IsValidation(err))
	})
}

func TestUpdateClientCommand_EmptyEmailClears(t *testing.T) {
	empty := ""
	cmd, err := commands.NewUpdateClientCommand(1, nil, nil, &empty, nil)

	require.NoError(t, err)
	require.NotNil(t, cmd.Changes().Email)
	assert.Equal(t, kernel.Email{}, *cmd.Changes().Email)
}
