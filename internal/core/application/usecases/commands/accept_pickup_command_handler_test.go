package commands_test

import (
	"testing"

	"couriernet/internal/core/application/usecases/commands"
	"couriernet/internal/core/domain/model/kernel"
	"couriernet/internal/core/domain/model/shipment"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func testAssignedOrder(t *testing.T) *shipment.Order {
	t.Helper()

	aggregate := testBookedOrder(t)
	require.NoError(t, aggregate.AssignDriver(kernel.NewUUID(), "4821", "7733"))
	return aggregate
}

func TestAcceptPickupCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	aggregate := testAssignedOrder(t)
	cmd, err := commands.NewAcceptPickupCommand(aggregate.OrderCode(), "4821")
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	factory := new(MockOrderUoWFactory)

	factory.On("Create").Return(uow).Once()
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("GetByOrderCode", ctx, aggregate.OrderCode()).Return(aggregate, nil).Once(),
		orderRepo.On("Update", ctx, aggregate).Return(nil).Once(),
		orderRepo.On("AppendHistory", ctx, mock.AnythingOfType("*shipment.StatusChange")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	h := commands.NewAcceptPickupCommandHandler(factory)
	status, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, shipment.StatusPrzyjetaOdKlienta, status)
	orderRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestAcceptPickupCommandHandler_Handle_WrongCode(t *testing.T) {
	ctx := t.Context()
	aggregate := testAssignedOrder(t)
	cmd, err := commands.NewAcceptPickupCommand(aggregate.OrderCode(), "0000")
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	factory := new(MockOrderUoWFactory)

	factory.On("Create").Return(uow).Once()
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(orderRepo).Once()
	orderRepo.On("GetByOrderCode", ctx, aggregate.OrderCode()).Return(aggregate, nil).Once()

	h := commands.NewAcceptPickupCommandHandler(factory)
	_, err = h.Handle(ctx, cmd)

	require.ErrorIs(t, err, shipment.ErrInvalidCode)
	assert.Equal(t, shipment.StatusPrzypisanoKierowce, aggregate.Status())
	orderRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	orderRepo.AssertNotCalled(t, "AppendHistory", mock.Anything, mock.Anything)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestAcceptPickupCommandHandler_Handle_AlreadyPickedUp(t *testing.T) {
	ctx := t.Context()
	aggregate := testAssignedOrder(t)
	require.NoError(t, aggregate.AcceptPickup("4821"))

	cmd, err := commands.NewAcceptPickupCommand(aggregate.OrderCode(), "4821")
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	factory := new(MockOrderUoWFactory)

	factory.On("Create").Return(uow).Once()
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(orderRepo).Once()
	orderRepo.On("GetByOrderCode", ctx, aggregate.OrderCode()).Return(aggregate, nil).Once()

	h := commands.NewAcceptPickupCommandHandler(factory)
	_, err = h.Handle(ctx, cmd)

	require.ErrorIs(t, err, shipment.ErrInvalidStateTransition)
	orderRepo.AssertNotCalled(t, "AppendHistory", mock.Anything, mock.Anything)
}

func TestNewAcceptPickupCommand_Validation(t *testing.T) {
	_, err := commands.NewAcceptPickupCommand("short", "4821")
	require.Error(t, err)

	_, err = commands.NewAcceptPickupCommand(shipment.RandomOrderCode(), "48")
	require.Error(t, err)
}
