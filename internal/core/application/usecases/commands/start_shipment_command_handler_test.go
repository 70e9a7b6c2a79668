package commands_test

import (
	"testing"

	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/core/domain/model/order"
	"logistics/internal/core/domain/model/shipment"
	"logistics/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestStartShipmentCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()

	target := testOutboundShipment(t)
	member := testOrder(t, 2.0)
	require.NoError(t, target.Attach(member))
	require.NoError(t, target.AssignTruck(testTruck(t, 5.0)))

	cmd, err := commands.NewStartShipmentCommand(target.ID())
	require.NoError(t, err)

	shipmentRepo := new(MockShipmentRepository)
	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ShipmentRepository").Return(shipmentRepo).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		shipmentRepo.On("Get", ctx, target.ID()).Return(target, nil).Once(),
		orderRepo.On("GetAllByShipment", ctx, target.ID()).Return([]*order.Order{member}, nil).Once(),
		orderRepo.On("Update", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		shipmentRepo.On("Update", ctx, mock.AnythingOfType("*shipment.Shipment")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewStartShipmentCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, shipment.InTransit, target.Status())
	assert.NotNil(t, target.DepartureTime())
	assert.Equal(t, order.InTransit, member.Status())

	shipmentRepo.AssertExpectations(t)
	orderRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestStartShipmentCommandHandler_Handle_NoTruck_Conflict(t *testing.T) {
	ctx := t.Context()

	target := testOutboundShipment(t)
	require.NoError(t, target.Attach(testOrder(t, 2.0)))

	cmd, err := commands.NewStartShipmentCommand(target.ID())
	require.NoError(t, err)

	shipmentRepo := new(MockShipmentRepository)
	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ShipmentRepository").Return(shipmentRepo).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		shipmentRepo.On("Get", ctx, target.ID()).Return(target, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewStartShipmentCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	assert.ErrorIs(t, err, shipment.ErrNoTruckAssigned)
	assert.ErrorIs(t, err, errs.ErrConflict)
	assert.Equal(t, shipment.Draft, target.Status())
	shipmentRepo.AssertNotCalled(t, "Update")
	uow.AssertNotCalled(t, "Commit")
}

func TestStartShipmentCommandHandler_Handle_EmptyShipment_Conflict(t *testing.T) {
	ctx := t.Context()

	target := testOutboundShipment(t)
	require.NoError(t, target.AssignTruck(testTruck(t, 5.0)))

	cmd, err := commands.NewStartShipmentCommand(target.ID())
	require.NoError(t, err)

	shipmentRepo := new(MockShipmentRepository)
	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ShipmentRepository").Return(shipmentRepo).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		shipmentRepo.On("Get", ctx, target.ID()).Return(target, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewStartShipmentCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	assert.ErrorIs(t, err, shipment.ErrEmptyShipment)
	assert.ErrorIs(t, err, errs.ErrConflict)
	uow.AssertNotCalled(t, "Commit")
}
