package commands_test

import (
	"testing"

	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/core/domain/model/truck"
	"logistics/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestDispatchTrucksCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	cmd := commands.NewDispatchTrucksCommand()

	waiting := testOutboundShipment(t)
	require.NoError(t, waiting.Attach(testOrder(t, 3.0)))
	fleet := []*truck.Truck{testTruck(t, 5.0)}

	shipmentRepo := new(MockShipmentRepository)
	truckRepo := new(MockTruckRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ShipmentRepository").Return(shipmentRepo).Once(),
		uow.On("TruckRepository").Return(truckRepo).Once(),
		shipmentRepo.On("GetFirstDraftAwaitingTruck", ctx).Return(waiting, nil).Once(),
		truckRepo.On("GetAllAvailable", ctx, truck.TierLastMile).Return(fleet, nil).Once(),
		truckRepo.On("Update", ctx, mock.AnythingOfType("*truck.Truck")).Return(nil).Once(),
		shipmentRepo.On("Update", ctx, mock.AnythingOfType("*shipment.Shipment")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockFleetUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewDispatchTrucksCommandHandler(factory)
	err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	require.NotNil(t, waiting.TruckID())
	assert.Equal(t, truck.Busy, fleet[0].Status())

	shipmentRepo.AssertExpectations(t)
	truckRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestDispatchTrucksCommandHandler_Handle_NothingWaiting(t *testing.T) {
	ctx := t.Context()
	cmd := commands.NewDispatchTrucksCommand()

	shipmentRepo := new(MockShipmentRepository)
	truckRepo := new(MockTruckRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ShipmentRepository").Return(shipmentRepo).Once(),
		uow.On("TruckRepository").Return(truckRepo).Once(),
		shipmentRepo.On("GetFirstDraftAwaitingTruck", ctx).Return(nil, errs.ErrObjectNotFound).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockFleetUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewDispatchTrucksCommandHandler(factory)
	err := handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, commands.ErrNoShipmentAwaitingTruck)
	truckRepo.AssertNotCalled(t, "GetAllAvailable")
}

func TestDispatchTrucksCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.DispatchTrucksCommand{} // not constructed properly

	factory := new(MockFleetUoWFactory)
	handler := commands.NewDispatchTrucksCommandHandler(factory)
	err := handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, commands.ErrDispatchTrucksCommandIsNotConstructed)
	factory.AssertNotCalled(t, "Create")
}
