package commands

import (
	"context"
	"errors"

	"logistics/internal/core/domain/services"
	"logistics/internal/pkg/errs"
)

// ErrNoShipmentAwaitingTruck is returned when no draft shipment needs a
// truck right now.
var ErrNoShipmentAwaitingTruck = errors.New("no shipment awaiting truck")

// DispatchTrucksCommandHandler orchestrates background truck dispatch.
// Finds the oldest draft shipment with cargo and no truck, then runs the
// best-fit allocation against the tier-matched available fleet. One
// shipment per invocation; the scheduler calls again for the next one.
type DispatchTrucksCommandHandler struct {
	uowFactory FleetUoWFactory
}

// NewDispatchTrucksCommandHandler creates a handler for background
// dispatch.
func NewDispatchTrucksCommandHandler(uowFactory FleetUoWFactory) DispatchTrucksCommandHandler {
	return DispatchTrucksCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the dispatch command. Returns ErrNoShipmentAwaitingTruck
// when the queue is empty and services.ErrNoSuitableTruck when the fleet
// cannot carry the waiting shipment; both are expected idle outcomes for
// the scheduler.
func (h DispatchTrucksCommandHandler) Handle(ctx context.Context, cmd DispatchTrucksCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	shipmentRepo := uow.ShipmentRepository()
	truckRepo := uow.TruckRepository()

	waiting, err := shipmentRepo.GetFirstDraftAwaitingTruck(ctx)
	if errors.Is(err, errs.ErrObjectNotFound) {
		return ErrNoShipmentAwaitingTruck
	}
	if err != nil {
		return err
	}

	candidates, err := truckRepo.GetAllAvailable(ctx, waiting.Tier())
	if err != nil {
		return err
	}

	allocated, err := services.NewTruckAllocator().Allocate(waiting, candidates)
	if err != nil {
		return err
	}

	if err = truckRepo.Update(ctx, allocated); err != nil {
		return err
	}

	if err = shipmentRepo.Update(ctx, waiting); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
