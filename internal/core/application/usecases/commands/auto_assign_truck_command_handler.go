package commands

import (
	"context"

	"logistics/internal/core/domain/services"
)

// AutoAssignTruckCommandHandler finds the smallest available truck that can
// carry a draft shipment and binds it. The candidate fleet is filtered by
// the shipment's transport tier before the allocator runs.
type AutoAssignTruckCommandHandler struct {
	uowFactory FleetUoWFactory
}

// NewAutoAssignTruckCommandHandler creates a handler for best-fit truck
// allocation.
func NewAutoAssignTruckCommandHandler(uowFactory FleetUoWFactory) AutoAssignTruckCommandHandler {
	return AutoAssignTruckCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the auto-allocation command. Returns
// services.ErrNoSuitableTruck when the available fleet cannot carry the
// shipment.
func (h AutoAssignTruckCommandHandler) Handle(ctx context.Context, cmd AutoAssignTruckCommand) error {
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

	target, err := shipmentRepo.Get(ctx, cmd.ShipmentID())
	if err != nil {
		return err
	}

	candidates, err := truckRepo.GetAllAvailable(ctx, target.Tier())
	if err != nil {
		return err
	}

	allocated, err := services.NewTruckAllocator().Allocate(target, candidates)
	if err != nil {
		return err
	}

	if err = truckRepo.Update(ctx, allocated); err != nil {
		return err
	}

	if err = shipmentRepo.Update(ctx, target); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
