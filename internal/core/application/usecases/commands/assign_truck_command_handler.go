package commands

import (
	"context"
)

// AssignTruckCommandHandler binds a chosen truck to a draft shipment. The
// truck must be available and large enough for the shipment's rolling
// volume; reassignment releases the previously bound truck in the same
// transaction.
type AssignTruckCommandHandler struct {
	uowFactory FleetUoWFactory
}

// NewAssignTruckCommandHandler creates a handler for manual truck binding.
func NewAssignTruckCommandHandler(uowFactory FleetUoWFactory) AssignTruckCommandHandler {
	return AssignTruckCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the truck binding command. Both aggregates are re-read
// inside the transaction, so availability and capacity are checked against
// current state, not a stale snapshot.
func (h AssignTruckCommandHandler) Handle(ctx context.Context, cmd AssignTruckCommand) error {
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

	if previousID := target.TruckID(); previousID != nil && !previousID.IsEqual(cmd.TruckID()) {
		previous, err := truckRepo.Get(ctx, *previousID)
		if err != nil {
			return err
		}
		if err = previous.Release(); err != nil {
			return err
		}
		if err = truckRepo.Update(ctx, previous); err != nil {
			return err
		}
	}

	boundTruck, err := truckRepo.Get(ctx, cmd.TruckID())
	if err != nil {
		return err
	}

	if err = target.AssignTruck(boundTruck); err != nil {
		return err
	}

	if err = truckRepo.Update(ctx, boundTruck); err != nil {
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
