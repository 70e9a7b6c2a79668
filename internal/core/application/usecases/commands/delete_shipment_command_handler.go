package commands

import (
	"context"

	"logistics/internal/pkg/errs"
)

// ErrShipmentHasOrders is returned when deleting a shipment that orders
// still reference.
var ErrShipmentHasOrders = errs.NewConflictError("shipment still has orders attached and cannot be deleted")

// DeleteShipmentCommandHandler removes a shipment. Only shipments with no
// member orders can go; a truck still bound to a draft shipment is released
// back to the pool in the same transaction.
type DeleteShipmentCommandHandler struct {
	uowFactory UoWFactory
}

// NewDeleteShipmentCommandHandler creates a handler for shipment deletion.
func NewDeleteShipmentCommandHandler(uowFactory UoWFactory) DeleteShipmentCommandHandler {
	return DeleteShipmentCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the shipment deletion command. The membership check runs
// inside the transaction and the database's foreign keys back it up, so a
// concurrent attach still surfaces as a conflict.
func (h DeleteShipmentCommandHandler) Handle(ctx context.Context, cmd DeleteShipmentCommand) error {
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

	target, err := shipmentRepo.Get(ctx, cmd.ShipmentID())
	if err != nil {
		return err
	}

	if len(target.OrderIDs()) > 0 {
		return ErrShipmentHasOrders
	}

	if target.TruckID() != nil && !target.Status().IsTerminal() {
		truckRepo := uow.TruckRepository()

		boundTruck, err := truckRepo.Get(ctx, *target.TruckID())
		if err != nil {
			return err
		}
		if err = boundTruck.Release(); err != nil {
			return err
		}
		if err = truckRepo.Update(ctx, boundTruck); err != nil {
			return err
		}
	}

	if err = shipmentRepo.Delete(ctx, target.ID()); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
