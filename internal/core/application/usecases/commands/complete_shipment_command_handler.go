package commands

import (
	"context"
	"time"

	"logistics/internal/core/domain/model/order"
)

// CompleteShipmentCommandHandler delivers an outbound shipment: the shipment
// and all member orders become Delivered, the truck returns to the pool, and
// any eligible returns riding along are settled, all in one transaction.
type CompleteShipmentCommandHandler struct {
	uowFactory UoWFactory
}

// NewCompleteShipmentCommandHandler creates a handler for shipment delivery.
func NewCompleteShipmentCommandHandler(uowFactory UoWFactory) CompleteShipmentCommandHandler {
	return CompleteShipmentCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the delivery command. Inbound shipments are refused;
// they finish through ReceiveShipment instead.
func (h CompleteShipmentCommandHandler) Handle(ctx context.Context, cmd CompleteShipmentCommand) error {
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

	if err = target.Complete(time.Now()); err != nil {
		return err
	}

	if err = settleShipment(ctx, uow, target, (*order.Order).MarkDelivered, cmd.ReturnIDs()); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
