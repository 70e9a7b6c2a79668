package commands

import (
	"context"
	"time"

	"logistics/internal/core/domain/model/order"
)

// ReceiveShipmentCommandHandler receives an inbound shipment at the dock:
// the shipment and all member orders become Received, receipt notes and
// damage remarks are persisted, the truck returns to the pool, and returns
// carried home by the shipment are settled.
type ReceiveShipmentCommandHandler struct {
	uowFactory UoWFactory
}

// NewReceiveShipmentCommandHandler creates a handler for shipment receipt.
func NewReceiveShipmentCommandHandler(uowFactory UoWFactory) ReceiveShipmentCommandHandler {
	return ReceiveShipmentCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the receipt command. Outbound shipments are refused;
// they finish through CompleteShipment instead.
func (h ReceiveShipmentCommandHandler) Handle(ctx context.Context, cmd ReceiveShipmentCommand) error {
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

	if err = target.Receive(time.Now(), cmd.Notes(), cmd.Damage()); err != nil {
		return err
	}

	if err = settleShipment(ctx, uow, target, (*order.Order).MarkReceived, cmd.ReturnIDs()); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
