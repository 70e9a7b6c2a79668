package commands

import (
	"context"
	"time"
)

// StartShipmentCommandHandler moves a draft shipment into transit and
// cascades the transition onto every member order. The shipment must have
// a truck and at least one order; both preconditions are re-verified on
// state freshly read inside the transaction.
type StartShipmentCommandHandler struct {
	uowFactory UoWFactory
}

// NewStartShipmentCommandHandler creates a handler for shipment departure.
func NewStartShipmentCommandHandler(uowFactory UoWFactory) StartShipmentCommandHandler {
	return StartShipmentCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the departure command.
func (h StartShipmentCommandHandler) Handle(ctx context.Context, cmd StartShipmentCommand) error {
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
	orderRepo := uow.OrderRepository()

	target, err := shipmentRepo.Get(ctx, cmd.ShipmentID())
	if err != nil {
		return err
	}

	if err = target.Start(time.Now()); err != nil {
		return err
	}

	members, err := orderRepo.GetAllByShipment(ctx, target.ID())
	if err != nil {
		return err
	}
	for _, member := range members {
		if err = member.MarkInTransit(); err != nil {
			return err
		}
		if err = orderRepo.Update(ctx, member); err != nil {
			return err
		}
	}

	if err = shipmentRepo.Update(ctx, target); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
