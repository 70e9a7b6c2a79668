package commands

import (
	"context"

	"logistics/internal/pkg/errs"
)

// ErrOrderIsInShipment is returned when deleting an order that a shipment
// still references.
var ErrOrderIsInShipment = errs.NewConflictError("order is attached to a shipment and cannot be deleted")

// DeleteOrderCommandHandler removes an order and its lines. Orders that a
// shipment references stay put: the attachment must be undone first.
type DeleteOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewDeleteOrderCommandHandler creates a handler for order deletion.
func NewDeleteOrderCommandHandler(uowFactory OrderUoWFactory) DeleteOrderCommandHandler {
	return DeleteOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the order deletion command. The shipment check runs
// inside the transaction, and the database's foreign keys back it up: a
// concurrent attach still surfaces as a conflict.
func (h DeleteOrderCommandHandler) Handle(ctx context.Context, cmd DeleteOrderCommand) error {
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

	orderRepo := uow.OrderRepository()

	existing, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if existing.ShipmentID() != nil {
		return ErrOrderIsInShipment
	}

	if err = orderRepo.Delete(ctx, existing.ID()); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
