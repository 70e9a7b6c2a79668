package commands

import (
	"context"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/order"
	"logistics/internal/core/domain/model/shipment"
)

// AddOrderOutcome reports what happened to one order of an attach batch.
// Skipped orders carry a human-readable reason; attached ones don't.
type AddOrderOutcome struct {
	OrderID  kernel.UUID
	Attached bool
	Reason   string
}

// AddOrdersToShipmentCommandHandler attaches a batch of orders to a
// shipment. The batch is best-effort per order: unknown or already-attached
// orders are reported and skipped rather than failing the batch. The whole
// attach still runs in one transaction, and when a truck is already bound
// the grown volume is re-validated against its capacity.
type AddOrdersToShipmentCommandHandler struct {
	uowFactory UoWFactory
}

// NewAddOrdersToShipmentCommandHandler creates a handler for batch order
// attachment.
func NewAddOrdersToShipmentCommandHandler(uowFactory UoWFactory) AddOrdersToShipmentCommandHandler {
	return AddOrdersToShipmentCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the attach batch and returns a per-order outcome list.
// A capacity overflow against an already-bound truck fails the whole batch:
// partial attachment would leave the shipment overbooked.
func (h AddOrdersToShipmentCommandHandler) Handle(
	ctx context.Context,
	cmd AddOrdersToShipmentCommand,
) ([]AddOrderOutcome, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	shipmentRepo := uow.ShipmentRepository()
	orderRepo := uow.OrderRepository()

	target, err := shipmentRepo.Get(ctx, cmd.ShipmentID())
	if err != nil {
		return nil, err
	}

	loaded, err := orderRepo.GetByIDs(ctx, cmd.OrderIDs())
	if err != nil {
		return nil, err
	}
	byID := make(map[kernel.UUID]*order.Order, len(loaded))
	for _, o := range loaded {
		byID[o.ID()] = o
	}

	outcomes := make([]AddOrderOutcome, 0, len(cmd.OrderIDs()))
	var attached []*order.Order

	for _, id := range cmd.OrderIDs() {
		o, ok := byID[id]
		if !ok {
			outcomes = append(outcomes, AddOrderOutcome{OrderID: id, Reason: "order not found"})
			continue
		}
		if o.ShipmentID() != nil {
			outcomes = append(outcomes, AddOrderOutcome{OrderID: id, Reason: "order is already in a shipment"})
			continue
		}

		if err = target.Attach(o); err != nil {
			return nil, err
		}

		outcomes = append(outcomes, AddOrderOutcome{OrderID: id, Attached: true})
		attached = append(attached, o)
	}

	if len(attached) > 0 && target.TruckID() != nil {
		truckRepo := uow.TruckRepository()

		boundTruck, err := truckRepo.Get(ctx, *target.TruckID())
		if err != nil {
			return nil, err
		}
		if !boundTruck.CanCarry(target.TotalVolume()) {
			return nil, &shipment.CapacityExceededError{
				ShipmentVolume: target.TotalVolume(),
				TruckCapacity:  boundTruck.CapacityM3(),
			}
		}
	}

	for _, o := range attached {
		if err = orderRepo.Update(ctx, o); err != nil {
			return nil, err
		}
	}

	if err = shipmentRepo.Update(ctx, target); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return outcomes, nil
}
