package commands

import (
	"context"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/order"
	"logistics/internal/core/domain/model/shipment"
	"logistics/internal/core/domain/services"
)

// settleShipment carries out the shared tail of shipment completion and
// receipt: cascade the terminal status onto member orders, release the
// bound truck, and settle any eligible return requests. The shipment itself
// has already made its terminal transition; this persists the fallout.
func settleShipment(
	ctx context.Context,
	uow UoW,
	target *shipment.Shipment,
	cascade func(*order.Order) error,
	returnIDs []kernel.UUID,
) error {
	orderRepo := uow.OrderRepository()
	truckRepo := uow.TruckRepository()
	shipmentRepo := uow.ShipmentRepository()

	members, err := orderRepo.GetAllByShipment(ctx, target.ID())
	if err != nil {
		return err
	}
	for _, member := range members {
		if err = cascade(member); err != nil {
			return err
		}
		if err = orderRepo.Update(ctx, member); err != nil {
			return err
		}
	}

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

	if len(returnIDs) > 0 {
		returnRepo := uow.ReturnRepository()

		candidates, err := returnRepo.GetByIDs(ctx, returnIDs)
		if err != nil {
			return err
		}

		settled, err := services.NewReturnReconciler().Reconcile(target, candidates)
		if err != nil {
			return err
		}
		for _, r := range settled {
			if err = returnRepo.Update(ctx, r); err != nil {
				return err
			}
		}
	}

	return shipmentRepo.Update(ctx, target)
}
