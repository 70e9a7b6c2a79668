package commands

import (
	"context"
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/order"
	"logistics/internal/core/domain/model/shipment"
	"logistics/internal/core/domain/services"
	"logistics/internal/core/ports"
	"logistics/internal/pkg/errs"
)

// CreateShipmentWithOrdersCommandHandler builds an outbound shipment and all
// of its member orders in a single transaction. The destination endpoint is
// the first branch of the payload; every branch gets exactly one order. A
// truck supplied up front is reserved, capacity-checked against the summed
// volume, and the shipment departs immediately.
type CreateShipmentWithOrdersCommandHandler struct {
	uowFactory UoWFactory
	calculator services.CargoCalculator
}

// NewCreateShipmentWithOrdersCommandHandler creates a handler for compound
// shipment creation.
func NewCreateShipmentWithOrdersCommandHandler(
	uowFactory UoWFactory,
	calculator services.CargoCalculator,
) CreateShipmentWithOrdersCommandHandler {
	return CreateShipmentWithOrdersCommandHandler{
		uowFactory: uowFactory,
		calculator: calculator,
	}
}

// Handle processes the compound creation command. Any failure rolls the
// whole batch back: no partial shipments, no orphan orders.
func (h CreateShipmentWithOrdersCommandHandler) Handle(
	ctx context.Context,
	cmd CreateShipmentWithOrdersCommand,
) error {
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

	catalogRepo := uow.CatalogRepository()
	orderRepo := uow.OrderRepository()
	shipmentRepo := uow.ShipmentRepository()

	origin, err := shipment.NewEndpoint(shipment.KindDC, cmd.DCID())
	if err != nil {
		return err
	}
	if err = endpointMustExist(ctx, catalogRepo, origin); err != nil {
		return err
	}

	destination, err := shipment.NewDestination(shipment.KindBranch, cmd.Branches()[0].BranchID())
	if err != nil {
		return err
	}
	if err = endpointMustExist(ctx, catalogRepo, destination); err != nil {
		return err
	}

	newShipment, err := shipment.NewShipment(cmd.ShipmentID(), origin, destination, shipment.Outbound)
	if err != nil {
		return err
	}
	if cmd.RouteID() != nil {
		if err = newShipment.SetRoute(*cmd.RouteID()); err != nil {
			return err
		}
	}

	orders, err := h.buildOrders(ctx, catalogRepo, cmd)
	if err != nil {
		return err
	}

	for _, o := range orders {
		if err = newShipment.Attach(o); err != nil {
			return err
		}
	}

	if cmd.TruckID() != nil {
		truckRepo := uow.TruckRepository()

		boundTruck, err := truckRepo.Get(ctx, *cmd.TruckID())
		if err != nil {
			return err
		}
		if err = newShipment.AssignTruck(boundTruck); err != nil {
			return err
		}
		if err = newShipment.Start(time.Now()); err != nil {
			return err
		}
		// Departure happens in the same transaction, so the members must
		// mirror the shipment status before they are persisted.
		for _, o := range orders {
			if err = o.MarkInTransit(); err != nil {
				return err
			}
		}
		if err = truckRepo.Update(ctx, boundTruck); err != nil {
			return err
		}
	}

	if err = shipmentRepo.Add(ctx, newShipment); err != nil {
		return err
	}
	for _, o := range orders {
		if err = orderRepo.Add(ctx, o); err != nil {
			return err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}

// buildOrders materializes one pending order per branch payload. Each branch
// must exist and every product must resolve.
func (h CreateShipmentWithOrdersCommandHandler) buildOrders(
	ctx context.Context,
	catalogRepo ports.CatalogRepository,
	cmd CreateShipmentWithOrdersCommand,
) ([]*order.Order, error) {
	orders := make([]*order.Order, 0, len(cmd.Branches()))

	for _, branch := range cmd.Branches() {
		exists, err := catalogRepo.EndpointExists(ctx, shipment.KindBranch, branch.BranchID())
		if err != nil {
			return nil, err
		}
		if !exists {
			return nil, errs.NewObjectNotFoundError("branch", branch.BranchID())
		}

		items, lines, err := resolveCargo(ctx, catalogRepo, branch.Lines())
		if err != nil {
			return nil, err
		}

		totals, err := h.calculator.Totals(items)
		if err != nil {
			return nil, err
		}

		branchOrder, err := order.NewOrder(
			kernel.NewUUID(),
			branch.BranchID(),
			cmd.OrderDate(),
			lines,
			totals.Amount,
			totals.Volume,
			totals.Boxes,
		)
		if err != nil {
			return nil, err
		}

		orders = append(orders, branchOrder)
	}

	return orders, nil
}
