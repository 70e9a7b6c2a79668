package commands

import (
	"context"

	"logistics/internal/core/domain/model/shipment"
)

// CreateLinehaulShipmentCommandHandler opens an inbound manufacturer-to-DC
// shipment carrying a declared bulk volume. A truck supplied up front is
// capacity-checked against that volume and reserved.
type CreateLinehaulShipmentCommandHandler struct {
	uowFactory UoWFactory
}

// NewCreateLinehaulShipmentCommandHandler creates a handler for linehaul
// shipment creation.
func NewCreateLinehaulShipmentCommandHandler(uowFactory UoWFactory) CreateLinehaulShipmentCommandHandler {
	return CreateLinehaulShipmentCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the linehaul creation command.
func (h CreateLinehaulShipmentCommandHandler) Handle(ctx context.Context, cmd CreateLinehaulShipmentCommand) error {
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
	shipmentRepo := uow.ShipmentRepository()

	origin, err := shipment.NewEndpoint(shipment.KindManufacturer, cmd.ManufacturerID())
	if err != nil {
		return err
	}
	destination, err := shipment.NewDestination(shipment.KindDC, cmd.DCID())
	if err != nil {
		return err
	}

	if err = endpointMustExist(ctx, catalogRepo, origin); err != nil {
		return err
	}
	if err = endpointMustExist(ctx, catalogRepo, destination); err != nil {
		return err
	}

	newShipment, err := shipment.NewShipment(cmd.ShipmentID(), origin, destination, shipment.Inbound)
	if err != nil {
		return err
	}

	if cmd.DeclaredVolume() > 0 {
		if err = newShipment.SeedVolume(cmd.DeclaredVolume()); err != nil {
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
		if err = truckRepo.Update(ctx, boundTruck); err != nil {
			return err
		}
	}

	if err = shipmentRepo.Add(ctx, newShipment); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
