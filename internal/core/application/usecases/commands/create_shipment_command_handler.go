package commands

import (
	"context"

	"logistics/internal/core/domain/model/shipment"
	"logistics/internal/core/ports"
	"logistics/internal/pkg/errs"
)

// CreateShipmentCommandHandler opens a new draft shipment. Both endpoints
// must exist in the network, and a truck supplied at creation time is
// reserved in the same transaction.
type CreateShipmentCommandHandler struct {
	uowFactory UoWFactory
}

// NewCreateShipmentCommandHandler creates a handler for shipment creation.
func NewCreateShipmentCommandHandler(uowFactory UoWFactory) CreateShipmentCommandHandler {
	return CreateShipmentCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the shipment creation command.
func (h CreateShipmentCommandHandler) Handle(ctx context.Context, cmd CreateShipmentCommand) error {
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

	if err := endpointMustExist(ctx, catalogRepo, cmd.Origin()); err != nil {
		return err
	}
	if err := endpointMustExist(ctx, catalogRepo, cmd.Destination()); err != nil {
		return err
	}

	newShipment, err := shipment.NewShipment(cmd.ShipmentID(), cmd.Origin(), cmd.Destination(), cmd.ShipmentType())
	if err != nil {
		return err
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

// endpointMustExist resolves an endpoint against the catalog and converts
// absence into a not-found error naming the endpoint kind.
func endpointMustExist(ctx context.Context, catalog ports.CatalogRepository, e shipment.Endpoint) error {
	exists, err := catalog.EndpointExists(ctx, e.Kind(), e.ID())
	if err != nil {
		return err
	}
	if !exists {
		return errs.NewObjectNotFoundError(e.Kind().String(), e.ID())
	}
	return nil
}
