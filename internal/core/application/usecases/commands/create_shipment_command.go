package commands

import (
	"errors"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/shipment"
	"logistics/internal/pkg/guard"
)

var ErrCreateShipmentCommandIsNotConstructed = errors.New(
	"CreateShipmentCommand must be created via NewCreateShipmentCommand constructor",
)

// CreateShipmentCommand represents a request to open a new draft shipment
// between two network endpoints, optionally binding a truck right away.
type CreateShipmentCommand struct { //nolint:recvcheck //using for validation
	shipmentID   kernel.UUID
	origin       shipment.Endpoint
	destination  shipment.Endpoint
	shipmentType shipment.Type
	truckID      *kernel.UUID

	guard guard.ConstructorGuard
}

// NewCreateShipmentCommand creates a command to open a draft shipment.
// Endpoints arrive as validated value objects; truckID is optional.
func NewCreateShipmentCommand(
	shipmentID kernel.UUID,
	origin shipment.Endpoint,
	destination shipment.Endpoint,
	shipmentType shipment.Type,
	truckID *kernel.UUID,
) (CreateShipmentCommand, error) {
	cmd := CreateShipmentCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		shipmentID.Validate(),
		origin.Validate(),
		destination.Validate(),
		shipmentType.Validate(),
	); err != nil {
		return CreateShipmentCommand{}, err
	}
	if truckID != nil {
		if err := truckID.Validate(); err != nil {
			return CreateShipmentCommand{}, err
		}
	}

	cmd.shipmentID = shipmentID
	cmd.origin = origin
	cmd.destination = destination
	cmd.shipmentType = shipmentType
	cmd.truckID = truckID
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateShipmentCommand) Validate() error {
	return c.guard.Validate(ErrCreateShipmentCommandIsNotConstructed)
}

// ShipmentID returns the identifier for the new shipment.
func (c CreateShipmentCommand) ShipmentID() kernel.UUID {
	return c.shipmentID
}

// Origin returns where the shipment departs from.
func (c CreateShipmentCommand) Origin() shipment.Endpoint {
	return c.origin
}

// Destination returns where the shipment is headed.
func (c CreateShipmentCommand) Destination() shipment.Endpoint {
	return c.destination
}

// ShipmentType returns the flow direction of the shipment.
func (c CreateShipmentCommand) ShipmentType() shipment.Type {
	return c.shipmentType
}

// TruckID returns the truck to bind immediately, or nil.
func (c CreateShipmentCommand) TruckID() *kernel.UUID {
	return c.truckID
}
