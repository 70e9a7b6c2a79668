package commands

import (
	"errors"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/guard"
)

var ErrAssignTruckCommandIsNotConstructed = errors.New(
	"AssignTruckCommand must be created via NewAssignTruckCommand constructor",
)

// AssignTruckCommand represents a request to bind a specific truck to a
// draft shipment.
type AssignTruckCommand struct { //nolint:recvcheck //using for validation
	shipmentID kernel.UUID
	truckID    kernel.UUID

	guard guard.ConstructorGuard
}

// NewAssignTruckCommand creates a command to bind a truck to a shipment.
func NewAssignTruckCommand(shipmentID, truckID kernel.UUID) (AssignTruckCommand, error) {
	if err := errors.Join(shipmentID.Validate(), truckID.Validate()); err != nil {
		return AssignTruckCommand{}, err
	}

	return AssignTruckCommand{
		shipmentID: shipmentID,
		truckID:    truckID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c AssignTruckCommand) Validate() error {
	return c.guard.Validate(ErrAssignTruckCommandIsNotConstructed)
}

// ShipmentID returns the shipment to bind the truck to.
func (c AssignTruckCommand) ShipmentID() kernel.UUID {
	return c.shipmentID
}

// TruckID returns the truck to bind.
func (c AssignTruckCommand) TruckID() kernel.UUID {
	return c.truckID
}
