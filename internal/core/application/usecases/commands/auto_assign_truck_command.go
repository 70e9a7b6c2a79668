package commands

import (
	"errors"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/guard"
)

var ErrAutoAssignTruckCommandIsNotConstructed = errors.New(
	"AutoAssignTruckCommand must be created via NewAutoAssignTruckCommand constructor",
)

// AutoAssignTruckCommand represents a request to find the best-fitting
// available truck for a draft shipment and bind it.
type AutoAssignTruckCommand struct { //nolint:recvcheck //using for validation
	shipmentID kernel.UUID

	guard guard.ConstructorGuard
}

// NewAutoAssignTruckCommand creates a command to auto-allocate a truck.
func NewAutoAssignTruckCommand(shipmentID kernel.UUID) (AutoAssignTruckCommand, error) {
	if err := shipmentID.Validate(); err != nil {
		return AutoAssignTruckCommand{}, err
	}

	return AutoAssignTruckCommand{
		shipmentID: shipmentID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c AutoAssignTruckCommand) Validate() error {
	return c.guard.Validate(ErrAutoAssignTruckCommandIsNotConstructed)
}

// ShipmentID returns the shipment needing a truck.
func (c AutoAssignTruckCommand) ShipmentID() kernel.UUID {
	return c.shipmentID
}
