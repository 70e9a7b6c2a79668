package commands

import (
	"errors"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/guard"
)

var ErrStartShipmentCommandIsNotConstructed = errors.New(
	"StartShipmentCommand must be created via NewStartShipmentCommand constructor",
)

// StartShipmentCommand represents a request to move a draft shipment into
// transit.
type StartShipmentCommand struct { //nolint:recvcheck //using for validation
	shipmentID kernel.UUID

	guard guard.ConstructorGuard
}

// NewStartShipmentCommand creates a command to start a shipment.
func NewStartShipmentCommand(shipmentID kernel.UUID) (StartShipmentCommand, error) {
	if err := shipmentID.Validate(); err != nil {
		return StartShipmentCommand{}, err
	}

	return StartShipmentCommand{
		shipmentID: shipmentID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c StartShipmentCommand) Validate() error {
	return c.guard.Validate(ErrStartShipmentCommandIsNotConstructed)
}

// ShipmentID returns the shipment to start.
func (c StartShipmentCommand) ShipmentID() kernel.UUID {
	return c.shipmentID
}
