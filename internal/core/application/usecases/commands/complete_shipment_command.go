package commands

import (
	"errors"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/guard"
)

var ErrCompleteShipmentCommandIsNotConstructed = errors.New(
	"CompleteShipmentCommand must be created via NewCompleteShipmentCommand constructor",
)

// CompleteShipmentCommand represents a request to deliver an outbound
// shipment, optionally settling return requests carried by its orders.
type CompleteShipmentCommand struct { //nolint:recvcheck //using for validation
	shipmentID kernel.UUID
	returnIDs  []kernel.UUID

	guard guard.ConstructorGuard
}

// NewCompleteShipmentCommand creates a command to complete a shipment.
// Return identifiers are optional.
func NewCompleteShipmentCommand(shipmentID kernel.UUID, returnIDs []kernel.UUID) (CompleteShipmentCommand, error) {
	if err := shipmentID.Validate(); err != nil {
		return CompleteShipmentCommand{}, err
	}
	for _, id := range returnIDs {
		if err := id.Validate(); err != nil {
			return CompleteShipmentCommand{}, err
		}
	}

	return CompleteShipmentCommand{
		shipmentID: shipmentID,
		returnIDs:  returnIDs,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c CompleteShipmentCommand) Validate() error {
	return c.guard.Validate(ErrCompleteShipmentCommandIsNotConstructed)
}

// ShipmentID returns the shipment to complete.
func (c CompleteShipmentCommand) ShipmentID() kernel.UUID {
	return c.shipmentID
}

// ReturnIDs returns the return requests to reconcile, possibly empty.
func (c CompleteShipmentCommand) ReturnIDs() []kernel.UUID {
	return c.returnIDs
}
