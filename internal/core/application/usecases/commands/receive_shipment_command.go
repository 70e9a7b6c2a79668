package commands

import (
	"errors"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/guard"
)

var ErrReceiveShipmentCommandIsNotConstructed = errors.New(
	"ReceiveShipmentCommand must be created via NewReceiveShipmentCommand constructor",
)

// ReceiveShipmentCommand represents a request to receive an inbound shipment
// at its destination, recording receipt notes and damage remarks.
type ReceiveShipmentCommand struct { //nolint:recvcheck //using for validation
	shipmentID kernel.UUID
	notes      string
	damage     string
	returnIDs  []kernel.UUID

	guard guard.ConstructorGuard
}

// NewReceiveShipmentCommand creates a command to receive a shipment.
// Notes, damage remarks, and return identifiers are all optional.
func NewReceiveShipmentCommand(
	shipmentID kernel.UUID,
	notes string,
	damage string,
	returnIDs []kernel.UUID,
) (ReceiveShipmentCommand, error) {
	if err := shipmentID.Validate(); err != nil {
		return ReceiveShipmentCommand{}, err
	}
	for _, id := range returnIDs {
		if err := id.Validate(); err != nil {
			return ReceiveShipmentCommand{}, err
		}
	}

	return ReceiveShipmentCommand{
		shipmentID: shipmentID,
		notes:      notes,
		damage:     damage,
		returnIDs:  returnIDs,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c ReceiveShipmentCommand) Validate() error {
	return c.guard.Validate(ErrReceiveShipmentCommandIsNotConstructed)
}

// ShipmentID returns the shipment to receive.
func (c ReceiveShipmentCommand) ShipmentID() kernel.UUID {
	return c.shipmentID
}

// Notes returns free-form receipt notes.
func (c ReceiveShipmentCommand) Notes() string {
	return c.notes
}

// Damage returns damage remarks recorded at the dock.
func (c ReceiveShipmentCommand) Damage() string {
	return c.damage
}

// ReturnIDs returns the return requests to reconcile, possibly empty.
func (c ReceiveShipmentCommand) ReturnIDs() []kernel.UUID {
	return c.returnIDs
}
