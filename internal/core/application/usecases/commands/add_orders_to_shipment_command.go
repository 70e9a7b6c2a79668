package commands

import (
	"errors"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/guard"
)

var (
	ErrAddOrdersToShipmentCommandIsNotConstructed = errors.New(
		"AddOrdersToShipmentCommand must be created via NewAddOrdersToShipmentCommand constructor",
	)
	ErrOrderIDsAreRequired = errors.New("at least one order id is required")
)

// AddOrdersToShipmentCommand represents a request to attach a batch of
// existing orders to a shipment.
type AddOrdersToShipmentCommand struct { //nolint:recvcheck //using for validation
	shipmentID kernel.UUID
	orderIDs   []kernel.UUID

	guard guard.ConstructorGuard
}

// NewAddOrdersToShipmentCommand creates a command to attach orders to a
// shipment.
func NewAddOrdersToShipmentCommand(shipmentID kernel.UUID, orderIDs []kernel.UUID) (AddOrdersToShipmentCommand, error) {
	if err := shipmentID.Validate(); err != nil {
		return AddOrdersToShipmentCommand{}, err
	}
	if len(orderIDs) == 0 {
		return AddOrdersToShipmentCommand{}, ErrOrderIDsAreRequired
	}
	for _, id := range orderIDs {
		if err := id.Validate(); err != nil {
			return AddOrdersToShipmentCommand{}, err
		}
	}

	return AddOrdersToShipmentCommand{
		shipmentID: shipmentID,
		orderIDs:   orderIDs,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c AddOrdersToShipmentCommand) Validate() error {
	return c.guard.Validate(ErrAddOrdersToShipmentCommandIsNotConstructed)
}

// ShipmentID returns the receiving shipment.
func (c AddOrdersToShipmentCommand) ShipmentID() kernel.UUID {
	return c.shipmentID
}

// OrderIDs returns the orders to attach.
func (c AddOrdersToShipmentCommand) OrderIDs() []kernel.UUID {
	return c.orderIDs
}
