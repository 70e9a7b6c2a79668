package commands

import (
	"errors"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/guard"
)

var (
	ErrCreateLinehaulShipmentCommandIsNotConstructed = errors.New(
		"CreateLinehaulShipmentCommand must be created via NewCreateLinehaulShipmentCommand constructor",
	)
	ErrDeclaredVolumeIsInvalid = errors.New("declared volume must not be negative")
)

// CreateLinehaulShipmentCommand represents a request to open an inbound
// shipment from a manufacturer to a distribution center. Linehaul cargo is
// declared as a bulk volume rather than itemized orders.
type CreateLinehaulShipmentCommand struct { //nolint:recvcheck //using for validation
	shipmentID     kernel.UUID
	manufacturerID kernel.UUID
	dcID           kernel.UUID
	truckID        *kernel.UUID
	declaredVolume float64

	guard guard.ConstructorGuard
}

// NewCreateLinehaulShipmentCommand creates a command to open a linehaul
// shipment. Declared volume may be zero when the cargo manifest is not yet
// known.
func NewCreateLinehaulShipmentCommand(
	shipmentID kernel.UUID,
	manufacturerID kernel.UUID,
	dcID kernel.UUID,
	truckID *kernel.UUID,
	declaredVolume float64,
) (CreateLinehaulShipmentCommand, error) {
	cmd := CreateLinehaulShipmentCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(shipmentID.Validate(), manufacturerID.Validate(), dcID.Validate()); err != nil {
		return CreateLinehaulShipmentCommand{}, err
	}
	if truckID != nil {
		if err := truckID.Validate(); err != nil {
			return CreateLinehaulShipmentCommand{}, err
		}
	}
	if declaredVolume < 0 {
		return CreateLinehaulShipmentCommand{}, ErrDeclaredVolumeIsInvalid
	}

	cmd.shipmentID = shipmentID
	cmd.manufacturerID = manufacturerID
	cmd.dcID = dcID
	cmd.truckID = truckID
	cmd.declaredVolume = declaredVolume
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateLinehaulShipmentCommand) Validate() error {
	return c.guard.Validate(ErrCreateLinehaulShipmentCommandIsNotConstructed)
}

// ShipmentID returns the identifier for the new shipment.
func (c CreateLinehaulShipmentCommand) ShipmentID() kernel.UUID {
	return c.shipmentID
}

// ManufacturerID returns the manufacturer the cargo departs from.
func (c CreateLinehaulShipmentCommand) ManufacturerID() kernel.UUID {
	return c.manufacturerID
}

// DCID returns the receiving distribution center.
func (c CreateLinehaulShipmentCommand) DCID() kernel.UUID {
	return c.dcID
}

// TruckID returns the truck to bind immediately, or nil.
func (c CreateLinehaulShipmentCommand) TruckID() *kernel.UUID {
	return c.truckID
}

// DeclaredVolume returns the bulk cargo volume in cubic meters.
func (c CreateLinehaulShipmentCommand) DeclaredVolume() float64 {
	return c.declaredVolume
}
