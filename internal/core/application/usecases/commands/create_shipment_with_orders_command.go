package commands

import (
	"errors"
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/guard"
)

var (
	ErrCreateShipmentWithOrdersCommandIsNotConstructed = errors.New(
		"CreateShipmentWithOrdersCommand must be created via NewCreateShipmentWithOrdersCommand constructor",
	)
	ErrBranchesAreRequired = errors.New("at least one branch payload is required")
)

// BranchOrderInput is one branch's order payload inside a compound shipment
// creation request.
type BranchOrderInput struct {
	branchID kernel.UUID
	lines    []OrderLineInput
}

// NewBranchOrderInput validates a single branch payload.
func NewBranchOrderInput(branchID kernel.UUID, lines []OrderLineInput) (BranchOrderInput, error) {
	if err := branchID.Validate(); err != nil {
		return BranchOrderInput{}, err
	}
	if len(lines) == 0 {
		return BranchOrderInput{}, ErrOrderLinesAreRequired
	}
	return BranchOrderInput{branchID: branchID, lines: lines}, nil
}

// BranchID returns the ordering branch.
func (b BranchOrderInput) BranchID() kernel.UUID {
	return b.branchID
}

// Lines returns the branch's product positions.
func (b BranchOrderInput) Lines() []OrderLineInput {
	return b.lines
}

// CreateShipmentWithOrdersCommand represents a request to open an outbound
// shipment and its member orders in one stroke: one order per branch payload,
// all attached to the new shipment, with an optional truck bound up front.
// When a truck is supplied the shipment departs immediately.
type CreateShipmentWithOrdersCommand struct { //nolint:recvcheck //using for validation
	shipmentID kernel.UUID
	routeID    *kernel.UUID
	dcID       kernel.UUID
	branches   []BranchOrderInput
	truckID    *kernel.UUID
	orderDate  time.Time

	guard guard.ConstructorGuard
}

// NewCreateShipmentWithOrdersCommand creates a compound shipment creation
// command. The route identifier is informational and optional.
func NewCreateShipmentWithOrdersCommand(
	shipmentID kernel.UUID,
	routeID *kernel.UUID,
	dcID kernel.UUID,
	branches []BranchOrderInput,
	truckID *kernel.UUID,
	orderDate time.Time,
) (CreateShipmentWithOrdersCommand, error) {
	cmd := CreateShipmentWithOrdersCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(shipmentID.Validate(), dcID.Validate()); err != nil {
		return CreateShipmentWithOrdersCommand{}, err
	}
	if len(branches) == 0 {
		return CreateShipmentWithOrdersCommand{}, ErrBranchesAreRequired
	}
	if routeID != nil {
		if err := routeID.Validate(); err != nil {
			return CreateShipmentWithOrdersCommand{}, err
		}
	}
	if truckID != nil {
		if err := truckID.Validate(); err != nil {
			return CreateShipmentWithOrdersCommand{}, err
		}
	}

	cmd.shipmentID = shipmentID
	cmd.routeID = routeID
	cmd.dcID = dcID
	cmd.branches = branches
	cmd.truckID = truckID
	cmd.orderDate = orderDate
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateShipmentWithOrdersCommand) Validate() error {
	return c.guard.Validate(ErrCreateShipmentWithOrdersCommandIsNotConstructed)
}

// ShipmentID returns the identifier for the new shipment.
func (c CreateShipmentWithOrdersCommand) ShipmentID() kernel.UUID {
	return c.shipmentID
}

// RouteID returns the optional route the shipment follows.
func (c CreateShipmentWithOrdersCommand) RouteID() *kernel.UUID {
	return c.routeID
}

// DCID returns the distribution center the shipment departs from.
func (c CreateShipmentWithOrdersCommand) DCID() kernel.UUID {
	return c.dcID
}

// Branches returns the per-branch order payloads.
func (c CreateShipmentWithOrdersCommand) Branches() []BranchOrderInput {
	return c.branches
}

// TruckID returns the truck to bind immediately, or nil.
func (c CreateShipmentWithOrdersCommand) TruckID() *kernel.UUID {
	return c.truckID
}

// OrderDate returns the order date stamped on every created order.
func (c CreateShipmentWithOrdersCommand) OrderDate() time.Time {
	return c.orderDate
}
