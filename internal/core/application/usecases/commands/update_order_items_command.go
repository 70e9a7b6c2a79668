package commands

import (
	"errors"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/guard"
)

var ErrUpdateOrderItemsCommandIsNotConstructed = errors.New(
	"UpdateOrderItemsCommand must be created via NewUpdateOrderItemsCommand constructor",
)

// UpdateOrderItemsCommand represents a request to replace the full line set
// of an existing order. Totals are recomputed by the handler; shipment
// membership is untouched.
type UpdateOrderItemsCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	lines   []OrderLineInput

	guard guard.ConstructorGuard
}

// NewUpdateOrderItemsCommand creates a command to replace an order's lines.
func NewUpdateOrderItemsCommand(orderID kernel.UUID, lines []OrderLineInput) (UpdateOrderItemsCommand, error) {
	cmd := UpdateOrderItemsCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := orderID.Validate(); err != nil {
		return UpdateOrderItemsCommand{}, err
	}
	if len(lines) == 0 {
		return UpdateOrderItemsCommand{}, ErrOrderLinesAreRequired
	}

	cmd.orderID = orderID
	cmd.lines = lines
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateOrderItemsCommand) Validate() error {
	return c.guard.Validate(ErrUpdateOrderItemsCommandIsNotConstructed)
}

// OrderID returns the order being edited.
func (c UpdateOrderItemsCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Lines returns the replacement product positions.
func (c UpdateOrderItemsCommand) Lines() []OrderLineInput {
	return c.lines
}
