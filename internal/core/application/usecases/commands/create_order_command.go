package commands

import (
	"errors"
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
	ErrOrderLinesAreRequired = errors.New("at least one order line is required")
)

// CreateOrderCommand represents a request to register a new branch order.
// Encapsulates the ordering branch and its product positions; totals are
// derived by the handler from live catalog data.
//
// Example:
//
//	orderID := kernel.NewUUID()
//	line, _ := NewOrderLineInput(productID, 3, prodDate)
//	cmd, err := NewCreateOrderCommand(orderID, branchID, time.Now(), []OrderLineInput{line})
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	handler := NewCreateOrderCommandHandler(uowFactory, calculator)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to create order: %w", err)
//	}
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID   kernel.UUID
	branchID  kernel.UUID
	orderDate time.Time
	lines     []OrderLineInput

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to register a new order.
// Validates that both identifiers are valid and at least one line is given.
func NewCreateOrderCommand(
	orderID kernel.UUID,
	branchID kernel.UUID,
	orderDate time.Time,
	lines []OrderLineInput,
) (CreateOrderCommand, error) {
	orderCommand := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		orderCommand.setOrderID(orderID),
		orderCommand.setBranchID(branchID),
		orderCommand.setLines(lines),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	orderCommand.orderDate = orderDate
	return orderCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// OrderID returns the unique identifier for the new order.
func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// BranchID returns the ordering branch.
func (c CreateOrderCommand) BranchID() kernel.UUID {
	return c.branchID
}

// OrderDate returns when the branch placed the order.
func (c CreateOrderCommand) OrderDate() time.Time {
	return c.orderDate
}

// Lines returns the product positions of the order.
func (c CreateOrderCommand) Lines() []OrderLineInput {
	return c.lines
}

func (c *CreateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setBranchID(branchID kernel.UUID) error {
	if err := branchID.Validate(); err != nil {
		return err
	}

	c.branchID = branchID
	return nil
}

func (c *CreateOrderCommand) setLines(lines []OrderLineInput) error {
	if len(lines) == 0 {
		return ErrOrderLinesAreRequired
	}

	c.lines = lines
	return nil
}
