package commands

import (
	"errors"
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/guard"
)

var (
	ErrCreateReturnCommandIsNotConstructed = errors.New(
		"CreateReturnCommand must be created via NewCreateReturnCommand constructor",
	)
	ErrReturnLinesAreRequired = errors.New("at least one return line is required")
)

// ReturnLineInput is one returned product position of an incoming return
// payload.
type ReturnLineInput struct {
	productID kernel.UUID
	quantity  int
	reason    string
}

// NewReturnLineInput validates a single return position.
func NewReturnLineInput(productID kernel.UUID, quantity int, reason string) (ReturnLineInput, error) {
	if err := productID.Validate(); err != nil {
		return ReturnLineInput{}, err
	}
	if quantity <= 0 {
		return ReturnLineInput{}, ErrLineQuantityIsInvalid
	}
	return ReturnLineInput{productID: productID, quantity: quantity, reason: reason}, nil
}

// ProductID returns the catalog identifier of the position.
func (l ReturnLineInput) ProductID() kernel.UUID {
	return l.productID
}

// Quantity returns the returned quantity.
func (l ReturnLineInput) Quantity() int {
	return l.quantity
}

// Reason returns why the goods come back.
func (l ReturnLineInput) Reason() string {
	return l.reason
}

// CreateReturnCommand represents a request to raise a return against an
// existing order.
type CreateReturnCommand struct { //nolint:recvcheck //using for validation
	returnID   kernel.UUID
	orderID    kernel.UUID
	returnDate time.Time
	lines      []ReturnLineInput

	guard guard.ConstructorGuard
}

// NewCreateReturnCommand creates a command to raise a return.
func NewCreateReturnCommand(
	returnID kernel.UUID,
	orderID kernel.UUID,
	returnDate time.Time,
	lines []ReturnLineInput,
) (CreateReturnCommand, error) {
	cmd := CreateReturnCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(returnID.Validate(), orderID.Validate()); err != nil {
		return CreateReturnCommand{}, err
	}
	if len(lines) == 0 {
		return CreateReturnCommand{}, ErrReturnLinesAreRequired
	}

	cmd.returnID = returnID
	cmd.orderID = orderID
	cmd.returnDate = returnDate
	cmd.lines = lines
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateReturnCommand) Validate() error {
	return c.guard.Validate(ErrCreateReturnCommandIsNotConstructed)
}

// ReturnID returns the identifier for the new return.
func (c CreateReturnCommand) ReturnID() kernel.UUID {
	return c.returnID
}

// OrderID returns the order being reversed.
func (c CreateReturnCommand) OrderID() kernel.UUID {
	return c.orderID
}

// ReturnDate returns when the branch raised the return.
func (c CreateReturnCommand) ReturnDate() time.Time {
	return c.returnDate
}

// Lines returns the returned positions.
func (c CreateReturnCommand) Lines() []ReturnLineInput {
	return c.lines
}
