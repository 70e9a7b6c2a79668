package commands

import (
	"errors"

	"logistics/internal/pkg/guard"
)

var ErrDispatchTrucksCommandIsNotConstructed = errors.New(
	"DispatchTrucksCommand must be created via NewDispatchTrucksCommand constructor",
)

// DispatchTrucksCommand triggers the allocation of an available truck to a
// waiting draft shipment. This is the background counterpart of
// AutoAssignTruckCommand: it finds the oldest draft shipment that has cargo
// but no truck and binds the best fit.
//
// Example:
//
//	cmd := NewDispatchTrucksCommand()
//	handler := NewDispatchTrucksCommandHandler(uowFactory)
//	err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    log.Printf("Nothing to dispatch or fleet exhausted: %v", err)
//	}
type DispatchTrucksCommand struct {
	guard guard.ConstructorGuard
}

// NewDispatchTrucksCommand creates a new command to trigger truck dispatch.
// This is a parameterless command.
func NewDispatchTrucksCommand() DispatchTrucksCommand {
	return DispatchTrucksCommand{
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the command was created through the constructor.
func (c *DispatchTrucksCommand) Validate() error {
	return c.guard.Validate(
		ErrDispatchTrucksCommandIsNotConstructed,
	)
}
