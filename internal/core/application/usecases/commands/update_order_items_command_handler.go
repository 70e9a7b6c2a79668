package commands

import (
	"context"

	"logistics/internal/core/domain/services"
)

// UpdateOrderItemsCommandHandler replaces an order's lines with a fresh set
// and recomputes its totals from live catalog data. Lines are swapped
// wholesale: the persistence layer deletes the old rows and inserts the new
// ones in the same transaction.
type UpdateOrderItemsCommandHandler struct {
	uowFactory OrderUoWFactory
	calculator services.CargoCalculator
}

// NewUpdateOrderItemsCommandHandler creates a handler for order edits.
func NewUpdateOrderItemsCommandHandler(
	uowFactory OrderUoWFactory,
	calculator services.CargoCalculator,
) UpdateOrderItemsCommandHandler {
	return UpdateOrderItemsCommandHandler{
		uowFactory: uowFactory,
		calculator: calculator,
	}
}

// Handle processes the order edit command.
func (h UpdateOrderItemsCommandHandler) Handle(ctx context.Context, cmd UpdateOrderItemsCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	catalogRepo := uow.CatalogRepository()
	orderRepo := uow.OrderRepository()

	existing, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	items, lines, err := resolveCargo(ctx, catalogRepo, cmd.Lines())
	if err != nil {
		return err
	}

	totals, err := h.calculator.Totals(items)
	if err != nil {
		return err
	}

	if err = existing.ReplaceLines(lines, totals.Amount, totals.Volume, totals.Boxes); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, existing); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
