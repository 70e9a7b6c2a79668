package commands

import (
	"context"

	"logistics/internal/core/domain/model/order"
	"logistics/internal/core/domain/model/shipment"
	"logistics/internal/core/domain/services"
	"logistics/internal/pkg/errs"
)

// CreateOrderCommandHandler handles the business logic for order creation.
// Resolves the payload against the catalog, derives money/volume/box totals,
// and persists the order in Pending status.
type CreateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	calculator services.CargoCalculator
}

// NewCreateOrderCommandHandler creates a handler for order creation operations.
// Requires an OrderUoWFactory for transactional persistence and a calculator
// for cargo totals.
func NewCreateOrderCommandHandler(
	uowFactory OrderUoWFactory,
	calculator services.CargoCalculator,
) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		calculator: calculator,
	}
}

// Handle processes the order creation command.
// The ordering branch must exist and every product must resolve; a single
// unknown product fails the whole payload. All writes happen in one
// transaction.
func (h CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) error {
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

	exists, err := catalogRepo.EndpointExists(ctx, shipment.KindBranch, cmd.BranchID())
	if err != nil {
		return err
	}
	if !exists {
		return errs.NewObjectNotFoundError("branch", cmd.BranchID())
	}

	items, lines, err := resolveCargo(ctx, catalogRepo, cmd.Lines())
	if err != nil {
		return err
	}

	totals, err := h.calculator.Totals(items)
	if err != nil {
		return err
	}

	newOrder, err := order.NewOrder(
		cmd.OrderID(),
		cmd.BranchID(),
		cmd.OrderDate(),
		lines,
		totals.Amount,
		totals.Volume,
		totals.Boxes,
	)
	if err != nil {
		return err
	}

	if err = orderRepo.Add(ctx, newOrder); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
