package commands

import (
	"context"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/returns"
	"logistics/internal/pkg/errs"
)

// CreateReturnCommandHandler raises a pending return against an existing
// order. The return's volume is taken from the catalog's precomputed
// per-unit volumes; products without one contribute nothing.
type CreateReturnCommandHandler struct {
	uowFactory UoWFactory
}

// NewCreateReturnCommandHandler creates a handler for return creation.
func NewCreateReturnCommandHandler(uowFactory UoWFactory) CreateReturnCommandHandler {
	return CreateReturnCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the return creation command.
func (h CreateReturnCommandHandler) Handle(ctx context.Context, cmd CreateReturnCommand) error {
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
	returnRepo := uow.ReturnRepository()

	if _, err := orderRepo.Get(ctx, cmd.OrderID()); err != nil {
		return err
	}

	ids := make([]kernel.UUID, 0, len(cmd.Lines()))
	for _, l := range cmd.Lines() {
		ids = append(ids, l.ProductID())
	}
	products, err := catalogRepo.GetProductsByIDs(ctx, ids)
	if err != nil {
		return err
	}
	volumeByID := make(map[kernel.UUID]*float64, len(products))
	for _, p := range products {
		volumeByID[p.ID()] = p.PrecomputedVolume()
	}

	var totalVolume float64
	lines := make([]returns.Line, 0, len(cmd.Lines()))
	for _, l := range cmd.Lines() {
		unitVolume, ok := volumeByID[l.ProductID()]
		if !ok {
			return errs.NewObjectNotFoundError("product", l.ProductID())
		}
		if unitVolume != nil {
			totalVolume += *unitVolume * float64(l.Quantity())
		}

		line, err := returns.NewLine(l.ProductID(), l.Quantity(), l.Reason())
		if err != nil {
			return err
		}
		lines = append(lines, line)
	}

	newReturn, err := returns.NewReturn(cmd.ReturnID(), cmd.OrderID(), cmd.ReturnDate(), lines, totalVolume)
	if err != nil {
		return err
	}

	if err = returnRepo.Add(ctx, newReturn); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
