package commands

import (
	"context"
	"errors"
	"fmt"
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/order"
	"logistics/internal/core/domain/services"
	"logistics/internal/core/ports"
	"logistics/internal/pkg/errs"
)

var ErrLineQuantityIsInvalid = errors.New("line quantity must be greater than 0")

// OrderLineInput is one product position of an incoming order payload.
// Constructed via NewOrderLineInput so a zero value never reaches a handler.
type OrderLineInput struct {
	productID      kernel.UUID
	quantity       int
	productionDate time.Time
}

// NewOrderLineInput validates a single order position.
func NewOrderLineInput(productID kernel.UUID, quantity int, productionDate time.Time) (OrderLineInput, error) {
	if err := productID.Validate(); err != nil {
		return OrderLineInput{}, err
	}
	if quantity <= 0 {
		return OrderLineInput{}, ErrLineQuantityIsInvalid
	}

	return OrderLineInput{
		productID:      productID,
		quantity:       quantity,
		productionDate: productionDate,
	}, nil
}

// ProductID returns the catalog identifier of the position.
func (l OrderLineInput) ProductID() kernel.UUID {
	return l.productID
}

// Quantity returns the ordered quantity.
func (l OrderLineInput) Quantity() int {
	return l.quantity
}

// ProductionDate returns the requested production date.
func (l OrderLineInput) ProductionDate() time.Time {
	return l.productionDate
}

// resolveCargo loads the catalog products behind the given lines and pairs
// them into calculator items plus domain order lines. Every product must
// exist; a missing one fails the whole payload.
func resolveCargo(
	ctx context.Context,
	catalog ports.CatalogRepository,
	lines []OrderLineInput,
) ([]services.CargoItem, []order.Line, error) {
	ids := make([]kernel.UUID, 0, len(lines))
	for _, l := range lines {
		ids = append(ids, l.ProductID())
	}

	products, err := catalog.GetProductsByIDs(ctx, ids)
	if err != nil {
		return nil, nil, err
	}

	byID := make(map[kernel.UUID]int, len(products))
	for i, p := range products {
		byID[p.ID()] = i
	}

	items := make([]services.CargoItem, 0, len(lines))
	orderLines := make([]order.Line, 0, len(lines))
	for _, l := range lines {
		idx, ok := byID[l.ProductID()]
		if !ok {
			return nil, nil, errs.NewObjectNotFoundError("product", l.ProductID())
		}

		items = append(items, services.CargoItem{
			Product:  products[idx],
			Quantity: l.Quantity(),
		})

		orderLine, err := order.NewLine(l.ProductID(), l.Quantity(), l.ProductionDate())
		if err != nil {
			return nil, nil, fmt.Errorf("order line for product %s: %w", l.ProductID(), err)
		}
		orderLines = append(orderLines, orderLine)
	}

	return items, orderLines, nil
}
