package services

import (
	"fmt"
	"math"

	"logistics/internal/core/domain/model/product"
	"logistics/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// DefaultBoxVolume is the volume of one standard shipping box in cubic
// meters (30cm x 40cm x 30cm).
const DefaultBoxVolume = 0.036

// CargoItem is one product position to be valued and measured.
type CargoItem struct {
	Product  *product.Product
	Quantity int
}

// CargoTotals is the aggregated outcome of a calculation: order value,
// occupied volume in cubic meters, and the number of standard boxes the
// cargo packs into.
type CargoTotals struct {
	Amount decimal.Decimal
	Volume float64
	Boxes  int
}

// CargoCalculator is a domain service that turns product quantities into
// the money, volume, and box figures the rest of the system plans around.
//
// Business rules:
//   - Unit volume comes from the product: precomputed when present,
//     otherwise derived from dimensions, otherwise zero
//   - Box count is the ceiling of total volume over the box volume
//   - A cargo with zero volume needs zero boxes
type CargoCalculator struct {
	boxVolume float64
}

// NewCargoCalculator creates a calculator with the given box volume in
// cubic meters. Box volume must be positive.
func NewCargoCalculator(boxVolume float64) (CargoCalculator, error) {
	if boxVolume <= 0 {
		return CargoCalculator{}, errs.NewValueIsInvalidErrorWithCause("box volume",
			fmt.Errorf("%g is not greater than 0", boxVolume))
	}
	return CargoCalculator{boxVolume: boxVolume}, nil
}

// BoxVolume returns the volume of one standard box in cubic meters.
func (c CargoCalculator) BoxVolume() float64 {
	return c.boxVolume
}

// Totals sums price and volume over the items and derives the box count
// from the accumulated volume.
func (c CargoCalculator) Totals(items []CargoItem) (CargoTotals, error) {
	totals := CargoTotals{Amount: decimal.Zero}

	for _, item := range items {
		if err := item.Product.Validate(); err != nil {
			return CargoTotals{}, err
		}
		if item.Quantity <= 0 {
			return CargoTotals{}, errs.NewValueIsInvalidErrorWithCause("quantity",
				fmt.Errorf("%d is not greater than 0", item.Quantity))
		}

		qty := decimal.NewFromInt(int64(item.Quantity))
		totals.Amount = totals.Amount.Add(item.Product.UnitPrice().Mul(qty))
		totals.Volume += item.Product.UnitVolume() * float64(item.Quantity)
	}

	totals.Boxes = c.Cartons(totals.Volume)
	return totals, nil
}

// Cartons returns how many standard boxes the given volume occupies,
// rounded up. Zero or negative volume needs no boxes.
func (c CargoCalculator) Cartons(volumeM3 float64) int {
	if volumeM3 <= 0 {
		return 0
	}
	return int(math.Ceil(volumeM3 / c.boxVolume))
}
