// Package product models the read-only product catalog: unit price,
// dimensions, and the precomputed volume that feeds cargo planning.
package product

import (
	"errors"
	"fmt"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// ErrProductIsNotConstructed is returned when a Product instance was not
// created through NewProduct.
var ErrProductIsNotConstructed = errors.New("Product must be created via NewProduct constructor")

// Dimensions holds a product's physical size in centimeters.
type Dimensions struct {
	Length float64
	Width  float64
	Height float64
}

// Volume converts the dimensions to cubic meters.
func (d Dimensions) Volume() float64 {
	return (d.Length / 100) * (d.Width / 100) * (d.Height / 100)
}

// Product is a catalog entity. Both the precomputed volume and the dimensions
// are optional: planning math prefers the precomputed volume, falls back to
// the dimensions, and degrades to zero volume per unit when neither is known.
// A missing volume never fails an operation.
type Product struct {
	id        kernel.UUID
	name      string
	unitPrice decimal.Decimal
	dims      *Dimensions
	volume    *float64

	isConstructed bool
}

// NewProduct creates a catalog product. Name must be non-empty, unit price
// non-negative, and when either dimensions or a precomputed volume are
// supplied they must be positive.
func NewProduct(
	id kernel.UUID,
	name string,
	unitPrice decimal.Decimal,
	dims *Dimensions,
	volume *float64,
) (*Product, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if name == "" {
		return nil, errs.NewValueIsRequiredError("product name")
	}
	if unitPrice.IsNegative() {
		return nil, errs.NewValueIsInvalidErrorWithCause("unit price",
			fmt.Errorf("%s is negative", unitPrice))
	}
	if dims != nil && (dims.Length <= 0 || dims.Width <= 0 || dims.Height <= 0) {
		return nil, errs.NewValueIsInvalidError("product dimensions")
	}
	if volume != nil && *volume <= 0 {
		return nil, errs.NewValueIsInvalidError("product volume")
	}

	return &Product{
		id:            id,
		name:          name,
		unitPrice:     unitPrice,
		dims:          dims,
		volume:        volume,
		isConstructed: true,
	}, nil
}

// Validate ensures the Product was created through its constructor.
func (p *Product) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrProductIsNotConstructed
	}
	return nil
}

// ID returns the product's unique identifier.
func (p *Product) ID() kernel.UUID {
	return p.id
}

// Name returns the product's display name.
func (p *Product) Name() string {
	return p.name
}

// UnitPrice returns the price per unit.
func (p *Product) UnitPrice() decimal.Decimal {
	return p.unitPrice
}

// Dimensions returns the product's physical size in centimeters, or nil when
// unknown.
func (p *Product) Dimensions() *Dimensions {
	return p.dims
}

// PrecomputedVolume returns the stored per-unit volume in cubic meters, or
// nil when it was never measured.
func (p *Product) PrecomputedVolume() *float64 {
	return p.volume
}

// UnitVolume returns the volume of a single unit in cubic meters: the
// precomputed volume when present and positive, otherwise the volume derived
// from the dimensions, otherwise 0.
func (p *Product) UnitVolume() float64 {
	if p.volume != nil && *p.volume > 0 {
		return *p.volume
	}
	if p.dims != nil {
		return p.dims.Volume()
	}
	return 0
}
