package services_test

import (
	"testing"
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/order"
	"logistics/internal/core/domain/model/product"
	"logistics/internal/core/domain/model/shipment"
	"logistics/internal/core/domain/model/truck"
	"logistics/internal/core/domain/services"
	"logistics/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func makeProduct(t *testing.T, price float64, volume float64) *product.Product {
	t.Helper()
	p, err := product.NewProduct(kernel.NewUUID(), "sku", decimal.NewFromFloat(price), nil, &volume)
	require.NoError(t, err)
	return p
}

func makeDimensionedProduct(t *testing.T, l, w, h float64) *product.Product {
	t.Helper()
	p, err := product.NewProduct(kernel.NewUUID(), "sku",
		decimal.NewFromInt(1), &product.Dimensions{Length: l, Width: w, Height: h}, nil)
	require.NoError(t, err)
	return p
}

func makeCalculator(t *testing.T) services.CargoCalculator {
	t.Helper()
	calc, err := services.NewCargoCalculator(services.DefaultBoxVolume)
	require.NoError(t, err)
	return calc
}

func TestNewCargoCalculator(t *testing.T) {
	_, err := services.NewCargoCalculator(0)
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)

	_, err = services.NewCargoCalculator(-0.5)
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestCargoCalculator_Totals(t *testing.T) {
	calc := makeCalculator(t)

	t.Run("sums price and volume", func(t *testing.T) {
		totals, err := calc.Totals([]services.CargoItem{
			{Product: makeProduct(t, 9.99, 0.02), Quantity: 3},
			{Product: makeProduct(t, 5.00, 0.05), Quantity: 2},
		})
		require.NoError(t, err)

		assert.True(t, totals.Amount.Equal(decimal.NewFromFloat(39.97)),
			"got %s", totals.Amount)
		assert.InDelta(t, 0.16, totals.Volume, 1e-9)
		// 0.16 / 0.036 = 4.44... -> 5 boxes
		assert.Equal(t, 5, totals.Boxes)
	})

	t.Run("derives volume from dimensions", func(t *testing.T) {
		// 30cm x 40cm x 30cm is exactly one standard box
		totals, err := calc.Totals([]services.CargoItem{
			{Product: makeDimensionedProduct(t, 30, 40, 30), Quantity: 2},
		})
		require.NoError(t, err)

		assert.InDelta(t, 0.072, totals.Volume, 1e-9)
		assert.Equal(t, 2, totals.Boxes)
	})

	t.Run("zero-volume product needs no boxes", func(t *testing.T) {
		p, err := product.NewProduct(kernel.NewUUID(), "flat pack", decimal.NewFromInt(2), nil, nil)
		require.NoError(t, err)

		totals, err := calc.Totals([]services.CargoItem{{Product: p, Quantity: 10}})
		require.NoError(t, err)

		assert.Zero(t, totals.Volume)
		assert.Zero(t, totals.Boxes)
		assert.True(t, totals.Amount.Equal(decimal.NewFromInt(20)))
	})

	t.Run("rejects non-positive quantity", func(t *testing.T) {
		_, err := calc.Totals([]services.CargoItem{
			{Product: makeProduct(t, 1, 0.01), Quantity: 0},
		})
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("rejects unconstructed product", func(t *testing.T) {
		_, err := calc.Totals([]services.CargoItem{
			{Product: &product.Product{}, Quantity: 1},
		})
		assert.ErrorIs(t, err, product.ErrProductIsNotConstructed)
	})
}

func TestCargoCalculator_Cartons(t *testing.T) {
	calc := makeCalculator(t)

	assert.Equal(t, 0, calc.Cartons(0))
	assert.Equal(t, 1, calc.Cartons(0.036))
	assert.Equal(t, 2, calc.Cartons(0.037))
	assert.Equal(t, 28, calc.Cartons(1.0))
}

// shared fixtures for allocator and reconciler tests

func makeDraftShipment(t *testing.T, originKind, destKind shipment.EndpointKind, typ shipment.Type) *shipment.Shipment {
	t.Helper()
	origin, err := shipment.NewEndpoint(originKind, kernel.NewUUID())
	require.NoError(t, err)
	dest, err := shipment.NewEndpoint(destKind, kernel.NewUUID())
	require.NoError(t, err)
	s, err := shipment.NewShipment(kernel.NewUUID(), origin, dest, typ)
	require.NoError(t, err)
	return s
}

func attachOrderWithVolume(t *testing.T, s *shipment.Shipment, volume float64) *order.Order {
	t.Helper()
	line, err := order.NewLine(kernel.NewUUID(), 1, time.Now())
	require.NoError(t, err)
	o, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), time.Now(),
		[]order.Line{line}, decimal.NewFromInt(50), volume, 1)
	require.NoError(t, err)
	require.NoError(t, s.Attach(o))
	return o
}

func makeTruckWithID(t *testing.T, id kernel.UUID, capacity float64, tier truck.Tier) *truck.Truck {
	t.Helper()
	tr, err := truck.NewTruck(id, "9ZX-0001", capacity, tier)
	require.NoError(t, err)
	return tr
}
