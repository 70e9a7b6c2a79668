package commands_test

import (
	"testing"
	"time"

	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/order"
	"logistics/internal/core/domain/model/product"
	"logistics/internal/core/domain/model/shipment"
	"logistics/internal/core/domain/model/truck"
	"logistics/internal/core/domain/services"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func testCalculator(t *testing.T) services.CargoCalculator {
	t.Helper()
	calc, err := services.NewCargoCalculator(services.DefaultBoxVolume)
	require.NoError(t, err)
	return calc
}

func testProduct(t *testing.T, id kernel.UUID, price float64, volume float64) *product.Product {
	t.Helper()
	p, err := product.NewProduct(id, "test product", decimal.NewFromFloat(price), nil, &volume)
	require.NoError(t, err)
	return p
}

func testOrder(t *testing.T, volume float64) *order.Order {
	t.Helper()
	line, err := order.NewLine(kernel.NewUUID(), 1, time.Now())
	require.NoError(t, err)
	o, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), time.Now(),
		[]order.Line{line}, decimal.NewFromInt(25), volume, 1)
	require.NoError(t, err)
	return o
}

func testOutboundShipment(t *testing.T) *shipment.Shipment {
	t.Helper()
	origin, err := shipment.NewEndpoint(shipment.KindDC, kernel.NewUUID())
	require.NoError(t, err)
	dest, err := shipment.NewEndpoint(shipment.KindBranch, kernel.NewUUID())
	require.NoError(t, err)
	s, err := shipment.NewShipment(kernel.NewUUID(), origin, dest, shipment.Outbound)
	require.NoError(t, err)
	return s
}

func testInboundShipment(t *testing.T) *shipment.Shipment {
	t.Helper()
	origin, err := shipment.NewEndpoint(shipment.KindManufacturer, kernel.NewUUID())
	require.NoError(t, err)
	dest, err := shipment.NewEndpoint(shipment.KindDC, kernel.NewUUID())
	require.NoError(t, err)
	s, err := shipment.NewShipment(kernel.NewUUID(), origin, dest, shipment.Inbound)
	require.NoError(t, err)
	return s
}

func testTruck(t *testing.T, capacity float64) *truck.Truck {
	t.Helper()
	tr, err := truck.NewTruck(kernel.NewUUID(), "3CD-7788", capacity, truck.TierAny)
	require.NoError(t, err)
	return tr
}

func testLineInput(t *testing.T, productID kernel.UUID, quantity int) commands.OrderLineInput {
	t.Helper()
	l, err := commands.NewOrderLineInput(productID, quantity, time.Now())
	require.NoError(t, err)
	return l
}

func idPtr(id kernel.UUID) *kernel.UUID {
	return &id
}

func decimalFromFloat(f float64) decimal.Decimal {
	return decimal.NewFromFloat(f)
}

func nowForTest() time.Time {
	return time.Date(2025, 6, 15, 10, 30, 0, 0, time.UTC)
}
