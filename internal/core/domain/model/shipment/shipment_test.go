package shipment_test

import (
	"testing"
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/order"
	"logistics/internal/core/domain/model/shipment"
	"logistics/internal/core/domain/model/truck"
	"logistics/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func makeEndpoint(t *testing.T, kind shipment.EndpointKind) shipment.Endpoint {
	t.Helper()
	e, err := shipment.NewEndpoint(kind, kernel.NewUUID())
	require.NoError(t, err)
	return e
}

func makeOutbound(t *testing.T) *shipment.Shipment {
	t.Helper()
	s, err := shipment.NewShipment(
		kernel.NewUUID(),
		makeEndpoint(t, shipment.KindDC),
		makeEndpoint(t, shipment.KindBranch),
		shipment.Outbound,
	)
	require.NoError(t, err)
	return s
}

func makeInbound(t *testing.T) *shipment.Shipment {
	t.Helper()
	s, err := shipment.NewShipment(
		kernel.NewUUID(),
		makeEndpoint(t, shipment.KindManufacturer),
		makeEndpoint(t, shipment.KindDC),
		shipment.Inbound,
	)
	require.NoError(t, err)
	return s
}

func makeOrderWithVolume(t *testing.T, volume float64) *order.Order {
	t.Helper()
	line, err := order.NewLine(kernel.NewUUID(), 1, time.Now())
	require.NoError(t, err)
	o, err := order.NewOrder(
		kernel.NewUUID(), kernel.NewUUID(), time.Now(),
		[]order.Line{line}, decimal.NewFromInt(100), volume, 1,
	)
	require.NoError(t, err)
	return o
}

func makeTruck(t *testing.T, capacity float64) *truck.Truck {
	t.Helper()
	tr, err := truck.NewTruck(kernel.NewUUID(), "1AB-2345", capacity, truck.TierAny)
	require.NoError(t, err)
	return tr
}

func TestNewShipment(t *testing.T) {
	s := makeOutbound(t)
	assert.Equal(t, shipment.Draft, s.Status())
	assert.Nil(t, s.TruckID())
	assert.Zero(t, s.TotalVolume())
	assert.Empty(t, s.OrderIDs())
}

func TestNewShipment_ManufacturerDestinationRejected(t *testing.T) {
	_, err := shipment.NewShipment(
		kernel.NewUUID(),
		makeEndpoint(t, shipment.KindDC),
		makeEndpoint(t, shipment.KindManufacturer),
		shipment.Outbound,
	)
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestNewDestination(t *testing.T) {
	_, err := shipment.NewDestination(shipment.KindManufacturer, kernel.NewUUID())
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)

	_, err = shipment.NewDestination(shipment.KindBranch, kernel.NewUUID())
	require.NoError(t, err)
}

func TestShipment_Tier(t *testing.T) {
	assert.Equal(t, truck.TierLinehaul, makeInbound(t).Tier())
	assert.Equal(t, truck.TierLastMile, makeOutbound(t).Tier())

	s, err := shipment.NewShipment(
		kernel.NewUUID(),
		makeEndpoint(t, shipment.KindBranch),
		makeEndpoint(t, shipment.KindDC),
		shipment.Inbound,
	)
	require.NoError(t, err)
	assert.Equal(t, truck.TierAny, s.Tier())
}

func TestShipment_Attach(t *testing.T) {
	t.Run("accumulates rolling volume", func(t *testing.T) {
		s := makeOutbound(t)

		require.NoError(t, s.Attach(makeOrderWithVolume(t, 4.0)))
		require.NoError(t, s.Attach(makeOrderWithVolume(t, 6.0)))

		assert.InDelta(t, 10.0, s.TotalVolume(), 1e-9)
		assert.Len(t, s.OrderIDs(), 2)
	})

	t.Run("binds the order back", func(t *testing.T) {
		s := makeOutbound(t)
		o := makeOrderWithVolume(t, 1.0)

		require.NoError(t, s.Attach(o))
		require.NotNil(t, o.ShipmentID())
		assert.True(t, o.ShipmentID().IsEqual(s.ID()))
		assert.True(t, s.HasOrder(o.ID()))
	})

	t.Run("order already elsewhere", func(t *testing.T) {
		s := makeOutbound(t)
		o := makeOrderWithVolume(t, 1.0)
		require.NoError(t, o.AttachToShipment(kernel.NewUUID()))

		assert.ErrorIs(t, s.Attach(o), errs.ErrConflict)
		assert.Zero(t, s.TotalVolume())
	})

	t.Run("in transit attachment mirrors status", func(t *testing.T) {
		s := makeOutbound(t)
		require.NoError(t, s.Attach(makeOrderWithVolume(t, 1.0)))
		require.NoError(t, s.AssignTruck(makeTruck(t, 5)))
		require.NoError(t, s.Start(time.Now()))

		late := makeOrderWithVolume(t, 1.0)
		require.NoError(t, s.Attach(late))
		assert.Equal(t, order.InTransit, late.Status())
	})

	t.Run("terminal shipment refuses orders", func(t *testing.T) {
		s := makeOutbound(t)
		require.NoError(t, s.Attach(makeOrderWithVolume(t, 1.0)))
		require.NoError(t, s.AssignTruck(makeTruck(t, 5)))
		require.NoError(t, s.Start(time.Now()))
		require.NoError(t, s.Complete(time.Now()))

		assert.ErrorIs(t, s.Attach(makeOrderWithVolume(t, 1.0)), shipment.ErrShipmentClosed)
	})
}

func TestShipment_AssignTruck(t *testing.T) {
	t.Run("capacity exceeded reports both values", func(t *testing.T) {
		s := makeOutbound(t)
		require.NoError(t, s.Attach(makeOrderWithVolume(t, 10.0)))

		tr := makeTruck(t, 8.0)
		err := s.AssignTruck(tr)

		var capErr *shipment.CapacityExceededError
		require.ErrorAs(t, err, &capErr)
		assert.InDelta(t, 10.0, capErr.ShipmentVolume, 1e-9)
		assert.InDelta(t, 8.0, capErr.TruckCapacity, 1e-9)
		assert.ErrorIs(t, err, errs.ErrConflict)
		// failed binding must not reserve the truck
		assert.Equal(t, truck.Available, tr.Status())
	})

	t.Run("success reserves the truck", func(t *testing.T) {
		s := makeOutbound(t)
		require.NoError(t, s.Attach(makeOrderWithVolume(t, 10.0)))

		tr := makeTruck(t, 12.0)
		require.NoError(t, s.AssignTruck(tr))
		assert.Equal(t, truck.Busy, tr.Status())
		require.NotNil(t, s.TruckID())
		assert.True(t, s.TruckID().IsEqual(tr.ID()))
	})

	t.Run("busy truck rejected", func(t *testing.T) {
		s := makeOutbound(t)
		tr := makeTruck(t, 12.0)
		require.NoError(t, tr.Reserve())

		assert.ErrorIs(t, s.AssignTruck(tr), truck.ErrTruckNotAvailable)
	})

	t.Run("draft only", func(t *testing.T) {
		s := makeOutbound(t)
		require.NoError(t, s.Attach(makeOrderWithVolume(t, 1.0)))
		require.NoError(t, s.AssignTruck(makeTruck(t, 5)))
		require.NoError(t, s.Start(time.Now()))

		assert.ErrorIs(t, s.AssignTruck(makeTruck(t, 20)), shipment.ErrShipmentNotDraft)
	})
}

func TestShipment_Start(t *testing.T) {
	t.Run("requires truck", func(t *testing.T) {
		s := makeOutbound(t)
		require.NoError(t, s.Attach(makeOrderWithVolume(t, 1.0)))
		assert.ErrorIs(t, s.Start(time.Now()), shipment.ErrNoTruckAssigned)
	})

	t.Run("requires orders", func(t *testing.T) {
		s := makeOutbound(t)
		require.NoError(t, s.AssignTruck(makeTruck(t, 5)))
		assert.ErrorIs(t, s.Start(time.Now()), shipment.ErrEmptyShipment)
	})

	t.Run("records departure", func(t *testing.T) {
		s := makeOutbound(t)
		require.NoError(t, s.Attach(makeOrderWithVolume(t, 1.0)))
		require.NoError(t, s.AssignTruck(makeTruck(t, 5)))

		now := time.Now()
		require.NoError(t, s.Start(now))
		assert.Equal(t, shipment.InTransit, s.Status())
		require.NotNil(t, s.DepartureTime())
		assert.Equal(t, now, *s.DepartureTime())
	})

	t.Run("cannot start twice", func(t *testing.T) {
		s := makeOutbound(t)
		require.NoError(t, s.Attach(makeOrderWithVolume(t, 1.0)))
		require.NoError(t, s.AssignTruck(makeTruck(t, 5)))
		require.NoError(t, s.Start(time.Now()))

		assert.ErrorIs(t, s.Start(time.Now()), shipment.ErrShipmentNotDraft)
	})
}

func TestShipment_Complete(t *testing.T) {
	t.Run("outbound path", func(t *testing.T) {
		s := makeOutbound(t)
		require.NoError(t, s.Attach(makeOrderWithVolume(t, 1.0)))
		require.NoError(t, s.AssignTruck(makeTruck(t, 5)))
		require.NoError(t, s.Start(time.Now()))

		require.NoError(t, s.Complete(time.Now()))
		assert.Equal(t, shipment.Delivered, s.Status())
		assert.NotNil(t, s.ArrivalTime())
	})

	t.Run("inbound rejected", func(t *testing.T) {
		s := makeInbound(t)
		assert.ErrorIs(t, s.Complete(time.Now()), shipment.ErrInboundMustBeReceived)
	})

	t.Run("draft rejected", func(t *testing.T) {
		s := makeOutbound(t)
		assert.ErrorIs(t, s.Complete(time.Now()), shipment.ErrShipmentNotInTransit)
	})
}

func TestShipment_Receive(t *testing.T) {
	t.Run("inbound path records receipt", func(t *testing.T) {
		s := makeInbound(t)
		require.NoError(t, s.Attach(makeOrderWithVolume(t, 1.0)))
		require.NoError(t, s.AssignTruck(makeTruck(t, 5)))
		require.NoError(t, s.Start(time.Now()))

		require.NoError(t, s.Receive(time.Now(), "dock 4", "two crates crushed"))
		assert.Equal(t, shipment.Received, s.Status())
		assert.Equal(t, "dock 4", s.ReceiptNotes())
		assert.Equal(t, "two crates crushed", s.ReceiptDamage())
	})

	t.Run("outbound rejected", func(t *testing.T) {
		s := makeOutbound(t)
		assert.ErrorIs(t, s.Receive(time.Now(), "", ""), shipment.ErrOutboundCannotBeReceived)
	})

	t.Run("strictly in transit", func(t *testing.T) {
		s := makeInbound(t)
		assert.ErrorIs(t, s.Receive(time.Now(), "", ""), shipment.ErrShipmentNotInTransit)
	})
}

func TestShipment_SeedVolume(t *testing.T) {
	s := makeInbound(t)
	require.NoError(t, s.SeedVolume(42.5))
	assert.InDelta(t, 42.5, s.TotalVolume(), 1e-9)

	assert.ErrorIs(t, s.SeedVolume(-1), errs.ErrValueIsInvalid)

	require.NoError(t, s.Attach(makeOrderWithVolume(t, 1.0)))
	require.NoError(t, s.AssignTruck(makeTruck(t, 50)))
	require.NoError(t, s.Start(time.Now()))
	assert.ErrorIs(t, s.SeedVolume(10), shipment.ErrShipmentNotDraft)
}

func TestStatus_Strings(t *testing.T) {
	assert.Equal(t, "Draft", shipment.Draft.String())
	assert.Equal(t, "In Transit", shipment.InTransit.String())
	assert.Equal(t, "Delivered", shipment.Delivered.String())
	assert.Equal(t, "Received", shipment.Received.String())
}

func TestParseEndpointKind(t *testing.T) {
	k, err := shipment.ParseEndpointKind("dc")
	require.NoError(t, err)
	assert.Equal(t, shipment.KindDC, k)

	_, err = shipment.ParseEndpointKind("warehouse")
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
}
