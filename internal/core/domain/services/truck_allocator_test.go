package services_test

import (
	"sort"
	"testing"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/shipment"
	"logistics/internal/core/domain/model/truck"
	"logistics/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTruckAllocator_Allocate(t *testing.T) {
	allocator := services.NewTruckAllocator()

	t.Run("picks smallest truck that fits", func(t *testing.T) {
		s := makeDraftShipment(t, shipment.KindDC, shipment.KindBranch, shipment.Outbound)
		attachOrderWithVolume(t, s, 6.0)

		small := makeTruckWithID(t, kernel.NewUUID(), 5.0, truck.TierAny)
		medium := makeTruckWithID(t, kernel.NewUUID(), 8.0, truck.TierAny)
		large := makeTruckWithID(t, kernel.NewUUID(), 12.0, truck.TierAny)

		best, err := allocator.Allocate(s, []*truck.Truck{large, small, medium})
		require.NoError(t, err)

		assert.True(t, best.ID().IsEqual(medium.ID()))
		assert.Equal(t, truck.Busy, best.Status())
		assert.Equal(t, truck.Available, small.Status())
		assert.Equal(t, truck.Available, large.Status())
		require.NotNil(t, s.TruckID())
		assert.True(t, s.TruckID().IsEqual(medium.ID()))
	})

	t.Run("capacity tie breaks on lower id", func(t *testing.T) {
		s := makeDraftShipment(t, shipment.KindDC, shipment.KindBranch, shipment.Outbound)
		attachOrderWithVolume(t, s, 6.0)

		ids := []kernel.UUID{kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID()}
		sort.Slice(ids, func(i, j int) bool { return ids[i].String() < ids[j].String() })

		first := makeTruckWithID(t, ids[2], 8.0, truck.TierAny)
		second := makeTruckWithID(t, ids[0], 8.0, truck.TierAny)
		third := makeTruckWithID(t, ids[1], 8.0, truck.TierAny)

		best, err := allocator.Allocate(s, []*truck.Truck{first, second, third})
		require.NoError(t, err)
		assert.True(t, best.ID().IsEqual(ids[0]))
	})

	t.Run("skips busy trucks", func(t *testing.T) {
		s := makeDraftShipment(t, shipment.KindDC, shipment.KindBranch, shipment.Outbound)
		attachOrderWithVolume(t, s, 6.0)

		busy := makeTruckWithID(t, kernel.NewUUID(), 8.0, truck.TierAny)
		require.NoError(t, busy.Reserve())
		free := makeTruckWithID(t, kernel.NewUUID(), 12.0, truck.TierAny)

		best, err := allocator.Allocate(s, []*truck.Truck{busy, free})
		require.NoError(t, err)
		assert.True(t, best.ID().IsEqual(free.ID()))
	})

	t.Run("respects transport tier", func(t *testing.T) {
		// manufacturer -> DC is linehaul territory
		s := makeDraftShipment(t, shipment.KindManufacturer, shipment.KindDC, shipment.Inbound)
		attachOrderWithVolume(t, s, 2.0)

		lastMile := makeTruckWithID(t, kernel.NewUUID(), 5.0, truck.TierLastMile)
		linehaul := makeTruckWithID(t, kernel.NewUUID(), 20.0, truck.TierLinehaul)

		best, err := allocator.Allocate(s, []*truck.Truck{lastMile, linehaul})
		require.NoError(t, err)
		assert.True(t, best.ID().IsEqual(linehaul.ID()))
	})

	t.Run("untiered truck serves any route", func(t *testing.T) {
		s := makeDraftShipment(t, shipment.KindManufacturer, shipment.KindDC, shipment.Inbound)
		attachOrderWithVolume(t, s, 2.0)

		universal := makeTruckWithID(t, kernel.NewUUID(), 5.0, truck.TierAny)

		best, err := allocator.Allocate(s, []*truck.Truck{universal})
		require.NoError(t, err)
		assert.True(t, best.ID().IsEqual(universal.ID()))
	})

	t.Run("no truck fits", func(t *testing.T) {
		s := makeDraftShipment(t, shipment.KindDC, shipment.KindBranch, shipment.Outbound)
		attachOrderWithVolume(t, s, 50.0)

		tiny := makeTruckWithID(t, kernel.NewUUID(), 5.0, truck.TierAny)

		_, err := allocator.Allocate(s, []*truck.Truck{tiny})
		assert.ErrorIs(t, err, services.ErrNoSuitableTruck)
	})

	t.Run("empty fleet", func(t *testing.T) {
		s := makeDraftShipment(t, shipment.KindDC, shipment.KindBranch, shipment.Outbound)

		_, err := allocator.Allocate(s, nil)
		assert.ErrorIs(t, err, services.ErrNoSuitableTruck)
	})
}
