package services

import (
	"logistics/internal/core/domain/model/shipment"
	"logistics/internal/core/domain/model/truck"
	"logistics/internal/pkg/errs"
)

// ErrNoSuitableTruck is returned when no available truck can carry the
// shipment's cargo. This occurs when either no trucks are provided or
// every candidate is too small, unavailable, or serves a different
// transport tier.
var ErrNoSuitableTruck = errs.NewConflictError("no suitable truck available")

// TruckAllocator is a domain service responsible for finding and binding
// the optimal truck for a draft shipment.
//
// Selection criteria:
//   - Truck must be available
//   - Truck tier must match the shipment's route tier
//   - Truck capacity must cover the shipment's total volume
//   - Among fitting trucks, the smallest capacity wins
//   - Capacity ties break on the lexicographically smaller truck ID,
//     keeping allocation deterministic across runs
type TruckAllocator struct{}

// NewTruckAllocator creates a new TruckAllocator instance.
func NewTruckAllocator() TruckAllocator {
	return TruckAllocator{}
}

// Allocate finds the best-fitting truck for the shipment and executes the
// assignment workflow: the truck is reserved and bound to the shipment.
// Returns ErrNoSuitableTruck when no candidate fits.
func (a TruckAllocator) Allocate(s *shipment.Shipment, trucks []*truck.Truck) (*truck.Truck, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}

	best, err := a.findBestTruck(s, trucks)
	if err != nil {
		return nil, err
	}

	if err = s.AssignTruck(best); err != nil {
		return nil, err
	}

	return best, nil
}

// findBestTruck scans the candidates for the smallest truck that can carry
// the shipment on its tier.
func (a TruckAllocator) findBestTruck(s *shipment.Shipment, trucks []*truck.Truck) (*truck.Truck, error) {
	var best *truck.Truck
	demand := s.Tier()

	for _, t := range trucks {
		if err := t.Validate(); err != nil {
			return nil, err
		}

		if t.Status() != truck.Available {
			continue
		}
		if !t.Tier().Matches(demand) {
			continue
		}
		if !t.CanCarry(s.TotalVolume()) {
			continue
		}

		if best == nil || tighter(t, best) {
			best = t
		}
	}

	if best == nil {
		return nil, ErrNoSuitableTruck
	}

	return best, nil
}

// tighter reports whether candidate beats the current best: strictly
// smaller capacity, or equal capacity with a smaller ID.
func tighter(candidate, best *truck.Truck) bool {
	if candidate.CapacityM3() != best.CapacityM3() {
		return candidate.CapacityM3() < best.CapacityM3()
	}
	return candidate.ID().String() < best.ID().String()
}
