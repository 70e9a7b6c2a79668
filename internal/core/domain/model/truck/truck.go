// Package truck models the fleet: capacity, transport tier, and the
// availability state machine that enforces truck mutual exclusion between
// shipments.
package truck

import (
	"errors"
	"fmt"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"
)

var (
	// ErrTruckIsNotConstructed is returned when a Truck instance was not
	// created through NewTruck or RestoreTruck.
	ErrTruckIsNotConstructed = errors.New("Truck must be created via NewTruck constructor")

	// ErrTruckNotAvailable is returned when reserving a truck that is busy
	// or in maintenance.
	ErrTruckNotAvailable = errs.NewConflictError("truck is not available")

	// ErrTruckNotBusy is returned when releasing a truck that holds no
	// shipment.
	ErrTruckNotBusy = errs.NewConflictError("truck is not busy")
)

// Truck is an aggregate representing one vehicle of the fleet. At most one
// shipment may hold a truck at a time: Reserve flips Available to Busy,
// Release flips it back, and both refuse any other starting state.
type Truck struct {
	id         kernel.UUID
	plate      string
	capacityM3 float64
	status     Status
	tier       Tier

	isConstructed bool
}

// NewTruck registers a truck in Available status. The plate identifier is
// required and capacity must be positive.
func NewTruck(id kernel.UUID, plate string, capacityM3 float64, tier Tier) (*Truck, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if plate == "" {
		return nil, errs.NewValueIsRequiredError("plate number")
	}
	if capacityM3 <= 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause("capacity",
			fmt.Errorf("%g is not greater than 0", capacityM3))
	}
	if err := tier.Validate(); err != nil {
		return nil, err
	}

	return &Truck{
		id:            id,
		plate:         plate,
		capacityM3:    capacityM3,
		status:        Available,
		tier:          tier,
		isConstructed: true,
	}, nil
}

// RestoreTruck rehydrates a truck from persistence.
func RestoreTruck(id kernel.UUID, plate string, capacityM3 float64, status Status, tier Tier) (*Truck, error) {
	if err := errors.Join(id.Validate(), status.Validate(), tier.Validate()); err != nil {
		return nil, err
	}
	if capacityM3 <= 0 {
		return nil, errs.NewValueIsInvalidError("capacity")
	}

	return &Truck{
		id:            id,
		plate:         plate,
		capacityM3:    capacityM3,
		status:        status,
		tier:          tier,
		isConstructed: true,
	}, nil
}

// Validate ensures the Truck was created through a constructor.
func (t *Truck) Validate() error {
	if t == nil || !t.isConstructed {
		return ErrTruckIsNotConstructed
	}
	return nil
}

// ID returns the truck's unique identifier.
func (t *Truck) ID() kernel.UUID {
	return t.id
}

// Plate returns the registration plate.
func (t *Truck) Plate() string {
	return t.plate
}

// CapacityM3 returns the cargo capacity in cubic meters.
func (t *Truck) CapacityM3() float64 {
	return t.capacityM3
}

// Status returns the current availability state.
func (t *Truck) Status() Status {
	return t.status
}

// Tier returns the transport tier the truck serves, or TierAny.
func (t *Truck) Tier() Tier {
	return t.tier
}

// CanCarry reports whether the given cargo volume fits the capacity.
func (t *Truck) CanCarry(volumeM3 float64) bool {
	return volumeM3 <= t.capacityM3
}

// Reserve flips the truck from Available to Busy when a shipment binds it.
// Any other starting state fails with ErrTruckNotAvailable, which is the
// check that prevents double-booking.
func (t *Truck) Reserve() error {
	if t.status != Available {
		return ErrTruckNotAvailable
	}
	t.status = Busy
	return nil
}

// Release returns a Busy truck to the pool when its shipment reaches a
// terminal state.
func (t *Truck) Release() error {
	if t.status != Busy {
		return ErrTruckNotBusy
	}
	t.status = Available
	return nil
}
