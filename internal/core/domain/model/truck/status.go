package truck

import (
	"fmt"

	"logistics/internal/pkg/errs"
)

// Status is the truck availability state. Reserve and Release are the only
// transitions; Maintenance is set administratively and excludes the truck
// from allocation.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	StatusUnknown Status = iota

	// Available means the truck can be bound to a shipment.
	Available

	// Busy means exactly one shipment currently holds the truck.
	Busy

	// Maintenance takes the truck out of the allocation pool.
	Maintenance
)

// Validate checks that the Status value is one of the defined states.
func (s Status) Validate() error {
	if s < Available || s > Maintenance {
		return errs.NewValueIsInvalidErrorWithCause("truck status",
			fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the lowercase wire spelling used by the read models.
func (s Status) String() string {
	switch s {
	case Available:
		return "available"
	case Busy:
		return "busy"
	case Maintenance:
		return "maintenance"
	default:
		return "unknown"
	}
}

// Tier is the transport tier a truck serves. Linehaul covers
// Manufacturer-to-DC movements, LastMile covers DC-to-Branch movements, and
// TierAny trucks serve both.
type Tier int

const (
	// TierAny means the truck is not restricted to a tier.
	TierAny Tier = iota

	// TierLinehaul restricts the truck to Manufacturer-to-DC movements.
	TierLinehaul

	// TierLastMile restricts the truck to DC-to-Branch movements.
	TierLastMile
)

// Validate checks that the Tier value is one of the defined tiers.
func (t Tier) Validate() error {
	if t < TierAny || t > TierLastMile {
		return errs.NewValueIsInvalidErrorWithCause("transport tier",
			fmt.Errorf("%d is not a valid tier", t))
	}
	return nil
}

// String returns the wire spelling of the tier, empty for TierAny.
func (t Tier) String() string {
	switch t {
	case TierLinehaul:
		return "linehaul"
	case TierLastMile:
		return "last_mile"
	default:
		return ""
	}
}

// Matches reports whether a truck of this tier may serve a demand of the
// given tier. An unrestricted truck serves any demand, and an unrestricted
// demand accepts any truck.
func (t Tier) Matches(demand Tier) bool {
	return t == TierAny || demand == TierAny || t == demand
}
