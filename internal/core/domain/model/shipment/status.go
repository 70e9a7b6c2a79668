package shipment

import (
	"fmt"

	"logistics/internal/pkg/errs"
)

// Status represents the lifecycle state of a shipment.
//
//	Draft ──> InTransit ──┬──> Delivered   (outbound, terminal)
//	                      └──> Received    (inbound, terminal)
//
// There is no transition back to Draft and none between terminal states.
// Every member order mirrors the shipment's status for the duration of its
// membership.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	StatusUnknown Status = iota

	// Draft is the initial status: orders and a truck may still be added.
	Draft

	// InTransit means the shipment departed; membership and truck binding
	// are frozen.
	InTransit

	// Delivered is the terminal status of outbound shipments.
	Delivered

	// Received is the terminal status of inbound shipments.
	Received
)

// Validate checks that the Status value is one of the defined states.
func (s Status) Validate() error {
	if s < Draft || s > Received {
		return errs.NewValueIsInvalidErrorWithCause("shipment status",
			fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the human-readable name used by the read models.
func (s Status) String() string {
	switch s {
	case Draft:
		return "Draft"
	case InTransit:
		return "In Transit"
	case Delivered:
		return "Delivered"
	case Received:
		return "Received"
	default:
		return "Unknown"
	}
}

// IsTerminal reports whether no further transitions are possible.
func (s Status) IsTerminal() bool {
	return s == Delivered || s == Received
}

// Type distinguishes the direction of a shipment. Outbound shipments end
// Delivered; inbound shipments end Received and may carry receipt notes.
type Type int

const (
	// TypeUnknown represents an invalid or undefined type.
	TypeUnknown Type = iota

	// Outbound moves goods toward branches and terminates with Delivered.
	Outbound

	// Inbound moves goods toward a DC (linehaul, returns) and terminates
	// with Received.
	Inbound
)

// ParseType converts the wire spelling of a type back to its value.
func ParseType(s string) (Type, error) {
	switch s {
	case "outbound":
		return Outbound, nil
	case "inbound":
		return Inbound, nil
	default:
		return TypeUnknown, errs.NewValueIsInvalidErrorWithCause("shipment type",
			fmt.Errorf("%q is not a valid shipment type", s))
	}
}

// Validate checks that the Type value is one of the defined types.
func (t Type) Validate() error {
	if t != Outbound && t != Inbound {
		return errs.NewValueIsInvalidErrorWithCause("shipment type",
			fmt.Errorf("%d is not a valid shipment type", t))
	}
	return nil
}

// String returns the wire spelling of the type.
func (t Type) String() string {
	switch t {
	case Outbound:
		return "outbound"
	case Inbound:
		return "inbound"
	default:
		return "unknown"
	}
}
