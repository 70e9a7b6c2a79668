package order

import (
	"fmt"

	"logistics/internal/pkg/errs"
)

// Status represents the lifecycle state of an order. Once an order is
// attached to a shipment, its status is driven exclusively by that shipment:
//
//	Pending ──> InTransit ──> Delivered   (outbound shipments)
//	                     └──> Received    (inbound shipments)
//
// An order never transitions on its own; the shipment cascade is the only
// writer. Delivered and Received are terminal.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	Unknown Status = iota

	// Pending is the initial status: the order is created and may or may not
	// be attached to a Draft shipment.
	Pending

	// InTransit mirrors the shipment's InTransit state.
	InTransit

	// Delivered is the terminal status reached when an outbound shipment
	// completes.
	Delivered

	// Received is the terminal status reached when an inbound shipment is
	// received.
	Received
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "Unknown",
		Pending:   "Pending",
		InTransit: "In Transit",
		Delivered: "Delivered",
		Received:  "Received",
	}
}

// Validate checks that the Status value is one of the defined states.
func (s Status) Validate() error {
	if s < Pending || s > Received {
		return errs.NewValueIsInvalidErrorWithCause("order status",
			fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the human-readable name of the status. The spellings match
// the wire representation used by the read models ("In Transit", not
// "in_transit").
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// IsTerminal reports whether no further transitions are possible.
func (s Status) IsTerminal() bool {
	return s == Delivered || s == Received
}
