// Package returns models customer return requests that travel back from a
// branch to the distribution center on inbound shipments.
package returns

import (
	"errors"
	"fmt"
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/shipment"
	"logistics/internal/pkg/errs"
)

var (
	// ErrReturnIsNotConstructed is returned when a Return instance was not
	// created through NewReturn or RestoreReturn.
	ErrReturnIsNotConstructed = errors.New("Return must be created via NewReturn constructor")

	// ErrReturnAlreadyReceived is returned when receiving a return twice.
	ErrReturnAlreadyReceived = errs.NewConflictError("return has already been received")
)

// Status of a return request. A return starts Pending and becomes Received
// when an inbound shipment carrying the original order arrives at the DC.
type Status int

const (
	StatusUnknown Status = iota
	Pending
	Received
)

func (s Status) Validate() error {
	if s == Pending || s == Received {
		return nil
	}
	return errs.NewValueIsInvalidErrorWithCause("return status", fmt.Errorf("%d", int(s)))
}

func (s Status) String() string {
	switch s {
	case Pending:
		return "Pending"
	case Received:
		return "Received"
	default:
		return "Unknown"
	}
}

// Line is one returned product position.
type Line struct {
	productID kernel.UUID
	quantity  int
	reason    string
}

// NewLine validates a single return position. Quantity must be positive.
func NewLine(productID kernel.UUID, quantity int, reason string) (Line, error) {
	if err := productID.Validate(); err != nil {
		return Line{}, err
	}
	if quantity <= 0 {
		return Line{}, errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d is not greater than 0", quantity))
	}
	return Line{productID: productID, quantity: quantity, reason: reason}, nil
}

func (l Line) ProductID() kernel.UUID {
	return l.productID
}

func (l Line) Quantity() int {
	return l.quantity
}

func (l Line) Reason() string {
	return l.reason
}

// Return is an aggregate representing goods a branch sends back. It
// references the order it reverses and, once reconciled, the inbound
// shipment that carried it home.
type Return struct {
	id          kernel.UUID
	orderID     kernel.UUID
	shipmentID  *kernel.UUID
	status      Status
	totalVolume float64
	returnDate  time.Time
	lines       []Line

	isConstructed bool
}

// NewReturn registers a return request in Pending status. The total volume
// is computed by the caller from the catalog's per-unit volumes.
func NewReturn(
	id kernel.UUID,
	orderID kernel.UUID,
	returnDate time.Time,
	lines []Line,
	totalVolume float64,
) (*Return, error) {
	if err := errors.Join(id.Validate(), orderID.Validate()); err != nil {
		return nil, err
	}
	if len(lines) == 0 {
		return nil, errs.NewValueIsRequiredError("lines")
	}
	if totalVolume < 0 {
		return nil, errs.NewValueIsInvalidError("total volume")
	}

	return &Return{
		id:            id,
		orderID:       orderID,
		status:        Pending,
		totalVolume:   totalVolume,
		returnDate:    returnDate,
		lines:         lines,
		isConstructed: true,
	}, nil
}

// RestoreReturn rehydrates a return from persistence.
func RestoreReturn(
	id kernel.UUID,
	orderID kernel.UUID,
	shipmentID *kernel.UUID,
	status Status,
	totalVolume float64,
	returnDate time.Time,
	lines []Line,
) (*Return, error) {
	if err := errors.Join(id.Validate(), orderID.Validate(), status.Validate()); err != nil {
		return nil, err
	}
	if shipmentID != nil {
		if err := shipmentID.Validate(); err != nil {
			return nil, err
		}
	}

	return &Return{
		id:            id,
		orderID:       orderID,
		shipmentID:    shipmentID,
		status:        status,
		totalVolume:   totalVolume,
		returnDate:    returnDate,
		lines:         lines,
		isConstructed: true,
	}, nil
}

// Validate ensures the Return was created through a constructor.
func (r *Return) Validate() error {
	if r == nil || !r.isConstructed {
		return ErrReturnIsNotConstructed
	}
	return nil
}

// ID returns the return's unique identifier.
func (r *Return) ID() kernel.UUID {
	return r.id
}

// OrderID returns the identifier of the order being reversed.
func (r *Return) OrderID() kernel.UUID {
	return r.orderID
}

// ShipmentID returns the inbound shipment that carried the return, if any.
func (r *Return) ShipmentID() *kernel.UUID {
	return r.shipmentID
}

// Status returns the current state of the return.
func (r *Return) Status() Status {
	return r.status
}

// TotalVolume returns the cargo volume of the return in cubic meters.
func (r *Return) TotalVolume() float64 {
	return r.totalVolume
}

// ReturnDate returns when the branch raised the return.
func (r *Return) ReturnDate() time.Time {
	return r.returnDate
}

// Lines returns the returned positions.
func (r *Return) Lines() []Line {
	return r.lines
}

// EligibleFor reports whether the given shipment can settle this return:
// the return is still pending, unbound, and the shipment carries the order
// the return reverses.
func (r *Return) EligibleFor(s *shipment.Shipment) bool {
	return r.status == Pending && r.shipmentID == nil && s.HasOrder(r.orderID)
}

// Receive marks the return as settled by the given inbound shipment.
func (r *Return) Receive(shipmentID kernel.UUID) error {
	if r.status != Pending || r.shipmentID != nil {
		return ErrReturnAlreadyReceived
	}
	if err := shipmentID.Validate(); err != nil {
		return err
	}
	r.status = Received
	r.shipmentID = &shipmentID
	return nil
}
