// Package shipment contains the central aggregate of the system: the
// shipment state machine, its rolling volume accounting, and the rules that
// tie member orders and the bound truck to every transition.
package shipment

import (
	"errors"
	"fmt"
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/order"
	"logistics/internal/core/domain/model/truck"
	"logistics/internal/pkg/errs"
)

var (
	// ErrShipmentIsNotConstructed is returned when a Shipment instance was
	// not created through NewShipment or RestoreShipment.
	ErrShipmentIsNotConstructed = errors.New("Shipment must be created via NewShipment constructor")

	// ErrShipmentNotDraft is returned when a Draft-only operation (truck
	// assignment, start) meets a shipment that already departed.
	ErrShipmentNotDraft = errs.NewConflictError("shipment is not in Draft status")

	// ErrShipmentNotInTransit is returned when completing or receiving a
	// shipment that is not currently in transit.
	ErrShipmentNotInTransit = errs.NewConflictError("shipment is not in transit")

	// ErrShipmentClosed is returned when attaching orders to a shipment that
	// reached a terminal state.
	ErrShipmentClosed = errs.NewConflictError("shipment is already delivered or received")

	// ErrNoTruckAssigned is returned when starting or completing a shipment
	// without a bound truck.
	ErrNoTruckAssigned = errs.NewConflictError("no truck assigned")

	// ErrEmptyShipment is returned when starting or completing a shipment
	// with no member orders.
	ErrEmptyShipment = errs.NewConflictError("shipment has no orders")

	// ErrInboundMustBeReceived is returned when Complete is called on an
	// inbound shipment; inbound shipments finish through Receive.
	ErrInboundMustBeReceived = errs.NewConflictError("inbound shipment must be received, not completed")

	// ErrOutboundCannotBeReceived is the mirror error for Receive on an
	// outbound shipment.
	ErrOutboundCannotBeReceived = errs.NewConflictError("outbound shipment must be completed, not received")
)

// CapacityExceededError is returned when a truck binding would overflow the
// truck. It carries both comparison values so the caller sees exactly how far
// over the shipment is.
type CapacityExceededError struct {
	ShipmentVolume float64
	TruckCapacity  float64
}

func (e *CapacityExceededError) Error() string {
	return fmt.Sprintf("truck capacity exceeded: shipment volume %.3f m3, truck capacity %.3f m3",
		e.ShipmentVolume, e.TruckCapacity)
}

func (e *CapacityExceededError) Unwrap() error {
	return errs.ErrConflict
}

// Shipment is the aggregate root of the shipment lifecycle. It owns the
// status machine, the tagged origin/destination pair, the truck binding, and
// the rolling volume total over its member orders. The total is a sum of the
// members' frozen order volumes, recomputed only when membership changes,
// never by status transitions.
type Shipment struct {
	id            kernel.UUID
	origin        Endpoint
	destination   Endpoint
	shipmentType  Type
	status        Status
	routeID       *kernel.UUID
	truckID       *kernel.UUID
	totalVolume   float64
	orderIDs      []kernel.UUID
	departureTime *time.Time
	arrivalTime   *time.Time
	receiptNotes  string
	receiptDamage string

	isConstructed bool
}

// NewShipment creates a shipment in Draft status with no truck and no member
// orders. The destination must be a DC or a branch.
func NewShipment(id kernel.UUID, origin, destination Endpoint, shipmentType Type) (*Shipment, error) {
	if err := errors.Join(
		id.Validate(),
		origin.Validate(),
		destination.Validate(),
		shipmentType.Validate(),
	); err != nil {
		return nil, err
	}
	if destination.Kind() == KindManufacturer {
		return nil, errs.NewValueIsInvalidError("destination")
	}

	return &Shipment{
		id:            id,
		origin:        origin,
		destination:   destination,
		shipmentType:  shipmentType,
		status:        Draft,
		isConstructed: true,
	}, nil
}

// RestoreShipment rehydrates a shipment from persistence.
func RestoreShipment(
	id kernel.UUID,
	origin, destination Endpoint,
	shipmentType Type,
	status Status,
	routeID *kernel.UUID,
	truckID *kernel.UUID,
	totalVolume float64,
	orderIDs []kernel.UUID,
	departureTime, arrivalTime *time.Time,
	receiptNotes, receiptDamage string,
) (*Shipment, error) {
	if err := errors.Join(
		id.Validate(),
		origin.Validate(),
		destination.Validate(),
		shipmentType.Validate(),
		status.Validate(),
	); err != nil {
		return nil, err
	}

	return &Shipment{
		id:            id,
		origin:        origin,
		destination:   destination,
		shipmentType:  shipmentType,
		status:        status,
		routeID:       routeID,
		truckID:       truckID,
		totalVolume:   totalVolume,
		orderIDs:      orderIDs,
		departureTime: departureTime,
		arrivalTime:   arrivalTime,
		receiptNotes:  receiptNotes,
		receiptDamage: receiptDamage,
		isConstructed: true,
	}, nil
}

// Validate ensures the Shipment was created through a constructor.
func (s *Shipment) Validate() error {
	if s == nil || !s.isConstructed {
		return ErrShipmentIsNotConstructed
	}
	return nil
}

// ID returns the shipment's unique identifier.
func (s *Shipment) ID() kernel.UUID {
	return s.id
}

// Origin returns the tagged origin reference.
func (s *Shipment) Origin() Endpoint {
	return s.origin
}

// Destination returns the tagged destination reference.
func (s *Shipment) Destination() Endpoint {
	return s.destination
}

// Type returns Outbound or Inbound.
func (s *Shipment) Type() Type {
	return s.shipmentType
}

// Status returns the current lifecycle state.
func (s *Shipment) Status() Status {
	return s.status
}

// RouteID returns the planning route this shipment was created from, or nil.
func (s *Shipment) RouteID() *kernel.UUID {
	return s.routeID
}

// TruckID returns the bound truck, or nil. The reference survives terminal
// transitions for history; the truck's own status records availability.
func (s *Shipment) TruckID() *kernel.UUID {
	return s.truckID
}

// TotalVolume returns the rolling sum over the member orders' volumes.
func (s *Shipment) TotalVolume() float64 {
	return s.totalVolume
}

// OrderIDs returns the member order identifiers.
func (s *Shipment) OrderIDs() []kernel.UUID {
	return s.orderIDs
}

// DepartureTime returns when the shipment started, or nil.
func (s *Shipment) DepartureTime() *time.Time {
	return s.departureTime
}

// ArrivalTime returns when the shipment reached a terminal state, or nil.
func (s *Shipment) ArrivalTime() *time.Time {
	return s.arrivalTime
}

// ReceiptNotes returns the notes recorded on receipt (inbound only).
func (s *Shipment) ReceiptNotes() string {
	return s.receiptNotes
}

// ReceiptDamage returns the damage report recorded on receipt (inbound only).
func (s *Shipment) ReceiptDamage() string {
	return s.receiptDamage
}

// SetRoute records the planning route the shipment was built from.
func (s *Shipment) SetRoute(routeID kernel.UUID) error {
	if err := routeID.Validate(); err != nil {
		return err
	}
	s.routeID = &routeID
	return nil
}

// SeedVolume sets the declared cargo volume of a shipment created ahead of
// its orders (linehaul announcements). Draft only.
func (s *Shipment) SeedVolume(volumeM3 float64) error {
	if s.status != Draft {
		return ErrShipmentNotDraft
	}
	if volumeM3 < 0 {
		return errs.NewValueIsInvalidError("volume")
	}
	s.totalVolume = volumeM3
	return nil
}

// HasOrder reports whether the given order is a member of this shipment.
func (s *Shipment) HasOrder(orderID kernel.UUID) bool {
	for _, id := range s.orderIDs {
		if id.IsEqual(orderID) {
			return true
		}
	}
	return false
}

// Tier derives the transport tier from the endpoint kinds: manufacturer
// origins are linehaul, DC-to-branch movements are last-mile, anything else
// is unrestricted.
func (s *Shipment) Tier() truck.Tier {
	switch {
	case s.origin.Kind() == KindManufacturer:
		return truck.TierLinehaul
	case s.origin.Kind() == KindDC && s.destination.Kind() == KindBranch:
		return truck.TierLastMile
	default:
		return truck.TierAny
	}
}

// AssignTruck binds a truck to a Draft shipment. The truck must be available
// and large enough for the current rolling volume; on success it is reserved
// (flipped to busy) in the same aggregate operation, so the binding and the
// status flip commit or roll back together.
func (s *Shipment) AssignTruck(t *truck.Truck) error {
	if err := t.Validate(); err != nil {
		return err
	}
	if s.status != Draft {
		return ErrShipmentNotDraft
	}
	if !t.CanCarry(s.totalVolume) {
		return &CapacityExceededError{
			ShipmentVolume: s.totalVolume,
			TruckCapacity:  t.CapacityM3(),
		}
	}
	if err := t.Reserve(); err != nil {
		return err
	}

	id := t.ID()
	s.truckID = &id
	return nil
}

// Attach adds an order to the shipment, folds its frozen volume into the
// rolling total, and binds the order back to the shipment. When the shipment
// is already in transit the order immediately mirrors that status. Terminal
// shipments accept no orders.
func (s *Shipment) Attach(o *order.Order) error {
	if err := o.Validate(); err != nil {
		return err
	}
	if s.status.IsTerminal() {
		return ErrShipmentClosed
	}
	if s.HasOrder(o.ID()) {
		return errs.NewConflictError("order is already in this shipment")
	}

	if err := o.AttachToShipment(s.id); err != nil {
		return err
	}
	if s.status == InTransit {
		if err := o.MarkInTransit(); err != nil {
			return err
		}
	}

	s.orderIDs = append(s.orderIDs, o.ID())
	s.totalVolume += o.TotalVolume()
	return nil
}

// Start moves a Draft shipment to InTransit. A bound truck and at least one
// member order are required; the departure time is recorded. Cascading the
// member orders is the caller's duty (they live in their own repository),
// guarded by the same transaction.
func (s *Shipment) Start(now time.Time) error {
	if s.status != Draft {
		return ErrShipmentNotDraft
	}
	if s.truckID == nil {
		return ErrNoTruckAssigned
	}
	if len(s.orderIDs) == 0 {
		return ErrEmptyShipment
	}

	s.status = InTransit
	s.departureTime = &now
	return nil
}

// Complete moves an outbound InTransit shipment to Delivered and records the
// arrival time. The truck and member checks repeat Start's guarantees as
// defense in depth.
func (s *Shipment) Complete(now time.Time) error {
	if s.shipmentType != Outbound {
		return ErrInboundMustBeReceived
	}
	return s.finish(Delivered, now)
}

// Receive moves an inbound InTransit shipment to Received, recording the
// arrival time and the receipt notes and damage report.
func (s *Shipment) Receive(now time.Time, notes, damage string) error {
	if s.shipmentType != Inbound {
		return ErrOutboundCannotBeReceived
	}
	if err := s.finish(Received, now); err != nil {
		return err
	}
	s.receiptNotes = notes
	s.receiptDamage = damage
	return nil
}

func (s *Shipment) finish(terminal Status, now time.Time) error {
	if s.status != InTransit {
		return ErrShipmentNotInTransit
	}
	if s.truckID == nil {
		return ErrNoTruckAssigned
	}
	if len(s.orderIDs) == 0 {
		return ErrEmptyShipment
	}

	s.status = terminal
	s.arrivalTime = &now
	return nil
}
