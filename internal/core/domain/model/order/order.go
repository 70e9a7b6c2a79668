package order

import (
	"errors"
	"fmt"
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not
	// created through NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

	// ErrOrderAlreadyInShipment is returned when attaching an order that
	// already rides on a shipment.
	ErrOrderAlreadyInShipment = errs.NewConflictError("order is already attached to a shipment")

	// ErrOrderNotInShipment is returned when a status cascade reaches an
	// order without a shipment reference.
	ErrOrderNotInShipment = errs.NewConflictError("order is not attached to a shipment")
)

// Line is a value object describing one product position of an order.
type Line struct {
	productID      kernel.UUID
	quantity       int
	productionDate time.Time
}

// NewLine creates an order line. Quantity must be positive.
func NewLine(productID kernel.UUID, quantity int, productionDate time.Time) (Line, error) {
	if err := productID.Validate(); err != nil {
		return Line{}, err
	}
	if quantity <= 0 {
		return Line{}, errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d is not greater than 0", quantity))
	}
	return Line{productID: productID, quantity: quantity, productionDate: productionDate}, nil
}

// ProductID returns the product this line refers to.
func (l Line) ProductID() kernel.UUID {
	return l.productID
}

// Quantity returns the ordered unit count.
func (l Line) Quantity() int {
	return l.quantity
}

// ProductionDate returns when the goods on this line were produced.
func (l Line) ProductionDate() time.Time {
	return l.productionDate
}

// Order is the aggregate representing one branch order. Its totals
// (amount, volume, box count) are computed once, from live product data, at
// creation or item-replacement time; shipment operations never recompute
// them. Status changes are driven exclusively by the shipment the order
// belongs to.
type Order struct {
	id          kernel.UUID
	branchID    kernel.UUID
	orderDate   time.Time
	status      Status
	totalAmount decimal.Decimal
	totalVolume float64
	boxCount    int
	shipmentID  *kernel.UUID
	lines       []Line

	isConstructed bool
}

// NewOrder creates an order in Pending status with precomputed totals.
// At least one line is required; the totals are supplied by the cargo
// calculator and are not re-derived here.
func NewOrder(
	id kernel.UUID,
	branchID kernel.UUID,
	orderDate time.Time,
	lines []Line,
	totalAmount decimal.Decimal,
	totalVolume float64,
	boxCount int,
) (*Order, error) {
	o := &Order{
		status:        Pending,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setBranchID(branchID),
		o.setLines(lines),
	); err != nil {
		return nil, err
	}

	o.orderDate = orderDate
	o.totalAmount = totalAmount
	o.totalVolume = totalVolume
	o.boxCount = boxCount
	return o, nil
}

// RestoreOrder rehydrates an order from persistence without re-running
// creation rules. The status must be a valid enum value.
func RestoreOrder(
	id kernel.UUID,
	branchID kernel.UUID,
	orderDate time.Time,
	status Status,
	totalAmount decimal.Decimal,
	totalVolume float64,
	boxCount int,
	shipmentID *kernel.UUID,
	lines []Line,
) (*Order, error) {
	if err := errors.Join(id.Validate(), branchID.Validate(), status.Validate()); err != nil {
		return nil, err
	}

	return &Order{
		id:            id,
		branchID:      branchID,
		orderDate:     orderDate,
		status:        status,
		totalAmount:   totalAmount,
		totalVolume:   totalVolume,
		boxCount:      boxCount,
		shipmentID:    shipmentID,
		lines:         lines,
		isConstructed: true,
	}, nil
}

// Validate ensures the Order was created through a constructor.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// BranchID returns the branch this order was placed for.
func (o *Order) BranchID() kernel.UUID {
	return o.branchID
}

// OrderDate returns the date the order was placed.
func (o *Order) OrderDate() time.Time {
	return o.orderDate
}

// Status returns the current lifecycle state.
func (o *Order) Status() Status {
	return o.status
}

// TotalAmount returns the monetary total computed at creation time.
func (o *Order) TotalAmount() decimal.Decimal {
	return o.totalAmount
}

// TotalVolume returns the volume total in cubic meters computed at creation time.
func (o *Order) TotalVolume() float64 {
	return o.totalVolume
}

// BoxCount returns the carton count computed at creation time.
func (o *Order) BoxCount() int {
	return o.boxCount
}

// ShipmentID returns the shipment this order rides on, or nil.
func (o *Order) ShipmentID() *kernel.UUID {
	return o.shipmentID
}

// Lines returns the order's product positions.
func (o *Order) Lines() []Line {
	return o.lines
}

// AttachToShipment binds the order to a shipment. An order belongs to at
// most one shipment at a time; attaching an already-attached order fails.
func (o *Order) AttachToShipment(shipmentID kernel.UUID) error {
	if err := shipmentID.Validate(); err != nil {
		return err
	}
	if o.shipmentID != nil {
		return ErrOrderAlreadyInShipment
	}
	o.shipmentID = &shipmentID
	return nil
}

// ReplaceLines swaps the full line set and overwrites the totals. Shipment
// membership is untouched; callers recompute totals from live product data
// before invoking this.
func (o *Order) ReplaceLines(lines []Line, totalAmount decimal.Decimal, totalVolume float64, boxCount int) error {
	if err := o.setLines(lines); err != nil {
		return err
	}
	o.totalAmount = totalAmount
	o.totalVolume = totalVolume
	o.boxCount = boxCount
	return nil
}

// MarkInTransit cascades the shipment's InTransit transition onto the order.
func (o *Order) MarkInTransit() error {
	if o.shipmentID == nil {
		return ErrOrderNotInShipment
	}
	if o.status.IsTerminal() {
		return errs.NewConflictError(
			fmt.Sprintf("order is %s and cannot move to In Transit", o.status))
	}
	o.status = InTransit
	return nil
}

// MarkDelivered cascades an outbound shipment's completion onto the order.
func (o *Order) MarkDelivered() error {
	return o.finish(Delivered)
}

// MarkReceived cascades an inbound shipment's receipt onto the order.
func (o *Order) MarkReceived() error {
	return o.finish(Received)
}

func (o *Order) finish(terminal Status) error {
	if o.shipmentID == nil {
		return ErrOrderNotInShipment
	}
	if o.status != InTransit {
		return errs.NewConflictError(
			fmt.Sprintf("order is %s, only In Transit orders can become %s", o.status, terminal))
	}
	o.status = terminal
	return nil
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setBranchID(branchID kernel.UUID) error {
	if err := branchID.Validate(); err != nil {
		return err
	}
	o.branchID = branchID
	return nil
}

func (o *Order) setLines(lines []Line) error {
	if len(lines) == 0 {
		return errs.NewValueIsRequiredError("order lines")
	}
	o.lines = lines
	return nil
}
