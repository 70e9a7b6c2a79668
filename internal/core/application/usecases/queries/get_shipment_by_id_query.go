package queries

import (
	"errors"
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrGetShipmentByIDQueryIsNotConstructed = errors.New(
	"GetShipmentByIDQuery must be created via NewGetShipmentByIDQuery constructor",
)

// GetShipmentByIDQuery retrieves one shipment with its member orders.
type GetShipmentByIDQuery struct {
	guard guard.ConstructorGuard

	shipmentID kernel.UUID
}

// NewGetShipmentByIDQuery creates a query for a single shipment.
func NewGetShipmentByIDQuery(shipmentID kernel.UUID) (GetShipmentByIDQuery, error) {
	if err := shipmentID.Validate(); err != nil {
		return GetShipmentByIDQuery{}, errs.NewValueIsRequiredErrorWithCause("shipmentID", err)
	}

	return GetShipmentByIDQuery{
		guard:      guard.NewConstructorGuard(),
		shipmentID: shipmentID,
	}, nil
}

// ShipmentID returns the identifier of the requested shipment.
func (q GetShipmentByIDQuery) ShipmentID() kernel.UUID {
	return q.shipmentID
}

// Validate ensures the query was created through the constructor.
func (q GetShipmentByIDQuery) Validate() error {
	return q.guard.Validate(ErrGetShipmentByIDQueryIsNotConstructed)
}

// ShipmentOrderResponse is a member order row inside a shipment details
// response.
type ShipmentOrderResponse struct {
	ID          kernel.UUID
	BranchID    kernel.UUID
	Status      string
	OrderDate   time.Time
	TotalAmount decimal.Decimal
	VolumeM3    float64
	Cartons     int
}

// ShipmentDetailsResponse is the full read model for one shipment: the
// board row plus every member order.
type ShipmentDetailsResponse struct {
	ShipmentSummaryResponse

	ReceiptNotes  string
	ReceiptDamage string
	Orders        []ShipmentOrderResponse
}
