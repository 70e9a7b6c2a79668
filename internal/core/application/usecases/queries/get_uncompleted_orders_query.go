package queries

import (
	"errors"
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrGetUncompletedOrdersQueryIsNotConstructed = errors.New(
	"GetUncompletedOrdersQuery must be created via NewGetUncompletedOrdersQuery constructor",
)

// GetUncompletedOrdersQuery retrieves every order that has not yet reached
// a terminal status.
type GetUncompletedOrdersQuery struct {
	guard guard.ConstructorGuard
}

// NewGetUncompletedOrdersQuery creates a query to list uncompleted orders.
// This is a parameterless query.
func NewGetUncompletedOrdersQuery() GetUncompletedOrdersQuery {
	return GetUncompletedOrdersQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetUncompletedOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetUncompletedOrdersQueryIsNotConstructed)
}

// UncompletedOrderResponse is one open order on the dispatcher's worklist.
// ShipmentID is nil while the order has not been assigned to a shipment.
type UncompletedOrderResponse struct {
	ID          kernel.UUID
	BranchID    kernel.UUID
	Status      string
	OrderDate   time.Time
	TotalAmount decimal.Decimal
	VolumeM3    float64
	Cartons     int
	ShipmentID  *kernel.UUID
}
