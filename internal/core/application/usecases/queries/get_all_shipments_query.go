package queries

import (
	"errors"
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/guard"
)

var ErrGetAllShipmentsQueryIsNotConstructed = errors.New(
	"GetAllShipmentsQuery must be created via NewGetAllShipmentsQuery constructor",
)

// GetAllShipmentsQuery retrieves the shipment board: every shipment with
// its cargo figures and truck utilization.
type GetAllShipmentsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetAllShipmentsQuery creates a query to list all shipments.
// This is a parameterless query.
func NewGetAllShipmentsQuery() GetAllShipmentsQuery {
	return GetAllShipmentsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetAllShipmentsQuery) Validate() error {
	return q.guard.Validate(ErrGetAllShipmentsQueryIsNotConstructed)
}

// ShipmentSummaryResponse is one row of the shipment board. Truck fields
// are nil while no truck is bound; utilization is the cargo volume as a
// percentage of the bound truck's capacity.
type ShipmentSummaryResponse struct {
	ID               kernel.UUID
	Type             string
	Status           string
	OriginKind       string
	OriginID         kernel.UUID
	DestinationKind  string
	DestinationID    kernel.UUID
	TotalVolumeM3    float64
	Cartons          int
	OrderCount       int
	TruckID          *kernel.UUID
	TruckPlate       *string
	TruckCapacityM3  *float64
	TruckUtilization *float64
	DepartureTime    *time.Time
	ArrivalTime      *time.Time
}
