// Package shipmentrepo provides data transfer objects and mapping
// functions for shipment persistence. The shipment row carries the rolling
// cargo figures; order membership lives on the orders table, so loading a
// shipment reconstructs its member list from there.
package shipmentrepo

import (
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/shipment"

	"github.com/google/uuid"
)

// ShipmentDTO represents the database structure for persisting shipment
// aggregates. Origin and destination are tagged (kind, id) pairs pointing
// into the endpoint catalogs.
type ShipmentDTO struct {
	ID              uuid.UUID  `gorm:"type:uuid;primaryKey"`
	Type            int        `gorm:"type:int;not null"`
	Status          int        `gorm:"type:int;not null;index"`
	OriginKind      int        `gorm:"type:int;not null"`
	OriginID        uuid.UUID  `gorm:"type:uuid;not null"`
	DestinationKind int        `gorm:"type:int;not null"`
	DestinationID   uuid.UUID  `gorm:"type:uuid;not null"`
	RouteID         *uuid.UUID `gorm:"type:uuid"`
	TruckID         *uuid.UUID `gorm:"type:uuid;index"`
	TotalVolume     float64    `gorm:"type:numeric(10,4);not null"`
	DepartureTime   *time.Time
	ArrivalTime     *time.Time
	ReceiptNotes    string `gorm:"type:text;not null;default:''"`
	ReceiptDamage   string `gorm:"type:text;not null;default:''"`
}

// TableName overrides GORM's default naming to use "shipments".
func (ShipmentDTO) TableName() string {
	return "shipments"
}

// fromDomain converts a shipment domain aggregate to its database
// representation. Member order IDs are not mapped; they live on the orders.
func fromDomain(aggregate *shipment.Shipment) ShipmentDTO {
	var routeID *uuid.UUID
	if id := aggregate.RouteID(); id != nil {
		raw := id.Bytes()
		routeID = &raw
	}

	var truckID *uuid.UUID
	if id := aggregate.TruckID(); id != nil {
		raw := id.Bytes()
		truckID = &raw
	}

	return ShipmentDTO{
		ID:              aggregate.ID().Bytes(),
		Type:            int(aggregate.Type()),
		Status:          int(aggregate.Status()),
		OriginKind:      int(aggregate.Origin().Kind()),
		OriginID:        aggregate.Origin().ID().Bytes(),
		DestinationKind: int(aggregate.Destination().Kind()),
		DestinationID:   aggregate.Destination().ID().Bytes(),
		RouteID:         routeID,
		TruckID:         truckID,
		TotalVolume:     aggregate.TotalVolume(),
		DepartureTime:   aggregate.DepartureTime(),
		ArrivalTime:     aggregate.ArrivalTime(),
		ReceiptNotes:    aggregate.ReceiptNotes(),
		ReceiptDamage:   aggregate.ReceiptDamage(),
	}
}

// toDomain converts a database DTO plus the member order IDs loaded from
// the orders table to a shipment domain aggregate using RestoreShipment.
func toDomain(dto ShipmentDTO, orderIDs []kernel.UUID) (*shipment.Shipment, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	originID, err := kernel.UUIDFromBytes(dto.OriginID[:])
	if err != nil {
		return nil, err
	}
	origin, err := shipment.NewEndpoint(shipment.EndpointKind(dto.OriginKind), originID)
	if err != nil {
		return nil, err
	}

	destinationID, err := kernel.UUIDFromBytes(dto.DestinationID[:])
	if err != nil {
		return nil, err
	}
	destination, err := shipment.NewEndpoint(shipment.EndpointKind(dto.DestinationKind), destinationID)
	if err != nil {
		return nil, err
	}

	var routeID *kernel.UUID
	if dto.RouteID != nil {
		rID, rErr := kernel.UUIDFromBytes((*dto.RouteID)[:])
		if rErr != nil {
			return nil, rErr
		}
		routeID = &rID
	}

	var truckID *kernel.UUID
	if dto.TruckID != nil {
		tID, tErr := kernel.UUIDFromBytes((*dto.TruckID)[:])
		if tErr != nil {
			return nil, tErr
		}
		truckID = &tID
	}

	return shipment.RestoreShipment(
		id,
		origin,
		destination,
		shipment.Type(dto.Type),
		shipment.Status(dto.Status),
		routeID,
		truckID,
		dto.TotalVolume,
		orderIDs,
		dto.DepartureTime,
		dto.ArrivalTime,
		dto.ReceiptNotes,
		dto.ReceiptDamage,
	)
}
