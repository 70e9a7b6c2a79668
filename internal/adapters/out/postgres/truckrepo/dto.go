// Package truckrepo provides data transfer objects and mapping functions
// for fleet persistence.
package truckrepo

import (
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/truck"

	"github.com/google/uuid"
)

// TruckDTO represents the database structure for persisting trucks. The
// plate number is unique across the fleet.
type TruckDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	PlateNumber string    `gorm:"type:varchar(32);not null;uniqueIndex"`
	CapacityM3  float64   `gorm:"type:numeric(8,2);not null"`
	Status      int       `gorm:"type:int;not null;index"`
	Tier        int       `gorm:"type:int;not null"`
}

// TableName overrides GORM's default naming to use "trucks".
func (TruckDTO) TableName() string {
	return "trucks"
}

// fromDomain converts a truck domain aggregate to its database
// representation.
func fromDomain(aggregate *truck.Truck) TruckDTO {
	return TruckDTO{
		ID:          aggregate.ID().Bytes(),
		PlateNumber: aggregate.Plate(),
		CapacityM3:  aggregate.CapacityM3(),
		Status:      int(aggregate.Status()),
		Tier:        int(aggregate.Tier()),
	}
}

// toDomain converts a database DTO to a truck domain aggregate using
// RestoreTruck.
func toDomain(dto TruckDTO) (*truck.Truck, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return truck.RestoreTruck(id, dto.PlateNumber, dto.CapacityM3,
		truck.Status(dto.Status), truck.Tier(dto.Tier))
}
