// Package returnrepo provides data transfer objects and mapping functions
// for return persistence.
package returnrepo

import (
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/returns"

	"github.com/google/uuid"
)

// ReturnDTO represents the database structure for persisting return
// aggregates. ShipmentID is set when the return is reconciled onto an
// inbound shipment.
type ReturnDTO struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey"`
	OrderID     uuid.UUID       `gorm:"type:uuid;not null;index"`
	ShipmentID  *uuid.UUID      `gorm:"type:uuid;index"`
	Status      int             `gorm:"type:int;not null"`
	TotalVolume float64         `gorm:"type:numeric(10,4);not null"`
	ReturnDate  time.Time       `gorm:"not null"`
	Lines       []ReturnLineDTO `gorm:"foreignKey:ReturnID;constraint:OnDelete:CASCADE"`
}

// TableName overrides GORM's default naming to use "returns".
func (ReturnDTO) TableName() string {
	return "returns"
}

// ReturnLineDTO represents one returned product position.
type ReturnLineDTO struct {
	ID        uint      `gorm:"primaryKey;autoIncrement"`
	ReturnID  uuid.UUID `gorm:"type:uuid;not null;index"`
	ProductID uuid.UUID `gorm:"type:uuid;not null"`
	Quantity  int       `gorm:"type:int;not null"`
	Reason    string    `gorm:"type:text;not null;default:''"`
}

// TableName overrides GORM's default naming to use "return_lines".
func (ReturnLineDTO) TableName() string {
	return "return_lines"
}

// fromDomain converts a return domain aggregate to its database
// representation.
func fromDomain(aggregate *returns.Return) ReturnDTO {
	returnID := aggregate.ID().Bytes()

	var shipmentID *uuid.UUID
	if id := aggregate.ShipmentID(); id != nil {
		raw := id.Bytes()
		shipmentID = &raw
	}

	lines := make([]ReturnLineDTO, 0, len(aggregate.Lines()))
	for _, line := range aggregate.Lines() {
		lines = append(lines, ReturnLineDTO{
			ReturnID:  returnID,
			ProductID: line.ProductID().Bytes(),
			Quantity:  line.Quantity(),
			Reason:    line.Reason(),
		})
	}

	return ReturnDTO{
		ID:          returnID,
		OrderID:     aggregate.OrderID().Bytes(),
		ShipmentID:  shipmentID,
		Status:      int(aggregate.Status()),
		TotalVolume: aggregate.TotalVolume(),
		ReturnDate:  aggregate.ReturnDate(),
		Lines:       lines,
	}
}

// toDomain converts a database DTO to a return domain aggregate using
// RestoreReturn.
func toDomain(dto ReturnDTO) (*returns.Return, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}

	var shipmentID *kernel.UUID
	if dto.ShipmentID != nil {
		sID, sErr := kernel.UUIDFromBytes((*dto.ShipmentID)[:])
		if sErr != nil {
			return nil, sErr
		}
		shipmentID = &sID
	}

	lines := make([]returns.Line, 0, len(dto.Lines))
	for _, lineDto := range dto.Lines {
		productID, lErr := kernel.UUIDFromBytes(lineDto.ProductID[:])
		if lErr != nil {
			return nil, lErr
		}
		line, lErr := returns.NewLine(productID, lineDto.Quantity, lineDto.Reason)
		if lErr != nil {
			return nil, lErr
		}
		lines = append(lines, line)
	}

	return returns.RestoreReturn(
		id,
		orderID,
		shipmentID,
		returns.Status(dto.Status),
		dto.TotalVolume,
		dto.ReturnDate,
		lines,
	)
}
