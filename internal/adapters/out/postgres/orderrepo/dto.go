// Package orderrepo provides data transfer objects and mapping functions
// for order persistence. Order lines live in a child table and are
// rewritten wholesale whenever the aggregate changes.
package orderrepo

import (
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderDTO represents the database structure for persisting order
// aggregates. ShipmentID doubles as the shipment membership link: a nil
// value means the order is not riding on any shipment.
type OrderDTO struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey"`
	BranchID    uuid.UUID       `gorm:"type:uuid;not null;index"`
	ShipmentID  *uuid.UUID      `gorm:"type:uuid;index"`
	Status      int             `gorm:"type:int;not null"`
	OrderDate   time.Time       `gorm:"not null"`
	TotalAmount decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	TotalVolume float64         `gorm:"type:numeric(10,4);not null"`
	BoxCount    int             `gorm:"type:int;not null"`
	Lines       []OrderLineDTO  `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// TableName overrides GORM's default naming to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// OrderLineDTO represents one product position of an order. Lines have no
// identity of their own; the surrogate key exists only for the database.
type OrderLineDTO struct {
	ID             uint      `gorm:"primaryKey;autoIncrement"`
	OrderID        uuid.UUID `gorm:"type:uuid;not null;index"`
	ProductID      uuid.UUID `gorm:"type:uuid;not null"`
	Quantity       int       `gorm:"type:int;not null"`
	ProductionDate time.Time `gorm:"not null"`
}

// TableName overrides GORM's default naming to use "order_lines".
func (OrderLineDTO) TableName() string {
	return "order_lines"
}

// fromDomain converts an order domain aggregate to its database
// representation, including the optional shipment binding.
func fromDomain(aggregate *order.Order) OrderDTO {
	orderID := aggregate.ID().Bytes()

	var shipmentID *uuid.UUID
	if id := aggregate.ShipmentID(); id != nil {
		raw := id.Bytes()
		shipmentID = &raw
	}

	lines := make([]OrderLineDTO, 0, len(aggregate.Lines()))
	for _, line := range aggregate.Lines() {
		lines = append(lines, OrderLineDTO{
			OrderID:        orderID,
			ProductID:      line.ProductID().Bytes(),
			Quantity:       line.Quantity(),
			ProductionDate: line.ProductionDate(),
		})
	}

	return OrderDTO{
		ID:          orderID,
		BranchID:    aggregate.BranchID().Bytes(),
		ShipmentID:  shipmentID,
		Status:      int(aggregate.Status()),
		OrderDate:   aggregate.OrderDate(),
		TotalAmount: aggregate.TotalAmount(),
		TotalVolume: aggregate.TotalVolume(),
		BoxCount:    aggregate.BoxCount(),
		Lines:       lines,
	}
}

// toDomain converts a database DTO to an order domain aggregate using
// RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	branchID, err := kernel.UUIDFromBytes(dto.BranchID[:])
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

	lines := make([]order.Line, 0, len(dto.Lines))
	for _, lineDto := range dto.Lines {
		productID, lErr := kernel.UUIDFromBytes(lineDto.ProductID[:])
		if lErr != nil {
			return nil, lErr
		}
		line, lErr := order.NewLine(productID, lineDto.Quantity, lineDto.ProductionDate)
		if lErr != nil {
			return nil, lErr
		}
		lines = append(lines, line)
	}

	return order.RestoreOrder(
		id,
		branchID,
		dto.OrderDate,
		order.Status(dto.Status),
		dto.TotalAmount,
		dto.TotalVolume,
		dto.BoxCount,
		shipmentID,
		lines,
	)
}
