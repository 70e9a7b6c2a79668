package queries

import (
	"context"
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GetUncompletedOrdersQueryHandler lists orders that are still pending or
// in transit.
type GetUncompletedOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetUncompletedOrdersQueryHandler creates a handler for the open-order
// worklist.
func NewGetUncompletedOrdersQueryHandler(db *gorm.DB) GetUncompletedOrdersQueryHandler {
	return GetUncompletedOrdersQueryHandler{db: db}
}

// Handle executes the worklist query, oldest orders first.
func (h GetUncompletedOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetUncompletedOrdersQuery,
) ([]UncompletedOrderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT id, branch_id, status, order_date, total_amount, total_volume, box_count, shipment_id
		FROM orders
		WHERE status NOT IN (?, ?)
		ORDER BY order_date, id`,
		order.Delivered, order.Received).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	responses := make([]UncompletedOrderResponse, 0)
	for rows.Next() {
		var (
			id, branchID uuid.UUID
			status       int
			orderDate    time.Time
			totalAmount  decimal.Decimal
			totalVolume  float64
			boxCount     int
			shipmentID   *uuid.UUID
		)

		err = rows.Scan(&id, &branchID, &status, &orderDate,
			&totalAmount, &totalVolume, &boxCount, &shipmentID)
		if err != nil {
			return nil, err
		}

		orderID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		branch, idErr := kernel.UUIDFromBytes(branchID[:])
		if idErr != nil {
			return nil, idErr
		}

		response := UncompletedOrderResponse{
			ID:          orderID,
			BranchID:    branch,
			Status:      order.Status(status).String(),
			OrderDate:   orderDate,
			TotalAmount: totalAmount,
			VolumeM3:    totalVolume,
			Cartons:     boxCount,
		}
		if shipmentID != nil {
			bound, idErr := kernel.UUIDFromBytes((*shipmentID)[:])
			if idErr != nil {
				return nil, idErr
			}
			response.ShipmentID = &bound
		}

		responses = append(responses, response)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return responses, nil
}
