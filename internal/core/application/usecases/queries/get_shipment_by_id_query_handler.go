package queries

import (
	"context"
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/order"
	"logistics/internal/core/domain/services"
	"logistics/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GetShipmentByIDQueryHandler builds the details read model for one
// shipment: the board row plus receiving notes and the member order list.
type GetShipmentByIDQueryHandler struct {
	db         *gorm.DB
	calculator services.CargoCalculator
}

// NewGetShipmentByIDQueryHandler creates a handler for shipment details.
func NewGetShipmentByIDQueryHandler(db *gorm.DB, calculator services.CargoCalculator) GetShipmentByIDQueryHandler {
	return GetShipmentByIDQueryHandler{db: db, calculator: calculator}
}

// Handle executes the details query. The shipment must exist.
func (h GetShipmentByIDQueryHandler) Handle(
	ctx context.Context,
	query GetShipmentByIDQuery,
) (ShipmentDetailsResponse, error) {
	if err := query.Validate(); err != nil {
		return ShipmentDetailsResponse{}, err
	}

	summary, err := h.loadSummary(ctx, query.ShipmentID())
	if err != nil {
		return ShipmentDetailsResponse{}, err
	}

	details := ShipmentDetailsResponse{ShipmentSummaryResponse: summary}

	if err = h.loadReceipt(ctx, query.ShipmentID(), &details); err != nil {
		return ShipmentDetailsResponse{}, err
	}

	details.Orders, err = h.loadOrders(ctx, query.ShipmentID())
	if err != nil {
		return ShipmentDetailsResponse{}, err
	}

	return details, nil
}

func (h GetShipmentByIDQueryHandler) loadSummary(
	ctx context.Context,
	shipmentID kernel.UUID,
) (ShipmentSummaryResponse, error) {
	rows, err := h.db.WithContext(ctx).
		Raw(shipmentSummarySelect+" WHERE s.id = ?", shipmentID.Bytes()).Rows()
	if err != nil {
		return ShipmentSummaryResponse{}, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return ShipmentSummaryResponse{}, err
		}
		return ShipmentSummaryResponse{}, errs.NewObjectNotFoundError("shipment", shipmentID)
	}

	board := GetAllShipmentsQueryHandler{db: h.db, calculator: h.calculator}
	return board.scanSummary(rows)
}

func (h GetShipmentByIDQueryHandler) loadReceipt(
	ctx context.Context,
	shipmentID kernel.UUID,
	details *ShipmentDetailsResponse,
) error {
	rows, err := h.db.WithContext(ctx).
		Raw("SELECT receipt_notes, receipt_damage FROM shipments WHERE id = ?", shipmentID.Bytes()).Rows()
	if err != nil {
		return err
	}
	defer rows.Close()

	if rows.Next() {
		if err = rows.Scan(&details.ReceiptNotes, &details.ReceiptDamage); err != nil {
			return err
		}
	}

	return rows.Err()
}

func (h GetShipmentByIDQueryHandler) loadOrders(
	ctx context.Context,
	shipmentID kernel.UUID,
) ([]ShipmentOrderResponse, error) {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT id, branch_id, status, order_date, total_amount, total_volume, box_count
		FROM orders
		WHERE shipment_id = ?
		ORDER BY id`, shipmentID.Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	members := make([]ShipmentOrderResponse, 0)
	for rows.Next() {
		var (
			id, branchID uuid.UUID
			status       int
			orderDate    time.Time
			totalAmount  decimal.Decimal
			totalVolume  float64
			boxCount     int
		)

		err = rows.Scan(&id, &branchID, &status, &orderDate, &totalAmount, &totalVolume, &boxCount)
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

		members = append(members, ShipmentOrderResponse{
			ID:          orderID,
			BranchID:    branch,
			Status:      order.Status(status).String(),
			OrderDate:   orderDate,
			TotalAmount: totalAmount,
			VolumeM3:    totalVolume,
			Cartons:     boxCount,
		})
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return members, nil
}
