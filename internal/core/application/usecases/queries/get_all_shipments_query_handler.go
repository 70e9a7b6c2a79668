package queries

import (
	"context"
	"database/sql"
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/shipment"
	"logistics/internal/core/domain/services"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetAllShipmentsQueryHandler builds the shipment board read model: one row
// per shipment joined with its truck, plus derived carton and utilization
// figures.
type GetAllShipmentsQueryHandler struct {
	db         *gorm.DB
	calculator services.CargoCalculator
}

// NewGetAllShipmentsQueryHandler creates a handler for the shipment board.
func NewGetAllShipmentsQueryHandler(db *gorm.DB, calculator services.CargoCalculator) GetAllShipmentsQueryHandler {
	return GetAllShipmentsQueryHandler{db: db, calculator: calculator}
}

const shipmentSummarySelect = `
	SELECT
		s.id,
		s.type,
		s.status,
		s.origin_kind,
		s.origin_id,
		s.destination_kind,
		s.destination_id,
		s.total_volume,
		s.departure_time,
		s.arrival_time,
		t.id,
		t.plate_number,
		t.capacity_m3,
		(SELECT COUNT(*) FROM orders o WHERE o.shipment_id = s.id)
	FROM shipments s
	LEFT JOIN trucks t ON t.id = s.truck_id
`

// Handle executes the board query. Results are sorted by shipment ID for
// consistent output.
func (h GetAllShipmentsQueryHandler) Handle(
	ctx context.Context,
	query GetAllShipmentsQuery,
) ([]ShipmentSummaryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(shipmentSummarySelect + " ORDER BY s.id").Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	summaries := make([]ShipmentSummaryResponse, 0)
	for rows.Next() {
		summary, scanErr := h.scanSummary(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		summaries = append(summaries, summary)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return summaries, nil
}

// scanSummary maps one joined row into the read model, deriving cartons
// from the rolling volume and utilization from the bound truck's capacity.
func (h GetAllShipmentsQueryHandler) scanSummary(rows *sql.Rows) (ShipmentSummaryResponse, error) {
	var (
		id, originID, destinationID        uuid.UUID
		shipmentType, status               int
		originKind, destinationKind        int
		totalVolume                        float64
		departureTime, arrivalTime         *time.Time
		truckID                            *uuid.UUID
		truckPlate                         *string
		truckCapacity                      *float64
		orderCount                         int
	)

	err := rows.Scan(
		&id, &shipmentType, &status,
		&originKind, &originID, &destinationKind, &destinationID,
		&totalVolume, &departureTime, &arrivalTime,
		&truckID, &truckPlate, &truckCapacity, &orderCount,
	)
	if err != nil {
		return ShipmentSummaryResponse{}, err
	}

	shipmentID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return ShipmentSummaryResponse{}, err
	}
	origin, err := kernel.UUIDFromBytes(originID[:])
	if err != nil {
		return ShipmentSummaryResponse{}, err
	}
	destination, err := kernel.UUIDFromBytes(destinationID[:])
	if err != nil {
		return ShipmentSummaryResponse{}, err
	}

	summary := ShipmentSummaryResponse{
		ID:              shipmentID,
		Type:            shipment.Type(shipmentType).String(),
		Status:          shipment.Status(status).String(),
		OriginKind:      shipment.EndpointKind(originKind).String(),
		OriginID:        origin,
		DestinationKind: shipment.EndpointKind(destinationKind).String(),
		DestinationID:   destination,
		TotalVolumeM3:   totalVolume,
		Cartons:         h.calculator.Cartons(totalVolume),
		OrderCount:      orderCount,
		DepartureTime:   departureTime,
		ArrivalTime:     arrivalTime,
	}

	if truckID != nil {
		boundTruckID, idErr := kernel.UUIDFromBytes((*truckID)[:])
		if idErr != nil {
			return ShipmentSummaryResponse{}, idErr
		}
		summary.TruckID = &boundTruckID
		summary.TruckPlate = truckPlate
		summary.TruckCapacityM3 = truckCapacity
		if truckCapacity != nil && *truckCapacity > 0 {
			utilization := totalVolume / *truckCapacity * 100
			summary.TruckUtilization = &utilization
		}
	}

	return summary, nil
}
