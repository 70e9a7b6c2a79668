package http

import (
	"net/http"
	"time"

	"logistics/internal/core/application/usecases/queries"

	"github.com/labstack/echo/v4"
)

// PreviewLineRequest is one product position of a volume preview.
type PreviewLineRequest struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
}

// PreviewBranchRequest is one branch's cargo in a volume preview.
type PreviewBranchRequest struct {
	BranchID string               `json:"branch_id"`
	Lines    []PreviewLineRequest `json:"lines"`
}

// PreviewVolumeRequest is the payload for POST /shipments/preview-volume.
type PreviewVolumeRequest struct {
	Branches []PreviewBranchRequest `json:"branches"`
}

// PreviewBranch is the per-branch slice of a volume preview response.
type PreviewBranch struct {
	BranchID string  `json:"branch_id"`
	VolumeM3 float64 `json:"volume_m3"`
	Cartons  int     `json:"cartons"`
}

// PreviewVolume is the response body of POST /shipments/preview-volume.
// Truck fields are absent when no truck is available.
type PreviewVolume struct {
	Branches         []PreviewBranch `json:"branches"`
	TotalVolumeM3    float64         `json:"total_volume_m3"`
	TotalCartons     int             `json:"total_cartons"`
	TruckCapacityM3  *float64        `json:"truck_capacity_m3,omitempty"`
	TruckUtilization *float64        `json:"truck_utilization_percent,omitempty"`
}

// ShipmentSummary is one row of GET /shipments.
type ShipmentSummary struct {
	ID               string     `json:"id"`
	Type             string     `json:"type"`
	Status           string     `json:"status"`
	OriginKind       string     `json:"origin_kind"`
	OriginID         string     `json:"origin_id"`
	DestinationKind  string     `json:"destination_kind"`
	DestinationID    string     `json:"destination_id"`
	TotalVolumeM3    float64    `json:"total_volume_m3"`
	Cartons          int        `json:"cartons"`
	OrderCount       int        `json:"order_count"`
	TruckID          *string    `json:"truck_id,omitempty"`
	TruckPlate       *string    `json:"truck_plate,omitempty"`
	TruckCapacityM3  *float64   `json:"truck_capacity_m3,omitempty"`
	TruckUtilization *float64   `json:"truck_utilization_percent,omitempty"`
	DepartureTime    *time.Time `json:"departure_time,omitempty"`
	ArrivalTime      *time.Time `json:"arrival_time,omitempty"`
}

// ShipmentOrder is a member order row inside a shipment details response.
type ShipmentOrder struct {
	ID          string    `json:"id"`
	BranchID    string    `json:"branch_id"`
	Status      string    `json:"status"`
	OrderDate   time.Time `json:"order_date"`
	TotalAmount string    `json:"total_amount"`
	VolumeM3    float64   `json:"volume_m3"`
	Cartons     int       `json:"cartons"`
}

// ShipmentDetails is the response body of GET /shipments/:id.
type ShipmentDetails struct {
	ShipmentSummary

	ReceiptNotes  string          `json:"receipt_notes,omitempty"`
	ReceiptDamage string          `json:"receipt_damage,omitempty"`
	Orders        []ShipmentOrder `json:"orders"`
}

// GetAllShipments handles GET /api/v1/shipments.
func (s *Server) GetAllShipments(ctx echo.Context) error {
	query := queries.NewGetAllShipmentsQuery()

	summaries, err := s.getAllShipmentsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, err)
	}

	response := make([]ShipmentSummary, len(summaries))
	for i, summary := range summaries {
		response[i] = toShipmentSummary(summary)
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetShipmentByID handles GET /api/v1/shipments/:id.
func (s *Server) GetShipmentByID(ctx echo.Context) error {
	shipmentID, err := pathID(ctx)
	if err != nil {
		return errorResponse(ctx, err)
	}

	query, err := queries.NewGetShipmentByIDQuery(shipmentID)
	if err != nil {
		return errorResponse(ctx, err)
	}

	details, err := s.getShipmentByIDHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, err)
	}

	orders := make([]ShipmentOrder, len(details.Orders))
	for i, memberOrder := range details.Orders {
		orders[i] = ShipmentOrder{
			ID:          memberOrder.ID.String(),
			BranchID:    memberOrder.BranchID.String(),
			Status:      memberOrder.Status,
			OrderDate:   memberOrder.OrderDate,
			TotalAmount: memberOrder.TotalAmount.StringFixed(2),
			VolumeM3:    memberOrder.VolumeM3,
			Cartons:     memberOrder.Cartons,
		}
	}

	return ctx.JSON(http.StatusOK, ShipmentDetails{
		ShipmentSummary: toShipmentSummary(details.ShipmentSummaryResponse),
		ReceiptNotes:    details.ReceiptNotes,
		ReceiptDamage:   details.ReceiptDamage,
		Orders:          orders,
	})
}

func toShipmentSummary(summary queries.ShipmentSummaryResponse) ShipmentSummary {
	row := ShipmentSummary{
		ID:               summary.ID.String(),
		Type:             summary.Type,
		Status:           summary.Status,
		OriginKind:       summary.OriginKind,
		OriginID:         summary.OriginID.String(),
		DestinationKind:  summary.DestinationKind,
		DestinationID:    summary.DestinationID.String(),
		TotalVolumeM3:    summary.TotalVolumeM3,
		Cartons:          summary.Cartons,
		OrderCount:       summary.OrderCount,
		TruckPlate:       summary.TruckPlate,
		TruckCapacityM3:  summary.TruckCapacityM3,
		TruckUtilization: summary.TruckUtilization,
		DepartureTime:    summary.DepartureTime,
		ArrivalTime:      summary.ArrivalTime,
	}
	if summary.TruckID != nil {
		truckID := summary.TruckID.String()
		row.TruckID = &truckID
	}
	return row
}

func toPreviewResponse(preview queries.PreviewVolumeQueryResponse) PreviewVolume {
	branches := make([]PreviewBranch, len(preview.Branches))
	for i, branch := range preview.Branches {
		branches[i] = PreviewBranch{
			BranchID: branch.BranchID.String(),
			VolumeM3: branch.VolumeM3,
			Cartons:  branch.Cartons,
		}
	}

	return PreviewVolume{
		Branches:         branches,
		TotalVolumeM3:    preview.TotalVolumeM3,
		TotalCartons:     preview.TotalCartons,
		TruckCapacityM3:  preview.TruckCapacityM3,
		TruckUtilization: preview.TruckUtilization,
	}
}
