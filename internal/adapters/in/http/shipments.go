package http

import (
	"net/http"
	"time"

	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/core/application/usecases/queries"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/shipment"

	"github.com/labstack/echo/v4"
)

// EndpointRequest is a tagged endpoint reference in a shipment payload.
type EndpointRequest struct {
	Kind string `json:"kind"`
	ID   string `json:"id"`
}

// CreateShipmentRequest is the payload for POST /shipments.
type CreateShipmentRequest struct {
	Origin      EndpointRequest `json:"origin"`
	Destination EndpointRequest `json:"destination"`
	Type        string          `json:"type"`
	TruckID     string          `json:"truck_id,omitempty"`
}

// BranchOrderRequest is one branch's order inside a compound shipment
// payload.
type BranchOrderRequest struct {
	BranchID string             `json:"branch_id"`
	Lines    []OrderLineRequest `json:"lines"`
}

// CreateShipmentWithOrdersRequest is the payload for POST
// /shipments/with-orders.
type CreateShipmentWithOrdersRequest struct {
	RouteID   string               `json:"route_id,omitempty"`
	DCID      string               `json:"dc_id"`
	Branches  []BranchOrderRequest `json:"branches"`
	TruckID   string               `json:"truck_id,omitempty"`
	OrderDate *time.Time           `json:"order_date,omitempty"`
}

// CreateLinehaulShipmentRequest is the payload for POST /shipments/linehaul.
type CreateLinehaulShipmentRequest struct {
	ManufacturerID string  `json:"manufacturer_id"`
	DCID           string  `json:"dc_id"`
	TruckID        string  `json:"truck_id,omitempty"`
	DeclaredVolume float64 `json:"declared_volume_m3,omitempty"`
}

// AssignTruckRequest is the payload for POST /shipments/:id/truck.
type AssignTruckRequest struct {
	TruckID string `json:"truck_id"`
}

// AddOrdersRequest is the payload for POST /shipments/:id/orders.
type AddOrdersRequest struct {
	OrderIDs []string `json:"order_ids"`
}

// AddOrderOutcome reports what happened to one order of an add batch.
type AddOrderOutcome struct {
	OrderID  string `json:"order_id"`
	Attached bool   `json:"attached"`
	Reason   string `json:"reason,omitempty"`
}

// CompleteShipmentRequest is the payload for POST /shipments/:id/complete.
type CompleteShipmentRequest struct {
	ReturnIDs []string `json:"return_ids,omitempty"`
}

// ReceiveShipmentRequest is the payload for POST /shipments/:id/receive.
type ReceiveShipmentRequest struct {
	Notes     string   `json:"notes,omitempty"`
	Damage    string   `json:"damage,omitempty"`
	ReturnIDs []string `json:"return_ids,omitempty"`
}

// CreateShipment handles POST /api/v1/shipments.
func (s *Server) CreateShipment(ctx echo.Context) error {
	var request CreateShipmentRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	origin, err := toEndpoint(request.Origin)
	if err != nil {
		return errorResponse(ctx, err)
	}

	destinationKind, err := shipment.ParseEndpointKind(request.Destination.Kind)
	if err != nil {
		return errorResponse(ctx, err)
	}
	destinationID, err := kernel.UUIDFromString(request.Destination.ID)
	if err != nil {
		return errorResponse(ctx, err)
	}
	destination, err := shipment.NewDestination(destinationKind, destinationID)
	if err != nil {
		return errorResponse(ctx, err)
	}

	shipmentType, err := shipment.ParseType(request.Type)
	if err != nil {
		return errorResponse(ctx, err)
	}

	truckID, err := parseOptionalUUID(request.TruckID)
	if err != nil {
		return errorResponse(ctx, err)
	}

	shipmentID := kernel.NewUUID()
	cmd, err := commands.NewCreateShipmentCommand(shipmentID, origin, destination, shipmentType, truckID)
	if err != nil {
		return errorResponse(ctx, err)
	}

	if err = s.createShipmentHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, CreatedResponse{ID: shipmentID.String()})
}

// CreateShipmentWithOrders handles POST /api/v1/shipments/with-orders.
func (s *Server) CreateShipmentWithOrders(ctx echo.Context) error {
	var request CreateShipmentWithOrdersRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	dcID, err := kernel.UUIDFromString(request.DCID)
	if err != nil {
		return errorResponse(ctx, err)
	}

	routeID, err := parseOptionalUUID(request.RouteID)
	if err != nil {
		return errorResponse(ctx, err)
	}

	truckID, err := parseOptionalUUID(request.TruckID)
	if err != nil {
		return errorResponse(ctx, err)
	}

	branches := make([]commands.BranchOrderInput, 0, len(request.Branches))
	for _, branchRequest := range request.Branches {
		branchID, branchErr := kernel.UUIDFromString(branchRequest.BranchID)
		if branchErr != nil {
			return errorResponse(ctx, branchErr)
		}

		lines, branchErr := toLineInputs(branchRequest.Lines)
		if branchErr != nil {
			return errorResponse(ctx, branchErr)
		}

		branch, branchErr := commands.NewBranchOrderInput(branchID, lines)
		if branchErr != nil {
			return errorResponse(ctx, branchErr)
		}
		branches = append(branches, branch)
	}

	orderDate := time.Now().UTC()
	if request.OrderDate != nil {
		orderDate = *request.OrderDate
	}

	shipmentID := kernel.NewUUID()
	cmd, err := commands.NewCreateShipmentWithOrdersCommand(
		shipmentID, routeID, dcID, branches, truckID, orderDate)
	if err != nil {
		return errorResponse(ctx, err)
	}

	if err = s.createShipmentWithOrdersHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, CreatedResponse{ID: shipmentID.String()})
}

// CreateLinehaulShipment handles POST /api/v1/shipments/linehaul.
func (s *Server) CreateLinehaulShipment(ctx echo.Context) error {
	var request CreateLinehaulShipmentRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	manufacturerID, err := kernel.UUIDFromString(request.ManufacturerID)
	if err != nil {
		return errorResponse(ctx, err)
	}

	dcID, err := kernel.UUIDFromString(request.DCID)
	if err != nil {
		return errorResponse(ctx, err)
	}

	truckID, err := parseOptionalUUID(request.TruckID)
	if err != nil {
		return errorResponse(ctx, err)
	}

	shipmentID := kernel.NewUUID()
	cmd, err := commands.NewCreateLinehaulShipmentCommand(
		shipmentID, manufacturerID, dcID, truckID, request.DeclaredVolume)
	if err != nil {
		return errorResponse(ctx, err)
	}

	if err = s.createLinehaulShipmentHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, CreatedResponse{ID: shipmentID.String()})
}

// AssignTruck handles POST /api/v1/shipments/:id/truck.
func (s *Server) AssignTruck(ctx echo.Context) error {
	shipmentID, err := pathID(ctx)
	if err != nil {
		return errorResponse(ctx, err)
	}

	var request AssignTruckRequest
	if err = ctx.Bind(&request); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	truckID, err := kernel.UUIDFromString(request.TruckID)
	if err != nil {
		return errorResponse(ctx, err)
	}

	cmd, err := commands.NewAssignTruckCommand(shipmentID, truckID)
	if err != nil {
		return errorResponse(ctx, err)
	}

	if err = s.assignTruckHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// AutoAssignTruck handles POST /api/v1/shipments/:id/truck/auto.
func (s *Server) AutoAssignTruck(ctx echo.Context) error {
	shipmentID, err := pathID(ctx)
	if err != nil {
		return errorResponse(ctx, err)
	}

	cmd, err := commands.NewAutoAssignTruckCommand(shipmentID)
	if err != nil {
		return errorResponse(ctx, err)
	}

	if err = s.autoAssignTruckHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// AddOrdersToShipment handles POST /api/v1/shipments/:id/orders.
func (s *Server) AddOrdersToShipment(ctx echo.Context) error {
	shipmentID, err := pathID(ctx)
	if err != nil {
		return errorResponse(ctx, err)
	}

	var request AddOrdersRequest
	if err = ctx.Bind(&request); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	orderIDs, err := parseUUIDs(request.OrderIDs)
	if err != nil {
		return errorResponse(ctx, err)
	}

	cmd, err := commands.NewAddOrdersToShipmentCommand(shipmentID, orderIDs)
	if err != nil {
		return errorResponse(ctx, err)
	}

	outcomes, err := s.addOrdersToShipmentHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return errorResponse(ctx, err)
	}

	response := make([]AddOrderOutcome, len(outcomes))
	for i, outcome := range outcomes {
		response[i] = AddOrderOutcome{
			OrderID:  outcome.OrderID.String(),
			Attached: outcome.Attached,
			Reason:   outcome.Reason,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// StartShipment handles POST /api/v1/shipments/:id/start.
func (s *Server) StartShipment(ctx echo.Context) error {
	shipmentID, err := pathID(ctx)
	if err != nil {
		return errorResponse(ctx, err)
	}

	cmd, err := commands.NewStartShipmentCommand(shipmentID)
	if err != nil {
		return errorResponse(ctx, err)
	}

	if err = s.startShipmentHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CompleteShipment handles POST /api/v1/shipments/:id/complete.
func (s *Server) CompleteShipment(ctx echo.Context) error {
	shipmentID, err := pathID(ctx)
	if err != nil {
		return errorResponse(ctx, err)
	}

	var request CompleteShipmentRequest
	if err = ctx.Bind(&request); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	returnIDs, err := parseUUIDs(request.ReturnIDs)
	if err != nil {
		return errorResponse(ctx, err)
	}

	cmd, err := commands.NewCompleteShipmentCommand(shipmentID, returnIDs)
	if err != nil {
		return errorResponse(ctx, err)
	}

	if err = s.completeShipmentHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ReceiveShipment handles POST /api/v1/shipments/:id/receive.
func (s *Server) ReceiveShipment(ctx echo.Context) error {
	shipmentID, err := pathID(ctx)
	if err != nil {
		return errorResponse(ctx, err)
	}

	var request ReceiveShipmentRequest
	if err = ctx.Bind(&request); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	returnIDs, err := parseUUIDs(request.ReturnIDs)
	if err != nil {
		return errorResponse(ctx, err)
	}

	cmd, err := commands.NewReceiveShipmentCommand(shipmentID, request.Notes, request.Damage, returnIDs)
	if err != nil {
		return errorResponse(ctx, err)
	}

	if err = s.receiveShipmentHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// DeleteShipment handles DELETE /api/v1/shipments/:id.
func (s *Server) DeleteShipment(ctx echo.Context) error {
	shipmentID, err := pathID(ctx)
	if err != nil {
		return errorResponse(ctx, err)
	}

	cmd, err := commands.NewDeleteShipmentCommand(shipmentID)
	if err != nil {
		return errorResponse(ctx, err)
	}

	if err = s.deleteShipmentHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// toEndpoint converts a tagged endpoint payload into its value object.
func toEndpoint(request EndpointRequest) (shipment.Endpoint, error) {
	kind, err := shipment.ParseEndpointKind(request.Kind)
	if err != nil {
		return shipment.Endpoint{}, err
	}

	id, err := kernel.UUIDFromString(request.ID)
	if err != nil {
		return shipment.Endpoint{}, err
	}

	return shipment.NewEndpoint(kind, id)
}

// parseUUIDs parses a list of UUID strings.
func parseUUIDs(raw []string) ([]kernel.UUID, error) {
	ids := make([]kernel.UUID, 0, len(raw))
	for _, s := range raw {
		id, err := kernel.UUIDFromString(s)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}

// PreviewVolume handles POST /api/v1/shipments/preview-volume.
func (s *Server) PreviewVolume(ctx echo.Context) error {
	var request PreviewVolumeRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	branches := make([]queries.PreviewBranchInput, 0, len(request.Branches))
	for _, branchRequest := range request.Branches {
		branchID, err := kernel.UUIDFromString(branchRequest.BranchID)
		if err != nil {
			return errorResponse(ctx, err)
		}

		lines := make([]queries.PreviewLineInput, 0, len(branchRequest.Lines))
		for _, lineRequest := range branchRequest.Lines {
			productID, lineErr := kernel.UUIDFromString(lineRequest.ProductID)
			if lineErr != nil {
				return errorResponse(ctx, lineErr)
			}
			lines = append(lines, queries.PreviewLineInput{
				ProductID: productID,
				Quantity:  lineRequest.Quantity,
			})
		}

		branches = append(branches, queries.PreviewBranchInput{
			BranchID: branchID,
			Lines:    lines,
		})
	}

	query, err := queries.NewPreviewVolumeQuery(branches)
	if err != nil {
		return errorResponse(ctx, err)
	}

	preview, err := s.previewVolumeHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toPreviewResponse(preview))
}
