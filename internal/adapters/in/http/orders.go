package http

import (
	"net/http"
	"time"

	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/core/application/usecases/queries"
	"logistics/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
)

// OrderLineRequest is one product position of an order payload.
type OrderLineRequest struct {
	ProductID      string     `json:"product_id"`
	Quantity       int        `json:"quantity"`
	ProductionDate *time.Time `json:"production_date,omitempty"`
}

// CreateOrderRequest is the payload for POST /orders.
type CreateOrderRequest struct {
	BranchID  string             `json:"branch_id"`
	OrderDate *time.Time         `json:"order_date,omitempty"`
	Lines     []OrderLineRequest `json:"lines"`
}

// UpdateOrderItemsRequest is the payload for PUT /orders/:id/items.
type UpdateOrderItemsRequest struct {
	Lines []OrderLineRequest `json:"lines"`
}

// CreatedResponse reports the identifier of a newly created resource.
type CreatedResponse struct {
	ID string `json:"id"`
}

// UncompletedOrder is one row of GET /orders/uncompleted.
type UncompletedOrder struct {
	ID          string    `json:"id"`
	BranchID    string    `json:"branch_id"`
	Status      string    `json:"status"`
	OrderDate   time.Time `json:"order_date"`
	TotalAmount string    `json:"total_amount"`
	VolumeM3    float64   `json:"volume_m3"`
	Cartons     int       `json:"cartons"`
	ShipmentID  *string   `json:"shipment_id,omitempty"`
}

// CreateOrder handles POST /api/v1/orders.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var request CreateOrderRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	branchID, err := kernel.UUIDFromString(request.BranchID)
	if err != nil {
		return errorResponse(ctx, err)
	}

	lines, err := toLineInputs(request.Lines)
	if err != nil {
		return errorResponse(ctx, err)
	}

	orderDate := time.Now().UTC()
	if request.OrderDate != nil {
		orderDate = *request.OrderDate
	}

	orderID := kernel.NewUUID()
	cmd, err := commands.NewCreateOrderCommand(orderID, branchID, orderDate, lines)
	if err != nil {
		return errorResponse(ctx, err)
	}

	if err = s.createOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, CreatedResponse{ID: orderID.String()})
}

// UpdateOrderItems handles PUT /api/v1/orders/:id/items.
func (s *Server) UpdateOrderItems(ctx echo.Context) error {
	orderID, err := pathID(ctx)
	if err != nil {
		return errorResponse(ctx, err)
	}

	var request UpdateOrderItemsRequest
	if err = ctx.Bind(&request); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	lines, err := toLineInputs(request.Lines)
	if err != nil {
		return errorResponse(ctx, err)
	}

	cmd, err := commands.NewUpdateOrderItemsCommand(orderID, lines)
	if err != nil {
		return errorResponse(ctx, err)
	}

	if err = s.updateOrderItemsHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// DeleteOrder handles DELETE /api/v1/orders/:id.
func (s *Server) DeleteOrder(ctx echo.Context) error {
	orderID, err := pathID(ctx)
	if err != nil {
		return errorResponse(ctx, err)
	}

	cmd, err := commands.NewDeleteOrderCommand(orderID)
	if err != nil {
		return errorResponse(ctx, err)
	}

	if err = s.deleteOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetUncompletedOrders handles GET /api/v1/orders/uncompleted.
func (s *Server) GetUncompletedOrders(ctx echo.Context) error {
	query := queries.NewGetUncompletedOrdersQuery()

	orders, err := s.getUncompletedOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, err)
	}

	response := make([]UncompletedOrder, len(orders))
	for i, o := range orders {
		row := UncompletedOrder{
			ID:          o.ID.String(),
			BranchID:    o.BranchID.String(),
			Status:      o.Status,
			OrderDate:   o.OrderDate,
			TotalAmount: o.TotalAmount.StringFixed(2),
			VolumeM3:    o.VolumeM3,
			Cartons:     o.Cartons,
		}
		if o.ShipmentID != nil {
			shipmentID := o.ShipmentID.String()
			row.ShipmentID = &shipmentID
		}
		response[i] = row
	}

	return ctx.JSON(http.StatusOK, response)
}

// toLineInputs converts line payloads into validated command inputs.
func toLineInputs(requests []OrderLineRequest) ([]commands.OrderLineInput, error) {
	lines := make([]commands.OrderLineInput, 0, len(requests))
	for _, lineRequest := range requests {
		productID, err := kernel.UUIDFromString(lineRequest.ProductID)
		if err != nil {
			return nil, err
		}

		var productionDate time.Time
		if lineRequest.ProductionDate != nil {
			productionDate = *lineRequest.ProductionDate
		}

		line, err := commands.NewOrderLineInput(productID, lineRequest.Quantity, productionDate)
		if err != nil {
			return nil, err
		}
		lines = append(lines, line)
	}

	return lines, nil
}
