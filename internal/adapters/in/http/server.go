// Package http exposes the application's commands and queries over a REST
// API. Handlers translate JSON payloads into guard-constructed commands,
// invoke the use case, and map the error taxonomy onto HTTP status codes:
// not-found 404, invalid input 400, conflict 409, everything else 500.
package http

import (
	"errors"
	"net/http"

	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/core/application/usecases/queries"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createOrderHandler              commands.CreateOrderCommandHandler
	updateOrderItemsHandler         commands.UpdateOrderItemsCommandHandler
	deleteOrderHandler              commands.DeleteOrderCommandHandler
	createShipmentHandler           commands.CreateShipmentCommandHandler
	createShipmentWithOrdersHandler commands.CreateShipmentWithOrdersCommandHandler
	createLinehaulShipmentHandler   commands.CreateLinehaulShipmentCommandHandler
	assignTruckHandler              commands.AssignTruckCommandHandler
	autoAssignTruckHandler          commands.AutoAssignTruckCommandHandler
	addOrdersToShipmentHandler      commands.AddOrdersToShipmentCommandHandler
	startShipmentHandler            commands.StartShipmentCommandHandler
	completeShipmentHandler         commands.CompleteShipmentCommandHandler
	receiveShipmentHandler          commands.ReceiveShipmentCommandHandler
	deleteShipmentHandler           commands.DeleteShipmentCommandHandler
	createReturnHandler             commands.CreateReturnCommandHandler

	// Query handlers
	previewVolumeHandler        queries.PreviewVolumeQueryHandler
	getAllShipmentsHandler      queries.GetAllShipmentsQueryHandler
	getShipmentByIDHandler      queries.GetShipmentByIDQueryHandler
	getUncompletedOrdersHandler queries.GetUncompletedOrdersQueryHandler
}

// ServerHandlers bundles every use case handler the server exposes.
type ServerHandlers struct {
	CreateOrder              commands.CreateOrderCommandHandler
	UpdateOrderItems         commands.UpdateOrderItemsCommandHandler
	DeleteOrder              commands.DeleteOrderCommandHandler
	CreateShipment           commands.CreateShipmentCommandHandler
	CreateShipmentWithOrders commands.CreateShipmentWithOrdersCommandHandler
	CreateLinehaulShipment   commands.CreateLinehaulShipmentCommandHandler
	AssignTruck              commands.AssignTruckCommandHandler
	AutoAssignTruck          commands.AutoAssignTruckCommandHandler
	AddOrdersToShipment      commands.AddOrdersToShipmentCommandHandler
	StartShipment            commands.StartShipmentCommandHandler
	CompleteShipment         commands.CompleteShipmentCommandHandler
	ReceiveShipment          commands.ReceiveShipmentCommandHandler
	DeleteShipment           commands.DeleteShipmentCommandHandler
	CreateReturn             commands.CreateReturnCommandHandler

	PreviewVolume        queries.PreviewVolumeQueryHandler
	GetAllShipments      queries.GetAllShipmentsQueryHandler
	GetShipmentByID      queries.GetShipmentByIDQueryHandler
	GetUncompletedOrders queries.GetUncompletedOrdersQueryHandler
}

// NewServer creates a new HTTP server with the required command and query
// handlers.
func NewServer(handlers ServerHandlers) *Server {
	return &Server{
		createOrderHandler:              handlers.CreateOrder,
		updateOrderItemsHandler:         handlers.UpdateOrderItems,
		deleteOrderHandler:              handlers.DeleteOrder,
		createShipmentHandler:           handlers.CreateShipment,
		createShipmentWithOrdersHandler: handlers.CreateShipmentWithOrders,
		createLinehaulShipmentHandler:   handlers.CreateLinehaulShipment,
		assignTruckHandler:              handlers.AssignTruck,
		autoAssignTruckHandler:          handlers.AutoAssignTruck,
		addOrdersToShipmentHandler:      handlers.AddOrdersToShipment,
		startShipmentHandler:            handlers.StartShipment,
		completeShipmentHandler:         handlers.CompleteShipment,
		receiveShipmentHandler:          handlers.ReceiveShipment,
		deleteShipmentHandler:           handlers.DeleteShipment,
		createReturnHandler:             handlers.CreateReturn,
		previewVolumeHandler:            handlers.PreviewVolume,
		getAllShipmentsHandler:          handlers.GetAllShipments,
		getShipmentByIDHandler:          handlers.GetShipmentByID,
		getUncompletedOrdersHandler:     handlers.GetUncompletedOrders,
	}
}

// RegisterRoutes binds every endpoint onto the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	api.POST("/orders", s.CreateOrder)
	api.PUT("/orders/:id/items", s.UpdateOrderItems)
	api.DELETE("/orders/:id", s.DeleteOrder)
	api.GET("/orders/uncompleted", s.GetUncompletedOrders)

	api.POST("/shipments", s.CreateShipment)
	api.POST("/shipments/with-orders", s.CreateShipmentWithOrders)
	api.POST("/shipments/linehaul", s.CreateLinehaulShipment)
	api.POST("/shipments/preview-volume", s.PreviewVolume)
	api.GET("/shipments", s.GetAllShipments)
	api.GET("/shipments/:id", s.GetShipmentByID)
	api.POST("/shipments/:id/truck", s.AssignTruck)
	api.POST("/shipments/:id/truck/auto", s.AutoAssignTruck)
	api.POST("/shipments/:id/orders", s.AddOrdersToShipment)
	api.POST("/shipments/:id/start", s.StartShipment)
	api.POST("/shipments/:id/complete", s.CompleteShipment)
	api.POST("/shipments/:id/receive", s.ReceiveShipment)
	api.DELETE("/shipments/:id", s.DeleteShipment)

	api.POST("/returns", s.CreateReturn)
}

// Error is the JSON body returned for every failed request.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// errorResponse maps the error taxonomy onto HTTP status codes and writes
// the JSON error body.
func errorResponse(ctx echo.Context, err error) error {
	status := http.StatusInternalServerError

	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		status = http.StatusNotFound
	case errors.Is(err, errs.ErrConflict):
		status = http.StatusConflict
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		status = http.StatusBadRequest
	}

	return ctx.JSON(status, Error{
		Code:    status,
		Message: err.Error(),
	})
}

// badRequest writes a 400 response with the given message.
func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, Error{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

// pathID parses the :id path parameter as a UUID.
func pathID(ctx echo.Context) (kernel.UUID, error) {
	return kernel.UUIDFromString(ctx.Param("id"))
}

// parseOptionalUUID parses an optional UUID field, returning nil for the
// empty string.
func parseOptionalUUID(raw string) (*kernel.UUID, error) {
	if raw == "" {
		return nil, nil
	}
	id, err := kernel.UUIDFromString(raw)
	if err != nil {
		return nil, err
	}
	return &id, nil
}
