package http

import (
	"net/http"
	"time"

	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
)

// ReturnLineRequest is one returned product position.
type ReturnLineRequest struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
	Reason    string `json:"reason,omitempty"`
}

// CreateReturnRequest is the payload for POST /returns.
type CreateReturnRequest struct {
	OrderID    string              `json:"order_id"`
	ReturnDate *time.Time          `json:"return_date,omitempty"`
	Lines      []ReturnLineRequest `json:"lines"`
}

// CreateReturn handles POST /api/v1/returns.
func (s *Server) CreateReturn(ctx echo.Context) error {
	var request CreateReturnRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	orderID, err := kernel.UUIDFromString(request.OrderID)
	if err != nil {
		return errorResponse(ctx, err)
	}

	lines := make([]commands.ReturnLineInput, 0, len(request.Lines))
	for _, lineRequest := range request.Lines {
		productID, lineErr := kernel.UUIDFromString(lineRequest.ProductID)
		if lineErr != nil {
			return errorResponse(ctx, lineErr)
		}

		line, lineErr := commands.NewReturnLineInput(productID, lineRequest.Quantity, lineRequest.Reason)
		if lineErr != nil {
			return errorResponse(ctx, lineErr)
		}
		lines = append(lines, line)
	}

	returnDate := time.Now().UTC()
	if request.ReturnDate != nil {
		returnDate = *request.ReturnDate
	}

	returnID := kernel.NewUUID()
	cmd, err := commands.NewCreateReturnCommand(returnID, orderID, returnDate, lines)
	if err != nil {
		return errorResponse(ctx, err)
	}

	if err = s.createReturnHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, CreatedResponse{ID: returnID.String()})
}
