package handler

import (
	"log/slog"
	"net/http"

	"dispatch/internal/delivery/http/response"
	"dispatch/internal/domain/entity"
	"dispatch/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// DispatchHandlerParams holds dependencies for DispatchHandler, injected by Fx.
type DispatchHandlerParams struct {
	fx.In

	DispatchUC usecase.DispatchUsecase
	Logger     *slog.Logger
}

// DispatchHandler serves the order-dispatch listing for the back office.
type DispatchHandler struct {
	dispatchUC usecase.DispatchUsecase
	logger     *slog.Logger
}

// NewDispatchHandler is the constructor for DispatchHandler
func NewDispatchHandler(params DispatchHandlerParams) *DispatchHandler {
	return &DispatchHandler{
		dispatchUC: params.DispatchUC,
		logger:     params.Logger,
	}
}

// ListOrdersQuery represents the query parameters of the dispatch listing
type ListOrdersQuery struct {
	Limit int `query:"limit" validate:"omitempty,min=1,max=500"`
}

// CandidateResponse is one fulfillment candidate in the listing.
type CandidateResponse struct {
	Name       string   `json:"name"`
	Address    string   `json:"address"`
	DistanceKM *float64 `json:"distance_km"`
}

// OrderResponse is one order row of the dispatch listing.
type OrderResponse struct {
	ID            uuid.UUID           `json:"id"`
	Status        string              `json:"status"`
	PaymentMethod string              `json:"payment_method"`
	Client        string              `json:"client"`
	PhoneNumber   string              `json:"phone_number"`
	Address       string              `json:"address"`
	Comment       string              `json:"comment,omitempty"`
	TotalPrice    float64             `json:"total_price"`
	Restaurants   []CandidateResponse `json:"restaurants"`
}

// ListOrders runs the enrichment batch over orders awaiting dispatch.
func (h *DispatchHandler) ListOrders(c echo.Context) error {
	var query ListOrdersQuery
	if err := c.Bind(&query); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid dispatch listing query")
	}

	if err := c.Validate(&query); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	orders, err := h.dispatchUC.EnrichNewOrders(c.Request().Context())
	if err != nil {
		return err
	}

	if query.Limit > 0 && len(orders) > query.Limit {
		orders = orders[:query.Limit]
	}

	rows := make([]OrderResponse, 0, len(orders))
	for _, order := range orders {
		rows = append(rows, toOrderResponse(order))
	}

	return response.Success(c, http.StatusOK, rows, "")
}

func toOrderResponse(order *entity.Order) OrderResponse {
	row := OrderResponse{
		ID:            order.ID,
		Status:        string(order.Status),
		PaymentMethod: string(order.PaymentMethod),
		Client:        order.FirstName + " " + order.LastName,
		PhoneNumber:   order.PhoneNumber,
		Address:       order.Address,
		Comment:       order.Comment,
		TotalPrice:    order.TotalPrice,
		Restaurants:   make([]CandidateResponse, 0, len(order.Restaurants)),
	}
	for _, candidate := range order.Restaurants {
		row.Restaurants = append(row.Restaurants, CandidateResponse{
			Name:       candidate.Name,
			Address:    candidate.Address,
			DistanceKM: candidate.DistanceKM,
		})
	}

	return row
}
