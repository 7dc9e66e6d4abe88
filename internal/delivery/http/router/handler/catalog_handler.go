package handler

import (
	"log/slog"
	"net/http"

	"dispatch/internal/delivery/http/response"
	"dispatch/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// CatalogHandlerParams holds dependencies for CatalogHandler, injected by Fx.
type CatalogHandlerParams struct {
	fx.In

	CatalogUC usecase.CatalogUsecase
	Logger    *slog.Logger
}

// CatalogHandler serves restaurant and product reference data.
type CatalogHandler struct {
	catalogUC usecase.CatalogUsecase
	logger    *slog.Logger
}

// NewCatalogHandler is the constructor for CatalogHandler
func NewCatalogHandler(params CatalogHandlerParams) *CatalogHandler {
	return &CatalogHandler{
		catalogUC: params.CatalogUC,
		logger:    params.Logger,
	}
}

// RestaurantResponse is one restaurant row.
type RestaurantResponse struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Address      string    `json:"address"`
	ContactPhone string    `json:"contact_phone,omitempty"`
}

// ListRestaurants returns all restaurants.
func (h *CatalogHandler) ListRestaurants(c echo.Context) error {
	restaurants, err := h.catalogUC.ListRestaurants(c.Request().Context())
	if err != nil {
		return err
	}

	rows := make([]RestaurantResponse, 0, len(restaurants))
	for _, restaurant := range restaurants {
		rows = append(rows, RestaurantResponse{
			ID:           restaurant.ID,
			Name:         restaurant.Name,
			Address:      restaurant.Address,
			ContactPhone: restaurant.ContactPhone,
		})
	}

	return response.Success(c, http.StatusOK, rows, "")
}

// ProductAvailability returns the product-by-restaurant availability matrix.
func (h *CatalogHandler) ProductAvailability(c echo.Context) error {
	matrix, err := h.catalogUC.ProductAvailability(c.Request().Context())
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, matrix, "")
}
