// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"dispatch/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	DispatchHandler *handler.DispatchHandler
	CatalogHandler  *handler.CatalogHandler
}

// router holds all the handlers that need to be registered.
type router struct {
	dispatchHandler *handler.DispatchHandler
	catalogHandler  *handler.CatalogHandler
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		dispatchHandler: params.DispatchHandler,
		catalogHandler:  params.CatalogHandler,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	apiGroup := e.Group("/api")
	{
		apiGroup.GET("/orders/dispatch", r.dispatchHandler.ListOrders)
		apiGroup.GET("/restaurants", r.catalogHandler.ListRestaurants)
		apiGroup.GET("/products/availability", r.catalogHandler.ProductAvailability)
	}
}
