// Package usecase defines the application-level contracts of the dispatch
// service.
package usecase

import (
	"context"

	"dispatch/internal/domain/entity"
)

// DispatchUsecase runs the order-enrichment batch for the back office: match
// fulfillment candidates per order, resolve distances for the whole batch at
// once, attach and sort.
type DispatchUsecase interface {
	// EnrichNewOrders returns orders awaiting dispatch, each annotated with
	// its candidate restaurants sorted by distance (unknown distances last).
	EnrichNewOrders(ctx context.Context) ([]*entity.Order, error)
}

// CatalogUsecase backs the auxiliary back-office views.
type CatalogUsecase interface {
	ListRestaurants(ctx context.Context) ([]*entity.Restaurant, error)
	ProductAvailability(ctx context.Context) (*AvailabilityMatrix, error)
}

// AvailabilityMatrix is the product availability view: one column per
// restaurant, one row per product.
type AvailabilityMatrix struct {
	Restaurants []string          `json:"restaurants"`
	Rows        []AvailabilityRow `json:"rows"`
}

// AvailabilityRow is one product's availability flags, index-aligned with the
// matrix restaurant columns.
type AvailabilityRow struct {
	Product   string `json:"product"`
	Available []bool `json:"available"`
}
