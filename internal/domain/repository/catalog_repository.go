package repository

import (
	"context"

	"dispatch/internal/domain/entity"
)

// CatalogRepository is the read-only view of the restaurant catalog the
// dispatch core consumes. Every order it returns carries its line items and,
// per item, the full set of restaurant menu records for that product, so the
// matching algorithm never goes back to the database per order.
type CatalogRepository interface {
	// ListNewOrders returns orders awaiting dispatch with their line items
	// and prefetched menu records, total price included.
	ListNewOrders(ctx context.Context) ([]*entity.Order, error)

	// ListRestaurants returns every restaurant, ordered by name.
	ListRestaurants(ctx context.Context) ([]*entity.Restaurant, error)

	// ListProductMenus returns every product with its menu entries, ordered
	// by product name. Used by the availability matrix view.
	ListProductMenus(ctx context.Context) ([]*entity.ProductMenu, error)
}
