package impl

import (
	"context"

	"dispatch/internal/domain/entity"
	"dispatch/internal/domain/repository"
	"dispatch/internal/usecase"
)

type catalogService struct {
	catalog repository.CatalogRepository
}

// NewCatalogService creates the service behind the auxiliary back-office views.
func NewCatalogService(catalog repository.CatalogRepository) usecase.CatalogUsecase {
	return &catalogService{catalog: catalog}
}

// ListRestaurants returns all restaurants ordered by name.
func (s *catalogService) ListRestaurants(ctx context.Context) ([]*entity.Restaurant, error) {
	return s.catalog.ListRestaurants(ctx)
}

// ProductAvailability builds the product availability matrix. Restaurants
// without a menu entry for a product count as not stocking it.
func (s *catalogService) ProductAvailability(ctx context.Context) (*usecase.AvailabilityMatrix, error) {
	restaurants, err := s.catalog.ListRestaurants(ctx)
	if err != nil {
		return nil, err
	}

	menus, err := s.catalog.ListProductMenus(ctx)
	if err != nil {
		return nil, err
	}

	matrix := &usecase.AvailabilityMatrix{
		Restaurants: make([]string, 0, len(restaurants)),
		Rows:        make([]usecase.AvailabilityRow, 0, len(menus)),
	}

	columns := make(map[string]int, len(restaurants))
	for i, restaurant := range restaurants {
		matrix.Restaurants = append(matrix.Restaurants, restaurant.Name)
		columns[restaurant.Name] = i
	}

	for _, menu := range menus {
		row := usecase.AvailabilityRow{
			Product:   menu.Product.Name,
			Available: make([]bool, len(restaurants)),
		}
		for _, entry := range menu.MenuEntries {
			if idx, ok := columns[entry.RestaurantName]; ok && entry.Available {
				row.Available[idx] = true
			}
		}
		matrix.Rows = append(matrix.Rows, row)
	}

	return matrix, nil
}
