package impl

import (
	"context"
	"testing"

	"dispatch/internal/domain/entity"
	mockRepo "dispatch/internal/mocks/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalogService_ProductAvailability(t *testing.T) {
	catalog := mockRepo.NewMockCatalogRepository(t)
	service := NewCatalogService(catalog)
	ctx := context.Background()

	catalog.EXPECT().
		ListRestaurants(ctx).
		Return([]*entity.Restaurant{
			{ID: uuid.New(), Name: "A"},
			{ID: uuid.New(), Name: "B"},
		}, nil)

	catalog.EXPECT().
		ListProductMenus(ctx).
		Return([]*entity.ProductMenu{
			{
				Product: entity.Product{Name: "Burger"},
				MenuEntries: []entity.MenuEntry{
					{RestaurantName: "A", Available: true},
					{RestaurantName: "B", Available: false},
				},
			},
			{
				Product: entity.Product{Name: "Fries"},
				MenuEntries: []entity.MenuEntry{
					{RestaurantName: "B", Available: true},
				},
			},
		}, nil)

	matrix, err := service.ProductAvailability(ctx)
	require.NoError(t, err)

	assert.Equal(t, []string{"A", "B"}, matrix.Restaurants)
	require.Len(t, matrix.Rows, 2)
	assert.Equal(t, "Burger", matrix.Rows[0].Product)
	assert.Equal(t, []bool{true, false}, matrix.Rows[0].Available)
	assert.Equal(t, "Fries", matrix.Rows[1].Product)
	assert.Equal(t, []bool{false, true}, matrix.Rows[1].Available)
}

func TestCatalogService_ListRestaurants(t *testing.T) {
	catalog := mockRepo.NewMockCatalogRepository(t)
	service := NewCatalogService(catalog)
	ctx := context.Background()

	expected := []*entity.Restaurant{{ID: uuid.New(), Name: "A", Address: "Main 1"}}
	catalog.EXPECT().
		ListRestaurants(ctx).
		Return(expected, nil)

	restaurants, err := service.ListRestaurants(ctx)
	require.NoError(t, err)
	assert.Equal(t, expected, restaurants)
}
