package impl

import (
	"context"
	"log/slog"
	"testing"

	"dispatch/internal/domain/entity"
	domainerrors "dispatch/internal/domain/errors"
	mockRepo "dispatch/internal/mocks/repository"
	mockService "dispatch/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newDispatchService(t *testing.T) (*mockRepo.MockCatalogRepository, *mockRepo.MockAddressRepository, *mockService.MockGeocoder, *dispatchService) {
	t.Helper()

	catalog := mockRepo.NewMockCatalogRepository(t)
	addressRepo := mockRepo.NewMockAddressRepository(t)
	geocoder := mockService.NewMockGeocoder(t)
	logger := slog.New(slog.DiscardHandler)

	service, ok := NewDispatchService(
		catalog,
		NewFulfillmentMatcher(),
		NewDistanceResolverFactory(addressRepo, geocoder, logger),
		logger,
	).(*dispatchService)
	require.True(t, ok)

	return catalog, addressRepo, geocoder, service
}

func TestDispatchService_EnrichNewOrders_RedSquareScenario(t *testing.T) {
	catalog, addressRepo, geocoder, service := newDispatchService(t)
	ctx := context.Background()

	burgerA, burgerB := uuid.New(), uuid.New()
	xEntryA := entity.MenuEntry{RestaurantName: "X", RestaurantAddress: "Tverskaya 1", Available: true}
	xEntryB := entity.MenuEntry{RestaurantName: "X", RestaurantAddress: "Tverskaya 1", Available: true}
	yEntryA := entity.MenuEntry{RestaurantName: "Y", RestaurantAddress: "Arbat 10", Available: true}

	catalog.EXPECT().
		ListNewOrders(ctx).
		Return([]*entity.Order{{
			ID:      uuid.New(),
			Address: "Moscow, Red Square",
			Items: []entity.OrderItem{
				{ProductID: burgerA, MenuEntries: []entity.MenuEntry{xEntryA, yEntryA}},
				{ProductID: burgerB, MenuEntries: []entity.MenuEntry{xEntryB}},
			},
		}}, nil)

	// Y covers one product of two, so its address never joins the batch.
	addressRepo.EXPECT().
		LookupMany(ctx, []string{"moscow, red square", "tverskaya 1"}).
		Return(map[string]entity.Coordinate{}, nil)

	geocoder.EXPECT().
		Resolve(ctx, "moscow, red square").
		Return(entity.NewCoordinate(37.62, 55.75), nil).
		Once()
	geocoder.EXPECT().
		Resolve(ctx, "tverskaya 1").
		Return(entity.NewCoordinate(37.60, 55.74), nil).
		Once()

	addressRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Address")).
		Return(nil).
		Twice()

	orders, err := service.EnrichNewOrders(ctx)
	require.NoError(t, err)
	require.Len(t, orders, 1)

	candidates := orders[0].Restaurants
	require.Len(t, candidates, 1)
	assert.Equal(t, "X", candidates[0].Name)
	assert.Equal(t, "Tverskaya 1", candidates[0].Address)
	require.NotNil(t, candidates[0].DistanceKM)
	assert.InDelta(t, 1.68, *candidates[0].DistanceKM, 0.05)
}

func TestDispatchService_EnrichNewOrders_NoCredentialDegradesGracefully(t *testing.T) {
	catalog, addressRepo, geocoder, service := newDispatchService(t)
	ctx := context.Background()

	product := uuid.New()
	catalog.EXPECT().
		ListNewOrders(ctx).
		Return([]*entity.Order{{
			ID:      uuid.New(),
			Address: "Moscow, Red Square",
			Items: []entity.OrderItem{{
				ProductID: product,
				MenuEntries: []entity.MenuEntry{
					{RestaurantName: "X", RestaurantAddress: "Tverskaya 1", Available: true},
					{RestaurantName: "Y", RestaurantAddress: "Arbat 10", Available: true},
				},
			}},
		}}, nil)

	addressRepo.EXPECT().
		LookupMany(ctx, []string{"arbat 10", "moscow, red square", "tverskaya 1"}).
		Return(map[string]entity.Coordinate{}, nil)

	// Geocoder in degraded mode: every address comes back unresolved, the
	// batch still completes and candidates are listed without distances.
	geocoder.EXPECT().
		Resolve(ctx, mock.AnythingOfType("string")).
		Return(entity.Coordinate{}, nil).
		Times(3)

	orders, err := service.EnrichNewOrders(ctx)
	require.NoError(t, err)
	require.Len(t, orders, 1)

	candidates := orders[0].Restaurants
	require.Len(t, candidates, 2)
	assert.Equal(t, []string{"X", "Y"}, []string{candidates[0].Name, candidates[1].Name})
	assert.Nil(t, candidates[0].DistanceKM)
	assert.Nil(t, candidates[1].DistanceKM)
}

func TestDispatchService_EnrichNewOrders_SharedCachedAddress(t *testing.T) {
	catalog, addressRepo, geocoder, service := newDispatchService(t)
	ctx := context.Background()

	product := uuid.New()
	sharedEntry := entity.MenuEntry{RestaurantName: "X", RestaurantAddress: "Tverskaya 1", Available: true}

	// Two orders, same candidate restaurant; one delivery address cached
	// from a prior run, the other never seen.
	catalog.EXPECT().
		ListNewOrders(ctx).
		Return([]*entity.Order{
			{
				ID:      uuid.New(),
				Address: "Moscow, Red Square",
				Items:   []entity.OrderItem{{ProductID: product, MenuEntries: []entity.MenuEntry{sharedEntry}}},
			},
			{
				ID:      uuid.New(),
				Address: "Leninsky 42",
				Items:   []entity.OrderItem{{ProductID: product, MenuEntries: []entity.MenuEntry{sharedEntry}}},
			},
		}, nil)

	addressRepo.EXPECT().
		LookupMany(ctx, []string{"leninsky 42", "moscow, red square", "tverskaya 1"}).
		Return(map[string]entity.Coordinate{
			"moscow, red square": entity.NewCoordinate(37.62, 55.75),
			"tverskaya 1":        entity.NewCoordinate(37.60, 55.74),
		}, nil)

	// Only the never-seen address hits the provider.
	geocoder.EXPECT().
		Resolve(ctx, "leninsky 42").
		Return(entity.NewCoordinate(37.58, 55.70), nil).
		Once()

	addressRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Address")).
		Return(nil).
		Once()

	orders, err := service.EnrichNewOrders(ctx)
	require.NoError(t, err)
	require.Len(t, orders, 2)

	for _, order := range orders {
		require.Len(t, order.Restaurants, 1)
		assert.NotNil(t, order.Restaurants[0].DistanceKM)
	}
}

func TestDispatchService_EnrichNewOrders_SortsUnknownDistancesLast(t *testing.T) {
	catalog, addressRepo, geocoder, service := newDispatchService(t)
	ctx := context.Background()

	product := uuid.New()
	catalog.EXPECT().
		ListNewOrders(ctx).
		Return([]*entity.Order{{
			ID:      uuid.New(),
			Address: "Moscow, Red Square",
			Items: []entity.OrderItem{{
				ProductID: product,
				MenuEntries: []entity.MenuEntry{
					{RestaurantName: "Far", RestaurantAddress: "Far Street 1", Available: true},
					{RestaurantName: "Lost", RestaurantAddress: "Unmappable 7", Available: true},
					{RestaurantName: "Near", RestaurantAddress: "Near Lane 2", Available: true},
				},
			}},
		}}, nil)

	addressRepo.EXPECT().
		LookupMany(ctx, []string{"far street 1", "moscow, red square", "near lane 2", "unmappable 7"}).
		Return(map[string]entity.Coordinate{
			"moscow, red square": entity.NewCoordinate(37.62, 55.75),
			"far street 1":       entity.NewCoordinate(37.90, 55.90),
			"near lane 2":        entity.NewCoordinate(37.63, 55.76),
		}, nil)

	geocoder.EXPECT().
		Resolve(ctx, "unmappable 7").
		Return(entity.Coordinate{}, nil).
		Once()

	orders, err := service.EnrichNewOrders(ctx)
	require.NoError(t, err)
	require.Len(t, orders, 1)

	candidates := orders[0].Restaurants
	require.Len(t, candidates, 3)
	assert.Equal(t, "Near", candidates[0].Name)
	assert.Equal(t, "Far", candidates[1].Name)
	assert.Equal(t, "Lost", candidates[2].Name)
	assert.Nil(t, candidates[2].DistanceKM)
	require.NotNil(t, candidates[0].DistanceKM)
	require.NotNil(t, candidates[1].DistanceKM)
	assert.Less(t, *candidates[0].DistanceKM, *candidates[1].DistanceKM)
}

func TestDispatchService_EnrichNewOrders_GeocoderOutageHaltsBatch(t *testing.T) {
	catalog, addressRepo, geocoder, service := newDispatchService(t)
	ctx := context.Background()

	product := uuid.New()
	catalog.EXPECT().
		ListNewOrders(ctx).
		Return([]*entity.Order{{
			ID:      uuid.New(),
			Address: "Moscow, Red Square",
			Items: []entity.OrderItem{{
				ProductID: product,
				MenuEntries: []entity.MenuEntry{
					{RestaurantName: "X", RestaurantAddress: "Tverskaya 1", Available: true},
				},
			}},
		}}, nil)

	addressRepo.EXPECT().
		LookupMany(ctx, []string{"moscow, red square", "tverskaya 1"}).
		Return(map[string]entity.Coordinate{}, nil)

	geocoder.EXPECT().
		Resolve(ctx, "moscow, red square").
		Return(entity.Coordinate{}, assert.AnError)

	orders, err := service.EnrichNewOrders(ctx)
	require.Error(t, err)
	assert.Nil(t, orders)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "GEOCODER_UNAVAILABLE", appErr.ErrorCode())
	assert.Equal(t, assert.AnError.Error(), appErr.Details())
	assert.ErrorIs(t, err, assert.AnError)
}
