package impl

import (
	"context"
	"log/slog"
	"testing"

	"dispatch/internal/domain/entity"
	mockRepo "dispatch/internal/mocks/repository"
	mockService "dispatch/internal/mocks/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newFactory(t *testing.T) (*mockRepo.MockAddressRepository, *mockService.MockGeocoder, *distanceResolverFactory) {
	t.Helper()

	addressRepo := mockRepo.NewMockAddressRepository(t)
	geocoder := mockService.NewMockGeocoder(t)
	factory, ok := NewDistanceResolverFactory(addressRepo, geocoder, slog.New(slog.DiscardHandler)).(*distanceResolverFactory)
	require.True(t, ok)

	return addressRepo, geocoder, factory
}

func TestDistanceResolverFactory_CacheHitSkipsGeocoding(t *testing.T) {
	addressRepo, _, factory := newFactory(t)
	ctx := context.Background()

	addressRepo.EXPECT().
		LookupMany(ctx, []string{"moscow, red square"}).
		Return(map[string]entity.Coordinate{
			"moscow, red square": entity.NewCoordinate(37.62, 55.75),
		}, nil)

	// No geocoder expectation: any call would fail the test.
	resolver, err := factory.Build(ctx, []string{"Moscow, Red Square"})
	require.NoError(t, err)

	km, ok := resolver.Distance("Moscow, Red Square", "MOSCOW, RED SQUARE")
	require.True(t, ok)
	assert.Zero(t, km)
}

func TestDistanceResolverFactory_GeocodesOnlyUnresolvedSubset(t *testing.T) {
	addressRepo, geocoder, factory := newFactory(t)
	ctx := context.Background()

	// Three raw strings collapse to two unique names; one is cached.
	addressRepo.EXPECT().
		LookupMany(ctx, []string{"new street 1", "old street 9"}).
		Return(map[string]entity.Coordinate{
			"old street 9": entity.NewCoordinate(37.0, 55.0),
		}, nil)

	geocoder.EXPECT().
		Resolve(ctx, "new street 1").
		Return(entity.NewCoordinate(37.1, 55.1), nil).
		Once()

	addressRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Address")).
		Return(nil).
		Once()

	resolver, err := factory.Build(ctx, []string{"Old Street 9", "New Street 1", "old street 9"})
	require.NoError(t, err)

	_, ok := resolver.Distance("old street 9", "new street 1")
	assert.True(t, ok)
}

func TestDistanceResolverFactory_PersistsResolvedCoordinates(t *testing.T) {
	addressRepo, geocoder, factory := newFactory(t)
	ctx := context.Background()

	addressRepo.EXPECT().
		LookupMany(ctx, []string{"somewhere new"}).
		Return(map[string]entity.Coordinate{}, nil)

	geocoder.EXPECT().
		Resolve(ctx, "somewhere new").
		Return(entity.NewCoordinate(30.31, 59.93), nil)

	var persisted *entity.Address
	addressRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Address")).
		Run(func(_ context.Context, address *entity.Address) {
			persisted = address
		}).
		Return(nil)

	_, err := factory.Build(ctx, []string{"Somewhere New"})
	require.NoError(t, err)

	require.NotNil(t, persisted)
	assert.Equal(t, "somewhere new", persisted.Name)
	require.True(t, persisted.Coordinate.Valid)
	assert.InDelta(t, 30.31, persisted.Coordinate.Lon(), 1e-9)
	assert.InDelta(t, 59.93, persisted.Coordinate.Lat(), 1e-9)
	assert.False(t, persisted.ResolvedAt.IsZero())
}

// Unresolved outcomes are cached for the batch but never persisted: the next
// batch that misses the address retries the provider.
func TestDistanceResolverFactory_UnresolvedNotPersistedAndRetried(t *testing.T) {
	addressRepo, geocoder, factory := newFactory(t)
	ctx := context.Background()

	addressRepo.EXPECT().
		LookupMany(ctx, []string{"nowhere"}).
		Return(map[string]entity.Coordinate{}, nil).
		Twice()

	// Two builds, two resolution attempts. No Create expectation at all.
	geocoder.EXPECT().
		Resolve(ctx, "nowhere").
		Return(entity.Coordinate{}, nil).
		Twice()

	for range 2 {
		resolver, err := factory.Build(ctx, []string{"Nowhere"})
		require.NoError(t, err)

		_, ok := resolver.Distance("nowhere", "nowhere")
		assert.False(t, ok)
	}
}

func TestDistanceResolverFactory_HardGeocoderFailureHaltsBatch(t *testing.T) {
	addressRepo, geocoder, factory := newFactory(t)
	ctx := context.Background()

	addressRepo.EXPECT().
		LookupMany(ctx, []string{"a", "b"}).
		Return(map[string]entity.Coordinate{}, nil)

	geocoder.EXPECT().
		Resolve(ctx, "a").
		Return(entity.Coordinate{}, assert.AnError)

	_, err := factory.Build(ctx, []string{"a", "b"})
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
}

func TestDistanceResolver_SymmetryAndIdentity(t *testing.T) {
	resolver := &distanceResolver{table: map[string]entity.Coordinate{
		"moscow, red square": entity.NewCoordinate(37.62, 55.75),
		"tverskaya 1":        entity.NewCoordinate(37.60, 55.74),
	}}

	ab, ok := resolver.Distance("Moscow, Red Square", "Tverskaya 1")
	require.True(t, ok)
	ba, ok := resolver.Distance("Tverskaya 1", "Moscow, Red Square")
	require.True(t, ok)
	assert.Equal(t, ab, ba)
	assert.Positive(t, ab)

	self, ok := resolver.Distance("moscow, red square", " MOSCOW, RED SQUARE ")
	require.True(t, ok)
	assert.Zero(t, self)
}

func TestDistanceResolver_UnknownPropagates(t *testing.T) {
	resolver := &distanceResolver{table: map[string]entity.Coordinate{
		"known":   entity.NewCoordinate(37.62, 55.75),
		"no-fix":  {},
		"at-zero": entity.NewCoordinate(0, 0),
	}}

	_, ok := resolver.Distance("known", "no-fix")
	assert.False(t, ok)

	_, ok = resolver.Distance("no-fix", "known")
	assert.False(t, ok)

	_, ok = resolver.Distance("known", "never seen")
	assert.False(t, ok)

	// (0,0) is a real coordinate, not an absence marker.
	km, ok := resolver.Distance("known", "at-zero")
	require.True(t, ok)
	assert.Positive(t, km)
}
