package impl

import (
	"context"
	"log/slog"
	"sort"

	"dispatch/internal/domain/entity"
	domainerrors "dispatch/internal/domain/errors"
	"dispatch/internal/domain/repository"
	"dispatch/internal/usecase"
)

type dispatchService struct {
	catalog   repository.CatalogRepository
	matcher   usecase.FulfillmentMatcher
	resolvers usecase.DistanceResolverFactory
	logger    *slog.Logger
}

// NewDispatchService creates the order-enrichment service.
func NewDispatchService(
	catalog repository.CatalogRepository,
	matcher usecase.FulfillmentMatcher,
	resolvers usecase.DistanceResolverFactory,
	logger *slog.Logger,
) usecase.DispatchUsecase {
	return &dispatchService{
		catalog:   catalog,
		matcher:   matcher,
		resolvers: resolvers,
		logger:    logger,
	}
}

// EnrichNewOrders matches candidates per order, resolves every address of the
// batch through one resolver, then attaches and sorts distances. The whole
// batch shares one geocoding pass: at most one call per unique address,
// regardless of how many order-restaurant pairs reference it.
func (s *dispatchService) EnrichNewOrders(ctx context.Context) ([]*entity.Order, error) {
	orders, err := s.catalog.ListNewOrders(ctx)
	if err != nil {
		return nil, err
	}

	addresses := make([]string, 0, len(orders))
	for _, order := range orders {
		order.Restaurants = s.matcher.Match(order)

		addresses = append(addresses, order.Address)
		for _, candidate := range order.Restaurants {
			addresses = append(addresses, candidate.Address)
		}
	}

	resolver, err := s.resolvers.Build(ctx, addresses)
	if err != nil {
		// A transport-level geocoder failure halts the batch instead of
		// producing silently partial results.
		s.logger.ErrorContext(ctx, "distance resolution failed for dispatch batch",
			slog.Int("orders", len(orders)),
			slog.String("error", err.Error()))

		return nil, domainerrors.NewGeocoderUnavailableError(err)
	}

	for _, order := range orders {
		attachDistances(order, resolver)
		sortCandidates(order.Restaurants)
	}

	return orders, nil
}

func attachDistances(order *entity.Order, resolver usecase.DistanceResolver) {
	for i := range order.Restaurants {
		candidate := &order.Restaurants[i]
		if km, ok := resolver.Distance(order.Address, candidate.Address); ok {
			candidate.DistanceKM = &km
		}
	}
}

// sortCandidates orders candidates ascending by distance; entries with no
// known distance sort after all entries with one. The sort is stable, so
// equal and unknown distances keep the matcher's deterministic order.
func sortCandidates(candidates []entity.CandidateRestaurant) {
	sort.SliceStable(candidates, func(i, j int) bool {
		di, dj := candidates[i].DistanceKM, candidates[j].DistanceKM
		switch {
		case di == nil:
			return false
		case dj == nil:
			return true
		default:
			return *di < *dj
		}
	})
}
