package usecase

import (
	"context"

	"dispatch/internal/domain/entity"
)

// DistanceResolver answers point-to-point distance queries over the address
// set of one batch. Queries never touch the network; all resolution happens
// when the resolver is built.
type DistanceResolver interface {
	// Distance returns the great-circle distance in kilometers between two
	// addresses, or ok=false when either coordinate is unknown. Addresses
	// are normalized before lookup, so the result is symmetric and zero for
	// identical inputs.
	Distance(addressA, addressB string) (distanceKM float64, ok bool)
}

// DistanceResolverFactory builds a DistanceResolver for one batch of raw
// address strings. Building geocodes at most once per unique unresolved
// address and persists successful resolutions.
type DistanceResolverFactory interface {
	Build(ctx context.Context, addresses []string) (DistanceResolver, error)
}

// FulfillmentMatcher computes which restaurants can fulfill an order, i.e.
// stock every distinct ordered product. Distance is not its concern.
type FulfillmentMatcher interface {
	Match(order *entity.Order) []entity.CandidateRestaurant
}
