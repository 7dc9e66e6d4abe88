package impl

import (
	"sort"

	"dispatch/internal/domain/entity"
	"dispatch/internal/usecase"

	"github.com/google/uuid"
)

// restaurantKey identifies a restaurant across menu entries. Name and address
// together form the identity the tally is keyed on.
type restaurantKey struct {
	name    string
	address string
}

type fulfillmentMatcher struct{}

// NewFulfillmentMatcher creates the menu-coverage matcher.
func NewFulfillmentMatcher() usecase.FulfillmentMatcher {
	return &fulfillmentMatcher{}
}

// Match tallies, per restaurant, how many distinct ordered products it has an
// available menu entry for. A restaurant qualifies iff it covers every
// distinct product; ordering the same product twice must not lower the bar
// or double-count coverage.
func (m *fulfillmentMatcher) Match(order *entity.Order) []entity.CandidateRestaurant {
	// Collapse line items to distinct products first: quantity and duplicate
	// lines are irrelevant to coverage.
	menusByProduct := make(map[uuid.UUID][]entity.MenuEntry, len(order.Items))
	for _, item := range order.Items {
		if _, seen := menusByProduct[item.ProductID]; seen {
			continue
		}
		menusByProduct[item.ProductID] = item.MenuEntries
	}

	tally := make(map[restaurantKey]int)
	for _, entries := range menusByProduct {
		covered := make(map[restaurantKey]struct{}, len(entries))
		for _, entry := range entries {
			if !entry.Available {
				continue
			}
			key := restaurantKey{name: entry.RestaurantName, address: entry.RestaurantAddress}
			if _, dup := covered[key]; dup {
				continue
			}
			covered[key] = struct{}{}
			tally[key]++
		}
	}

	candidates := make([]entity.CandidateRestaurant, 0, len(tally))
	for key, count := range tally {
		if count == len(menusByProduct) {
			candidates = append(candidates, entity.CandidateRestaurant{
				Name:    key.name,
				Address: key.address,
			})
		}
	}

	// Map iteration order is random; keep the pre-distance order deterministic.
	sort.Slice(candidates, func(i, j int) bool {
		if candidates[i].Name != candidates[j].Name {
			return candidates[i].Name < candidates[j].Name
		}

		return candidates[i].Address < candidates[j].Address
	})

	return candidates
}
