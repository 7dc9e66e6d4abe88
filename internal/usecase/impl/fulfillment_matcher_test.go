package impl

import (
	"testing"

	"dispatch/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	productA = uuid.New()
	productB = uuid.New()
)

func menuEntry(restaurant string, available bool) entity.MenuEntry {
	return entity.MenuEntry{
		RestaurantName:    restaurant,
		RestaurantAddress: restaurant + " address",
		Available:         available,
	}
}

func orderOf(items ...entity.OrderItem) *entity.Order {
	return &entity.Order{ID: uuid.New(), Address: "somewhere", Items: items}
}

func candidateNames(candidates []entity.CandidateRestaurant) []string {
	names := make([]string, 0, len(candidates))
	for _, c := range candidates {
		names = append(names, c.Name)
	}

	return names
}

func TestFulfillmentMatcher_FullCoverageRequired(t *testing.T) {
	matcher := NewFulfillmentMatcher()

	// X stocks both products, Y only the first.
	order := orderOf(
		entity.OrderItem{ProductID: productA, Quantity: 1, MenuEntries: []entity.MenuEntry{
			menuEntry("X", true),
			menuEntry("Y", true),
		}},
		entity.OrderItem{ProductID: productB, Quantity: 1, MenuEntries: []entity.MenuEntry{
			menuEntry("X", true),
		}},
	)

	candidates := matcher.Match(order)
	assert.Equal(t, []string{"X"}, candidateNames(candidates))
}

func TestFulfillmentMatcher_RemovingOneEntryRemovesCandidate(t *testing.T) {
	matcher := NewFulfillmentMatcher()

	full := orderOf(
		entity.OrderItem{ProductID: productA, MenuEntries: []entity.MenuEntry{menuEntry("X", true)}},
		entity.OrderItem{ProductID: productB, MenuEntries: []entity.MenuEntry{menuEntry("X", true)}},
	)
	require.Equal(t, []string{"X"}, candidateNames(matcher.Match(full)))

	// Same order, but X's entry for the second product is gone.
	broken := orderOf(
		entity.OrderItem{ProductID: productA, MenuEntries: []entity.MenuEntry{menuEntry("X", true)}},
		entity.OrderItem{ProductID: productB, MenuEntries: nil},
	)
	assert.Empty(t, matcher.Match(broken))
}

func TestFulfillmentMatcher_UnavailableEntriesDoNotCount(t *testing.T) {
	matcher := NewFulfillmentMatcher()

	order := orderOf(
		entity.OrderItem{ProductID: productA, MenuEntries: []entity.MenuEntry{
			menuEntry("X", true),
			menuEntry("Y", false),
		}},
	)

	assert.Equal(t, []string{"X"}, candidateNames(matcher.Match(order)))
}

func TestFulfillmentMatcher_DuplicateLineItemsDoNotInflateTally(t *testing.T) {
	matcher := NewFulfillmentMatcher()

	// The same product twice plus a second product Y does not stock. If
	// duplicates counted per line, Y's tally of one would wrongly satisfy a
	// "two line items" bar.
	order := orderOf(
		entity.OrderItem{ProductID: productA, Quantity: 2, MenuEntries: []entity.MenuEntry{
			menuEntry("X", true),
			menuEntry("Y", true),
		}},
		entity.OrderItem{ProductID: productA, Quantity: 1, MenuEntries: []entity.MenuEntry{
			menuEntry("X", true),
			menuEntry("Y", true),
		}},
		entity.OrderItem{ProductID: productB, MenuEntries: []entity.MenuEntry{
			menuEntry("X", true),
		}},
	)

	assert.Equal(t, []string{"X"}, candidateNames(matcher.Match(order)))
}

func TestFulfillmentMatcher_ProductWithoutMenuEntries(t *testing.T) {
	matcher := NewFulfillmentMatcher()

	// A product nobody has a menu entry for legitimately leaves the order
	// with zero candidates; it is not an error.
	order := orderOf(
		entity.OrderItem{ProductID: productA, MenuEntries: []entity.MenuEntry{menuEntry("X", true)}},
		entity.OrderItem{ProductID: productB, MenuEntries: nil},
	)

	assert.Empty(t, matcher.Match(order))
}

func TestFulfillmentMatcher_DeterministicOrder(t *testing.T) {
	matcher := NewFulfillmentMatcher()

	order := orderOf(
		entity.OrderItem{ProductID: productA, MenuEntries: []entity.MenuEntry{
			menuEntry("C", true),
			menuEntry("A", true),
			menuEntry("B", true),
		}},
	)

	assert.Equal(t, []string{"A", "B", "C"}, candidateNames(matcher.Match(order)))
}
