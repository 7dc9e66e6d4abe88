package entity

import (
	"github.com/google/uuid"
)

// OrderStatus is the processing stage of an order.
type OrderStatus string

const (
	OrderStatusNew       OrderStatus = "new"
	OrderStatusProcessed OrderStatus = "processed"
	OrderStatusFinished  OrderStatus = "finished"
)

// PaymentMethod describes how an order is paid for.
type PaymentMethod string

const (
	PaymentMethodUnknown PaymentMethod = "unknown"
	PaymentMethodOnline  PaymentMethod = "online"
	PaymentMethodCash    PaymentMethod = "cash"
)

// MenuEntry is one restaurant's menu record for a product.
type MenuEntry struct {
	RestaurantName    string
	RestaurantAddress string
	Available         bool
}

// OrderItem is one line of an order together with the prefetched menu
// records for its product across all restaurants.
type OrderItem struct {
	ProductID   uuid.UUID
	ProductName string
	Quantity    int
	Price       float64
	MenuEntries []MenuEntry
}

// Order is the dispatcher's view of a placed order. The persisted fields are
// read-only for the dispatch core; Restaurants is an in-memory annotation
// attached for the duration of one enrichment pass.
type Order struct {
	ID            uuid.UUID
	Status        OrderStatus
	PaymentMethod PaymentMethod
	Address       string
	FirstName     string
	LastName      string
	PhoneNumber   string
	Comment       string
	TotalPrice    float64
	// AssignedRestaurant is the restaurant already picked by a dispatcher,
	// if any.
	AssignedRestaurant string
	Items              []OrderItem

	// Restaurants lists fulfillment candidates, sorted by distance once
	// enrichment has run. Never persisted.
	Restaurants []CandidateRestaurant
}

// CandidateRestaurant is a restaurant able to fulfill a specific order.
// DistanceKM stays nil when either endpoint's coordinate is unknown.
type CandidateRestaurant struct {
	Name       string
	Address    string
	DistanceKM *float64
}
