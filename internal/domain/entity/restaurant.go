package entity

import "github.com/google/uuid"

// Restaurant is a point of sale that can be matched against orders.
type Restaurant struct {
	ID           uuid.UUID
	Name         string
	Address      string
	ContactPhone string
}

// Product is a catalog item referenced by order lines and restaurant menus.
type Product struct {
	ID    uuid.UUID
	Name  string
	Price float64
}

// ProductMenu pairs a product with its menu records across all restaurants.
type ProductMenu struct {
	Product     Product
	MenuEntries []MenuEntry
}
