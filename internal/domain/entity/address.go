// Package entity contains the core business objects of the project.
package entity

import (
	"strings"
	"time"
)

// Address is a persisted geocoding result keyed by normalized address text.
// Rows are created once on the first lookup miss and never mutated afterwards;
// the durable store is append-only from the dispatch core's perspective.
type Address struct {
	Name       string     // Normalized (case-folded, trimmed) address text, globally unique.
	Coordinate Coordinate // Resolved coordinate; Valid=false means the row carries no location.
	ResolvedAt time.Time  // When the geocoding lookup was performed.
}

// NormalizeAddress case-folds raw address text into the store's key domain.
// Order delivery addresses and restaurant addresses share this domain, so
// "Москва, Красная площадь" and "москва, красная площадь" hit the same row.
func NormalizeAddress(raw string) string {
	return strings.ToLower(strings.TrimSpace(raw))
}
