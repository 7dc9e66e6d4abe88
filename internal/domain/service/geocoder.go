// Package service defines contracts for external collaborators the domain
// depends on.
package service

import (
	"context"

	"dispatch/internal/domain/entity"
)

// Geocoder resolves free-text addresses to coordinates via an external
// provider.
//
// Soft outcomes (missing credential, provider denying access, provider
// finding no match) return an invalid Coordinate and a nil error; callers
// degrade to "location unknown". Transport and protocol failures return a
// non-nil error and must halt the batch instead of silently producing
// partial results.
type Geocoder interface {
	Resolve(ctx context.Context, address string) (entity.Coordinate, error)
}
