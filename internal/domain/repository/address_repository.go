// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"

	"dispatch/internal/domain/entity"
	"dispatch/internal/errors"
)

// ErrAddressConflict is returned when an address row already exists. Callers
// treat it as benign: the existing row is authoritative and addresses are
// immutable once recorded.
var ErrAddressConflict = errors.New("address already recorded")

// AddressRepository is the durable address-to-coordinate store.
//
// The store is append-only: rows are inserted on first resolution and never
// updated or deleted. Concurrent batches may race on the same previously
// unknown address; implementations must make that race harmless.
type AddressRepository interface {
	// LookupMany returns coordinates for the given normalized names that are
	// already on record. Names without a row are omitted from the result;
	// the caller must treat omission as "unknown, needs resolution".
	LookupMany(ctx context.Context, names []string) (map[string]entity.Coordinate, error)

	// Create inserts a new address row. A uniqueness conflict with a
	// concurrent writer is swallowed: the first write wins and Create
	// reports success.
	Create(ctx context.Context, address *entity.Address) error
}
