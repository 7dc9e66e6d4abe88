package impl

import (
	"context"
	"log/slog"
	"sort"
	"time"

	"dispatch/internal/domain/entity"
	"dispatch/internal/domain/repository"
	"dispatch/internal/domain/service"
	"dispatch/internal/errors"
	"dispatch/internal/usecase"

	"github.com/paulmach/orb/geo"
)

type distanceResolverFactory struct {
	addressRepo repository.AddressRepository
	geocoder    service.Geocoder
	logger      *slog.Logger
}

// NewDistanceResolverFactory creates the factory that builds one resolver per
// enrichment batch.
func NewDistanceResolverFactory(
	addressRepo repository.AddressRepository,
	geocoder service.Geocoder,
	logger *slog.Logger,
) usecase.DistanceResolverFactory {
	return &distanceResolverFactory{
		addressRepo: addressRepo,
		geocoder:    geocoder,
		logger:      logger,
	}
}

// Build resolves the batch's address set: one store lookup for everything on
// record, then one geocoding call per remaining unique address. Successful
// resolutions are persisted; unresolved ones live only in this resolver's
// table, so a future batch retries them.
func (f *distanceResolverFactory) Build(ctx context.Context, addresses []string) (usecase.DistanceResolver, error) {
	names := normalizeUnique(addresses)

	known, err := f.addressRepo.LookupMany(ctx, names)
	if err != nil {
		return nil, errors.Wrap(err, "failed to look up cached addresses")
	}

	table := make(map[string]entity.Coordinate, len(names))
	for _, name := range names {
		if coord, ok := known[name]; ok {
			table[name] = coord

			continue
		}

		coord, err := f.geocoder.Resolve(ctx, name)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to geocode %q", name)
		}
		table[name] = coord

		if !coord.Valid {
			f.logger.DebugContext(ctx, "address left unresolved for this batch",
				slog.String("address", name))

			continue
		}

		address := &entity.Address{
			Name:       name,
			Coordinate: coord,
			ResolvedAt: time.Now(),
		}
		if err := f.addressRepo.Create(ctx, address); err != nil {
			return nil, errors.Wrapf(err, "failed to persist address %q", name)
		}
	}

	return &distanceResolver{table: table}, nil
}

// normalizeUnique case-folds and deduplicates raw addresses. Sorted output
// keeps the geocoding order deterministic across runs.
func normalizeUnique(addresses []string) []string {
	seen := make(map[string]struct{}, len(addresses))
	names := make([]string, 0, len(addresses))
	for _, raw := range addresses {
		name := entity.NormalizeAddress(raw)
		if name == "" {
			continue
		}
		if _, dup := seen[name]; dup {
			continue
		}
		seen[name] = struct{}{}
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}

// distanceResolver is the in-memory lookup table for one batch.
type distanceResolver struct {
	table map[string]entity.Coordinate
}

// Distance returns the great-circle distance in kilometers, or ok=false when
// either address has no known coordinate. Absence propagates; it is never
// substituted with a numeric default.
func (r *distanceResolver) Distance(addressA, addressB string) (float64, bool) {
	coordA, ok := r.table[entity.NormalizeAddress(addressA)]
	if !ok || !coordA.Valid {
		return 0, false
	}

	coordB, ok := r.table[entity.NormalizeAddress(addressB)]
	if !ok || !coordB.Valid {
		return 0, false
	}

	return geo.DistanceHaversine(coordA.Point, coordB.Point) / 1000, true
}
