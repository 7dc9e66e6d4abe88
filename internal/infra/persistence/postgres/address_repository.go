package postgres

import (
	"context"

	"dispatch/internal/domain/entity"
	domainerrors "dispatch/internal/domain/errors"
	"dispatch/internal/domain/repository"
	"dispatch/internal/infra/persistence/model"

	"gorm.io/gorm"
)

// addressRepository implements the repository.AddressRepository interface.
type addressRepository struct {
	db *gorm.DB
}

// NewAddressRepository is the constructor for addressRepository.
func NewAddressRepository(db *gorm.DB) repository.AddressRepository {
	return &addressRepository{db: db}
}

// LookupMany returns coordinates for names already on record. Missing names
// are omitted, not reported as errors.
func (repo *addressRepository) LookupMany(ctx context.Context, names []string) (map[string]entity.Coordinate, error) {
	if len(names) == 0 {
		return map[string]entity.Coordinate{}, nil
	}

	var rows []model.AddressModel
	if err := repo.db.WithContext(ctx).
		Where("name IN ?", names).
		Find(&rows).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to look up addresses")
	}

	known := make(map[string]entity.Coordinate, len(rows))
	for _, row := range rows {
		known[row.Name] = toCoordinate(row)
	}

	return known, nil
}

// Create inserts one address row. A uniqueness conflict means another writer
// recorded the address first; the existing row is authoritative, so the
// insert reports success.
func (repo *addressRepository) Create(ctx context.Context, address *entity.Address) error {
	row := fromAddressDomain(address)

	if err := repo.db.WithContext(ctx).Create(row).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return nil
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create address")
	}

	return nil
}

func toCoordinate(row model.AddressModel) entity.Coordinate {
	if row.Longitude == nil || row.Latitude == nil {
		return entity.Coordinate{}
	}

	return entity.NewCoordinate(*row.Longitude, *row.Latitude)
}

func fromAddressDomain(address *entity.Address) *model.AddressModel {
	row := &model.AddressModel{
		Name:       address.Name,
		ResolvedAt: address.ResolvedAt,
	}
	if address.Coordinate.Valid {
		lon, lat := address.Coordinate.Lon(), address.Coordinate.Lat()
		row.Longitude = &lon
		row.Latitude = &lat
	}

	return row
}
