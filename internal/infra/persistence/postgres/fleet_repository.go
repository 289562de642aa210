package postgres

import (
	"context"
	"time"

	"wastefleet/internal/domain/entity"
	"wastefleet/internal/domain/repository"
	"wastefleet/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// fleetRepository implements the repository.FleetRepository interface.
type fleetRepository struct {
	db *gorm.DB
}

// NewFleetRepository is the constructor for fleetRepository.
func NewFleetRepository(db *gorm.DB) repository.FleetRepository {
	return &fleetRepository{
		db: db,
	}
}

// ListActiveVehicles retrieves every vehicle with active status.
func (repo *fleetRepository) ListActiveVehicles(ctx context.Context) ([]*entity.VehicleLocation, error) {
	var vehicleModels []*model.VehicleLocationModel

	if err := repo.db.WithContext(ctx).
		Where("status = ?", string(entity.VehicleStatusActive)).
		Find(&vehicleModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list active vehicles")
	}

	vehicles := make([]*entity.VehicleLocation, 0, len(vehicleModels))
	for _, vehicleM := range vehicleModels {
		vehicles = append(vehicles, toVehicleDomain(vehicleM))
	}

	return vehicles, nil
}

// FindVehicleByID retrieves a single vehicle tracking record.
func (repo *fleetRepository) FindVehicleByID(ctx context.Context, id uuid.UUID) (*entity.VehicleLocation, error) {
	var vehicleM model.VehicleLocationModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&vehicleM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrVehicleNotFound
		}

		return nil, errors.Wrap(err, "failed to find vehicle by ID")
	}

	return toVehicleDomain(&vehicleM), nil
}

// UpdateVehicleLocation persists a new position and last-updated timestamp.
func (repo *fleetRepository) UpdateVehicleLocation(ctx context.Context, id uuid.UUID, coordinate entity.Coordinate, at time.Time) error {
	result := repo.db.WithContext(ctx).
		Model(&model.VehicleLocationModel{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"latitude":     coordinate.Latitude,
			"longitude":    coordinate.Longitude,
			"last_updated": at,
		})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update vehicle location")
	}

	if result.RowsAffected == 0 {
		return repository.ErrVehicleNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toVehicleDomain converts a GORM VehicleLocationModel to a domain VehicleLocation entity.
func toVehicleDomain(data *model.VehicleLocationModel) *entity.VehicleLocation {
	if data == nil {
		return nil
	}

	return &entity.VehicleLocation{
		ID:         data.ID,
		VehicleID:  data.VehicleID,
		DriverID:   data.DriverID,
		DriverName: data.DriverName,
		Coordinate: entity.Coordinate{
			Latitude:  data.Latitude,
			Longitude: data.Longitude,
		},
		Status:      entity.VehicleStatus(data.Status),
		VehicleType: entity.VehicleType(data.VehicleType),
		RouteID:     data.RouteID,
		RouteName:   data.RouteName,
		LastUpdated: data.LastUpdated,
	}
}
