package impl

import (
	"context"
	"log/slog"
	"time"

	"wastefleet/internal/domain/entity"
	domainerrors "wastefleet/internal/domain/errors"
	"wastefleet/internal/domain/repository"
	"wastefleet/internal/domain/service"
	"wastefleet/internal/errors"
	"wastefleet/internal/usecase"

	"github.com/google/uuid"
)

type fleetService struct {
	fleetRepo repository.FleetRepository
	cache     service.FleetCache
	logger    *slog.Logger
}

// NewFleetService creates a new fleet service instance.
// The cache is optional; a nil cache skips the live-position write-through.
func NewFleetService(fleetRepo repository.FleetRepository, cache service.FleetCache, logger *slog.Logger) usecase.FleetUsecase {
	return &fleetService{
		fleetRepo: fleetRepo,
		cache:     cache,
		logger:    logger,
	}
}

// UpdateVehicleLocation records a driver's position report. The database is
// the source of truth; the cache write is best effort.
func (s *fleetService) UpdateVehicleLocation(ctx context.Context, vehicleID uuid.UUID, coordinate entity.Coordinate) (*entity.VehicleLocation, error) {
	now := time.Now()

	if err := s.fleetRepo.UpdateVehicleLocation(ctx, vehicleID, coordinate, now); err != nil {
		if errors.Is(err, repository.ErrVehicleNotFound) {
			return nil, domainerrors.ErrVehicleNotFound
		}

		return nil, errors.Wrap(err, "failed to update vehicle location")
	}

	if s.cache != nil {
		position := service.VehiclePosition{Coordinate: coordinate, UpdatedAt: now}
		if err := s.cache.SetPosition(ctx, vehicleID, position); err != nil {
			s.logger.Warn("Failed to cache vehicle position",
				slog.String("vehicle_id", vehicleID.String()),
				slog.Any("error", err),
			)
		}
	}

	vehicle, err := s.fleetRepo.FindVehicleByID(ctx, vehicleID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load vehicle after update")
	}

	return vehicle, nil
}
