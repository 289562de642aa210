// Package impl contains the concrete implementations of the usecase interfaces.
package impl

import (
	"context"
	"log/slog"
	"sort"

	"wastefleet/internal/domain/entity"
	"wastefleet/internal/domain/repository"
	"wastefleet/internal/domain/service"
	"wastefleet/internal/geo"
	"wastefleet/internal/usecase"

	"github.com/pkg/errors"
)

type locatorService struct {
	fleetRepo repository.FleetRepository
	cache     service.FleetCache
	logger    *slog.Logger
}

// NewLocatorService creates a new locator service instance.
// The cache is optional; a nil cache disables live-position overlays.
func NewLocatorService(fleetRepo repository.FleetRepository, cache service.FleetCache, logger *slog.Logger) usecase.LocatorUsecase {
	return &locatorService{
		fleetRepo: fleetRepo,
		cache:     cache,
		logger:    logger,
	}
}

// FindNearby returns active vehicles within radiusKm of origin, nearest first.
func (s *locatorService) FindNearby(ctx context.Context, origin entity.Coordinate, radiusKm float64, vehicleType *entity.VehicleType) ([]*entity.VehicleLocation, error) {
	vehicles, err := s.fleetRepo.ListActiveVehicles(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list active vehicles")
	}

	nearby := make([]*entity.VehicleLocation, 0, len(vehicles))
	for _, vehicle := range vehicles {
		if vehicleType != nil && vehicle.VehicleType != *vehicleType {
			continue
		}

		s.overlayLivePosition(ctx, vehicle)

		// Distance is recomputed on every query; stored values are never trusted.
		vehicle.DistanceKm = geo.DistanceKm(origin.Point(), vehicle.Coordinate.Point())
		if vehicle.DistanceKm > radiusKm {
			continue
		}

		nearby = append(nearby, vehicle)
	}

	sort.Slice(nearby, func(i, j int) bool {
		if nearby[i].DistanceKm != nearby[j].DistanceKm {
			return nearby[i].DistanceKm < nearby[j].DistanceKm
		}
		// Deterministic order for equidistant vehicles.
		return nearby[i].ID.String() < nearby[j].ID.String()
	})

	return nearby, nil
}

// overlayLivePosition replaces the persisted coordinate with a fresher cached
// one when available. Cache failures only degrade freshness, never the query.
func (s *locatorService) overlayLivePosition(ctx context.Context, vehicle *entity.VehicleLocation) {
	if s.cache == nil {
		return
	}

	position, err := s.cache.GetPosition(ctx, vehicle.ID)
	if err != nil {
		s.logger.Warn("Live position lookup failed",
			slog.String("vehicle_id", vehicle.ID.String()),
			slog.Any("error", err),
		)

		return
	}

	if position != nil && position.UpdatedAt.After(vehicle.LastUpdated) {
		vehicle.Coordinate = position.Coordinate
		vehicle.LastUpdated = position.UpdatedAt
	}
}
