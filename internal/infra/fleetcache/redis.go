// Package fleetcache implements the live vehicle position cache on Redis.
package fleetcache

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"wastefleet/config"
	"wastefleet/internal/domain/lifecycle"
	"wastefleet/internal/domain/service"
	"wastefleet/internal/errors"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

const (
	positionKeyPrefix  = "vehicle:position:"
	defaultPositionTTL = 5 * time.Minute
)

type redisFleetCache struct {
	client *redis.Client
	ttl    time.Duration
	logger *slog.Logger
}

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// New creates the Redis-backed fleet cache. A nil Redis config disables the
// cache; callers treat a nil FleetCache as cache-off.
func New(params Params) (service.FleetCache, error) {
	cfg := params.Config.Redis
	if cfg == nil || cfg.Addr == "" {
		params.Logger.Info("Redis not configured, live position cache disabled")

		return nil, nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ttl := cfg.TTL
	if ttl <= 0 {
		ttl = defaultPositionTTL
	}

	cache := &redisFleetCache{
		client: client,
		ttl:    ttl,
		logger: params.Logger,
	}

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := client.Ping(ctx).Err(); err != nil {
				return errors.Wrap(err, "failed to ping Redis")
			}

			return nil
		},
		OnStop: func(_ context.Context) error {
			return cache.Close()
		},
	})

	return cache, nil
}

// NewWithClient wraps an existing Redis client, used by tests.
func NewWithClient(client *redis.Client, ttl time.Duration, logger *slog.Logger) service.FleetCache {
	if ttl <= 0 {
		ttl = defaultPositionTTL
	}

	return &redisFleetCache{
		client: client,
		ttl:    ttl,
		logger: logger,
	}
}

// SetPosition stores the latest position for a vehicle.
func (c *redisFleetCache) SetPosition(ctx context.Context, vehicleID uuid.UUID, position service.VehiclePosition) error {
	payload, err := json.Marshal(position)
	if err != nil {
		return errors.Wrap(err, "failed to encode vehicle position")
	}

	if err := c.client.Set(ctx, positionKey(vehicleID), payload, c.ttl).Err(); err != nil {
		return errors.Wrap(err, "failed to cache vehicle position")
	}

	return nil
}

// GetPosition returns the cached position, or nil when absent or expired.
func (c *redisFleetCache) GetPosition(ctx context.Context, vehicleID uuid.UUID) (*service.VehiclePosition, error) {
	payload, err := c.client.Get(ctx, positionKey(vehicleID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}

		return nil, errors.Wrap(err, "failed to read vehicle position")
	}

	var position service.VehiclePosition
	if err := json.Unmarshal(payload, &position); err != nil {
		return nil, errors.Wrap(err, "failed to decode vehicle position")
	}

	return &position, nil
}

// Close releases the underlying connection.
func (c *redisFleetCache) Close() error {
	return c.client.Close()
}

func positionKey(vehicleID uuid.UUID) string {
	return positionKeyPrefix + vehicleID.String()
}
