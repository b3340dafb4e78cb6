// Package rediscache implements the route cache port on Redis.
// Cached routes are JSON blobs keyed by the origin and destination port
// pair and expire by TTL only, since the port topology never changes at
// runtime.
package rediscache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"galapagos/internal/core/domain/model/route"
	"galapagos/internal/pkg/errs"

	"github.com/redis/go-redis/v9"
)

// DefaultTTL is how long a cached route stays valid.
const DefaultTTL = 12 * time.Hour

// RouteCache implements ports.RouteCache using Redis.
type RouteCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRouteCache creates a route cache from a Redis URL.
// The redisURL should be in the format: redis://[:password@]host[:port][/database]
func NewRouteCache(redisURL string, ttl time.Duration) (*RouteCache, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse Redis URL: %w", err)
	}

	if ttl <= 0 {
		ttl = DefaultTTL
	}

	return &RouteCache{
		client: redis.NewClient(opts),
		ttl:    ttl,
	}, nil
}

// Get retrieves a cached route for the given port pair.
// Reports false when the pair is not cached.
func (c *RouteCache) Get(ctx context.Context, originPortID string, destinationPortID string) (route.Route, bool, error) {
	payload, err := c.client.Get(ctx, key(originPortID, destinationPortID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return route.Route{}, false, nil
	}
	if err != nil {
		return route.Route{}, false, errs.NewPersistenceFailureError("redis", err)
	}

	var cached route.Route
	if err = json.Unmarshal(payload, &cached); err != nil {
		return route.Route{}, false, fmt.Errorf("failed to decode cached route: %w", err)
	}

	return cached, true, nil
}

// Set stores a computed route for the given port pair.
func (c *RouteCache) Set(ctx context.Context, originPortID string, destinationPortID string, r route.Route) error {
	payload, err := json.Marshal(r)
	if err != nil {
		return fmt.Errorf("failed to encode route: %w", err)
	}

	if err = c.client.Set(ctx, key(originPortID, destinationPortID), payload, c.ttl).Err(); err != nil {
		return errs.NewPersistenceFailureError("redis", err)
	}

	return nil
}

// Ping checks if Redis is reachable.
func (c *RouteCache) Ping(ctx context.Context) error {
	if err := c.client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("redis ping failed: %w", err)
	}
	return nil
}

// Close closes the Redis connection.
func (c *RouteCache) Close() error {
	return c.client.Close()
}

func key(originPortID string, destinationPortID string) string {
	return "route:" + originPortID + ":" + destinationPortID
}
