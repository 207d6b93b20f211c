package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/AdrianoSaraivaa/sgp/internal/model"
)

func routeKey(modelCode string) string {
	return fmt.Sprintf("sgp:route:%s", modelCode)
}

type redisCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisCache stores resolved routes as JSON under sgp:route:<model>.
func NewRedisCache(client *redis.Client, ttl time.Duration) *redisCache {
	return &redisCache{client: client, ttl: ttl}
}

// Get returns (nil, nil) on a miss.
func (c *redisCache) Get(ctx context.Context, modelCode string) (*model.Route, error) {
	data, err := c.client.Get(ctx, routeKey(modelCode)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var route model.Route
	if err := json.Unmarshal(data, &route); err != nil {
		return nil, err
	}
	return &route, nil
}

func (c *redisCache) Set(ctx context.Context, route model.Route) error {
	data, err := json.Marshal(route)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, routeKey(route.ModelCode), data, c.ttl).Err()
}

func (c *redisCache) Invalidate(ctx context.Context, modelCode string) error {
	return c.client.Del(ctx, routeKey(modelCode)).Err()
}

// noopCache is used when no redis address is configured.
type noopCache struct{}

func NewNoopCache() noopCache { return noopCache{} }

func (noopCache) Get(context.Context, string) (*model.Route, error) { return nil, nil }
func (noopCache) Set(context.Context, model.Route) error            { return nil }
func (noopCache) Invalidate(context.Context, string) error          { return nil }
