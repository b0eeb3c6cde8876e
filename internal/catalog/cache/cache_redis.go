package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"supplierhub/internal/catalog/models"
	"supplierhub/pkg/platform/sentinel"
)

const catalogKey = "catalog:categories"

// Redis caches the full category catalog as one JSON blob under a TTL.
// The catalog is small (a handful of categories) so a single key keeps
// reads to one round trip and invalidation trivial.
type Redis struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedis(client *redis.Client, ttl time.Duration) *Redis {
	return &Redis{client: client, ttl: ttl}
}

// Get returns the cached catalog or sentinel.ErrNotFound on a miss.
func (c *Redis) Get(ctx context.Context) ([]models.Category, error) {
	raw, err := c.client.Get(ctx, catalogKey).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, sentinel.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get cached catalog: %w", err)
	}

	var categories []models.Category
	if err := json.Unmarshal(raw, &categories); err != nil {
		// A corrupt entry is treated as a miss; the writer will replace it.
		return nil, sentinel.ErrNotFound
	}
	return categories, nil
}

// Set stores the catalog with the configured TTL.
func (c *Redis) Set(ctx context.Context, categories []models.Category) error {
	raw, err := json.Marshal(categories)
	if err != nil {
		return fmt.Errorf("marshal catalog: %w", err)
	}
	if err := c.client.Set(ctx, catalogKey, raw, c.ttl).Err(); err != nil {
		return fmt.Errorf("set cached catalog: %w", err)
	}
	return nil
}

// Invalidate drops the cached catalog.
func (c *Redis) Invalidate(ctx context.Context) error {
	return c.client.Del(ctx, catalogKey).Err()
}
