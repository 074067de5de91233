package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"pokedex/internal/model"
)

const (
	speciesKey = "catalog:species:v1"

	// DefaultCatalogTTL is used when a non-positive TTL is configured.
	DefaultCatalogTTL = time.Hour
)

// ErrCacheMiss is returned when the key is absent.
var ErrCacheMiss = errors.New("cache miss")

// CatalogCache stores the full species list as one JSON value.
type CatalogCache struct {
	cache *Cache
	ttl   time.Duration
}

// NewCatalogCache returns a catalog cache with the given TTL.
func NewCatalogCache(c *Cache, ttl time.Duration) *CatalogCache {
	if ttl <= 0 {
		ttl = DefaultCatalogTTL
	}
	return &CatalogCache{cache: c, ttl: ttl}
}

// GetSpecies returns the cached catalog or ErrCacheMiss.
func (c *CatalogCache) GetSpecies(ctx context.Context) ([]model.Species, error) {
	raw, err := c.cache.client.Get(ctx, speciesKey).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrCacheMiss
	}
	if err != nil {
		return nil, fmt.Errorf("redis get failed: %w", err)
	}
	var species []model.Species
	if err := json.Unmarshal(raw, &species); err != nil {
		// Corrupt entries are dropped so the next load repopulates them.
		c.cache.client.Del(ctx, speciesKey)
		return nil, ErrCacheMiss
	}
	return species, nil
}

// SetSpecies stores the catalog.
func (c *CatalogCache) SetSpecies(ctx context.Context, species []model.Species) error {
	raw, err := json.Marshal(species)
	if err != nil {
		return fmt.Errorf("encode species: %w", err)
	}
	if err := c.cache.client.Set(ctx, speciesKey, raw, c.ttl).Err(); err != nil {
		return fmt.Errorf("redis set failed: %w", err)
	}
	return nil
}

// InvalidateSpecies removes the cached catalog.
func (c *CatalogCache) InvalidateSpecies(ctx context.Context) error {
	if err := c.cache.client.Del(ctx, speciesKey).Err(); err != nil {
		return fmt.Errorf("redis del failed: %w", err)
	}
	return nil
}
