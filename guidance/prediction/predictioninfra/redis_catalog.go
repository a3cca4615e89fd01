package predictioninfra

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/Abraxas-365/pathway/guidance/prediction"
	"github.com/go-redis/redis/v8"
)

const catalogKey = "careers:catalog"

// RedisCatalogCache keeps the last careers list answered by the ML service
type RedisCatalogCache struct {
	client *redis.Client
	key    string
}

func NewRedisCatalogCache(client *redis.Client) prediction.CatalogCache {
	return &RedisCatalogCache{
		client: client,
		key:    catalogKey,
	}
}

func (c *RedisCatalogCache) Get(ctx context.Context) (*prediction.Catalog, error) {
	data, err := c.client.Get(ctx, c.key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get careers catalog: %w", err)
	}

	var catalog prediction.Catalog
	if err := json.Unmarshal(data, &catalog); err != nil {
		return nil, fmt.Errorf("decode careers catalog: %w", err)
	}
	return &catalog, nil
}

func (c *RedisCatalogCache) Set(ctx context.Context, catalog *prediction.Catalog, ttl time.Duration) error {
	data, err := json.Marshal(catalog)
	if err != nil {
		return fmt.Errorf("encode careers catalog: %w", err)
	}
	if err := c.client.Set(ctx, c.key, data, ttl).Err(); err != nil {
		return fmt.Errorf("set careers catalog: %w", err)
	}
	return nil
}
