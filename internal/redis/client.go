package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"storefront/internal/models"

	"github.com/go-redis/redis/v8"
)

// ErrCacheMiss is returned when a key is absent. Callers fall back to the
// database and re-prime the cache.
var ErrCacheMiss = errors.New("cache miss")

const settingsKey = "store:settings"

type Client struct {
	rdb *redis.Client
}

func Initialize(redisURL string) (*Client, error) {
	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse Redis URL: %w", err)
	}

	rdb := redis.NewClient(opt)

	// Test connection
	ctx := context.Background()
	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &Client{rdb: rdb}, nil
}

// Store settings cache
func (c *Client) SetStoreSettings(settings *models.StoreSettings, ttl time.Duration) error {
	ctx := context.Background()
	jsonData, err := json.Marshal(settings)
	if err != nil {
		return fmt.Errorf("failed to marshal store settings: %w", err)
	}

	return c.rdb.Set(ctx, settingsKey, jsonData, ttl).Err()
}

func (c *Client) GetStoreSettings() (*models.StoreSettings, error) {
	ctx := context.Background()
	val, err := c.rdb.Get(ctx, settingsKey).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrCacheMiss
		}
		return nil, fmt.Errorf("failed to get store settings: %w", err)
	}

	var settings models.StoreSettings
	if err := json.Unmarshal([]byte(val), &settings); err != nil {
		return nil, fmt.Errorf("failed to unmarshal store settings: %w", err)
	}

	return &settings, nil
}

func (c *Client) InvalidateStoreSettings() error {
	ctx := context.Background()
	return c.rdb.Del(ctx, settingsKey).Err()
}

// Close Redis connection
func (c *Client) Close() error {
	return c.rdb.Close()
}
