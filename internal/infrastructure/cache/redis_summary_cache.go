package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Nhan-Lam-SmartCare/Motocare-sub001/internal/infrastructure/config"
	"github.com/redis/go-redis/v9"
)

// RedisSummaryCache stores serialized report payloads in Redis. It is
// suitable for deployments with multiple instances sharing one Redis;
// single-instance setups can run without any cache at all.
type RedisSummaryCache struct {
	client *redis.Client
}

// NewRedisSummaryCache connects to Redis and returns a cache backed by it
func NewRedisSummaryCache(cfg *config.RedisConfig) (*RedisSummaryCache, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr(),
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &RedisSummaryCache{client: client}, nil
}

// NewRedisSummaryCacheWithClient wraps an existing Redis client.
// Useful for tests or when sharing a client across components.
func NewRedisSummaryCacheWithClient(client *redis.Client) *RedisSummaryCache {
	return &RedisSummaryCache{client: client}
}

// Get returns the cached payload for key, or (nil, nil) on a miss
func (c *RedisSummaryCache) Get(ctx context.Context, key string) ([]byte, error) {
	val, err := c.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read cache key %q: %w", key, err)
	}
	return val, nil
}

// Set stores the payload under key with the given TTL
func (c *RedisSummaryCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if err := c.client.Set(ctx, key, value, ttl).Err(); err != nil {
		return fmt.Errorf("failed to write cache key %q: %w", key, err)
	}
	return nil
}

// Close closes the underlying Redis client
func (c *RedisSummaryCache) Close() error {
	return c.client.Close()
}
