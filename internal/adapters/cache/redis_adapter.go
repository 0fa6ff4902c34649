package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/ri0706/Alpha-Spark-Ritisha.M/internal/domain/providers"
	redisclient "github.com/ri0706/Alpha-Spark-Ritisha.M/internal/infrastructure/clients/redis"
)

// ErrKeyNotFound reports a cache miss; callers fall through to the store.
var ErrKeyNotFound = errors.New("cache: key not found")

// RedisAdapter backs the CacheProvider port with Redis. It holds the
// read-through catalog entries and whole cached HTTP responses, all
// short-lived, so every write carries a TTL.
type RedisAdapter struct {
	client *redisclient.Client
}

// NewRedisAdapter creates a new Redis cache adapter
func NewRedisAdapter(client *redisclient.Client) providers.CacheProvider {
	return &RedisAdapter{
		client: client,
	}
}

// Get retrieves a value from cache
func (a *RedisAdapter) Get(ctx context.Context, key string) ([]byte, error) {
	value, err := a.client.Client().Get(ctx, key).Bytes()
	switch {
	case err == redis.Nil:
		return nil, fmt.Errorf("%w: %s", ErrKeyNotFound, key)
	case err != nil:
		return nil, fmt.Errorf("cache get %s: %w", key, err)
	}
	return value, nil
}

// Set stores a value in cache with expiration
func (a *RedisAdapter) Set(ctx context.Context, key string, value []byte, expirationSeconds int) error {
	ttl := time.Duration(expirationSeconds) * time.Second
	if err := a.client.Client().Set(ctx, key, value, ttl).Err(); err != nil {
		return fmt.Errorf("cache set %s: %w", key, err)
	}
	return nil
}

// Delete removes a value from cache
func (a *RedisAdapter) Delete(ctx context.Context, key string) error {
	if err := a.client.Client().Del(ctx, key).Err(); err != nil {
		return fmt.Errorf("cache delete %s: %w", key, err)
	}
	return nil
}

// Exists checks if a key exists in cache
func (a *RedisAdapter) Exists(ctx context.Context, key string) (bool, error) {
	count, err := a.client.Client().Exists(ctx, key).Result()
	if err != nil {
		return false, fmt.Errorf("cache exists %s: %w", key, err)
	}
	return count > 0, nil
}
