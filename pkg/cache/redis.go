package cache

import (
	"context"
	stderrors "errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/matzehuels/architectus/pkg/errors"
)

// RedisCache stores entries in Redis with native expiry.
type RedisCache struct {
	client redis.UniversalClient
}

// NewRedisCache connects to addr and pings it.
func NewRedisCache(ctx context.Context, addr, password string, db int) (*RedisCache, error) {
	client := redis.NewClient(&redis.Options{Addr: addr, Password: password, DB: db})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, errors.Wrap(errors.ErrCodeNetwork, err, "connect to redis at %s", addr)
	}
	return &RedisCache{client: client}, nil
}

// NewRedisCacheFromClient wraps an existing client.
func NewRedisCacheFromClient(client redis.UniversalClient) *RedisCache {
	return &RedisCache{client: client}
}

// Get returns the value; redis.Nil is a miss.
func (c *RedisCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	var data []byte
	err := RetryWithBackoff(ctx, func() error {
		v, err := c.client.Get(ctx, key).Bytes()
		if stderrors.Is(err, redis.Nil) {
			data = nil
			return nil
		}
		if err != nil {
			return Retryable(err)
		}
		data = v
		return nil
	})
	if err != nil {
		return nil, false, errors.Wrap(errors.ErrCodeNetwork, err, "redis get")
	}
	return data, data != nil, nil
}

// Set stores data with ttl; zero keeps it forever.
func (c *RedisCache) Set(ctx context.Context, key string, data []byte, ttl time.Duration) error {
	err := RetryWithBackoff(ctx, func() error {
		return Retryable(c.client.Set(ctx, key, data, ttl).Err())
	})
	if err != nil {
		return errors.Wrap(errors.ErrCodeNetwork, err, "redis set")
	}
	return nil
}

// Delete removes key.
func (c *RedisCache) Delete(ctx context.Context, key string) error {
	if err := c.client.Del(ctx, key).Err(); err != nil {
		return errors.Wrap(errors.ErrCodeNetwork, err, "redis del")
	}
	return nil
}

// Close closes the client.
func (c *RedisCache) Close() error { return c.client.Close() }

var _ Cache = (*RedisCache)(nil)
