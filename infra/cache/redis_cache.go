package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"log/slog"

	"github.com/amirasaad/parcels/pkg/domain"
	"github.com/redis/go-redis/v9"
)

const lastSuffix = ":last"

// RedisRateCache implements RateCache using Redis.
//
// Every Set writes the rate twice: once under the key with the TTL, and once
// under key+":last" without expiry so GetStale survives the TTL.
type RedisRateCache struct {
	client *redis.Client
	prefix string
	logger *slog.Logger
}

// NewRedisRateCache creates a new RedisRateCache on an existing client.
func NewRedisRateCache(
	client *redis.Client,
	prefix string,
	logger *slog.Logger,
) *RedisRateCache {
	return &RedisRateCache{client: client, prefix: prefix, logger: logger}
}

// NewRedisRateCacheWithOptions creates a new RedisRateCache
// from redis.Options.
func NewRedisRateCacheWithOptions(
	opt *redis.Options,
	prefix string,
	logger *slog.Logger,
) *RedisRateCache {
	return NewRedisRateCache(redis.NewClient(opt), prefix, logger)
}

func (r *RedisRateCache) key(key string) string {
	return r.prefix + key
}

func (r *RedisRateCache) Get(ctx context.Context, key string) (*domain.CachedRate, error) {
	return r.read(ctx, r.key(key))
}

func (r *RedisRateCache) GetStale(ctx context.Context, key string) (*domain.CachedRate, error) {
	return r.read(ctx, r.key(key)+lastSuffix)
}

func (r *RedisRateCache) read(ctx context.Context, key string) (*domain.CachedRate, error) {
	val, err := r.client.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		r.logger.Debug("Redis cache miss", "key", key)
		return nil, nil // cache miss
	}
	if err != nil {
		r.logger.Error("Redis cache get error", "key", key, "error", err)
		return nil, err
	}
	var rate domain.CachedRate
	if err := json.Unmarshal([]byte(val), &rate); err != nil {
		r.logger.Error("Redis cache unmarshal error", "key", key, "error", err)
		return nil, err
	}
	r.logger.Debug("Redis cache hit", "key", key, "rate", rate.Value)
	return &rate, nil
}

func (r *RedisRateCache) Set(
	ctx context.Context,
	key string,
	rate *domain.CachedRate,
	ttl time.Duration,
) error {
	data, err := json.Marshal(rate)
	if err != nil {
		r.logger.Error("Redis cache marshal error", "key", key, "error", err)
		return err
	}
	_, err = r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Set(ctx, r.key(key), data, ttl)
		pipe.Set(ctx, r.key(key)+lastSuffix, data, 0)
		return nil
	})
	if err != nil {
		r.logger.Error("Redis cache set error", "key", key, "error", err)
		return fmt.Errorf("redis set %s: %w", key, err)
	}
	r.logger.Debug("Redis cache set", "key", key, "rate", rate.Value, "ttl", ttl)
	return nil
}

// Close releases the underlying client.
func (r *RedisRateCache) Close() error {
	return r.client.Close()
}
