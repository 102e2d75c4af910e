package cache

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// Redis stores values in a Redis server under a key prefix
type Redis struct {
	client *redis.Client
	prefix string
	ttl    time.Duration
}

// NewRedis connects to addr. The connection is verified with PING.
func NewRedis(ctx context.Context, addr string, ttl time.Duration) (*Redis, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr: addr,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		rdb.Close()
		return nil, err
	}
	return newRedisWithClient(rdb, ttl), nil
}

func newRedisWithClient(rdb *redis.Client, ttl time.Duration) *Redis {
	return &Redis{client: rdb, prefix: KeyPrefix, ttl: ttl}
}

// Get returns the value for key; any Redis error counts as a miss
func (r *Redis) Get(ctx context.Context, key string) (string, bool) {
	val, err := r.client.Get(ctx, r.prefix+key).Result()
	if err != nil {
		return "", false
	}
	return val, true
}

// Set stores value with the configured TTL
func (r *Redis) Set(ctx context.Context, key, value string) error {
	return r.client.Set(ctx, r.prefix+key, value, r.ttl).Err()
}

// Delete removes key
func (r *Redis) Delete(ctx context.Context, key string) error {
	return r.client.Del(ctx, r.prefix+key).Err()
}

// Close closes the client connection pool
func (r *Redis) Close() error {
	return r.client.Close()
}
