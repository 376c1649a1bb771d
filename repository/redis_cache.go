package repository

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// planCacheTTL bounds how long a cached plan response can serve requests.
// Rates are static, so this mostly limits memory in the redis instance.
const planCacheTTL = 24 * time.Hour

// RedisCache is a redis-backed CacheRepository for plan responses.
type RedisCache struct {
	client *redis.Client
	ctx    context.Context
}

// NewRedisCache connects to the redis instance at addr.
func NewRedisCache(addr string) *RedisCache {
	rdb := redis.NewClient(&redis.Options{
		Addr: addr,
	})
	return &RedisCache{
		client: rdb,
		ctx:    context.Background(),
	}
}

func (r *RedisCache) Get(key string) (string, bool) {
	val, err := r.client.Get(r.ctx, key).Result()
	if err != nil {
		return "", false
	}
	return val, true
}

func (r *RedisCache) Set(key string, value string) error {
	return r.client.Set(r.ctx, key, value, planCacheTTL).Err()
}
