package cache

import (
	"context"
	"encoding/json"
	"time"

	redis "github.com/redis/go-redis/v9"

	"github.com/eggbucket/eggbucket-api/internal/domain/entity"
)

// prefijo común de claves; Invalidate borra todo el espacio de outlets.
const keyPrefix = "eggbucket:outlets:"

// RedisOutletCache implementa OutletCache sobre Redis.
type RedisOutletCache struct {
	client *redis.Client
}

// NewRedisOutletCache construye el caché con su propio cliente Redis.
func NewRedisOutletCache(addr, password string, db int) *RedisOutletCache {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
	return &RedisOutletCache{client: client}
}

func (c *RedisOutletCache) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}

func (c *RedisOutletCache) Close() error {
	return c.client.Close()
}

func (c *RedisOutletCache) Get(ctx context.Context, key string) ([]*entity.Outlet, bool, error) {
	val, err := c.client.Get(ctx, keyPrefix+key).Result()
	if err == redis.Nil {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}

	var outlets []*entity.Outlet
	if err := json.Unmarshal([]byte(val), &outlets); err != nil {
		return nil, false, err
	}
	return outlets, true, nil
}

func (c *RedisOutletCache) Set(ctx context.Context, key string, outlets []*entity.Outlet, ttl time.Duration) error {
	if outlets == nil {
		return nil
	}
	payload, err := json.Marshal(outlets)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, keyPrefix+key, payload, ttl).Err()
}

// Invalidate borra todas las listas cacheadas (se llama en cada mutación de outlets).
func (c *RedisOutletCache) Invalidate(ctx context.Context) error {
	iter := c.client.Scan(ctx, 0, keyPrefix+"*", 0).Iterator()
	for iter.Next(ctx) {
		if err := c.client.Del(ctx, iter.Val()).Err(); err != nil {
			return err
		}
	}
	return iter.Err()
}
