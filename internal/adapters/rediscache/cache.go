// Package rediscache implements the optional result cache over Redis.
package rediscache

import (
	"context"
	"crypto/md5"
	"encoding/hex"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
)

// Cache implements ResultCachePort. Logical keys are hashed so long
// query-derived keys stay bounded in Redis.
type Cache struct {
	client *redis.Client
}

func NewCache(addr, password string) *Cache {
	return &Cache{
		client: redis.NewClient(&redis.Options{
			Addr:     addr,
			Password: password,
			DB:       0,
		}),
	}
}

func (c *Cache) Get(ctx context.Context, key string, dest interface{}) (bool, error) {
	data, err := c.client.Get(ctx, hashKey(key)).Result()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, json.Unmarshal([]byte(data), dest)
}

func (c *Cache) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, hashKey(key), data, ttl).Err()
}

// Ping verifies connectivity at startup.
func (c *Cache) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}

func (c *Cache) Close() error {
	return c.client.Close()
}

func hashKey(key string) string {
	hash := md5.Sum([]byte(key))
	return "catalog:" + hex.EncodeToString(hash[:])
}
