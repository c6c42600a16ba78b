package repositories

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// DiagramCache is the opportunistic response cache. Errors surface so the
// caller can log them, but a failed lookup is just a miss; duplicate
// generation under a race is wasteful, not wrong.
type DiagramCache interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, diagram string) error
}

type RedisDiagramCache struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewRedisDiagramCache(rdb *redis.Client, ttl time.Duration) *RedisDiagramCache {
	return &RedisDiagramCache{rdb: rdb, ttl: ttl}
}

func (c *RedisDiagramCache) Get(ctx context.Context, key string) (string, bool, error) {
	value, err := c.rdb.Get(ctx, "diagram:"+key).Result()
	if err == redis.Nil {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return value, true, nil
}

func (c *RedisDiagramCache) Set(ctx context.Context, key, diagram string) error {
	return c.rdb.Set(ctx, "diagram:"+key, diagram, c.ttl).Err()
}
