package persistence

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/tuanhng/me-api/internal/domain/profile"
	"github.com/tuanhng/me-api/pkg/logger"
)

const profileCacheTTL = 60 * time.Second

// RedisProfileCache keeps assembled profile representations for a short TTL.
// The cache is never load-bearing: any redis failure is logged and treated
// as a miss.
type RedisProfileCache struct {
	client *redis.Client
	logger logger.Logger
}

func NewRedisProfileCache(client *redis.Client, logger logger.Logger) *RedisProfileCache {
	return &RedisProfileCache{client: client, logger: logger}
}

func profileCacheKey(id int64) string {
	return fmt.Sprintf("profile:repr:%d", id)
}

func (c *RedisProfileCache) Get(ctx context.Context, id int64) (*profile.Representation, bool) {
	raw, err := c.client.Get(ctx, profileCacheKey(id)).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			c.logger.Warn("profile cache read failed", zap.Int64("profile_id", id), zap.Error(err))
		}
		return nil, false
	}

	var rep profile.Representation
	if err := json.Unmarshal(raw, &rep); err != nil {
		c.logger.Warn("profile cache entry malformed, dropping", zap.Int64("profile_id", id), zap.Error(err))
		_ = c.client.Del(ctx, profileCacheKey(id)).Err()
		return nil, false
	}
	return &rep, true
}

func (c *RedisProfileCache) Set(ctx context.Context, id int64, rep *profile.Representation) {
	raw, err := json.Marshal(rep)
	if err != nil {
		c.logger.Warn("profile cache marshal failed", zap.Int64("profile_id", id), zap.Error(err))
		return
	}
	if err := c.client.Set(ctx, profileCacheKey(id), raw, profileCacheTTL).Err(); err != nil {
		c.logger.Warn("profile cache write failed", zap.Int64("profile_id", id), zap.Error(err))
	}
}

func (c *RedisProfileCache) Invalidate(ctx context.Context, id int64) {
	if err := c.client.Del(ctx, profileCacheKey(id)).Err(); err != nil {
		c.logger.Warn("profile cache invalidation failed", zap.Int64("profile_id", id), zap.Error(err))
	}
}
