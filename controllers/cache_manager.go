package controllers

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/mehmood09/restaurant-system/services"
)

const (
	menuCachePrefix     = "menu:v:"
	menuCacheVersionKey = "menu:version"

	// DefaultCacheTTL bounds how long a menu listing may be served stale if an
	// invalidation is ever missed.
	DefaultCacheTTL = 10 * time.Minute
)

// CacheManager caches menu listings in Redis. Invalidation bumps a version
// key, so every staff mutation orphans all cached listings at once. A nil
// client disables caching entirely.
type CacheManager struct {
	redis  *redis.Client
	ttl    time.Duration
	logger *zap.Logger
}

func NewCacheManager(redis *redis.Client, logger *zap.Logger) *CacheManager {
	return &CacheManager{redis: redis, ttl: DefaultCacheTTL, logger: logger}
}

// GetMenu retrieves a cached menu page for the given category filter key.
func (cm *CacheManager) GetMenu(ctx context.Context, categoryKey string) (*services.MenuPage, bool) {
	if cm == nil || cm.redis == nil {
		return nil, false
	}

	version, err := cm.getCacheVersion(ctx)
	if err != nil {
		return nil, false
	}

	cached, err := cm.redis.Get(ctx, cm.menuKey(version, categoryKey)).Result()
	if err != nil {
		return nil, false
	}

	var page services.MenuPage
	if err := json.Unmarshal([]byte(cached), &page); err != nil {
		cm.logger.Warn("Failed to unmarshal cached menu", zap.Error(err))
		return nil, false
	}
	return &page, true
}

// SetMenuAsync caches a menu page without blocking the request.
func (cm *CacheManager) SetMenuAsync(categoryKey string, page *services.MenuPage) {
	if cm == nil || cm.redis == nil {
		return
	}

	go func() {
		bgCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		version, err := cm.getCacheVersion(bgCtx)
		if err != nil {
			return
		}

		data, err := json.Marshal(page)
		if err != nil {
			cm.logger.Warn("Failed to marshal menu for cache", zap.Error(err))
			return
		}

		if err := cm.redis.Set(bgCtx, cm.menuKey(version, categoryKey), data, cm.ttl).Err(); err != nil {
			cm.logger.Warn("Failed to cache menu", zap.Error(err))
		}
	}()
}

// Invalidate discards all cached menu listings by bumping the version.
func (cm *CacheManager) Invalidate(ctx context.Context) {
	if cm == nil || cm.redis == nil {
		return
	}

	if err := cm.redis.Incr(ctx, menuCacheVersionKey).Err(); err != nil {
		cm.logger.Warn("Failed to invalidate menu cache", zap.Error(err))
	}
}

func (cm *CacheManager) menuKey(version int64, categoryKey string) string {
	return fmt.Sprintf("%s%d:c:%s", menuCachePrefix, version, categoryKey)
}

func (cm *CacheManager) getCacheVersion(ctx context.Context) (int64, error) {
	version, err := cm.redis.Get(ctx, menuCacheVersionKey).Int64()
	if err == redis.Nil {
		if err := cm.redis.Set(ctx, menuCacheVersionKey, 1, 0).Err(); err != nil {
			return 0, err
		}
		return 1, nil
	}
	return version, err
}
