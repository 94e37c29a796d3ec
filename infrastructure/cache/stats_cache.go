package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"videotube/domain/dto"
	"videotube/infrastructure/logger"
)

const statsKeyPrefix = "dashboard:stats:"

// StatsCache keeps the channel dashboard aggregate warm for a short window.
// A nil Redis client disables caching without touching the callers.
type StatsCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewStatsCache(client *redis.Client, ttl time.Duration) *StatsCache {
	if ttl <= 0 {
		ttl = 30 * time.Second
	}
	return &StatsCache{client: client, ttl: ttl}
}

func (c *StatsCache) GetStats(ctx context.Context, channelID string) (*dto.DashboardStats, bool) {
	if c == nil || c.client == nil {
		return nil, false
	}
	raw, err := c.client.Get(ctx, statsKeyPrefix+channelID).Bytes()
	if err != nil {
		return nil, false
	}
	var stats dto.DashboardStats
	if err := json.Unmarshal(raw, &stats); err != nil {
		logger.GetLogger().WithField("error", err).Warn("stats cache entry corrupt, ignoring")
		return nil, false
	}
	return &stats, true
}

func (c *StatsCache) SetStats(ctx context.Context, channelID string, stats *dto.DashboardStats) {
	if c == nil || c.client == nil || stats == nil {
		return
	}
	raw, err := json.Marshal(stats)
	if err != nil {
		return
	}
	if err := c.client.Set(ctx, statsKeyPrefix+channelID, raw, c.ttl).Err(); err != nil {
		logger.GetLogger().WithField("error", err).Warn("stats cache write failed")
	}
}
