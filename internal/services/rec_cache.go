package services

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/gamewell/gamewell-backend/internal/pkg/logger"
	"github.com/gamewell/gamewell-backend/internal/types"
)

// RecommendationCache holds recently generated recommendation lists keyed by
// user and mood bucket. Both operations are best-effort; a broken cache must
// never fail a recommendation request.
type RecommendationCache interface {
	Get(ctx context.Context, key string) ([]types.ScoredRecommendation, bool)
	Set(ctx context.Context, key string, recs []types.ScoredRecommendation, ttl time.Duration)
}

type redisRecommendationCache struct {
	client *redis.Client
	log    *logger.Logger
}

func NewRedisRecommendationCache(client *redis.Client, baseLog *logger.Logger) RecommendationCache {
	cacheLog := baseLog.With("service", "RecommendationCache")
	return &redisRecommendationCache{client: client, log: cacheLog}
}

func (rc *redisRecommendationCache) Get(ctx context.Context, key string) ([]types.ScoredRecommendation, bool) {
	raw, err := rc.client.Get(ctx, key).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			rc.log.Warn("Cache read failed", "key", key, "error", err)
		}
		return nil, false
	}

	var recs []types.ScoredRecommendation
	if err := json.Unmarshal(raw, &recs); err != nil {
		rc.log.Warn("Cache entry is not valid JSON, dropping it", "key", key, "error", err)
		_ = rc.client.Del(ctx, key).Err()
		return nil, false
	}
	return recs, true
}

func (rc *redisRecommendationCache) Set(ctx context.Context, key string, recs []types.ScoredRecommendation, ttl time.Duration) {
	raw, err := json.Marshal(recs)
	if err != nil {
		rc.log.Warn("Failed to encode recommendations for cache", "key", key, "error", err)
		return
	}
	if err := rc.client.Set(ctx, key, raw, ttl).Err(); err != nil {
		rc.log.Warn("Cache write failed", "key", key, "error", err)
	}
}
