package app

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/gamewell/gamewell-backend/internal/pkg/logger"
)

// newRedisClient connects to Redis when REDIS_ADDR is set. Returns nil when no
// address is configured, which disables recommendation caching.
func newRedisClient(cfg Config, log *logger.Logger) *redis.Client {
	if cfg.RedisAddr == "" {
		log.Info("redis disabled, recommendation cache off")
		return nil
	}
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		log.Warn("redis ping failed, recommendation cache off", "addr", cfg.RedisAddr, "error", err)
		_ = client.Close()
		return nil
	}
	log.Info("redis connected", "addr", cfg.RedisAddr)
	return client
}
