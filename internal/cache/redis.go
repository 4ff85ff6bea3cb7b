package cache

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/vietanh2810/instruments-rental-api/internal/config"
)

// NewRedisClient connects to Redis and pings it. It returns nil when Redis
// is not configured or not reachable so callers can run without a cache.
func NewRedisClient(conf *config.RedisConfig) *redis.Client {
	if conf == nil || conf.Addr == "" {
		return nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     conf.Addr,
		Password: conf.Password,
		DB:       conf.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		zap.L().Warn("redis unreachable, running without catalog cache", zap.String("addr", conf.Addr), zap.Error(err))
		_ = client.Close()
		return nil
	}

	return client
}
