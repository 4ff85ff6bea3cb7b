// Package cache holds the Redis-backed read-through cache of the instrument
// catalog. A nil *redis.Client is never passed in; callers skip the cache
// entirely when Redis is not configured.
package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/vietanh2810/instruments-rental-api/internal/domain"
)

const instrumentsKey = "catalog:instruments"

type InstrumentCache struct {
	client *redis.Client
	prefix string
	ttl    time.Duration
}

func NewInstrumentCache(client *redis.Client, prefix string, ttl time.Duration) *InstrumentCache {
	return &InstrumentCache{
		client: client,
		prefix: prefix,
		ttl:    ttl,
	}
}

func (c *InstrumentCache) key() string {
	if c.prefix == "" {
		return instrumentsKey
	}
	return c.prefix + ":" + instrumentsKey
}

// GetAll reports a miss on any Redis or decoding failure.
func (c *InstrumentCache) GetAll(ctx context.Context) ([]domain.Instrument, bool) {
	raw, err := c.client.Get(ctx, c.key()).Bytes()
	if err != nil {
		if err != redis.Nil {
			zap.L().Warn("instrument cache get failed", zap.Error(err))
		}
		return nil, false
	}

	var instruments []domain.Instrument
	if err := json.Unmarshal(raw, &instruments); err != nil {
		zap.L().Warn("instrument cache entry is corrupt", zap.Error(err))
		return nil, false
	}

	return instruments, true
}

func (c *InstrumentCache) SetAll(ctx context.Context, instruments []domain.Instrument) {
	raw, err := json.Marshal(instruments)
	if err != nil {
		zap.L().Warn("instrument cache encode failed", zap.Error(err))
		return
	}

	if err := c.client.Set(ctx, c.key(), raw, c.ttl).Err(); err != nil {
		zap.L().Warn("instrument cache set failed", zap.Error(err))
	}
}

func (c *InstrumentCache) Invalidate(ctx context.Context) {
	if err := c.client.Del(ctx, c.key()).Err(); err != nil {
		zap.L().Warn("instrument cache invalidate failed", zap.Error(err))
	}
}
