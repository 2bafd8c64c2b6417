package services

import (
	"context"
	"encoding/json"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/ub-address-parser/app/models"
)

// RedisCacheService is the shared cache tier backed by Redis. Results are
// stored as JSON under a common key prefix with a fixed TTL.
type RedisCacheService struct {
	client *redis.Client
	logger *zap.Logger
	prefix string
	ttl    time.Duration

	hits   int64
	misses int64
}

// NewRedisCacheService connects to Redis via URL ("redis://host:port/db")
// and verifies the connection before returning.
func NewRedisCacheService(redisURL, prefix string, ttl time.Duration, logger *zap.Logger) (*RedisCacheService, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}

	client := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if _, err := client.Ping(ctx).Result(); err != nil {
		return nil, fmt.Errorf("connect redis: %w", err)
	}

	if prefix == "" {
		prefix = "ub_addr:"
	}
	return &RedisCacheService{
		client: client,
		logger: logger,
		prefix: prefix,
		ttl:    ttl,
	}, nil
}

func (rcs *RedisCacheService) Get(ctx context.Context, key string) (*models.ParseResult, bool, error) {
	val, err := rcs.client.Get(ctx, rcs.prefix+key).Result()
	if err == redis.Nil {
		atomic.AddInt64(&rcs.misses, 1)
		return nil, false, nil
	}
	if err != nil {
		rcs.logger.Error("redis get failed", zap.Error(err), zap.String("key", key))
		return nil, false, err
	}

	var result models.ParseResult
	if err := json.Unmarshal([]byte(val), &result); err != nil {
		rcs.logger.Error("cache entry unmarshal failed", zap.Error(err), zap.String("key", key))
		return nil, false, err
	}

	atomic.AddInt64(&rcs.hits, 1)
	return &result, true, nil
}

func (rcs *RedisCacheService) Set(ctx context.Context, key string, result *models.ParseResult) error {
	data, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("marshal cache entry: %w", err)
	}
	if err := rcs.client.Set(ctx, rcs.prefix+key, data, rcs.ttl).Err(); err != nil {
		rcs.logger.Error("redis set failed", zap.Error(err), zap.String("key", key))
		return err
	}
	return nil
}

func (rcs *RedisCacheService) Delete(ctx context.Context, key string) error {
	if err := rcs.client.Del(ctx, rcs.prefix+key).Err(); err != nil {
		rcs.logger.Error("redis delete failed", zap.Error(err), zap.String("key", key))
		return err
	}
	return nil
}

func (rcs *RedisCacheService) Clear(ctx context.Context) error {
	keys, err := rcs.client.Keys(ctx, rcs.prefix+"*").Result()
	if err != nil {
		return fmt.Errorf("list cache keys: %w", err)
	}
	if len(keys) > 0 {
		if err := rcs.client.Del(ctx, keys...).Err(); err != nil {
			return fmt.Errorf("delete cache keys: %w", err)
		}
	}
	rcs.logger.Info("cleared redis cache", zap.Int("keys_deleted", len(keys)))
	return nil
}

// InvalidateByRulesVersion scans the prefix and deletes entries whose stored
// rules_version differs. Entries that fail to decode are dropped too.
func (rcs *RedisCacheService) InvalidateByRulesVersion(ctx context.Context, rulesVersion string) error {
	keys, err := rcs.client.Keys(ctx, rcs.prefix+"*").Result()
	if err != nil {
		return fmt.Errorf("list cache keys: %w", err)
	}

	var stale []string
	for _, k := range keys {
		val, err := rcs.client.Get(ctx, k).Result()
		if err != nil {
			continue
		}
		var result models.ParseResult
		if err := json.Unmarshal([]byte(val), &result); err != nil || result.RulesVersion != rulesVersion {
			stale = append(stale, k)
		}
	}
	if len(stale) > 0 {
		if err := rcs.client.Del(ctx, stale...).Err(); err != nil {
			return fmt.Errorf("delete stale keys: %w", err)
		}
	}
	rcs.logger.Info("invalidated redis cache",
		zap.String("rules_version", rulesVersion),
		zap.Int("keys_deleted", len(stale)))
	return nil
}

func (rcs *RedisCacheService) GetStats(ctx context.Context) (*CacheStats, error) {
	hits := atomic.LoadInt64(&rcs.hits)
	misses := atomic.LoadInt64(&rcs.misses)
	stats := &CacheStats{
		TotalHits: hits,
		TotalMiss: misses,
	}
	if total := hits + misses; total > 0 {
		stats.HitRate = float64(hits) / float64(total)
	}
	if keys, err := rcs.client.Keys(ctx, rcs.prefix+"*").Result(); err == nil {
		stats.TotalItems = int64(len(keys))
	}
	return stats, nil
}

func (rcs *RedisCacheService) Exists(ctx context.Context, key string) (bool, error) {
	n, err := rcs.client.Exists(ctx, rcs.prefix+key).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (rcs *RedisCacheService) GetTTL(ctx context.Context, key string) (time.Duration, error) {
	return rcs.client.TTL(ctx, rcs.prefix+key).Result()
}

func (rcs *RedisCacheService) Close() error {
	return rcs.client.Close()
}
