package services

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/ub-address-parser/app/models"
)

// HybridCacheService combines the in-process LRU (L1) with Redis (L2). L1
// answers repeated lookups without a network hop; L2 survives restarts and
// is shared between replicas. The L2 tier is optional: with a nil Redis
// cache the service degrades to L1 only.
type HybridCacheService struct {
	l1     *LRUCacheService
	l2     *RedisCacheService
	logger *zap.Logger
}

// NewHybridCacheService wires the two tiers. l2 may be nil.
func NewHybridCacheService(l1 *LRUCacheService, l2 *RedisCacheService, logger *zap.Logger) *HybridCacheService {
	return &HybridCacheService{l1: l1, l2: l2, logger: logger}
}

// Get checks L1 first, then L2. An L2 hit is promoted to L1 in the
// background so the next lookup stays local.
func (hcs *HybridCacheService) Get(ctx context.Context, key string) (*models.ParseResult, bool, error) {
	result, found, err := hcs.l1.Get(ctx, key)
	if err == nil && found {
		hcs.logger.Debug("l1 cache hit", zap.String("key", key))
		return result, true, nil
	}

	if hcs.l2 == nil {
		return nil, false, nil
	}

	result, found, err = hcs.l2.Get(ctx, key)
	if err != nil {
		hcs.logger.Warn("redis lookup failed, treating as miss", zap.Error(err))
		return nil, false, nil
	}
	if !found {
		return nil, false, nil
	}

	go func() {
		bgCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := hcs.l1.Set(bgCtx, key, result); err != nil {
			hcs.logger.Warn("l2->l1 promotion failed", zap.Error(err), zap.String("key", key))
		}
	}()

	hcs.logger.Debug("l2 cache hit", zap.String("key", key))
	return result, true, nil
}

// Set writes both tiers. An L2 failure is logged but does not fail the call:
// the result stays servable from L1.
func (hcs *HybridCacheService) Set(ctx context.Context, key string, result *models.ParseResult) error {
	if err := hcs.l1.Set(ctx, key, result); err != nil {
		return err
	}
	if hcs.l2 != nil {
		if err := hcs.l2.Set(ctx, key, result); err != nil {
			hcs.logger.Warn("redis set failed", zap.Error(err), zap.String("key", key))
		}
	}
	return nil
}

func (hcs *HybridCacheService) Delete(ctx context.Context, key string) error {
	err := hcs.l1.Delete(ctx, key)
	if hcs.l2 != nil {
		if l2err := hcs.l2.Delete(ctx, key); l2err != nil && err == nil {
			err = l2err
		}
	}
	return err
}

func (hcs *HybridCacheService) Clear(ctx context.Context) error {
	err := hcs.l1.Clear(ctx)
	if hcs.l2 != nil {
		if l2err := hcs.l2.Clear(ctx); l2err != nil && err == nil {
			err = l2err
		}
	}
	if err == nil {
		hcs.logger.Info("cleared hybrid cache")
	}
	return err
}

func (hcs *HybridCacheService) InvalidateByRulesVersion(ctx context.Context, rulesVersion string) error {
	err := hcs.l1.InvalidateByRulesVersion(ctx, rulesVersion)
	if hcs.l2 != nil {
		if l2err := hcs.l2.InvalidateByRulesVersion(ctx, rulesVersion); l2err != nil && err == nil {
			err = l2err
		}
	}
	return err
}

// GetStats merges the tiers' counters.
func (hcs *HybridCacheService) GetStats(ctx context.Context) (*CacheStats, error) {
	l1Stats, err := hcs.l1.GetStats(ctx)
	if err != nil {
		return nil, err
	}
	if hcs.l2 == nil {
		return l1Stats, nil
	}

	l2Stats, err := hcs.l2.GetStats(ctx)
	if err != nil {
		hcs.logger.Warn("redis stats unavailable", zap.Error(err))
		return l1Stats, nil
	}

	combined := &CacheStats{
		TotalHits:  l1Stats.TotalHits + l2Stats.TotalHits,
		TotalMiss:  l1Stats.TotalMiss + l2Stats.TotalMiss,
		TotalItems: l1Stats.TotalItems + l2Stats.TotalItems,
	}
	if total := combined.TotalHits + combined.TotalMiss; total > 0 {
		combined.HitRate = float64(combined.TotalHits) / float64(total)
	}
	return combined, nil
}

func (hcs *HybridCacheService) Exists(ctx context.Context, key string) (bool, error) {
	if ok, err := hcs.l1.Exists(ctx, key); err == nil && ok {
		return true, nil
	}
	if hcs.l2 == nil {
		return false, nil
	}
	return hcs.l2.Exists(ctx, key)
}

// GetTTL reports the longer-lived tier's TTL.
func (hcs *HybridCacheService) GetTTL(ctx context.Context, key string) (time.Duration, error) {
	if hcs.l2 != nil {
		if ttl, err := hcs.l2.GetTTL(ctx, key); err == nil && ttl > 0 {
			return ttl, nil
		}
	}
	return hcs.l1.GetTTL(ctx, key)
}

func (hcs *HybridCacheService) Close() error {
	err := hcs.l1.Close()
	if hcs.l2 != nil {
		if l2err := hcs.l2.Close(); l2err != nil && err == nil {
			err = fmt.Errorf("close redis: %w", l2err)
		}
	}
	return err
}
