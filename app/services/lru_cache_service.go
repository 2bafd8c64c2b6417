package services

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/ub-address-parser/app/models"
)

type lruEntry struct {
	result   *models.ParseResult
	storedAt time.Time
}

// LRUCacheService is the in-process cache tier: bounded size, TTL eviction,
// no external dependencies. Used standalone in development and as L1 under
// the hybrid cache in production.
type LRUCacheService struct {
	lru *expirable.LRU[string, lruEntry]
	ttl time.Duration

	hits   int64
	misses int64
}

// NewLRUCacheService creates an in-process cache holding up to size entries
// for at most ttl.
func NewLRUCacheService(size int, ttl time.Duration) *LRUCacheService {
	return &LRUCacheService{
		lru: expirable.NewLRU[string, lruEntry](size, nil, ttl),
		ttl: ttl,
	}
}

func (cs *LRUCacheService) Get(ctx context.Context, key string) (*models.ParseResult, bool, error) {
	if e, ok := cs.lru.Get(key); ok {
		atomic.AddInt64(&cs.hits, 1)
		return e.result, true, nil
	}
	atomic.AddInt64(&cs.misses, 1)
	return nil, false, nil
}

func (cs *LRUCacheService) Set(ctx context.Context, key string, result *models.ParseResult) error {
	cs.lru.Add(key, lruEntry{result: result, storedAt: time.Now()})
	return nil
}

func (cs *LRUCacheService) Delete(ctx context.Context, key string) error {
	cs.lru.Remove(key)
	return nil
}

func (cs *LRUCacheService) Clear(ctx context.Context) error {
	cs.lru.Purge()
	return nil
}

// InvalidateByRulesVersion walks the resident entries and drops the ones
// produced by a different rule set.
func (cs *LRUCacheService) InvalidateByRulesVersion(ctx context.Context, rulesVersion string) error {
	for _, key := range cs.lru.Keys() {
		if e, ok := cs.lru.Peek(key); ok && e.result.RulesVersion != rulesVersion {
			cs.lru.Remove(key)
		}
	}
	return nil
}

func (cs *LRUCacheService) GetStats(ctx context.Context) (*CacheStats, error) {
	hits := atomic.LoadInt64(&cs.hits)
	misses := atomic.LoadInt64(&cs.misses)
	stats := &CacheStats{
		TotalHits:  hits,
		TotalMiss:  misses,
		TotalItems: int64(cs.lru.Len()),
	}
	if total := hits + misses; total > 0 {
		stats.HitRate = float64(hits) / float64(total)
	}
	return stats, nil
}

func (cs *LRUCacheService) Exists(ctx context.Context, key string) (bool, error) {
	return cs.lru.Contains(key), nil
}

func (cs *LRUCacheService) GetTTL(ctx context.Context, key string) (time.Duration, error) {
	e, ok := cs.lru.Peek(key)
	if !ok {
		return 0, nil
	}
	remaining := cs.ttl - time.Since(e.storedAt)
	if remaining < 0 {
		return 0, nil
	}
	return remaining, nil
}

func (cs *LRUCacheService) Close() error { return nil }
