package services

import (
	"context"
	"time"

	"github.com/ub-address-parser/app/models"
)

// CacheStats aggregates hit/miss counters for one cache tier.
type CacheStats struct {
	HitRate    float64 `json:"hit_rate"`
	TotalHits  int64   `json:"total_hits"`
	TotalMiss  int64   `json:"total_miss"`
	TotalItems int64   `json:"total_items"`
}

// ICacheService is the contract every cache tier implements. Keys are the
// raw address strings; values are complete parse results.
type ICacheService interface {
	Get(ctx context.Context, key string) (*models.ParseResult, bool, error)

	Set(ctx context.Context, key string, result *models.ParseResult) error

	Delete(ctx context.Context, key string) error

	Clear(ctx context.Context) error

	// InvalidateByRulesVersion drops every cached result that was produced
	// by a different rule set. Called after a rules deployment.
	InvalidateByRulesVersion(ctx context.Context, rulesVersion string) error

	GetStats(ctx context.Context) (*CacheStats, error)

	Exists(ctx context.Context, key string) (bool, error)

	GetTTL(ctx context.Context, key string) (time.Duration, error)

	Close() error
}
