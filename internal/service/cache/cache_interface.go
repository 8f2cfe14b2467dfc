// Package cache defines the caching contract used by the optimizer service.
package cache

import "github.com/VirusAlex/CashCleanerSimulator/internal/domain/model"

// Cache defines the interface for optimization result caching.
// Keys are canonical request fingerprints; the optimizer is deterministic,
// so a cached result is always identical to a fresh computation.
type Cache interface {
	Get(key string) (model.OptimizeResult, bool)
	Set(key string, value model.OptimizeResult)
	Invalidate(key string)
	Clear()
	Stop()
}

// Metrics provides cache performance metrics.
type Metrics struct {
	Hits      int64
	Misses    int64
	Evictions int64
	Size      int
	Capacity  int
}

// CacheWithMetrics extends Cache with metrics reporting.
type CacheWithMetrics interface {
	Cache
	Metrics() Metrics
}
