package external

import (
	"sync"
	"sync/atomic"
	"time"

	"kisankalyan.app/internal/ports"
)

// cacheCounters tracks hit, miss and per-operation counts for a cache
// provider. It implements ports.CacheMetrics.
type cacheCounters struct {
	hits   atomic.Int64
	misses atomic.Int64

	opsMutex   sync.Mutex
	operations map[string]int64
}

func newCacheCounters() *cacheCounters {
	return &cacheCounters{operations: make(map[string]int64)}
}

func (c *cacheCounters) RecordHit() {
	c.hits.Add(1)
}

func (c *cacheCounters) RecordMiss() {
	c.misses.Add(1)
}

// RecordOperation counts one call of the named operation.
func (c *cacheCounters) RecordOperation(operation string, _ time.Duration) {
	c.opsMutex.Lock()
	defer c.opsMutex.Unlock()
	c.operations[operation]++
}

func (c *cacheCounters) GetStats() ports.CacheStats {
	hits := c.hits.Load()
	misses := c.misses.Load()
	total := hits + misses
	hitRatio := float64(0)
	if total > 0 {
		hitRatio = float64(hits) / float64(total)
	}

	c.opsMutex.Lock()
	operations := make(map[string]int64, len(c.operations))
	for op, n := range c.operations {
		operations[op] = n
	}
	c.opsMutex.Unlock()

	return ports.CacheStats{
		Hits:        hits,
		Misses:      misses,
		TotalOps:    total,
		HitRatio:    hitRatio,
		LastUpdated: time.Now(),
		Operations:  operations,
	}
}

// CacheStatsOf returns the provider's statistics, or empty statistics when it
// does not track any.
func CacheStatsOf(provider ports.CacheProvider) ports.CacheStats {
	if metrics, ok := provider.(ports.CacheMetrics); ok {
		return metrics.GetStats()
	}
	return ports.CacheStats{LastUpdated: time.Now()}
}
