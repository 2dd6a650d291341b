package card

import (
	"sync/atomic"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/osse101/CardBinder_Go/internal/metrics"
)

// printingCache is an in-memory LRU for printing-existence answers with
// time-based expiration, so imports that add printings become visible within
// the TTL without an explicit flush.
type printingCache struct {
	lru    *expirable.LRU[int, bool]
	hits   atomic.Int64
	misses atomic.Int64
}

// CacheStats is a point-in-time snapshot of printing cache effectiveness,
// served on the admin cache-stats endpoint.
type CacheStats struct {
	Size   int   `json:"size"`
	Hits   int64 `json:"hits"`
	Misses int64 `json:"misses"`
}

func newPrintingCache(size int, ttl time.Duration) *printingCache {
	return &printingCache{
		lru: expirable.NewLRU[int, bool](size, nil, ttl),
	}
}

func (c *printingCache) Get(printingID int) (bool, bool) {
	exists, found := c.lru.Get(printingID)
	if found {
		c.hits.Add(1)
		metrics.PrintingCacheHits.Inc()
	} else {
		c.misses.Add(1)
		metrics.PrintingCacheMisses.Inc()
	}
	return exists, found
}

func (c *printingCache) Put(printingID int, exists bool) {
	c.lru.Add(printingID, exists)
}

func (c *printingCache) Stats() CacheStats {
	return CacheStats{
		Size:   c.lru.Len(),
		Hits:   c.hits.Load(),
		Misses: c.misses.Load(),
	}
}
