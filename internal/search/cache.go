package search

import (
	"sync/atomic"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

// CacheSchemaVersion is the current version of the cached result layout.
// Increment this when Result changes to auto-invalidate old entries.
const CacheSchemaVersion = "1.0"

// CacheConfig sizes the search result cache.
type CacheConfig struct {
	Size int
	TTL  time.Duration
}

// DefaultCacheConfig is used when no explicit configuration is given.
var DefaultCacheConfig = CacheConfig{Size: 256, TTL: 10 * time.Minute}

// CacheStats is a snapshot of cache effectiveness.
type CacheStats struct {
	Hits   int64 `json:"hits"`
	Misses int64 `json:"misses"`
	Size   int   `json:"size"`
}

type cachedResult struct {
	Version  string
	Result   Result
	CachedAt time.Time
}

// resultCache is an in-memory LRU of search results keyed by normalized
// query, with time-based expiration.
type resultCache struct {
	lru    *expirable.LRU[string, *cachedResult]
	hits   atomic.Int64
	misses atomic.Int64
}

func newResultCache(cfg CacheConfig) *resultCache {
	return &resultCache{
		lru: expirable.NewLRU[string, *cachedResult](cfg.Size, nil, cfg.TTL),
	}
}

// Get returns a cached result when present and written by the current
// schema version. Mismatched entries are dropped.
func (c *resultCache) Get(key string) (Result, bool) {
	entry, found := c.lru.Get(key)
	if !found {
		c.misses.Add(1)
		return Result{}, false
	}

	if entry.Version != CacheSchemaVersion {
		c.lru.Remove(key)
		c.misses.Add(1)
		return Result{}, false
	}

	c.hits.Add(1)
	return entry.Result, true
}

func (c *resultCache) Set(key string, r Result) {
	c.lru.Add(key, &cachedResult{
		Version:  CacheSchemaVersion,
		Result:   r,
		CachedAt: time.Now(),
	})
}

func (c *resultCache) Clear() {
	c.lru.Purge()
}

func (c *resultCache) Stats() CacheStats {
	return CacheStats{
		Hits:   c.hits.Load(),
		Misses: c.misses.Load(),
		Size:   c.lru.Len(),
	}
}
