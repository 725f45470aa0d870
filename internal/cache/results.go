package cache

import (
	"sync"
	"time"

	"github.com/claimradar/claimradar/internal/model"
	gocache "github.com/patrickmn/go-cache"
)

// ResultCache stores fact-check results keyed by raw claim text with a TTL.
// Entries are immutable once written and expire lazily on lookup.
//
// Lock returns a per-claim mutex so a cache miss and the provider fan-out
// that fills it are atomic per key: concurrent requests for the same claim
// trigger a single fan-out.
type ResultCache struct {
	cache *gocache.Cache
	ttl   time.Duration

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

// NewResultCache creates a result cache with the given TTL
func NewResultCache(ttl, cleanupInterval time.Duration) *ResultCache {
	return &ResultCache{
		cache: gocache.New(ttl, cleanupInterval),
		ttl:   ttl,
		locks: make(map[string]*sync.Mutex),
	}
}

// Get retrieves a non-expired result for the claim text
func (c *ResultCache) Get(claimText string) (model.FactCheckResult, bool) {
	if val, found := c.cache.Get(claimText); found {
		return val.(model.FactCheckResult), true
	}
	return model.FactCheckResult{}, false
}

// Set stores a result under the claim text with the cache's TTL
func (c *ResultCache) Set(claimText string, result model.FactCheckResult) {
	c.cache.Set(claimText, result, c.ttl)
}

// Lock returns the mutex guarding the read-check-then-write window for one
// claim text, creating it on first use.
func (c *ResultCache) Lock(claimText string) *sync.Mutex {
	c.mu.Lock()
	defer c.mu.Unlock()

	if m, ok := c.locks[claimText]; ok {
		return m
	}
	m := &sync.Mutex{}
	c.locks[claimText] = m
	return m
}

// Flush removes all cached results
func (c *ResultCache) Flush() {
	c.cache.Flush()
}
