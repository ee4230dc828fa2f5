package collector

import (
	"sync"
	"time"

	"TradeAdvisor/internal/model"
)

type cacheKey struct {
	symbol string
	period string
}

type cacheEntry struct {
	series    *model.PriceSeries
	fetchedAt time.Time
}

// CachedFetcher wraps a Fetcher with a TTL cache keyed by (symbol, period).
// Expiry is checked explicitly on every Fetch before the cached series is
// reused; fetch failures are never cached.
type CachedFetcher struct {
	inner Fetcher
	ttl   time.Duration

	mu      sync.Mutex
	entries map[cacheKey]cacheEntry
	now     func() time.Time
}

// NewCachedFetcher wraps inner with the given time-to-live.
func NewCachedFetcher(inner Fetcher, ttl time.Duration) *CachedFetcher {
	return &CachedFetcher{
		inner:   inner,
		ttl:     ttl,
		entries: make(map[cacheKey]cacheEntry),
		now:     time.Now,
	}
}

func (c *CachedFetcher) Name() string { return c.inner.Name() + "+cache" }

func (c *CachedFetcher) Fetch(symbol, period string) (*model.PriceSeries, error) {
	key := cacheKey{symbol: symbol, period: period}

	c.mu.Lock()
	entry, ok := c.entries[key]
	c.mu.Unlock()
	if ok && c.now().Sub(entry.fetchedAt) < c.ttl {
		return entry.series, nil
	}

	series, err := c.inner.Fetch(symbol, period)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	c.entries[key] = cacheEntry{series: series, fetchedAt: c.now()}
	c.mu.Unlock()
	return series, nil
}

// Invalidate drops the cached entry for (symbol, period), forcing the next
// Fetch to hit the provider.
func (c *CachedFetcher) Invalidate(symbol, period string) {
	c.mu.Lock()
	delete(c.entries, cacheKey{symbol: symbol, period: period})
	c.mu.Unlock()
}

// Len returns the number of cached entries, expired or not.
func (c *CachedFetcher) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}
