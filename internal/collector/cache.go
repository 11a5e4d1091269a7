package collector

import (
	"log"
	"sync"
	"time"

	"VolumeWatch/internal/model"
)

// CachedFetcher decorates a Fetcher with a fixed freshness window per
// symbol. The dashboard's refresh button calls Invalidate; a cron task
// calls Sweep to drop stale entries between refreshes.
type CachedFetcher struct {
	inner Fetcher
	ttl   time.Duration
	debug bool

	mu      sync.Mutex
	entries map[string]cacheEntry
}

type cacheEntry struct {
	bars      []model.OHLCV
	fetchedAt time.Time
}

// NewCachedFetcher wraps inner with a TTL cache.
func NewCachedFetcher(inner Fetcher, ttl time.Duration, debug bool) *CachedFetcher {
	return &CachedFetcher{
		inner:   inner,
		ttl:     ttl,
		debug:   debug,
		entries: make(map[string]cacheEntry),
	}
}

func (c *CachedFetcher) Name() string { return c.inner.Name() }

func (c *CachedFetcher) FetchDailyHistory(symbol string, days int) ([]model.OHLCV, error) {
	c.mu.Lock()
	if e, ok := c.entries[symbol]; ok && time.Since(e.fetchedAt) < c.ttl {
		c.mu.Unlock()
		if c.debug {
			log.Printf("[DEBUG] cache hit for %s (%d bars)", symbol, len(e.bars))
		}
		return e.bars, nil
	}
	c.mu.Unlock()

	bars, err := c.inner.FetchDailyHistory(symbol, days)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	c.entries[symbol] = cacheEntry{bars: bars, fetchedAt: time.Now()}
	c.mu.Unlock()
	if c.debug {
		log.Printf("[DEBUG] cache miss for %s, fetched %d bars from %s", symbol, len(bars), c.inner.Name())
	}
	return bars, nil
}

// Invalidate drops every cached series so the next refresh hits the provider.
func (c *CachedFetcher) Invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()
	n := len(c.entries)
	c.entries = make(map[string]cacheEntry)
	log.Printf("[INFO] fetch cache invalidated (%d entries dropped)", n)
}

// Sweep removes entries past their freshness window and returns the count removed.
func (c *CachedFetcher) Sweep() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	removed := 0
	for symbol, e := range c.entries {
		if time.Since(e.fetchedAt) >= c.ttl {
			delete(c.entries, symbol)
			removed++
		}
	}
	return removed
}
