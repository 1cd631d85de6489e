package api

import (
	"os"
	"strconv"
	"sync"

	"github.com/carescope/carescope/internal/store"
)

// OutcomeCache is a thread-safe LRU cache for recently read outcome rows.
// Advisors refresh the same outcome repeatedly during a consultation, so
// reads are heavily skewed toward a few hot rows.
type OutcomeCache struct {
	mu      sync.Mutex
	maxSize int
	entries map[string]*cacheEntry
	order   []string // oldest first
}

type cacheEntry struct {
	row *store.OutcomeRow
}

// NewOutcomeCache creates a cache with the given maximum number of entries.
// If maxSize <= 0, it defaults to 50.
func NewOutcomeCache(maxSize int) *OutcomeCache {
	if maxSize <= 0 {
		maxSize = 50
	}
	return &OutcomeCache{
		maxSize: maxSize,
		entries: make(map[string]*cacheEntry),
	}
}

// NewOutcomeCacheFromEnv creates a cache with size from OUTCOME_CACHE_SIZE.
func NewOutcomeCacheFromEnv() *OutcomeCache {
	size := 50
	if v := os.Getenv("OUTCOME_CACHE_SIZE"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			size = parsed
		}
	}
	return NewOutcomeCache(size)
}

// Get retrieves an outcome row from the cache, or nil if not found.
func (c *OutcomeCache) Get(id string) *store.OutcomeRow {
	c.mu.Lock()
	defer c.mu.Unlock()

	entry, ok := c.entries[id]
	if !ok {
		return nil
	}

	// Move to end (most recently used)
	c.moveToEnd(id)
	return entry.row
}

// Put adds an outcome row to the cache, evicting the oldest if full.
func (c *OutcomeCache) Put(id string, row *store.OutcomeRow) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.entries[id]; ok {
		c.entries[id] = &cacheEntry{row: row}
		c.moveToEnd(id)
		return
	}

	// Evict oldest if at capacity
	for len(c.entries) >= c.maxSize && len(c.order) > 0 {
		oldest := c.order[0]
		c.order = c.order[1:]
		delete(c.entries, oldest)
	}

	c.entries[id] = &cacheEntry{row: row}
	c.order = append(c.order, id)
}

func (c *OutcomeCache) moveToEnd(id string) {
	for i, k := range c.order {
		if k == id {
			c.order = append(c.order[:i], c.order[i+1:]...)
			c.order = append(c.order, id)
			return
		}
	}
}
