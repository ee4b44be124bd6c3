// Package countcache is a small in-process TTL cache for the question-bank
// counters. Each entry stores the counted value plus the time it was taken;
// an entry is honored only while now - timestamp < ttl.
package countcache

import (
	"sync"
	"time"
)

// Fixed cache keys and their TTLs.
const (
	KeySchoolQuestionCount   = "school_question_count"
	KeySharedBankCount       = "shared_bank_count"
	KeyPastYearQuestionCount = "past_year_question_count"

	TTLSchoolQuestionCount   = 10 * time.Minute
	TTLSharedBankCount       = 7 * 24 * time.Hour
	TTLPastYearQuestionCount = 7 * 24 * time.Hour
)

type entry struct {
	value     int64
	timestamp time.Time
}

type Cache struct {
	mu      sync.Mutex
	entries map[string]entry

	// overridable clock for tests
	now func() time.Time
}

func New() *Cache {
	return &Cache{
		entries: make(map[string]entry),
		now:     time.Now,
	}
}

// Get returns the cached value for key if it is still fresh. An entry whose
// age equals or exceeds ttl is expired and is evicted on the spot.
func (c *Cache) Get(key string, ttl time.Duration) (int64, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[key]
	if !ok {
		return 0, false
	}
	if c.now().Sub(e.timestamp) >= ttl {
		delete(c.entries, key)
		return 0, false
	}
	return e.value, true
}

func (c *Cache) Set(key string, value int64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = entry{value: value, timestamp: c.now()}
}

// GetOrLoad returns the fresh cached value, or runs loader and caches its
// result. Loader errors are returned as-is and nothing is cached.
func (c *Cache) GetOrLoad(key string, ttl time.Duration, loader func() (int64, error)) (int64, error) {
	if v, ok := c.Get(key, ttl); ok {
		return v, nil
	}
	v, err := loader()
	if err != nil {
		return 0, err
	}
	c.Set(key, v)
	return v, nil
}
