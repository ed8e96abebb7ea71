package report

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"log"
	"sync"
	"time"

	"solar-calculator/internal/model"
)

type cacheEntry struct {
	body      []byte
	expiresAt time.Time
}

// Cache keeps rendered documents in memory for a fixed TTL.
// A nil *Cache is valid and caches nothing.
type Cache struct {
	mu    sync.RWMutex
	store map[string]*cacheEntry
	ttl   time.Duration
	now   func() time.Time

	stop     chan struct{}
	stopOnce sync.Once
}

// NewCache starts a cache with a background janitor sweeping every sweep interval.
// Call Close to stop the janitor.
func NewCache(ttl, sweep time.Duration) *Cache {
	c := &Cache{
		store: make(map[string]*cacheEntry),
		ttl:   ttl,
		now:   time.Now,
		stop:  make(chan struct{}),
	}
	if sweep > 0 {
		go c.cleanup(sweep)
	}
	log.Printf("ReportCache: enabled (ttl=%s)", ttl)
	return c
}

// Get returns a cached document if present and not expired.
func (c *Cache) Get(key string) ([]byte, bool) {
	if c == nil {
		return nil, false
	}

	c.mu.RLock()
	defer c.mu.RUnlock()

	entry, ok := c.store[key]
	if !ok || c.now().After(entry.expiresAt) {
		return nil, false
	}
	return entry.body, true
}

func (c *Cache) Set(key string, body []byte) {
	if c == nil {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.store[key] = &cacheEntry{
		body:      body,
		expiresAt: c.now().Add(c.ttl),
	}
}

func (c *Cache) Len() int {
	if c == nil {
		return 0
	}
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.store)
}

func (c *Cache) Close() {
	if c == nil {
		return
	}
	c.stopOnce.Do(func() { close(c.stop) })
}

func (c *Cache) cleanup(every time.Duration) {
	ticker := time.NewTicker(every)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			c.evictExpired()
		case <-c.stop:
			return
		}
	}
}

func (c *Cache) evictExpired() {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()
	for key, entry := range c.store {
		if now.After(entry.expiresAt) {
			delete(c.store, key)
		}
	}
}

// CacheKey identifies one rendered document.
func CacheKey(f Format, cat model.Category, consumption float64) string {
	keyStr := fmt.Sprintf("%s:%s:%s", f, cat, FormatConsumption(consumption))
	hash := sha256.Sum256([]byte(keyStr))
	return hex.EncodeToString(hash[:])
}
