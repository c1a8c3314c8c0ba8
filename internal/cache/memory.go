package cache

import (
	"time"

	gocache "github.com/patrickmn/go-cache"
)

// MemoryCache keeps classifier responses in process memory with TTL
// eviction. It is the hot layer: lookups during a run hit here, the disk
// layer only pays off across runs.
type MemoryCache struct {
	entries *gocache.Cache
}

// NewMemoryCache creates a memory cache whose entries expire after
// defaultTTL and are swept every cleanupInterval.
func NewMemoryCache(defaultTTL, cleanupInterval time.Duration) *MemoryCache {
	return &MemoryCache{entries: gocache.New(defaultTTL, cleanupInterval)}
}

// Get returns the stored bytes for key, if present and unexpired.
func (m *MemoryCache) Get(key string) ([]byte, bool) {
	v, found := m.entries.Get(key)
	if !found {
		return nil, false
	}
	return v.([]byte), true
}

// Set stores value under key. A zero ttl uses the cache default.
func (m *MemoryCache) Set(key string, value []byte, ttl time.Duration) error {
	if ttl == 0 {
		m.entries.SetDefault(key, value)
	} else {
		m.entries.Set(key, value, ttl)
	}
	return nil
}

// Delete removes key.
func (m *MemoryCache) Delete(key string) error {
	m.entries.Delete(key)
	return nil
}

// Clear drops every entry.
func (m *MemoryCache) Clear() error {
	m.entries.Flush()
	return nil
}
