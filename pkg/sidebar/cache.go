package sidebar

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/deskflow/deskflow/pkg/types"
)

type cacheKey struct {
	userID  uuid.UUID
	version string
}

type cacheEntry struct {
	items     []types.NavigationItem
	expiresAt time.Time
}

// Cache holds filtered navigation trees keyed by user and tree version.
// It is an explicit handle passed to callers; invalidation is an explicit
// call, not a well-known global key.
type Cache struct {
	mu      sync.RWMutex
	ttl     time.Duration
	entries map[cacheKey]cacheEntry
	now     func() time.Time
}

func NewCache(ttl time.Duration) *Cache {
	return &Cache{
		ttl:     ttl,
		entries: make(map[cacheKey]cacheEntry),
		now:     time.Now,
	}
}

func (c *Cache) Get(userID uuid.UUID, version string) ([]types.NavigationItem, bool) {
	c.mu.RLock()
	entry, ok := c.entries[cacheKey{userID: userID, version: version}]
	c.mu.RUnlock()
	if !ok || c.now().After(entry.expiresAt) {
		return nil, false
	}
	return entry.items, true
}

func (c *Cache) Put(userID uuid.UUID, version string, items []types.NavigationItem) {
	if c.ttl == 0 {
		return
	}
	c.mu.Lock()
	c.entries[cacheKey{userID: userID, version: version}] = cacheEntry{
		items:     items,
		expiresAt: c.now().Add(c.ttl),
	}
	c.mu.Unlock()
}

// Invalidate removes every cached tree for the user, across tree versions.
func (c *Cache) Invalidate(userID uuid.UUID) {
	c.mu.Lock()
	for key := range c.entries {
		if key.userID == userID {
			delete(c.entries, key)
		}
	}
	c.mu.Unlock()
}

// Reset drops all cached trees, e.g. after a navigation source update.
func (c *Cache) Reset() {
	c.mu.Lock()
	c.entries = make(map[cacheKey]cacheEntry)
	c.mu.Unlock()
}

func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}
