package generation

import "sync"

// cacheKey is the full identity of a generation request. Two requests hit the
// same entry only when system, prompt, and NPC count all match exactly.
type cacheKey struct {
	System   string
	Prompt   string
	NPCCount int
}

// Cache memoizes successful generation results to avoid repeat paid API
// calls for identical requests. Entries never expire; invalidation is
// explicit via Clear. Errors are never cached.
type Cache struct {
	mu      sync.RWMutex
	entries map[cacheKey]Result
}

func NewCache() *Cache {
	return &Cache{entries: make(map[cacheKey]Result)}
}

func (c *Cache) Get(key cacheKey) (Result, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	res, ok := c.entries[key]
	return res, ok
}

func (c *Cache) Put(key cacheKey, res Result) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = res
}

// Clear drops every cached result.
func (c *Cache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[cacheKey]Result)
}

// Len reports the number of cached results.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}
