package memcache

import (
	"sync"
	"time"
)

// CatalogCache is a single shared in-process cache for derived entity
// lists, keyed by entity name plus query string. Mutating an entity
// invalidates every cached query for it and notifies subscribers, so all
// consumers observe one snapshot instead of holding private copies.
type CatalogCache struct {
	mu   sync.RWMutex
	data map[string]entry
	subs map[string][]func(entity string)
	ttl  time.Duration
}

// AnyEntity subscribes a callback to invalidations of every entity.
const AnyEntity = ""

type entry struct {
	value     interface{}
	expiresAt time.Time
}

func NewCatalogCache(ttl time.Duration) *CatalogCache {
	return &CatalogCache{
		data: make(map[string]entry),
		subs: make(map[string][]func(string)),
		ttl:  ttl,
	}
}

func cacheKey(entity, query string) string {
	return entity + "|" + query
}

func (c *CatalogCache) Get(entity, query string) (interface{}, bool) {
	c.mu.RLock()
	e, ok := c.data[cacheKey(entity, query)]
	c.mu.RUnlock()

	if !ok {
		return nil, false
	}
	if time.Now().After(e.expiresAt) {
		c.mu.Lock()
		delete(c.data, cacheKey(entity, query))
		c.mu.Unlock()
		return nil, false
	}
	return e.value, true
}

func (c *CatalogCache) Set(entity, query string, value interface{}) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.data[cacheKey(entity, query)] = entry{
		value:     value,
		expiresAt: time.Now().Add(c.ttl),
	}
}

// Invalidate drops every cached query for the entity and notifies
// subscribers outside the lock.
func (c *CatalogCache) Invalidate(entity string) {
	prefix := entity + "|"

	c.mu.Lock()
	for k := range c.data {
		if len(k) >= len(prefix) && k[:len(prefix)] == prefix {
			delete(c.data, k)
		}
	}
	subs := append([]func(string){}, c.subs[entity]...)
	subs = append(subs, c.subs[AnyEntity]...)
	c.mu.Unlock()

	for _, fn := range subs {
		fn(entity)
	}
}

// Subscribe registers a callback fired after each invalidation of the
// entity. Callbacks must not block.
func (c *CatalogCache) Subscribe(entity string, fn func(entity string)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.subs[entity] = append(c.subs[entity], fn)
}
