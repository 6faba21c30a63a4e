// Package lookup memoizes keyed lookups for the lifetime of one resolution
// run. It behaves like a keyed sync.Once that retains the result.
package lookup

import "sync"

// A Cache invokes a keyed function exactly once per key and caches the
// result. Concurrent calls with the same key block until the first call has
// finished; calls with other keys do not block.
type Cache struct {
	mu      sync.Mutex
	entries map[string]*entry
}

type entry struct {
	once sync.Once
	val  interface{}
	err  error
}

// Do returns the cached result for key, invoking fn on the first call.
// Errors are cached along with values; a failed lookup is not re-attempted
// within the cache's lifetime.
func (c *Cache) Do(key string, fn func() (interface{}, error)) (interface{}, error) {
	c.mu.Lock()
	if c.entries == nil {
		c.entries = make(map[string]*entry)
	}
	e, ok := c.entries[key]
	if !ok {
		e = &entry{}
		c.entries[key] = e
	}
	c.mu.Unlock()

	e.once.Do(func() { e.val, e.err = fn() })
	return e.val, e.err
}
