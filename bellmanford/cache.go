package bellmanford

import "slices"

// Cache memoises distance vectors of successful runs, keyed by source vertex.
//
// There is no eviction and no expiry; it holds at most one entry per vertex.
// Put and Get copy, so callers can never alter a stored vector.
// Cache is not safe for concurrent use.
type Cache struct {
	entries map[int][]int64
}

// NewCache returns an empty cache.
func NewCache() *Cache {
	return &Cache{entries: make(map[int][]int64)}
}

// Get returns a copy of the vector stored for source.
func (c *Cache) Get(source int) ([]int64, bool) {
	dist, ok := c.entries[source]
	if !ok {
		return nil, false
	}

	return append([]int64(nil), dist...), true
}

// Put stores a copy of dist for source, replacing any previous entry.
func (c *Cache) Put(source int, dist []int64) {
	c.entries[source] = append([]int64(nil), dist...)
}

// Len returns the number of cached sources.
func (c *Cache) Len() int { return len(c.entries) }

// Sources returns the cached source ids in ascending order.
func (c *Cache) Sources() []int {
	out := make([]int, 0, len(c.entries))
	for v := range c.entries {
		out = append(out, v)
	}
	slices.Sort(out)

	return out
}

// Clear drops every entry.
func (c *Cache) Clear() {
	clear(c.entries)
}
