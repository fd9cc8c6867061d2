// Package cache provides in-memory caches in front of slower stores.
package cache

import (
	"container/list"
	"sync"
)

// LRU is a thread-safe least recently used cache bounded by the total cost
// of its values. Both Get and Set mark an entry as recently used.
type LRU[K comparable, V any] struct {
	maxCost int64
	cost    func(V) int64

	mu    sync.Mutex
	used  int64
	items map[K]*list.Element
	order *list.List // Front = most recent, Back = least recent
}

type entry[K comparable, V any] struct {
	key   K
	value V
	cost  int64
}

// NewLRU creates a cache holding values whose costs sum to at most maxCost.
// A nil cost function counts every value as 1, bounding the entry count.
// A single value costing more than maxCost is never stored.
func NewLRU[K comparable, V any](maxCost int64, cost func(V) int64) *LRU[K, V] {
	if maxCost <= 0 {
		maxCost = 1
	}
	if cost == nil {
		cost = func(V) int64 { return 1 }
	}
	return &LRU[K, V]{
		maxCost: maxCost,
		cost:    cost,
		items:   make(map[K]*list.Element),
		order:   list.New(),
	}
}

// Get returns the value for key and marks it as recently used.
func (c *LRU[K, V]) Get(key K) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if elem, ok := c.items[key]; ok {
		c.order.MoveToFront(elem)
		return elem.Value.(*entry[K, V]).value, true
	}
	var zero V
	return zero, false
}

// Set stores value under key, evicting least recently used entries until
// it fits.
func (c *LRU[K, V]) Set(key K, value V) {
	cost := c.cost(value)

	c.mu.Lock()
	defer c.mu.Unlock()

	if elem, ok := c.items[key]; ok {
		c.removeElement(elem)
	}
	if cost > c.maxCost {
		return
	}

	for c.used+cost > c.maxCost {
		c.removeElement(c.order.Back())
	}

	c.items[key] = c.order.PushFront(&entry[K, V]{key: key, value: value, cost: cost})
	c.used += cost
}

// Len returns the number of cached entries.
func (c *LRU[K, V]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.order.Len()
}

// Cost returns the summed cost of cached entries.
func (c *LRU[K, V]) Cost() int64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.used
}

// Clear removes every entry.
func (c *LRU[K, V]) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.items = make(map[K]*list.Element)
	c.order.Init()
	c.used = 0
}

// removeElement must be called with c.mu held.
func (c *LRU[K, V]) removeElement(elem *list.Element) {
	e := elem.Value.(*entry[K, V])
	c.order.Remove(elem)
	delete(c.items, e.key)
	c.used -= e.cost
}
