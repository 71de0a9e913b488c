// Package cache holds the in-memory shadow of server-side collections.
// Each Collection is an ordered list of records guarded by a RWMutex; reads
// return snapshots so callers never observe in-place mutation.
package cache

import (
	"strings"
	"sync"
)

// Keyed is implemented by every record kept in a Collection.
type Keyed interface {
	Key() string
}

// matchID compares two identifiers by string coercion, tolerating mixed
// numeric/string ids from different sources.
func matchID(a, b string) bool {
	return strings.TrimSpace(a) == strings.TrimSpace(b)
}

// Collection is the typed in-memory shadow of one server-side table.
type Collection[T Keyed] struct {
	mu    sync.RWMutex
	items []T
}

// NewCollection returns an empty collection.
func NewCollection[T Keyed]() *Collection[T] {
	return &Collection[T]{}
}

// Replace swaps the full contents, used by the initial load.
func (c *Collection[T]) Replace(items []T) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = make([]T, len(items))
	copy(c.items, items)
}

// Snapshot returns a copy of the current ordered contents.
func (c *Collection[T]) Snapshot() []T {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]T, len(c.items))
	copy(out, c.items)
	return out
}

// Len reports the current record count.
func (c *Collection[T]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}

// Get returns the record with the given id, if present.
func (c *Collection[T]) Get(id string) (T, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for _, item := range c.items {
		if matchID(item.Key(), id) {
			return item, true
		}
	}
	var zero T
	return zero, false
}

// Contains reports whether a record with the given id is present.
func (c *Collection[T]) Contains(id string) bool {
	_, ok := c.Get(id)
	return ok
}

// Filter returns the records matching the predicate, preserving order.
func (c *Collection[T]) Filter(pred func(T) bool) []T {
	c.mu.RLock()
	defer c.mu.RUnlock()
	var out []T
	for _, item := range c.items {
		if pred(item) {
			out = append(out, item)
		}
	}
	return out
}

// Append adds a record to the end of the collection.
func (c *Collection[T]) Append(item T) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = append(c.items, item)
}

// Upsert replaces the record with the same id in place, or appends it.
func (c *Collection[T]) Upsert(item T) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.items {
		if matchID(c.items[i].Key(), item.Key()) {
			c.items[i] = item
			return
		}
	}
	c.items = append(c.items, item)
}

// Update applies the merge function to the record with the given id.
// It returns false when the record is absent.
func (c *Collection[T]) Update(id string, merge func(T) T) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.items {
		if matchID(c.items[i].Key(), id) {
			c.items[i] = merge(c.items[i])
			return true
		}
	}
	return false
}

// Remove deletes the record with the given id, reporting whether it existed.
func (c *Collection[T]) Remove(id string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.items {
		if matchID(c.items[i].Key(), id) {
			c.items = append(c.items[:i], c.items[i+1:]...)
			return true
		}
	}
	return false
}

// RemoveWhere deletes every record matching the predicate and returns the
// number removed.
func (c *Collection[T]) RemoveWhere(pred func(T) bool) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	kept := c.items[:0]
	removed := 0
	for _, item := range c.items {
		if pred(item) {
			removed++
			continue
		}
		kept = append(kept, item)
	}
	c.items = kept
	return removed
}
