// Package directory provides the in-memory backing for the read-mostly
// record collections (ASHA workers, health schemes, registrations).
package directory

import (
	"errors"
	"strings"
	"sync"
)

// ErrNotFound is returned when a record id is unknown.
var ErrNotFound = errors.New("record not found")

// Record is anything addressable by id.
type Record interface {
	RecordID() string
}

// Collection is a concurrency-safe ordered list of records.
type Collection[T Record] struct {
	mu    sync.RWMutex
	items []T
}

// NewCollection returns a Collection preloaded with items.
func NewCollection[T Record](items []T) *Collection[T] {
	return &Collection[T]{items: append([]T(nil), items...)}
}

// List returns every record in insertion order.
func (c *Collection[T]) List() []T {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]T, len(c.items))
	copy(out, c.items)
	return out
}

// Filter returns the records for which keep returns true.
func (c *Collection[T]) Filter(keep func(T) bool) []T {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]T, 0, len(c.items))
	for _, item := range c.items {
		if keep(item) {
			out = append(out, item)
		}
	}
	return out
}

// FindByID looks up a record by identifier.
func (c *Collection[T]) FindByID(id string) (T, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	for _, item := range c.items {
		if item.RecordID() == id {
			return item, true
		}
	}
	var zero T
	return zero, false
}

// Add appends a record.
func (c *Collection[T]) Add(item T) {
	c.mu.Lock()
	c.items = append(c.items, item)
	c.mu.Unlock()
}

// ContainsFold reports whether field contains query, ignoring case.
// An empty query matches everything.
func ContainsFold(field, query string) bool {
	query = strings.TrimSpace(query)
	if query == "" {
		return true
	}
	return strings.Contains(strings.ToLower(field), strings.ToLower(query))
}
