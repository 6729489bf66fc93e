// Package memory is a process local record store, used when DATA_BACKEND is
// "memory". Contents are lost on restart.
package memory

import (
	"sort"
	"sync"
	"time"
)

type collection[T any] struct {
	mu    sync.Mutex
	items []T
	id    func(T) string
	order func(T) time.Time
}

func newCollection[T any](id func(T) string, order func(T) time.Time) *collection[T] {
	return &collection[T]{id: id, order: order}
}

func (c *collection[T]) add(item T) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = append(c.items, item)
}

// all returns a copy ordered by the order key, most recent first.
func (c *collection[T]) all() []T {
	c.mu.Lock()
	out := append([]T{}, c.items...)
	c.mu.Unlock()

	sort.SliceStable(out, func(i, j int) bool {
		return c.order(out[i]).After(c.order(out[j]))
	})
	return out
}

func (c *collection[T]) get(id string) (T, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, it := range c.items {
		if c.id(it) == id {
			return it, true
		}
	}
	var zero T
	return zero, false
}

func (c *collection[T]) replace(item T) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i, it := range c.items {
		if c.id(it) == c.id(item) {
			c.items[i] = item
			return true
		}
	}
	return false
}

func (c *collection[T]) remove(id string) (T, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i, it := range c.items {
		if c.id(it) == id {
			c.items = append(c.items[:i], c.items[i+1:]...)
			return it, true
		}
	}
	var zero T
	return zero, false
}
