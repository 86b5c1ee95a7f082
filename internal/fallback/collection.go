package fallback

import "sync"

// Collection is an ordered, newest-first set of records keyed by id. Records
// are stored and returned by value so callers never share memory with the store.
type Collection[T any] struct {
	mu    sync.RWMutex
	items []T
	id    func(*T) string
}

func NewCollection[T any](id func(*T) string, seed ...T) *Collection[T] {
	items := make([]T, len(seed))
	copy(items, seed)
	return &Collection[T]{items: items, id: id}
}

// Prepend inserts item at the front.
func (c *Collection[T]) Prepend(item T) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.items = append([]T{item}, c.items...)
}

func (c *Collection[T]) All() []T {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]T, len(c.items))
	copy(out, c.items)
	return out
}

func (c *Collection[T]) Get(id string) (T, bool) {
	return c.Find(func(item *T) bool { return c.id(item) == id })
}

// Find returns the first record matching pred.
func (c *Collection[T]) Find(pred func(*T) bool) (T, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	for i := range c.items {
		if pred(&c.items[i]) {
			return c.items[i], true
		}
	}
	var zero T
	return zero, false
}

// Filter returns every record matching pred, in store order.
func (c *Collection[T]) Filter(pred func(*T) bool) []T {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]T, 0, len(c.items))
	for i := range c.items {
		if pred(&c.items[i]) {
			out = append(out, c.items[i])
		}
	}
	return out
}

func (c *Collection[T]) Count(pred func(*T) bool) int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	n := 0
	for i := range c.items {
		if pred(&c.items[i]) {
			n++
		}
	}
	return n
}

// Update applies fn to the record with the given id in place and returns the
// updated copy.
func (c *Collection[T]) Update(id string, fn func(*T)) (T, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.items {
		if c.id(&c.items[i]) == id {
			fn(&c.items[i])
			return c.items[i], true
		}
	}
	var zero T
	return zero, false
}

// UpdateWhere applies fn to every record matching pred and returns how many changed.
func (c *Collection[T]) UpdateWhere(pred func(*T) bool, fn func(*T)) int {
	c.mu.Lock()
	defer c.mu.Unlock()

	n := 0
	for i := range c.items {
		if pred(&c.items[i]) {
			fn(&c.items[i])
			n++
		}
	}
	return n
}

func (c *Collection[T]) Remove(id string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.items {
		if c.id(&c.items[i]) == id {
			c.items = append(c.items[:i], c.items[i+1:]...)
			return true
		}
	}
	return false
}

func (c *Collection[T]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return len(c.items)
}
