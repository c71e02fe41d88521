package iterator

import "iter"

// Container is an ordered collection.
type Container[T any] struct {
	items []T
}

// Add appends item.
func (c *Container[T]) Add(item T) { c.items = append(c.items, item) }

// Len returns the number of items.
func (c *Container[T]) Len() int { return len(c.items) }

// Iter returns a cursor positioned before the first item.
func (c *Container[T]) Iter() *Iterator[T] { return &Iterator[T]{c: c} }

// All yields every item in order.
func (c *Container[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, v := range c.items {
			if !yield(v) {
				return
			}
		}
	}
}

// Iterator is a resettable cursor over a Container.
type Iterator[T any] struct {
	c   *Container[T]
	idx int
}

// HasNext reports whether Next will return an item.
func (it *Iterator[T]) HasNext() bool { return it.idx < len(it.c.items) }

// Current returns the item Next would return, without advancing.
func (it *Iterator[T]) Current() (T, bool) {
	var zero T
	if !it.HasNext() {
		return zero, false
	}
	return it.c.items[it.idx], true
}

// Next returns the current item and advances. ok is false once exhausted.
func (it *Iterator[T]) Next() (T, bool) {
	v, ok := it.Current()
	if ok {
		it.idx++
	}
	return v, ok
}

// Reset moves the cursor back to the first item.
func (it *Iterator[T]) Reset() { it.idx = 0 }
