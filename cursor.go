package gocursor

import (
	"fmt"
	"iter"

	"github.com/samber/lo"
)

// Cursor walks an owned, ordered snapshot of values in both directions.
//
// A new cursor stands before the first element (index -1). Next and Prev move
// the index by exactly one step and do NOT check bounds: guarding movement
// with HasNext/HasPrev is the caller's responsibility. Reads outside of the
// snapshot return the zero value of T and false.
//
// Cursor is not safe for concurrent use.
type Cursor[T any] struct {
	elements []T
	index    int
	clamp    bool
}

// New returns a cursor over an independent copy of elements. Mutating
// elements afterwards does not affect the cursor.
func New[T any](elements []T) *Cursor[T] {
	return &Cursor[T]{
		elements: Snapshot(elements),
		index:    -1,
	}
}

// Of is New for an inline list of values.
//
// Usage:
//
//	c := gocursor.Of(1, 2, 3)
//	for c.HasNext() {
//	    v, _ := c.Next()
//	    fmt.Println(v)
//	}
func Of[T any](elements ...T) *Cursor[T] {
	return New(elements)
}

// FromSeq returns a cursor over everything seq yields, in order.
func FromSeq[T any](seq iter.Seq[T]) *Cursor[T] {
	return &Cursor[T]{
		elements: SnapshotSeq(seq),
		index:    -1,
	}
}

// WithClamping keeps the index within [-1, Len()] on Next and Prev. Reads
// past either end still return the sentinel, but the index no longer drifts.
// An index that already drifted is pulled back to the nearest bound.
func (c *Cursor[T]) WithClamping() *Cursor[T] {
	if c == nil {
		c = &Cursor[T]{index: -1}
	}

	c.clamp = true
	c.index = lo.Clamp(c.index, -1, len(c.elements))

	return c
}

// IsClamped returns true if WithClamping was applied.
func (c *Cursor[T]) IsClamped() bool {
	return c != nil && c.clamp
}

// Current returns the element at the current index.
func (c *Cursor[T]) Current() (T, bool) {
	return c.At(c.GetIndex())
}

// GetIndex returns the current index. -1 means "before the first element".
func (c *Cursor[T]) GetIndex() int {
	if c == nil {
		return -1
	}

	return c.index
}

// HasNext returns true if Next would land on an element.
func (c *Cursor[T]) HasNext() bool {
	return c.GetIndex()+1 < c.Len()
}

// HasPrev returns true if Prev would land on an element.
func (c *Cursor[T]) HasPrev() bool {
	return c.GetIndex()-1 > -1
}

// IsFirst returns true if there is nothing to step back to. It is also true
// for an empty cursor and before the first element.
func (c *Cursor[T]) IsFirst() bool {
	return !c.HasPrev()
}

// IsLast returns true if there is nothing to step forward to. It is also
// true for an empty cursor and past the last element.
func (c *Cursor[T]) IsLast() bool {
	return !c.HasNext()
}

// Next advances the index by one and returns the element there.
//
// IMPORTANT:
// Next is unchecked. Calling it at or past the last element returns the
// sentinel and keeps increasing the index, unless WithClamping is set.
func (c *Cursor[T]) Next() (T, bool) {
	if c == nil {
		return lo.Empty[T](), false
	}

	if !c.clamp || c.index < len(c.elements) {
		c.index++
	}

	return c.At(c.index)
}

// Prev moves the index back by one and returns the element there.
//
// IMPORTANT:
// Prev is unchecked. Calling it at or before the first element returns the
// sentinel and keeps decreasing the index, unless WithClamping is set.
func (c *Cursor[T]) Prev() (T, bool) {
	if c == nil {
		return lo.Empty[T](), false
	}

	if !c.clamp || c.index > -1 {
		c.index--
	}

	return c.At(c.index)
}

// Rewind moves the cursor before the first element and returns -1.
func (c *Cursor[T]) Rewind() int {
	if c != nil {
		c.index = -1
	}

	return -1
}

// Len returns the number of elements in the snapshot.
func (c *Cursor[T]) Len() int {
	if c == nil {
		return 0
	}

	return len(c.elements)
}

// At returns the element at index i without moving the cursor.
func (c *Cursor[T]) At(i int) (T, bool) {
	if i < 0 || i >= c.Len() {
		return lo.Empty[T](), false
	}

	return c.elements[i], true
}

// Elements returns a copy of the snapshot.
func (c *Cursor[T]) Elements() []T {
	if c == nil {
		return Snapshot[T](nil)
	}

	return Snapshot(c.elements)
}

// All ranges over the snapshot by index. It does not move the cursor.
func (c *Cursor[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := 0; i < c.Len(); i++ {
			if !yield(i, c.elements[i]) {
				return
			}
		}
	}
}

// String - implements fmt.Stringer.
func (c *Cursor[T]) String() string {
	return fmt.Sprintf("cursor(%d/%d)", c.GetIndex(), c.Len())
}

var _ fmt.Stringer = (*Cursor[any])(nil)
