// Package store owns the in-memory entity collections of the application
// state machine. Every mutation is copy-on-write at the collection level:
// the backing slice is replaced wholesale, never mutated in place, which
// gives cheap change detection via the collection version. Display ids
// come from a per-collection monotonic counter, so rapid double
// submissions can never collide the way length-derived ids did.
package store

import (
	"fmt"

	"github.com/google/uuid"
)

// Collection holds one entity slice plus its id sequence and version.
// It is not safe for concurrent use; the state machine is the single
// owner and runs every transition to completion.
type Collection[T any] struct {
	items   []T
	version uint64
	seq     int
	prefix  string
	pad     int
}

// New creates an empty collection whose display ids are formatted as
// prefix plus a zero-padded monotonic sequence ("PROV-", 2 → "PROV-01").
func New[T any](prefix string, pad int) *Collection[T] {
	return &Collection[T]{prefix: prefix, pad: pad}
}

// Seed replaces the contents with fixture data and fast-forwards the id
// sequence past the seeded records.
func (c *Collection[T]) Seed(items []T) {
	c.items = items
	c.seq = len(items)
	c.version++
}

// Items returns the current snapshot slice. Callers must treat it as
// read-only; mutations go through Append/Prepend/Update.
func (c *Collection[T]) Items() []T { return c.items }

// Len reports the number of records.
func (c *Collection[T]) Len() int { return len(c.items) }

// Version increments on every replacement of the backing slice. Derived
// views memoize against it.
func (c *Collection[T]) Version() uint64 { return c.version }

// NextID advances the monotonic sequence and returns the next display id.
func (c *Collection[T]) NextID() string {
	c.seq++
	return fmt.Sprintf("%s%0*d", c.prefix, c.pad, c.seq)
}

// Seq reports the current value of the id sequence.
func (c *Collection[T]) Seq() int { return c.seq }

// Append adds a record at the end of a fresh slice.
func (c *Collection[T]) Append(item T) {
	next := make([]T, 0, len(c.items)+1)
	next = append(next, c.items...)
	next = append(next, item)
	c.items = next
	c.version++
}

// Prepend adds a record at the front (newest-first collections).
func (c *Collection[T]) Prepend(item T) {
	next := make([]T, 0, len(c.items)+1)
	next = append(next, item)
	next = append(next, c.items...)
	c.items = next
	c.version++
}

// Update rewrites every record matching the predicate through apply and
// replaces the backing slice. Returns how many records matched. A zero
// match count leaves the collection (and its version) untouched.
func (c *Collection[T]) Update(match func(T) bool, apply func(T) T) int {
	matched := 0
	next := make([]T, len(c.items))
	for i, it := range c.items {
		if match(it) {
			matched++
			next[i] = apply(it)
		} else {
			next[i] = it
		}
	}
	if matched == 0 {
		return 0
	}
	c.items = next
	c.version++
	return matched
}

// Find returns the first record matching the predicate.
func (c *Collection[T]) Find(match func(T) bool) (T, bool) {
	for _, it := range c.items {
		if match(it) {
			return it, true
		}
	}
	var zero T
	return zero, false
}

// NewToken returns a collision-safe internal identity for a new record.
func NewToken() uuid.UUID { return uuid.New() }
