package boundedbuffer

import (
	"errors"
	"iter"
	"sync"
)

// --- Errors ---

var (
	// ErrInvalidSize is returned by New when the requested capacity is less
	// than one.
	ErrInvalidSize = errors.New("boundedbuffer: max size must be greater than zero")

	// ErrNoMoreItems is returned by Iterator.Next once the snapshot is
	// exhausted.
	ErrNoMoreItems = errors.New("boundedbuffer: no more items")
)

// --- Internal Types ---

// node holds one item and a reference to the node added immediately after
// it. The item never changes, and next is written at most once, when the
// following item is added. Eviction never touches a node; it only moves the
// buffer's oldest pointer forward, so a chain captured by a snapshot stays
// valid while writers keep appending.
type node[T any] struct {
	item T
	next *node[T]
}

// --- Buffer Implementation ---

// Buffer is a thread-safe buffer that retains up to a fixed number of the
// most recently added items. Once full, every Add silently drops the oldest
// item. Readers obtain a point-in-time snapshot via Iterator, All or Items
// and traverse it without blocking writers.
type Buffer[T any] struct {
	maxSize int

	mu     sync.Mutex // guards newest, oldest and size as one unit
	newest *node[T]
	oldest *node[T]
	size   int
}

// New creates an empty Buffer that retains the last maxSize items added.
// It returns ErrInvalidSize if maxSize is less than one.
func New[T any](maxSize int) (*Buffer[T], error) {
	if maxSize < 1 {
		return nil, ErrInvalidSize
	}
	return &Buffer[T]{maxSize: maxSize}, nil
}

// Add inserts item as the newest element of the buffer. If the buffer is
// full, the oldest element is dropped. Add is safe to call from any number
// of goroutines; its critical section is O(1).
func (b *Buffer[T]) Add(item T) {
	added := &node[T]{item: item}
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.newest == nil {
		b.newest = added
		b.oldest = added
		b.size = 1
		return
	}
	b.newest.next = added
	b.newest = added
	if b.size < b.maxSize {
		b.size++
	} else {
		// Full: drop the oldest by moving the pointer forward. The dropped
		// node may still be pinned by an outstanding snapshot.
		b.oldest = b.oldest.next
	}
}

// Len returns the number of items currently retained. The result is
// advisory: concurrent Add calls may have changed it by the time Len
// returns.
func (b *Buffer[T]) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.size
}

// Cap returns the fixed maximum number of items the buffer retains.
func (b *Buffer[T]) Cap() int {
	return b.maxSize
}

// Newest returns the most recently added item. The second return value is
// false if the buffer is empty.
func (b *Buffer[T]) Newest() (T, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.newest == nil {
		var zero T
		return zero, false
	}
	return b.newest.item, true
}

// Oldest returns the least recently added item still retained. The second
// return value is false if the buffer is empty.
func (b *Buffer[T]) Oldest() (T, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.oldest == nil {
		var zero T
		return zero, false
	}
	return b.oldest.item, true
}

// --- Snapshots ---

// snapshot captures the oldest retained node and the retained count. The
// pair is read under the lock so the two values are consistent with each
// other; everything reachable from the captured node is immutable, which
// makes the later walk safe without synchronization.
func (b *Buffer[T]) snapshot() (*node[T], int) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.oldest, b.size
}

// collect walks a captured snapshot without any locking and returns its
// items ordered newest first, or nil for an empty snapshot. The walk is
// bounded by the captured size and must never read the final node's next
// link: that is the only link a concurrent Add may be writing. A nil link
// inside the bound would truncate the result; the buffer invariants rule
// that out.
func collect[T any](oldest *node[T], size int) []T {
	if size == 0 {
		return nil
	}
	items := make([]T, size)
	i := size - 1
	for n := oldest; n != nil; n = n.next {
		items[i] = n.item
		if i == 0 {
			break
		}
		i--
	}
	return items[i:]
}

// Items returns a snapshot of the buffer as a slice ordered newest first,
// or nil if the buffer was empty at the moment of the call.
func (b *Buffer[T]) Items() []T {
	oldest, size := b.snapshot()
	return collect(oldest, size)
}

// All returns an iterator over a snapshot taken at the moment of the call,
// newest item first, for use with a range loop. Breaking out of the loop
// stops the traversal; a new call to All takes a fresh snapshot.
func (b *Buffer[T]) All() iter.Seq[T] {
	oldest, size := b.snapshot()
	return func(yield func(T) bool) {
		for _, item := range collect(oldest, size) {
			if !yield(item) {
				return
			}
		}
	}
}

// --- Iterator ---

// Iterator traverses one snapshot of the buffer, newest item first. It is a
// single-pass, short-lived object: take a fresh one per traversal and do
// not retain it, so that items superseded in the meantime can be reclaimed.
type Iterator[T any] struct {
	items []T
	pos   int
}

// Iterator returns an iterator over a snapshot of the buffer taken at the
// moment of the call. The traversal is bounded by the snapshot and is not
// affected by Add calls made afterwards.
func (b *Buffer[T]) Iterator() *Iterator[T] {
	oldest, size := b.snapshot()
	return &Iterator[T]{items: collect(oldest, size)}
}

// HasNext reports whether another item remains in the snapshot.
func (it *Iterator[T]) HasNext() bool {
	return it.pos < len(it.items)
}

// Next returns the next item of the snapshot. Once the snapshot is
// exhausted it returns ErrNoMoreItems.
func (it *Iterator[T]) Next() (T, error) {
	if it.pos >= len(it.items) {
		var zero T
		return zero, ErrNoMoreItems
	}
	item := it.items[it.pos]
	it.pos++
	return item, nil
}
