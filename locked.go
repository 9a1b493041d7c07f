package rollbuf

import "sync"

// Locked guards a Buffer with a sync.RWMutex so one buffer can be
// shared across goroutines. Accessors that return slices return fresh
// copies, never the guarded storage.
type Locked[T any] struct {
	mu  sync.RWMutex
	buf *Buffer[T]
}

// NewLocked creates a locked buffer with the given capacity.
// Capacity must be >= 1; NewLocked panics otherwise.
func NewLocked[T any](capacity int) *Locked[T] {
	return &Locked[T]{buf: New[T](capacity)}
}

// Append adds v, overwriting the oldest element when full.
func (l *Locked[T]) Append(v T) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.buf.Append(v)
}

// SetLast replaces the newest element; false when empty.
func (l *Locked[T]) SetLast(v T) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.buf.SetLast(v)
}

// Cap returns the fixed capacity.
func (l *Locked[T]) Cap() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.buf.Cap()
}

// Len returns the number of retained elements.
func (l *Locked[T]) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.buf.Len()
}

// Count returns the total number of values ever appended.
func (l *Locked[T]) Count() uint64 {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.buf.Count()
}

// Get returns the element at logical position i; false when absent.
func (l *Locked[T]) Get(i int) (T, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.buf.Get(i)
}

// First returns the oldest retained element; false when empty.
func (l *Locked[T]) First() (T, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.buf.First()
}

// Last returns the newest retained element; false when empty.
func (l *Locked[T]) Last() (T, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.buf.Last()
}

// LastEvicted returns the most recently overwritten element; false
// while nothing has been evicted.
func (l *Locked[T]) LastEvicted() (T, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.buf.LastEvicted()
}

// Raw returns a copy of the occupied slots in physical write order.
func (l *Locked[T]) Raw() []T {
	l.mu.RLock()
	defer l.mu.RUnlock()
	out := make([]T, l.buf.size)
	copy(out, l.buf.buf)
	return out
}

// Snapshot returns the retained elements in logical order, oldest first.
func (l *Locked[T]) Snapshot() []T {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.buf.Snapshot()
}

// Tail returns the last n elements, oldest first.
func (l *Locked[T]) Tail(n int) []T {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.buf.Tail(n)
}

// MarshalJSON encodes the buffer as a JSON array in logical order.
func (l *Locked[T]) MarshalJSON() ([]byte, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.buf.MarshalJSON()
}
