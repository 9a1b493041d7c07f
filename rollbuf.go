// Package rollbuf provides a fixed-capacity rolling buffer that retains
// the most recently appended values, overwriting the oldest element once
// the buffer is full. It backs bounded caches and sliding-window
// histories where callers only ever append.
package rollbuf

// Buffer is a fixed-size FIFO container with overwrite-on-full append.
// It never reallocates after construction: once full, every Append
// rewrites exactly one slot and evicts the oldest element.
//
// A Buffer is not safe for concurrent use. Wrap it in Locked to share
// it across goroutines.
type Buffer[T any] struct {
	buf     []T
	head    int
	size    int
	count   uint64
	evicted T
}

// New creates a buffer that retains the last capacity values.
// Capacity must be >= 1; New panics otherwise, since a zero-capacity
// buffer could never hold or return an element.
func New[T any](capacity int) *Buffer[T] {
	if capacity < 1 {
		panic("rollbuf: capacity must be >= 1")
	}
	return &Buffer[T]{buf: make([]T, 0, capacity)}
}

// Cap returns the fixed capacity.
func (r *Buffer[T]) Cap() int {
	return cap(r.buf)
}

// Len returns the number of retained elements, at most Cap.
func (r *Buffer[T]) Len() int {
	return r.size
}

// Count returns the total number of values ever appended, without the
// capacity cap that bounds Len.
func (r *Buffer[T]) Count() uint64 {
	return r.count
}

// Append adds v; if the buffer is full, it overwrites (and evicts) the
// oldest element. It never fails and writes exactly one slot.
func (r *Buffer[T]) Append(v T) {
	if r.size < cap(r.buf) {
		r.buf = append(r.buf, v)
		r.size++
	} else {
		r.evicted = r.buf[r.head]
		r.buf[r.head] = v
		r.head++
		if r.head == cap(r.buf) {
			r.head = 0
		}
	}
	r.count++
}

// physical maps a logical index (0 = oldest) to a slot in buf.
// All accessors share this mapping so the filling and full branches
// stay consistent everywhere.
func (r *Buffer[T]) physical(i int) int {
	if r.size < cap(r.buf) {
		// Not yet wrapped; the oldest element sits at slot 0.
		return i
	}
	p := r.head + i
	if p >= cap(r.buf) {
		p -= cap(r.buf)
	}
	return p
}

// Get returns the element at logical position i, where 0 is the oldest
// and Len()-1 the newest. The second result is false when no element
// exists at that position.
func (r *Buffer[T]) Get(i int) (T, bool) {
	if i < 0 || i >= r.size {
		var zero T
		return zero, false
	}
	return r.buf[r.physical(i)], true
}

// First returns the oldest retained element, or false when empty.
func (r *Buffer[T]) First() (T, bool) {
	return r.Get(0)
}

// Last returns the most recently appended element, or false when empty.
func (r *Buffer[T]) Last() (T, bool) {
	return r.Get(r.size - 1)
}

// SetLast replaces the most recently appended element in place.
// It returns false when the buffer is empty.
func (r *Buffer[T]) SetLast(v T) bool {
	if r.size == 0 {
		return false
	}
	r.buf[r.physical(r.size-1)] = v
	return true
}

// LastEvicted returns the element most recently overwritten by Append,
// or false while nothing has been evicted yet.
func (r *Buffer[T]) LastEvicted() (T, bool) {
	if r.count <= uint64(cap(r.buf)) {
		var zero T
		return zero, false
	}
	return r.evicted, true
}

// Raw returns the occupied slots in physical write order, which after
// the buffer wraps does not equal chronological order. The slice
// aliases the buffer's storage and reflects the state only until the
// next Append; callers must not modify it. Use Snapshot for the
// chronological view.
func (r *Buffer[T]) Raw() []T {
	return r.buf
}

// Slices returns the retained elements in logical order as at most two
// sub-slices of the backing storage, without copying. Join them if one
// contiguous slice is needed, or use Snapshot.
func (r *Buffer[T]) Slices() (a, b []T) {
	if r.size == 0 {
		return nil, nil
	}
	if r.size < cap(r.buf) {
		return r.buf, nil
	}
	return r.buf[r.head:], r.buf[:r.head]
}

// Snapshot returns a newly allocated slice of the retained elements in
// logical order, oldest first.
func (r *Buffer[T]) Snapshot() []T {
	a, b := r.Slices()
	out := make([]T, 0, r.size)
	out = append(out, a...)
	out = append(out, b...)
	return out
}

// Tail returns the last n elements, oldest first. When fewer than n
// elements are retained it returns all of them; n <= 0 returns nil.
func (r *Buffer[T]) Tail(n int) []T {
	if n > r.size {
		n = r.size
	}
	if n <= 0 {
		return nil
	}
	out := make([]T, n)
	for i := 0; i < n; i++ {
		out[i] = r.buf[r.physical(r.size-n+i)]
	}
	return out
}
