package highway

// Ring is a fixed-capacity FIFO that overwrites its oldest entry once full.
type Ring[T any] struct {
	buf  []T
	next int
	n    int
}

// NewRing allocates a ring holding at most capacity entries.
func NewRing[T any](capacity int) *Ring[T] {
	if capacity <= 0 {
		capacity = 1
	}
	return &Ring[T]{buf: make([]T, capacity)}
}

// Push appends v, evicting the oldest entry when the ring is full.
func (r *Ring[T]) Push(v T) {
	r.buf[r.next] = v
	r.next = (r.next + 1) % len(r.buf)
	if r.n < len(r.buf) {
		r.n++
	}
}

// Len returns the number of stored entries.
func (r *Ring[T]) Len() int { return r.n }

// Cap returns the fixed capacity.
func (r *Ring[T]) Cap() int { return len(r.buf) }

// At returns the i-th oldest entry; i must be in [0, Len()).
func (r *Ring[T]) At(i int) T {
	return r.buf[(r.next-r.n+i+len(r.buf))%len(r.buf)]
}

// Slice copies the stored entries, oldest first.
func (r *Ring[T]) Slice() []T {
	out := make([]T, r.n)
	for i := range out {
		out[i] = r.At(i)
	}
	return out
}

// Clear drops all entries without releasing the buffer.
func (r *Ring[T]) Clear() {
	var zero T
	for i := range r.buf {
		r.buf[i] = zero
	}
	r.next = 0
	r.n = 0
}
