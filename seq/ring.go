package seq

import (
	"cmp"
	"iter"
)

const (
	RING_DEFAULT_CAPACITY = 64
)

// Ring is a fixed-capacity ring buffer viewed as a random-access
// collection of its current contents, oldest first. Pushing onto a full
// ring evicts the oldest element. Positions are logical offsets in
// [0, Len()]; the backing storage index wraps, so a position is not a
// storage index.
type Ring[E any] struct {
	Capacity int

	data  []E
	head  int
	count int
}

var _ RandomAccess[byte, int] = (*Ring[byte])(nil)

// NewRing creates a ring holding at most capacity elements.
func NewRing[E any](capacity int) *Ring[E] {
	ring := &Ring[E]{Capacity: capacity}
	ring.Reset()
	return ring
}

// Reset empties the ring, allocating storage on first use.
func (ring *Ring[E]) Reset() {
	if ring.data == nil {
		if ring.Capacity == 0 {
			ring.Capacity = RING_DEFAULT_CAPACITY
		}
		ring.data = make([]E, ring.Capacity)
	}

	ring.head = 0
	ring.count = 0
}

// Push appends a value, evicting the oldest element when full.
func (ring *Ring[E]) Push(value E) {
	if ring.data == nil {
		ring.Reset()
	}

	if ring.count == len(ring.data) {
		ring.data[ring.head] = value
		ring.head = (ring.head + 1) % len(ring.data)
		return
	}

	ring.data[(ring.head+ring.count)%len(ring.data)] = value
	ring.count++
}

// Len reports how many elements the ring currently holds.
func (ring *Ring[E]) Len() int {
	return ring.count
}

func (ring *Ring[E]) Values() iter.Seq[E] {
	return func(yield func(E) bool) {
		for p := 0; p < ring.count; p++ {
			if !yield(ring.data[(ring.head+p)%len(ring.data)]) {
				return
			}
		}
	}
}

func (ring *Ring[E]) Start() int {
	return 0
}

func (ring *Ring[E]) End() int {
	return ring.count
}

func (ring *Ring[E]) After(p int) int {
	if p < 0 || p >= ring.count {
		panic(ErrAfterEnd)
	}
	return p + 1
}

func (ring *Ring[E]) Before(p int) int {
	if p <= 0 || p > ring.count {
		panic(ErrBeforeStart)
	}
	return p - 1
}

func (ring *Ring[E]) At(p int) E {
	if p < 0 || p >= ring.count {
		panic(ErrOutOfRange)
	}
	return ring.data[(ring.head+p)%len(ring.data)]
}

func (ring *Ring[E]) Compare(p, q int) int {
	return cmp.Compare(p, q)
}

func (ring *Ring[E]) Distance(from, to int) int {
	return to - from
}

func (ring *Ring[E]) Offset(p, n int) int {
	q := p + n
	if q < 0 || q > ring.count {
		panic(ErrOutOfRange)
	}
	return q
}

// RandomAccess marks Ring as providing constant-time Distance and
// Offset.
func (ring *Ring[E]) RandomAccess() {}
