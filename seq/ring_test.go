package seq

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRing_PushAndValues(t *testing.T) {
	assert := assert.New(t)

	ring := NewRing[int](4)
	assert.Equal(0, ring.Len())

	for v := 1; v <= 3; v++ {
		ring.Push(v)
	}
	assert.Equal(3, ring.Len())
	assert.Equal([]int{1, 2, 3}, slices.Collect(ring.Values()))
}

func TestRing_Eviction(t *testing.T) {
	assert := assert.New(t)

	ring := NewRing[int](3)
	for v := 1; v <= 5; v++ {
		ring.Push(v)
	}

	// Oldest two were evicted; positions stay logical despite the
	// wrapped storage.
	assert.Equal(3, ring.Len())
	assert.Equal([]int{3, 4, 5}, slices.Collect(ring.Values()))
	assert.Equal(3, ring.At(0))
	assert.Equal(5, ring.At(2))
	assert.Equal(0, ring.Start())
	assert.Equal(3, ring.End())
}

func TestRing_Arithmetic(t *testing.T) {
	assert := assert.New(t)

	ring := NewRing[string](2)
	ring.Push("a")
	ring.Push("b")
	ring.Push("c") // evicts "a", head wraps

	assert.Equal(2, ring.Distance(ring.Start(), ring.End()))
	assert.Equal(1, ring.Offset(0, 1))
	assert.Equal("b", ring.At(0))
	assert.Equal("c", ring.At(ring.Before(ring.End())))
	assert.PanicsWithValue(ErrOutOfRange, func() { ring.At(2) })
	assert.PanicsWithValue(ErrAfterEnd, func() { ring.After(ring.End()) })
}

func TestRing_LazyInit(t *testing.T) {
	assert := assert.New(t)

	ring := &Ring[int]{}
	ring.Push(7)

	assert.Equal(RING_DEFAULT_CAPACITY, ring.Capacity)
	assert.Equal([]int{7}, slices.Collect(ring.Values()))

	ring.Reset()
	assert.Equal(0, ring.Len())
}
