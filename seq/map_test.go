package seq

import (
	"slices"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMap_Lazy(t *testing.T) {
	assert := assert.New(t)

	var calls int
	double := func(v int) int {
		calls++
		return v * 2
	}

	m := Map[int, int, int](Of(1, 2, 3), double)
	assert.Zero(calls, "constructing the transform must evaluate nothing")

	var got []int
	for v := range m.Values() {
		got = append(got, v)
	}
	assert.Equal([]int{2, 4, 6}, got)
	assert.Equal(3, calls, "exactly one call per element visited")

	calls = 0
	for v := range m.Values() {
		_ = v
		break
	}
	assert.Equal(1, calls, "stopping early stops the transform")
}

func TestMap_Lookup(t *testing.T) {
	assert := assert.New(t)

	m := Map[int, string, int](Of(7, 8, 9), strconv.Itoa)

	assert.Equal("8", m.At(1))
	assert.Equal(m.Start(), 0)
	assert.Equal(m.End(), 3)
	assert.Equal(1, m.After(0))
	assert.Negative(m.Compare(0, 2))
}

func TestMap_TierPreservation(t *testing.T) {
	assert := assert.New(t)

	s := Of(1, 2, 3)
	identity := func(v int) int { return v }

	random := Map[int, int, int](s, identity)
	if ra, ok := random.(RandomAccess[int, int]); assert.True(ok, "mapping a random-access producer keeps random access") {
		assert.Equal(3, ra.Distance(0, 3))
		assert.Equal(2, ra.Offset(0, 2))
		assert.Equal(1, ra.Before(2))
	}

	back := Map[int, int, int](bidirectional[int, int](s), identity)
	_, ok := back.(RandomAccess[int, int])
	assert.False(ok, "mapping must not invent random access")
	if b, ok := back.(Bidirectional[int, int]); assert.True(ok) {
		assert.Equal(1, b.Before(2))
	}

	fwd := Map[int, int, int](forward[int, int](s), identity)
	_, ok = fwd.(Bidirectional[int, int])
	assert.False(ok, "mapping must not invent backward traversal")
}

func TestMapSeq(t *testing.T) {
	assert := assert.New(t)

	squares := MapSeq(slices.Values([]int{1, 2, 3}), func(v int) int { return v * v })
	assert.Equal([]int{1, 4, 9}, slices.Collect(squares))
}
