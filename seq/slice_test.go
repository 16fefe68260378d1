package seq

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlice_Traversal(t *testing.T) {
	assert := assert.New(t)

	s := Of(10, 20, 30)

	assert.Equal(0, s.Start())
	assert.Equal(3, s.End())
	assert.Equal([]int{10, 20, 30}, slices.Collect(s.Values()))

	p := s.Start()
	for want := range s.Items {
		assert.Equal(want, p)
		assert.Equal(s.Items[want], s.At(p))
		p = s.After(p)
	}
	assert.Equal(s.End(), p)

	for want := len(s.Items) - 1; want >= 0; want-- {
		p = s.Before(p)
		assert.Equal(want, p)
	}
	assert.Equal(s.Start(), p)
}

func TestSlice_Preconditions(t *testing.T) {
	assert := assert.New(t)

	s := Of("a", "b")

	assert.PanicsWithValue(ErrAfterEnd, func() { s.After(s.End()) })
	assert.PanicsWithValue(ErrBeforeStart, func() { s.Before(s.Start()) })
	assert.PanicsWithValue(ErrOutOfRange, func() { s.Offset(0, 3) })
	assert.PanicsWithValue(ErrOutOfRange, func() { s.Offset(1, -2) })
}

func TestSlice_Arithmetic(t *testing.T) {
	assert := assert.New(t)

	s := FromSlice([]int{1, 2, 3, 4})

	assert.Equal(4, s.Distance(s.Start(), s.End()))
	assert.Equal(-4, s.Distance(s.End(), s.Start()))
	assert.Equal(3, s.Offset(1, 2))
	assert.Equal(0, s.Offset(2, -2))
	assert.Negative(s.Compare(0, 1))
	assert.Positive(s.Compare(4, 3))
	assert.Zero(s.Compare(2, 2))
}

func TestSlice_Empty(t *testing.T) {
	assert := assert.New(t)

	s := Of[int]()

	assert.Equal(s.Start(), s.End())
	assert.Empty(slices.Collect(s.Values()))
}
