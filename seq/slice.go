package seq

import (
	"cmp"
	"iter"
	"slices"
)

// Slice is a random-access collection over a Go slice. Positions are
// indexes in [0, len(Items)].
type Slice[E any] struct {
	Items []E
}

var _ RandomAccess[int, int] = Slice[int]{}

// Of builds a Slice collection from its arguments.
func Of[E any](items ...E) Slice[E] {
	return Slice[E]{Items: items}
}

// FromSlice wraps an existing slice without copying it. The caller must
// not mutate the slice while the collection is in use.
func FromSlice[E any](items []E) Slice[E] {
	return Slice[E]{Items: items}
}

func (s Slice[E]) Values() iter.Seq[E] {
	return slices.Values(s.Items)
}

func (s Slice[E]) Start() int {
	return 0
}

func (s Slice[E]) End() int {
	return len(s.Items)
}

func (s Slice[E]) After(p int) int {
	if p < 0 || p >= len(s.Items) {
		panic(ErrAfterEnd)
	}
	return p + 1
}

func (s Slice[E]) Before(p int) int {
	if p <= 0 || p > len(s.Items) {
		panic(ErrBeforeStart)
	}
	return p - 1
}

func (s Slice[E]) At(p int) E {
	return s.Items[p]
}

func (s Slice[E]) Compare(p, q int) int {
	return cmp.Compare(p, q)
}

func (s Slice[E]) Distance(from, to int) int {
	return to - from
}

func (s Slice[E]) Offset(p, n int) int {
	q := p + n
	if q < 0 || q > len(s.Items) {
		panic(ErrOutOfRange)
	}
	return q
}

// RandomAccess marks Slice as providing constant-time Distance and
// Offset.
func (s Slice[E]) RandomAccess() {}
