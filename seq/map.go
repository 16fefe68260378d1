package seq

import (
	"iter"
)

// MapSeq lazily applies fn to each element of a raw iterator. No
// element is transformed until the result is iterated; exactly one fn
// call happens per element visited.
func MapSeq[A, B any](s iter.Seq[A], fn func(A) B) iter.Seq[B] {
	return func(yield func(B) bool) {
		for v := range s {
			if !yield(fn(v)) {
				return
			}
		}
	}
}

// Map presents a collection with every element transformed by fn,
// lazily: fn runs only when an element is looked up or iterated.
// Positions pass through untouched. The result keeps the capability
// tier of c: it is Bidirectional when c is, and RandomAccess when c is.
func Map[A, B any, P comparable](c Collection[A, P], fn func(A) B) Collection[B, P] {
	m := mapped[A, B, P]{inner: c, fn: fn}

	back, ok := c.(Bidirectional[A, P])
	if !ok {
		return m
	}
	mb := mappedBidirectional[A, B, P]{mapped: m, back: back}

	random, ok := c.(RandomAccess[A, P])
	if !ok {
		return mb
	}
	return mappedRandomAccess[A, B, P]{mappedBidirectional: mb, random: random}
}

type mapped[A, B any, P comparable] struct {
	inner Collection[A, P]
	fn    func(A) B
}

func (m mapped[A, B, P]) Values() iter.Seq[B] {
	return MapSeq(m.inner.Values(), m.fn)
}

func (m mapped[A, B, P]) Start() P {
	return m.inner.Start()
}

func (m mapped[A, B, P]) End() P {
	return m.inner.End()
}

func (m mapped[A, B, P]) After(p P) P {
	return m.inner.After(p)
}

func (m mapped[A, B, P]) At(p P) B {
	return m.fn(m.inner.At(p))
}

func (m mapped[A, B, P]) Compare(p, q P) int {
	return m.inner.Compare(p, q)
}

type mappedBidirectional[A, B any, P comparable] struct {
	mapped[A, B, P]
	back Bidirectional[A, P]
}

func (m mappedBidirectional[A, B, P]) Before(p P) P {
	return m.back.Before(p)
}

type mappedRandomAccess[A, B any, P comparable] struct {
	mappedBidirectional[A, B, P]
	random RandomAccess[A, P]
}

func (m mappedRandomAccess[A, B, P]) Distance(from, to P) int {
	return m.random.Distance(from, to)
}

func (m mappedRandomAccess[A, B, P]) Offset(p P, n int) P {
	return m.random.Offset(p, n)
}

// RandomAccess carries the wrapped collection's constant-time promise
// through the transform.
func (m mappedRandomAccess[A, B, P]) RandomAccess() {}
