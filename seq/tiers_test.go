package seq

import (
	"iter"
)

// forwardOnly restricts a collection to the Collection tier, hiding
// any backward or constant-time capability of the wrapped producer.
type forwardOnly[E any, P comparable] struct {
	inner Collection[E, P]
}

var _ Collection[int, int] = forwardOnly[int, int]{}

func (c forwardOnly[E, P]) Values() iter.Seq[E] { return c.inner.Values() }
func (c forwardOnly[E, P]) Start() P            { return c.inner.Start() }
func (c forwardOnly[E, P]) End() P              { return c.inner.End() }
func (c forwardOnly[E, P]) After(p P) P         { return c.inner.After(p) }
func (c forwardOnly[E, P]) At(p P) E            { return c.inner.At(p) }
func (c forwardOnly[E, P]) Compare(p, q P) int  { return c.inner.Compare(p, q) }

// noRandom restricts a collection to the Bidirectional tier.
type noRandom[E any, P comparable] struct {
	forwardOnly[E, P]
	back Bidirectional[E, P]
}

var _ Bidirectional[int, int] = noRandom[int, int]{}

func (c noRandom[E, P]) Before(p P) P { return c.back.Before(p) }

func forward[E any, P comparable](c Collection[E, P]) Collection[E, P] {
	return forwardOnly[E, P]{inner: c}
}

func bidirectional[E any, P comparable](c Bidirectional[E, P]) Bidirectional[E, P] {
	return noRandom[E, P]{forwardOnly: forwardOnly[E, P]{inner: c}, back: c}
}
