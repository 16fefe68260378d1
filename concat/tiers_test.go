package concat

import (
	"iter"

	"github.com/ezrec/seqcat/seq"
)

// forwardOnly strips a collection down to the Collection tier so tests
// can force the walking code paths and check promotion gating.
type forwardOnly[E any, P comparable] struct {
	inner seq.Collection[E, P]
}

var _ seq.Collection[int, int] = forwardOnly[int, int]{}

func (c forwardOnly[E, P]) Values() iter.Seq[E] { return c.inner.Values() }
func (c forwardOnly[E, P]) Start() P            { return c.inner.Start() }
func (c forwardOnly[E, P]) End() P              { return c.inner.End() }
func (c forwardOnly[E, P]) After(p P) P         { return c.inner.After(p) }
func (c forwardOnly[E, P]) At(p P) E            { return c.inner.At(p) }
func (c forwardOnly[E, P]) Compare(p, q P) int  { return c.inner.Compare(p, q) }

// noRandom strips a collection down to the Bidirectional tier.
type noRandom[E any, P comparable] struct {
	forwardOnly[E, P]
	back seq.Bidirectional[E, P]
}

var _ seq.Bidirectional[int, int] = noRandom[int, int]{}

func (c noRandom[E, P]) Before(p P) P { return c.back.Before(p) }

func forward[E any, P comparable](c seq.Collection[E, P]) seq.Collection[E, P] {
	return forwardOnly[E, P]{inner: c}
}

func bidirectional[E any, P comparable](c seq.Bidirectional[E, P]) seq.Bidirectional[E, P] {
	return noRandom[E, P]{forwardOnly: forwardOnly[E, P]{inner: c}, back: c}
}
