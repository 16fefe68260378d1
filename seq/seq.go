// Package seq defines ordered element producers at four capability
// tiers, from single-pass iteration up to constant-time random access,
// along with reference producers and generic position arithmetic.
//
// The tiers build on one another by interface embedding:
//
//	Sequence      - a fresh single-pass cursor per Values() call
//	Collection    - fixed Start/End positions, forward traversal,
//	                element lookup, total position order
//	Bidirectional - adds backward traversal
//	RandomAccess  - adds constant-time Distance and Offset
//
// Positions are opaque comparable values. A position from one producer
// must never be used with another.
package seq

import (
	"iter"
)

// Sequence is the single-pass tier. Each Values() call starts a fresh
// cursor; a Sequence is not required to be iterable more than once.
type Sequence[E any] interface {
	Values() iter.Seq[E]
}

// Collection is a Sequence with stable positions. Start is the position
// of the initial element, End the position one past the last; a
// collection is empty when Start == End. After advances a position one
// step; advancing End is a precondition violation. At looks up the
// element a position denotes and must not be called with End.
type Collection[E any, P comparable] interface {
	Sequence[E]

	Start() P
	End() P
	After(p P) P
	At(p P) E

	// Compare orders two positions of this collection: negative when
	// p precedes q, zero when equal, positive when p follows q.
	Compare(p, q P) int
}

// Bidirectional is a Collection that can also step backward. Before at
// Start is a precondition violation.
type Bidirectional[E any, P comparable] interface {
	Collection[E, P]

	Before(p P) P
}

// RandomAccess is a Bidirectional collection whose Distance and Offset
// take constant time. The RandomAccess method carries no behavior; it
// exists because the plain method set cannot distinguish a producer
// with constant-time traversal from one that merely walks. Declaring
// it is the constant-time promise.
type RandomAccess[E any, P comparable] interface {
	Bidirectional[E, P]

	// Distance returns the number of After steps from one position to
	// another, negative when to precedes from.
	Distance(from, to P) int
	// Offset returns the position n steps after p (before, when n is
	// negative).
	Offset(p P, n int) P

	RandomAccess()
}

// Func adapts a raw iterator into a single-pass Sequence.
type Func[E any] iter.Seq[E]

func (f Func[E]) Values() iter.Seq[E] {
	return iter.Seq[E](f)
}

// FromSeq wraps a raw iterator as a Sequence.
func FromSeq[E any](s iter.Seq[E]) Sequence[E] {
	return Func[E](s)
}
