package concat

import (
	"iter"

	"github.com/ezrec/seqcat/seq"
)

// ChainSeq concatenates two raw iterators into one. The result is
// lazy: the second iterator is not touched until the first is
// exhausted, and nothing is pulled until the consumer asks.
func ChainSeq[E any](first, second iter.Seq[E]) iter.Seq[E] {
	return func(yield func(E) bool) {
		for value := range first {
			if !yield(value) {
				return
			}
		}
		for value := range second {
			if !yield(value) {
				return
			}
		}
	}
}

// Chained is the single-pass tier of a concatenation: two sequences
// presented as one, with no positions and no element storage.
type Chained[E any] struct {
	first  seq.Sequence[E]
	second seq.Sequence[E]
}

var _ seq.Sequence[int] = Chained[int]{}

// Chain joins two sequences into one logical sequence.
func Chain[E any](first, second seq.Sequence[E]) Chained[E] {
	return Chained[E]{first: first, second: second}
}

func (c Chained[E]) Values() iter.Seq[E] {
	return ChainSeq(c.first.Values(), c.second.Values())
}

// Cursor starts a pull cursor over the chain. No element is pulled
// until the first Next call.
func (c Chained[E]) Cursor() *Cursor[E] {
	nextFirst, stopFirst := iter.Pull(c.first.Values())
	nextSecond, stopSecond := iter.Pull(c.second.Values())
	return &Cursor[E]{
		nextFirst:  nextFirst,
		stopFirst:  stopFirst,
		nextSecond: nextSecond,
		stopSecond: stopSecond,
	}
}

// Cursor pulls chained elements one at a time. Once the first sequence
// reports exhaustion the cursor never polls it again; the guard
// matters when the first sequence's exhaustion check is expensive.
// After both sequences are exhausted, Next keeps reporting false.
type Cursor[E any] struct {
	nextFirst  func() (E, bool)
	stopFirst  func()
	nextSecond func() (E, bool)
	stopSecond func()

	completedFirst bool
}

// Next returns the next element of the chain, or false when both
// sequences are exhausted. Each call does at most one unit of
// underlying work on one side, except the crossover call, which
// observes the first sequence's exhaustion and then pulls from the
// second.
func (c *Cursor[E]) Next() (E, bool) {
	if !c.completedFirst {
		if value, ok := c.nextFirst(); ok {
			return value, true
		}
		c.completedFirst = true
		c.stopFirst()
	}
	return c.nextSecond()
}

// Stop releases both underlying cursors. Safe to call more than once;
// further Next calls report exhaustion.
func (c *Cursor[E]) Stop() {
	c.stopFirst()
	c.stopSecond()
	c.completedFirst = true
}
