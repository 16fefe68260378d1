package concat

import (
	"iter"

	"github.com/ezrec/seqcat/seq"
)

// Concatenated presents two collections as one logical collection, the
// first producer's elements followed by the second's, without copying
// or materializing elements. Immutable once constructed; position
// arithmetic dispatches to whichever producer a Position designates.
type Concatenated[E any, PA, PB comparable] struct {
	first  seq.Collection[E, PA]
	second seq.Collection[E, PB]
}

var (
	_ seq.Collection[int, Position[int, int]]    = Concatenated[int, int, int]{}
	_ seq.Bidirectional[int, Position[int, int]] = BidirectionalConcatenated[int, int, int]{}
	_ seq.RandomAccess[int, Position[int, int]]  = RandomAccessConcatenated[int, int, int]{}
)

// Concat joins two collections into one logical collection. The
// producers are stored by value and construction is constant time. The
// result is promoted to the highest capability tier both producers
// support: it implements seq.Bidirectional when both do, and
// seq.RandomAccess when both do. The promoted result is itself a
// collection, so adapters nest for N-way concatenation.
func Concat[E any, PA, PB comparable](first seq.Collection[E, PA], second seq.Collection[E, PB]) seq.Collection[E, Position[PA, PB]] {
	core := Concatenated[E, PA, PB]{first: first, second: second}

	firstBack, ok := first.(seq.Bidirectional[E, PA])
	if !ok {
		return core
	}
	secondBack, ok := second.(seq.Bidirectional[E, PB])
	if !ok {
		return core
	}
	both := BidirectionalConcatenated[E, PA, PB]{
		Concatenated: core,
		firstBack:    firstBack,
		secondBack:   secondBack,
	}

	if _, ok := first.(seq.RandomAccess[E, PA]); !ok {
		return both
	}
	if _, ok := second.(seq.RandomAccess[E, PB]); !ok {
		return both
	}
	return RandomAccessConcatenated[E, PA, PB]{BidirectionalConcatenated: both}
}

// Values returns a fresh single-pass cursor over both producers'
// elements in order. Nothing is buffered; the second producer is not
// touched until the first is exhausted.
func (c Concatenated[E, PA, PB]) Values() iter.Seq[E] {
	return ChainSeq(c.first.Values(), c.second.Values())
}

// normalize rewrites a first-producer position that has reached the
// first producer's end into the second producer's start, so that every
// logical location has a single canonical Position. Every operation
// that can land on the first producer's end applies it.
func (c Concatenated[E, PA, PB]) normalize(p PA) Position[PA, PB] {
	if p == c.first.End() {
		return Second[PA, PB](c.second.Start())
	}
	return First[PA, PB](p)
}

// Start returns the position of the initial element. When the first
// producer is empty this is the second producer's start.
func (c Concatenated[E, PA, PB]) Start() Position[PA, PB] {
	return c.normalize(c.first.Start())
}

// End is always the second producer's end, even when the second
// producer is empty.
func (c Concatenated[E, PA, PB]) End() Position[PA, PB] {
	return Second[PA, PB](c.second.End())
}

// After advances a position one step, crossing into the second producer
// when the first is exhausted. Advancing End is a precondition
// violation, surfaced by the second producer.
func (c Concatenated[E, PA, PB]) After(p Position[PA, PB]) Position[PA, PB] {
	if p.inSecond {
		return Second[PA, PB](c.second.After(p.second))
	}
	return c.normalize(c.first.After(p.first))
}

// At looks up the element a position denotes. Pure lookup; no producer
// state changes.
func (c Concatenated[E, PA, PB]) At(p Position[PA, PB]) E {
	if p.inSecond {
		return c.second.At(p.second)
	}
	return c.first.At(p.first)
}

// Compare orders every first-producer position before every
// second-producer position, and delegates within a side.
func (c Concatenated[E, PA, PB]) Compare(p, q Position[PA, PB]) int {
	switch {
	case !p.inSecond && !q.inSecond:
		return c.first.Compare(p.first, q.first)
	case p.inSecond && q.inSecond:
		return c.second.Compare(p.second, q.second)
	case p.inSecond:
		return 1
	default:
		return -1
	}
}

// Distance returns the number of After steps from one position to
// another, negative when to precedes from. Same-side pairs delegate to
// that producer; cross-side pairs sum the distance to the first
// producer's end with the distance from the second producer's start.
// Constant time when both producers are random access.
func (c Concatenated[E, PA, PB]) Distance(from, to Position[PA, PB]) int {
	switch {
	case !from.inSecond && !to.inSecond:
		return seq.Distance(c.first, from.first, to.first)
	case from.inSecond && to.inSecond:
		return seq.Distance(c.second, from.second, to.second)
	case !from.inSecond:
		return seq.Distance(c.first, from.first, c.first.End()) +
			seq.Distance(c.second, c.second.Start(), to.second)
	default:
		return -(seq.Distance(c.second, c.second.Start(), from.second) +
			seq.Distance(c.first, to.first, c.first.End()))
	}
}

// Offset returns the position n steps forward (backward when n is
// negative), equivalent to n applications of After or Before. Constant
// time when both producers are random access; otherwise each producer
// crossed is walked once. Backward movement over a producer that is
// neither random access nor bidirectional panics with
// seq.ErrNotBidirectional.
func (c Concatenated[E, PA, PB]) Offset(p Position[PA, PB], n int) Position[PA, PB] {
	if p.inSecond {
		if n >= 0 {
			return Second[PA, PB](seq.Offset(c.second, p.second, n))
		}
		m := seq.Distance(c.second, c.second.Start(), p.second)
		if -n <= m {
			return Second[PA, PB](seq.Offset(c.second, p.second, n))
		}
		// Crossover: n+m steps back from the first producer's end.
		return First[PA, PB](seq.Offset(c.first, c.first.End(), n+m))
	}

	if n <= 0 {
		// No crossover possible.
		return c.normalize(seq.Offset(c.first, p.first, n))
	}

	if random, ok := c.first.(seq.RandomAccess[E, PA]); ok {
		m := random.Distance(p.first, c.first.End())
		if n < m {
			return First[PA, PB](random.Offset(p.first, n))
		}
		return Second[PA, PB](seq.Offset(c.second, c.second.Start(), n-m))
	}

	// Walk one step at a time until n is spent or the first producer
	// is exhausted, then continue into the second with the remainder.
	cur := p.first
	end := c.first.End()
	for n > 0 && cur != end {
		cur = c.first.After(cur)
		n--
	}
	if cur == end {
		return Second[PA, PB](seq.Offset(c.second, c.second.Start(), n))
	}
	return First[PA, PB](cur)
}

// OffsetLimited behaves like Offset but refuses to move past limit in
// the direction of travel, reporting false instead. Landing exactly on
// limit after the final step is allowed; a limit behind the direction
// of travel has no effect; a limit equal to p with nonzero n clamps
// immediately. A limit on the other side of the crossover is hit only
// if traversal actually reaches it.
func (c Concatenated[E, PA, PB]) OffsetLimited(p Position[PA, PB], n int, limit Position[PA, PB]) (Position[PA, PB], bool) {
	var zero Position[PA, PB]

	if n == 0 {
		return p, true
	}

	_, firstRandom := c.first.(seq.RandomAccess[E, PA])
	_, secondRandom := c.second.(seq.RandomAccess[E, PB])
	if firstRandom && secondRandom {
		d := c.Distance(p, limit)
		if n > 0 {
			if d >= 0 && d < n {
				return zero, false
			}
		} else {
			if d <= 0 && d > n {
				return zero, false
			}
		}
		return c.Offset(p, n), true
	}

	cur := p
	if n > 0 {
		for ; n > 0; n-- {
			if cur == limit {
				return zero, false
			}
			cur = c.After(cur)
		}
		return cur, true
	}
	for ; n < 0; n++ {
		if cur == limit {
			return zero, false
		}
		cur = c.stepBack(cur)
	}
	return cur, true
}

// stepBack is Before without the tier gate; it panics when the producer
// it must step over cannot move backward.
func (c Concatenated[E, PA, PB]) stepBack(p Position[PA, PB]) Position[PA, PB] {
	if !p.inSecond {
		return First[PA, PB](seq.Offset(c.first, p.first, -1))
	}
	if p.second == c.second.Start() {
		// Crossover: the last element of the first producer.
		return First[PA, PB](seq.Offset(c.first, c.first.End(), -1))
	}
	return Second[PA, PB](seq.Offset(c.second, p.second, -1))
}

// BidirectionalConcatenated is a Concatenated whose producers can both
// step backward.
type BidirectionalConcatenated[E any, PA, PB comparable] struct {
	Concatenated[E, PA, PB]

	firstBack  seq.Bidirectional[E, PA]
	secondBack seq.Bidirectional[E, PB]
}

// Before steps a position one step backward, crossing from the second
// producer's start to the last element of the first. Before at Start is
// a precondition violation, surfaced by the first producer.
func (b BidirectionalConcatenated[E, PA, PB]) Before(p Position[PA, PB]) Position[PA, PB] {
	if !p.inSecond {
		return First[PA, PB](b.firstBack.Before(p.first))
	}
	if p.second == b.second.Start() {
		return First[PA, PB](b.firstBack.Before(b.first.End()))
	}
	return Second[PA, PB](b.secondBack.Before(p.second))
}

// RandomAccessConcatenated is a BidirectionalConcatenated whose
// producers both provide constant-time Distance and Offset. The
// promotion adds no logic of its own: with both producers random
// access, the constant-time branches of Distance and Offset are always
// taken already.
type RandomAccessConcatenated[E any, PA, PB comparable] struct {
	BidirectionalConcatenated[E, PA, PB]
}

// RandomAccess marks the concatenation as providing constant-time
// Distance and Offset.
func (RandomAccessConcatenated[E, PA, PB]) RandomAccess() {}
