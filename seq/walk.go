package seq

import (
	"slices"
)

// Distance returns the number of After steps from one position to
// another, negative when to precedes from. Constant time when the
// collection is RandomAccess; otherwise a forward walk from the lesser
// position, which the total position order makes possible even for
// collections that cannot step backward.
func Distance[E any, P comparable](c Collection[E, P], from, to P) int {
	if random, ok := c.(RandomAccess[E, P]); ok {
		return random.Distance(from, to)
	}

	if c.Compare(from, to) > 0 {
		return -walk(c, to, from)
	}
	return walk(c, from, to)
}

// walk counts After steps from one position forward to another.
func walk[E any, P comparable](c Collection[E, P], from, to P) (n int) {
	for p := from; p != to; p = c.After(p) {
		n++
	}
	return
}

// Offset returns the position n steps after p (before, when n is
// negative). Constant time when the collection is RandomAccess.
// Negative offsets on a non-random-access collection require it to be
// Bidirectional; otherwise Offset panics with ErrNotBidirectional.
func Offset[E any, P comparable](c Collection[E, P], p P, n int) P {
	if random, ok := c.(RandomAccess[E, P]); ok {
		return random.Offset(p, n)
	}

	if n >= 0 {
		for ; n > 0; n-- {
			p = c.After(p)
		}
		return p
	}

	back, ok := c.(Bidirectional[E, P])
	if !ok {
		panic(ErrNotBidirectional)
	}
	for ; n < 0; n++ {
		p = back.Before(p)
	}
	return p
}

// OffsetLimited behaves like Offset but refuses to move past limit in
// the direction of travel, reporting false instead. Landing exactly on
// limit after the final step is allowed, and a limit behind the
// direction of travel has no effect. A limit equal to p with nonzero n
// clamps immediately. n == 0 always succeeds with p itself.
func OffsetLimited[E any, P comparable](c Collection[E, P], p P, n int, limit P) (P, bool) {
	var zero P

	if n == 0 {
		return p, true
	}

	if random, ok := c.(RandomAccess[E, P]); ok {
		d := random.Distance(p, limit)
		if n > 0 {
			if d >= 0 && d < n {
				return zero, false
			}
		} else {
			if d <= 0 && d > n {
				return zero, false
			}
		}
		return random.Offset(p, n), true
	}

	if n > 0 {
		for ; n > 0; n-- {
			if p == limit {
				return zero, false
			}
			p = c.After(p)
		}
		return p, true
	}

	back, ok := c.(Bidirectional[E, P])
	if !ok {
		panic(ErrNotBidirectional)
	}
	for ; n < 0; n++ {
		if p == limit {
			return zero, false
		}
		p = back.Before(p)
	}
	return p, true
}

// Collect eagerly gathers every element of a sequence into a slice.
// This is the explicit counterpart to the lazy Values iteration.
func Collect[E any](s Sequence[E]) []E {
	return slices.Collect(s.Values())
}
