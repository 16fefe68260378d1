package concat

import (
	"fmt"
)

// Position locates an element in a concatenation of two producers: it
// holds either a position of the first producer or a position of the
// second. Position values are comparable with ==.
//
// Positions produced by an adapter are canonical: a first-producer
// position never equals the first producer's end position; that
// location is always represented as the second producer's start, and
// the end of the whole concatenation is always the second producer's
// end. Positions built by hand with First or Second are not
// normalized, so only compare positions obtained from the same
// adapter.
type Position[PA, PB comparable] struct {
	inSecond bool
	first    PA
	second   PB
}

// First wraps a position of the first producer.
func First[PA, PB comparable](p PA) Position[PA, PB] {
	return Position[PA, PB]{first: p}
}

// Second wraps a position of the second producer.
func Second[PA, PB comparable](p PB) Position[PA, PB] {
	return Position[PA, PB]{inSecond: true, second: p}
}

// InFirst reports whether the position designates the first producer.
func (p Position[PA, PB]) InFirst() bool {
	return !p.inSecond
}

// InSecond reports whether the position designates the second producer.
func (p Position[PA, PB]) InSecond() bool {
	return p.inSecond
}

// FirstPosition returns the wrapped first-producer position and whether
// the position designates the first producer.
func (p Position[PA, PB]) FirstPosition() (PA, bool) {
	return p.first, !p.inSecond
}

// SecondPosition returns the wrapped second-producer position and
// whether the position designates the second producer.
func (p Position[PA, PB]) SecondPosition() (PB, bool) {
	return p.second, p.inSecond
}

func (p Position[PA, PB]) String() string {
	if p.inSecond {
		return fmt.Sprintf("Second(%v)", p.second)
	}
	return fmt.Sprintf("First(%v)", p.first)
}
