package seq

import (
	"cmp"
	"iter"

	"golang.org/x/exp/constraints"
)

// Span is a random-access collection of consecutive integers in the
// half-open interval [Low, High). Positions are the integers
// themselves, so a Span's position type differs from a Slice's whenever
// N is not int. Low must not exceed High.
type Span[N constraints.Integer] struct {
	Low, High N
}

var _ RandomAccess[int16, int16] = Span[int16]{}

func (r Span[N]) Values() iter.Seq[N] {
	return func(yield func(N) bool) {
		for v := r.Low; v < r.High; v++ {
			if !yield(v) {
				return
			}
		}
	}
}

func (r Span[N]) Start() N {
	return r.Low
}

func (r Span[N]) End() N {
	return r.High
}

func (r Span[N]) After(p N) N {
	if p < r.Low || p >= r.High {
		panic(ErrAfterEnd)
	}
	return p + 1
}

func (r Span[N]) Before(p N) N {
	if p <= r.Low || p > r.High {
		panic(ErrBeforeStart)
	}
	return p - 1
}

func (r Span[N]) At(p N) N {
	if p < r.Low || p >= r.High {
		panic(ErrOutOfRange)
	}
	return p
}

func (r Span[N]) Compare(p, q N) int {
	return cmp.Compare(p, q)
}

func (r Span[N]) Distance(from, to N) int {
	// Subtraction order matters for unsigned N.
	if to >= from {
		return int(to - from)
	}
	return -int(from - to)
}

func (r Span[N]) Offset(p N, n int) N {
	var q N
	if n >= 0 {
		q = p + N(n)
	} else {
		q = p - N(-n)
	}
	if q < r.Low || q > r.High {
		panic(ErrOutOfRange)
	}
	return q
}

// RandomAccess marks Span as providing constant-time Distance and
// Offset.
func (r Span[N]) RandomAccess() {}
