package concat

import (
	"github.com/ezrec/seqcat/either"
	"github.com/ezrec/seqcat/seq"
)

// JoinEither concatenates two collections of different element types by
// first tagging each side's elements into a common sum type: the first
// producer's elements become Left values, the second producer's become
// Right values. Tagging is lazy and construction is constant time.
// Capability promotion applies exactly as in Concat, carried through
// the tagging transform.
func JoinEither[A, B any, PA, PB comparable](first seq.Collection[A, PA], second seq.Collection[B, PB]) seq.Collection[either.Either[A, B], Position[PA, PB]] {
	return Concat(
		seq.Map(first, either.Left[A, B]),
		seq.Map(second, either.Right[A, B]),
	)
}

// ChainEither is the single-pass form of JoinEither.
func ChainEither[A, B any](first seq.Sequence[A], second seq.Sequence[B]) Chained[either.Either[A, B]] {
	return Chain(
		seq.FromSeq(seq.MapSeq(first.Values(), either.Left[A, B])),
		seq.FromSeq(seq.MapSeq(second.Values(), either.Right[A, B])),
	)
}
