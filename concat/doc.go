// Package concat joins two ordered element producers into one logical
// producer without copying or materializing elements.
//
// The composite Position type tags a location as belonging to the
// first or the second producer, and the adapter keeps every location
// at one canonical Position: a first-producer position that reaches
// the first producer's end is folded into the second producer's start.
// Position arithmetic (After, Before, Distance, Offset) dispatches to
// whichever producer the tag designates, composing across the
// crossover.
//
// Concat promotes its result automatically: joining two bidirectional
// collections yields a bidirectional collection, and joining two
// random-access collections yields a random-access collection, while
// never advertising a tier the weaker producer cannot honor. Chain
// handles the single-pass tier, and JoinEither joins producers of
// different element types over an Either element.
//
// Adapters and positions are immutable values; a fresh cursor is made
// for every iteration, so independent consumers never share state.
package concat
