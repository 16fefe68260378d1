package seq

import (
	"errors"

	"github.com/ezrec/seqcat/translate"
)

var f = translate.From

var (
	// Traversal precondition violations; used as panic values.
	ErrAfterEnd    = errors.New(f("after end of collection"))
	ErrBeforeStart = errors.New(f("before start of collection"))
	ErrOutOfRange  = errors.New(f("position out of range"))

	// Capability violations
	ErrNotBidirectional = errors.New(f("backward traversal requires a bidirectional collection"))
)
