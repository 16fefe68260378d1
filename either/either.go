// Package either provides a two-variant tagged value.
package either

import (
	"fmt"
)

// Either holds exactly one of two values: a Left of type A or a Right
// of type B. The zero value is a Left holding A's zero value. Either
// values are comparable when A and B are.
type Either[A, B any] struct {
	isRight bool
	left    A
	right   B
}

// Left tags a value of the first type.
func Left[A, B any](value A) Either[A, B] {
	return Either[A, B]{left: value}
}

// Right tags a value of the second type.
func Right[A, B any](value B) Either[A, B] {
	return Either[A, B]{isRight: true, right: value}
}

func (e Either[A, B]) IsLeft() bool {
	return !e.isRight
}

func (e Either[A, B]) IsRight() bool {
	return e.isRight
}

// GetLeft returns the held value and true when this Either is a Left.
func (e Either[A, B]) GetLeft() (A, bool) {
	return e.left, !e.isRight
}

// GetRight returns the held value and true when this Either is a Right.
func (e Either[A, B]) GetRight() (B, bool) {
	return e.right, e.isRight
}

func (e Either[A, B]) String() string {
	if e.isRight {
		return fmt.Sprintf("Right(%v)", e.right)
	}
	return fmt.Sprintf("Left(%v)", e.left)
}

// Match calls exactly one of onLeft or onRight with the held value and
// returns its result.
func Match[A, B, R any](e Either[A, B], onLeft func(A) R, onRight func(B) R) R {
	if e.isRight {
		return onRight(e.right)
	}
	return onLeft(e.left)
}
